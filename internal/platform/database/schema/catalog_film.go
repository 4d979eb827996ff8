package schema

// CatalogFilmTable represents the 'catalog.film' table
type CatalogFilmTable struct {
	Table               string
	ID                  string
	Title               string
	Slug                string
	Genre               string
	ReleaseDate         string
	Budget              string
	BoxOfficeCollection string
	Status              string
	DirectorID          string
	StudioID            string
	DistributorID       string
	CreatedAt           string
	UpdatedAt           string
}

// CatalogFilm is the schema definition for catalog.film
var CatalogFilm = CatalogFilmTable{
	Table:               "catalog.film",
	ID:                  "id",
	Title:               "title",
	Slug:                "slug",
	Genre:               "genre",
	ReleaseDate:         "releasedate",
	Budget:              "budget",
	BoxOfficeCollection: "boxofficecollection",
	Status:              "status",
	DirectorID:          "directorid",
	StudioID:            "studioid",
	DistributorID:       "distributorid",
	CreatedAt:           "createdat",
	UpdatedAt:           "updatedat",
}

func (t CatalogFilmTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.Genre, t.ReleaseDate, t.Budget,
		t.BoxOfficeCollection, t.Status, t.DirectorID, t.StudioID,
		t.DistributorID, t.CreatedAt, t.UpdatedAt,
	}
}
