package schema

// CatalogDirectorTable represents the 'catalog.director' table
type CatalogDirectorTable struct {
	Table       string
	ID          string
	Name        string
	DateOfBirth string
	Nationality string
	CreatedAt   string
	UpdatedAt   string
}

// CatalogDirector is the schema definition for catalog.director
var CatalogDirector = CatalogDirectorTable{
	Table:       "catalog.director",
	ID:          "id",
	Name:        "name",
	DateOfBirth: "dateofbirth",
	Nationality: "nationality",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t CatalogDirectorTable) Columns() []string {
	return []string{t.ID, t.Name, t.DateOfBirth, t.Nationality, t.CreatedAt, t.UpdatedAt}
}
