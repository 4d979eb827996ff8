package schema

// CatalogCertificateTable represents the 'catalog.certificate' table
type CatalogCertificateTable struct {
	Table       string
	ID          string
	FilmID      string
	RatingBoard string
	Grade       string
	CreatedAt   string
	UpdatedAt   string
}

// CatalogCertificate is the schema definition for catalog.certificate
var CatalogCertificate = CatalogCertificateTable{
	Table:       "catalog.certificate",
	ID:          "id",
	FilmID:      "filmid",
	RatingBoard: "ratingboard",
	Grade:       "grade",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t CatalogCertificateTable) Columns() []string {
	return []string{t.ID, t.FilmID, t.RatingBoard, t.Grade, t.CreatedAt, t.UpdatedAt}
}
