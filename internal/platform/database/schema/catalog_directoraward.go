package schema

// CatalogDirectorAwardTable represents the 'catalog.directoraward' table
type CatalogDirectorAwardTable struct {
	Table      string
	DirectorID string
	Award      string
	YearWon    string
}

// CatalogDirectorAward is the schema definition for catalog.directoraward
var CatalogDirectorAward = CatalogDirectorAwardTable{
	Table:      "catalog.directoraward",
	DirectorID: "directorid",
	Award:      "award",
	YearWon:    "yearwon",
}
