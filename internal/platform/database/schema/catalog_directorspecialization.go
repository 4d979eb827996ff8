package schema

// CatalogDirectorSpecializationTable represents the 'catalog.directorspecialization' table
type CatalogDirectorSpecializationTable struct {
	Table          string
	DirectorID     string
	Specialization string
}

// CatalogDirectorSpecialization is the schema definition for catalog.directorspecialization
var CatalogDirectorSpecialization = CatalogDirectorSpecializationTable{
	Table:          "catalog.directorspecialization",
	DirectorID:     "directorid",
	Specialization: "specialization",
}
