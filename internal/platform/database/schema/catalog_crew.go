package schema

// CatalogCrewTable represents the 'catalog.crew' table
type CatalogCrewTable struct {
	Table           string
	ID              string
	Name            string
	Department      string
	ExperienceYears string
	SupervisorID    string
	CreatedAt       string
	UpdatedAt       string
}

// CatalogCrew is the schema definition for catalog.crew
var CatalogCrew = CatalogCrewTable{
	Table:           "catalog.crew",
	ID:              "id",
	Name:            "name",
	Department:      "department",
	ExperienceYears: "experienceyears",
	SupervisorID:    "supervisorid",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

func (t CatalogCrewTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Department, t.ExperienceYears, t.SupervisorID,
		t.CreatedAt, t.UpdatedAt,
	}
}
