package schema

// CatalogActorTable represents the 'catalog.actor' table
type CatalogActorTable struct {
	Table       string
	ID          string
	Name        string
	DateOfBirth string
	Gender      string
	Nationality string
	CreatedAt   string
	UpdatedAt   string
}

// CatalogActor is the schema definition for catalog.actor
var CatalogActor = CatalogActorTable{
	Table:       "catalog.actor",
	ID:          "id",
	Name:        "name",
	DateOfBirth: "dateofbirth",
	Gender:      "gender",
	Nationality: "nationality",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t CatalogActorTable) Columns() []string {
	return []string{t.ID, t.Name, t.DateOfBirth, t.Gender, t.Nationality, t.CreatedAt, t.UpdatedAt}
}
