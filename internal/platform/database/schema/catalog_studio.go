package schema

// CatalogStudioTable represents the 'catalog.studio' table
type CatalogStudioTable struct {
	Table       string
	ID          string
	Name        string
	Address     string
	FoundedYear string
	CreatedAt   string
	UpdatedAt   string
}

// CatalogStudio is the schema definition for catalog.studio
var CatalogStudio = CatalogStudioTable{
	Table:       "catalog.studio",
	ID:          "id",
	Name:        "name",
	Address:     "address",
	FoundedYear: "foundedyear",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t CatalogStudioTable) Columns() []string {
	return []string{t.ID, t.Name, t.Address, t.FoundedYear, t.CreatedAt, t.UpdatedAt}
}
