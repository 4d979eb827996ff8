package schema

// CatalogShootingLocationTable represents the 'catalog.shootinglocation' table
type CatalogShootingLocationTable struct {
	Table      string
	ID         string
	Name       string
	Slug       string
	Address    string
	City       string
	Country    string
	CostPerDay string
	Available  string
	CreatedAt  string
	UpdatedAt  string
}

// CatalogShootingLocation is the schema definition for catalog.shootinglocation
var CatalogShootingLocation = CatalogShootingLocationTable{
	Table:      "catalog.shootinglocation",
	ID:         "id",
	Name:       "name",
	Slug:       "slug",
	Address:    "address",
	City:       "city",
	Country:    "country",
	CostPerDay: "costperday",
	Available:  "available",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}

func (t CatalogShootingLocationTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Slug, t.Address, t.City, t.Country,
		t.CostPerDay, t.Available, t.CreatedAt, t.UpdatedAt,
	}
}
