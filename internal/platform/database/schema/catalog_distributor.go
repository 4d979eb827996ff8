package schema

// CatalogDistributorTable represents the 'catalog.distributor' table
type CatalogDistributorTable struct {
	Table     string
	ID        string
	Name      string
	Region    string
	CreatedAt string
	UpdatedAt string
}

// CatalogDistributor is the schema definition for catalog.distributor
var CatalogDistributor = CatalogDistributorTable{
	Table:     "catalog.distributor",
	ID:        "id",
	Name:      "name",
	Region:    "region",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t CatalogDistributorTable) Columns() []string {
	return []string{t.ID, t.Name, t.Region, t.CreatedAt, t.UpdatedAt}
}
