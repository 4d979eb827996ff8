package schema

// CatalogProducerTable represents the 'catalog.producer' table
type CatalogProducerTable struct {
	Table           string
	ID              string
	Name            string
	ProductionHouse string
	Contact         string
	CreatedAt       string
	UpdatedAt       string
}

// CatalogProducer is the schema definition for catalog.producer
var CatalogProducer = CatalogProducerTable{
	Table:           "catalog.producer",
	ID:              "id",
	Name:            "name",
	ProductionHouse: "productionhouse",
	Contact:         "contact",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

func (t CatalogProducerTable) Columns() []string {
	return []string{t.ID, t.Name, t.ProductionHouse, t.Contact, t.CreatedAt, t.UpdatedAt}
}
