package schema

// CatalogEquipmentTable represents the 'catalog.equipment' table
type CatalogEquipmentTable struct {
	Table        string
	ID           string
	Name         string
	Type         string
	RentalCost   string
	Availability string
	CreatedAt    string
	UpdatedAt    string
}

// CatalogEquipment is the schema definition for catalog.equipment
var CatalogEquipment = CatalogEquipmentTable{
	Table:        "catalog.equipment",
	ID:           "id",
	Name:         "name",
	Type:         "type",
	RentalCost:   "rentalcost",
	Availability: "availability",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

func (t CatalogEquipmentTable) Columns() []string {
	return []string{t.ID, t.Name, t.Type, t.RentalCost, t.Availability, t.CreatedAt, t.UpdatedAt}
}
