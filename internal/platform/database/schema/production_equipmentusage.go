package schema

// ProductionEquipmentUsageTable represents the 'production.equipmentusage' table
type ProductionEquipmentUsageTable struct {
	Table            string
	ID               string
	EquipmentID      string
	FilmID           string
	CrewID           string
	EfficiencyRating string
	CreatedAt        string
}

// ProductionEquipmentUsage is the schema definition for production.equipmentusage
var ProductionEquipmentUsage = ProductionEquipmentUsageTable{
	Table:            "production.equipmentusage",
	ID:               "id",
	EquipmentID:      "equipmentid",
	FilmID:           "filmid",
	CrewID:           "crewid",
	EfficiencyRating: "efficiencyrating",
	CreatedAt:        "createdat",
}

func (t ProductionEquipmentUsageTable) Columns() []string {
	return []string{t.ID, t.EquipmentID, t.FilmID, t.CrewID, t.EfficiencyRating, t.CreatedAt}
}
