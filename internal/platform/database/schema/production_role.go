package schema

// ProductionRoleTable represents the 'production.role' table
type ProductionRoleTable struct {
	Table             string
	ID                string
	ActorID           string
	FilmID            string
	CharacterName     string
	ScreenTimeMinutes string
	Importance        string
	Salary            string
	CreatedAt         string
	UpdatedAt         string
}

// ProductionRole is the schema definition for production.role
var ProductionRole = ProductionRoleTable{
	Table:             "production.role",
	ID:                "id",
	ActorID:           "actorid",
	FilmID:            "filmid",
	CharacterName:     "charactername",
	ScreenTimeMinutes: "screentimeminutes",
	Importance:        "importance",
	Salary:            "salary",
	CreatedAt:         "createdat",
	UpdatedAt:         "updatedat",
}

func (t ProductionRoleTable) Columns() []string {
	return []string{
		t.ID, t.ActorID, t.FilmID, t.CharacterName, t.ScreenTimeMinutes,
		t.Importance, t.Salary, t.CreatedAt, t.UpdatedAt,
	}
}
