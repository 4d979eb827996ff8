package schema

// ProductionWorksOnTable represents the 'production.workson' table
type ProductionWorksOnTable struct {
	Table      string
	ID         string
	CrewID     string
	FilmID     string
	Department string
	StartDate  string
	EndDate    string
	CreatedAt  string
}

// ProductionWorksOn is the schema definition for production.workson
var ProductionWorksOn = ProductionWorksOnTable{
	Table:      "production.workson",
	ID:         "id",
	CrewID:     "crewid",
	FilmID:     "filmid",
	Department: "department",
	StartDate:  "startdate",
	EndDate:    "enddate",
	CreatedAt:  "createdat",
}

func (t ProductionWorksOnTable) Columns() []string {
	return []string{t.ID, t.CrewID, t.FilmID, t.Department, t.StartDate, t.EndDate, t.CreatedAt}
}
