package schema

// ProductionShotAtTable represents the 'production.shotat' table
type ProductionShotAtTable struct {
	Table      string
	ID         string
	FilmID     string
	LocationID string
	StartDate  string
	EndDate    string
	TotalCost  string
	CreatedAt  string
}

// ProductionShotAt is the schema definition for production.shotat
var ProductionShotAt = ProductionShotAtTable{
	Table:      "production.shotat",
	ID:         "id",
	FilmID:     "filmid",
	LocationID: "locationid",
	StartDate:  "startdate",
	EndDate:    "enddate",
	TotalCost:  "totalcost",
	CreatedAt:  "createdat",
}

func (t ProductionShotAtTable) Columns() []string {
	return []string{t.ID, t.FilmID, t.LocationID, t.StartDate, t.EndDate, t.TotalCost, t.CreatedAt}
}
