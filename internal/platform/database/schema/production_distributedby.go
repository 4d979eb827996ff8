package schema

// ProductionDistributedByTable represents the 'production.distributedby' table
type ProductionDistributedByTable struct {
	Table         string
	ID            string
	DistributorID string
	FilmID        string
	Fee           string
	Territory     string
	CreatedAt     string
}

// ProductionDistributedBy is the schema definition for production.distributedby
var ProductionDistributedBy = ProductionDistributedByTable{
	Table:         "production.distributedby",
	ID:            "id",
	DistributorID: "distributorid",
	FilmID:        "filmid",
	Fee:           "fee",
	Territory:     "territory",
	CreatedAt:     "createdat",
}

func (t ProductionDistributedByTable) Columns() []string {
	return []string{t.ID, t.DistributorID, t.FilmID, t.Fee, t.Territory, t.CreatedAt}
}
