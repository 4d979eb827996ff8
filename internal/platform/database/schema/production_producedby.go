package schema

// ProductionProducedByTable represents the 'production.producedby' table
type ProductionProducedByTable struct {
	Table            string
	ID               string
	ProducerID       string
	FilmID           string
	InvestmentAmount string
	CreatedAt        string
}

// ProductionProducedBy is the schema definition for production.producedby
var ProductionProducedBy = ProductionProducedByTable{
	Table:            "production.producedby",
	ID:               "id",
	ProducerID:       "producerid",
	FilmID:           "filmid",
	InvestmentAmount: "investmentamount",
	CreatedAt:        "createdat",
}

func (t ProductionProducedByTable) Columns() []string {
	return []string{t.ID, t.ProducerID, t.FilmID, t.InvestmentAmount, t.CreatedAt}
}
