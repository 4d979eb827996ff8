package location

import "time"

// Location represents a shooting location and its daily rental rate.
//
// CostPerDay is in whole currency units; it feeds directly into the
// shooting-window total cost calculation.
type Location struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	Country    string    `json:"country"`
	CostPerDay int64     `json:"cost_per_day"`
	Available  bool      `json:"available"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Filter holds the parameters for a paginated location search.
type Filter struct {
	Query   string // Case-insensitive match against name and city
	Country string
}

// Global field names for validation
const (
	FieldName       = "name"
	FieldAddress    = "address"
	FieldCity       = "city"
	FieldCountry    = "country"
	FieldCostPerDay = "cost_per_day"
)
