package distributor

import "time"

// Distributor represents a company that distributes released films.
type Distributor struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Region    string    `json:"region"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Deal links a distributor to a film they carry, with the distribution
// fee in whole currency units and the territory the deal covers. A
// distributor holds at most one deal per film.
type Deal struct {
	ID            int64     `json:"id"`
	DistributorID int64     `json:"distributor_id"`
	FilmID        int64     `json:"film_id"`
	Fee           int64     `json:"fee"`
	Territory     string    `json:"territory"`
	CreatedAt     time.Time `json:"created_at"`
}

// Filter holds the parameters for a paginated distributor search.
type Filter struct {
	Query  string // Case-insensitive match against name
	Region string
}

// Global field names for validation
const (
	FieldName      = "name"
	FieldRegion    = "region"
	FieldFilmID    = "film_id"
	FieldFee       = "fee"
	FieldTerritory = "territory"
)
