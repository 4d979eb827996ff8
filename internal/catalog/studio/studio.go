package studio

import "time"

// Studio represents a production studio that owns or backs films.
type Studio struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	FoundedYear int       `json:"founded_year"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Filter holds the parameters for a paginated studio search.
type Filter struct {
	Query string // Case-insensitive match against name
}

// Global field names for validation
const (
	FieldName        = "name"
	FieldAddress     = "address"
	FieldFoundedYear = "founded_year"
)
