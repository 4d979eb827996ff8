package director

import "time"

// Director represents a film director in the catalog.
type Director struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	DateOfBirth     *time.Time `json:"date_of_birth"`
	Nationality     string     `json:"nationality"`
	Specializations []string   `json:"specializations"`
	Awards          []Award    `json:"awards"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Award is a single accolade attached to a director.
type Award struct {
	Name    string `json:"name"`
	YearWon int    `json:"year_won"`
}

// Filter holds the parameters for a paginated director search.
type Filter struct {
	Query          string // Case-insensitive match against name
	Specialization string
}

// Global field names for validation
const (
	FieldName            = "name"
	FieldNationality     = "nationality"
	FieldSpecializations = "specializations"
	FieldAwards          = "awards"
)
