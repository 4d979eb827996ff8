package film

import "time"

// Film lifecycle statuses.
const (
	StatusPreProduction  = "PRE_PRODUCTION"
	StatusInProduction   = "IN_PRODUCTION"
	StatusPostProduction = "POST_PRODUCTION"
	StatusReleased       = "RELEASED"
	StatusArchived       = "ARCHIVED"
)

// Statuses lists every valid film lifecycle status.
var Statuses = []string{
	StatusPreProduction,
	StatusInProduction,
	StatusPostProduction,
	StatusReleased,
	StatusArchived,
}

// MinimumBudget is the smallest budget a film record may carry, in whole
// currency units. Enforced on both creation and update.
const MinimumBudget int64 = 100_000

// Film represents a single production in the catalog.
//
// Budget and BoxOfficeCollection are whole currency units (no fractional
// cents); all derived financial metrics operate on the same scale.
type Film struct {
	ID                  int64      `json:"id"`
	Title               string     `json:"title"`
	Slug                string     `json:"slug"`
	Genre               string     `json:"genre"`
	ReleaseDate         *time.Time `json:"release_date"`
	Budget              int64      `json:"budget"`
	BoxOfficeCollection int64      `json:"box_office_collection"`
	Status              string     `json:"status"`
	DirectorID          *int64     `json:"director_id"`
	StudioID            *int64     `json:"studio_id"`
	DistributorID       *int64     `json:"distributor_id"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// Filter holds the parameters for a paginated film search.
type Filter struct {
	Query  string // Case-insensitive match against title
	Genre  string
	Status string
}

// Global field names for validation
const (
	FieldTitle               = "title"
	FieldGenre               = "genre"
	FieldBudget              = "budget"
	FieldBoxOfficeCollection = "box_office_collection"
	FieldStatus              = "status"
)
