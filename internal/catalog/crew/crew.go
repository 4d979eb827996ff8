package crew

import "time"

// Member represents a crew member available for production assignments.
//
// SupervisorID is a self-reference into the same table; it is nil for
// department heads.
type Member struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Department      string    `json:"department"`
	ExperienceYears int       `json:"experience_years"`
	SupervisorID    *int64    `json:"supervisor_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Filter holds the parameters for a paginated crew search.
type Filter struct {
	Query      string // Case-insensitive match against name
	Department string
}

// Global field names for validation
const (
	FieldName            = "name"
	FieldDepartment      = "department"
	FieldExperienceYears = "experience_years"
	FieldSupervisorID    = "supervisor_id"
)
