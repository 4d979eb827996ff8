package actor

import "time"

// MinimumAge is the youngest an actor may be when entered into the
// catalog. Enforced against the date of birth on creation and update.
const MinimumAge = 18

// Actor represents a performer in the catalog.
type Actor struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `json:"gender"`
	Nationality string    `json:"nationality"`
	Languages   []string  `json:"languages"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Age returns the actor's age in whole years as of the reference time.
func (a *Actor) Age(now time.Time) int {
	years := now.Year() - a.DateOfBirth.Year()
	anniversary := a.DateOfBirth.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}

// Filter holds the parameters for a paginated actor search.
type Filter struct {
	Query       string // Case-insensitive match against name
	Nationality string
}

// Global field names for validation
const (
	FieldName        = "name"
	FieldDateOfBirth = "date_of_birth"
	FieldGender      = "gender"
	FieldNationality = "nationality"
	FieldLanguages   = "languages"
)
