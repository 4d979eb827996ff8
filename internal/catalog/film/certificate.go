package film

import "time"

// Certificate records the rating a board issued for a film. A film holds
// at most one certificate; setting it again replaces the grade.
type Certificate struct {
	ID          int64     `json:"id"`
	FilmID      int64     `json:"film_id"`
	RatingBoard string    `json:"rating_board"`
	Grade       string    `json:"grade"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Certificate field names for validation
const (
	FieldRatingBoard = "rating_board"
	FieldGrade       = "grade"
)
