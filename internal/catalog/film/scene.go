package film

import "time"

// Scene represents a single scripted scene belonging to a film.
type Scene struct {
	ID          int64     `json:"id"`
	FilmID      int64     `json:"film_id"`
	LocationID  *int64    `json:"location_id"`
	SceneNumber int       `json:"scene_number"`
	Description string    `json:"description"`
	TimeOfDay   string    `json:"time_of_day"`
	Interior    bool      `json:"interior"`
	CreatedAt   time.Time `json:"created_at"`
}

// Scene field names for validation
const (
	FieldSceneNumber = "scene_number"
	FieldDescription = "description"
	FieldTimeOfDay   = "time_of_day"
)

// Scene time-of-day values.
const (
	TimeDay   = "DAY"
	TimeNight = "NIGHT"
)
