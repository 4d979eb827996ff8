// Package casting manages the assignment of actors to film roles.
//
// Every assignment and removal is a governed change: the role row and its
// audit entry are written in the same transaction, so the casting trail
// always pairs an INSERT entry with the role's creation and a DELETE entry
// with its removal.
package casting

import "time"

// Role importance tiers.
const (
	ImportanceLead       = "LEAD"
	ImportanceSupporting = "SUPPORTING"
	ImportanceCameo      = "CAMEO"
)

// ImportanceTiers lists every valid role importance tier.
var ImportanceTiers = []string{
	ImportanceLead,
	ImportanceSupporting,
	ImportanceCameo,
}

// Role represents one actor playing one character in one film.
//
// Salary is in whole currency units. The triple (actor, film, character)
// is unique: the same actor cannot be cast twice as the same character.
type Role struct {
	ID                int64     `json:"id"`
	ActorID           int64     `json:"actor_id"`
	FilmID            int64     `json:"film_id"`
	CharacterName     string    `json:"character_name"`
	ScreenTimeMinutes int       `json:"screen_time_minutes"`
	Importance        string    `json:"importance"`
	Salary            int64     `json:"salary"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Filter holds the parameters for a paginated role search.
type Filter struct {
	FilmID     int64 // 0 = all films
	ActorID    int64 // 0 = all actors
	Importance string
}

// Global field names for validation
const (
	FieldActorID           = "actor_id"
	FieldFilmID            = "film_id"
	FieldCharacterName     = "character_name"
	FieldScreenTimeMinutes = "screen_time_minutes"
	FieldImportance        = "importance"
	FieldSalary            = "salary"
)
