// Package metrics derives financial and production figures from the
// current catalog state.
//
// # Architecture
//
// [Calculator] is a read-only facade over a [Reader]. It holds no state,
// performs no writes, and every figure it produces falls back to zero
// when the underlying record is missing. A missing film is not an error
// to a report; it is a film with no numbers.
package metrics

import "time"

// MinutesPerShootDay is the assumed length of one crew shooting day.
const MinutesPerShootDay int64 = 480

// FilmFinancials aggregates the money figures for a single film.
type FilmFinancials struct {
	FilmID              int64   `json:"film_id"`
	Budget              int64   `json:"budget"`
	BoxOfficeCollection int64   `json:"box_office_collection"`
	Profit              int64   `json:"profit"`
	ROI                 float64 `json:"roi"`
}

// ProductionSummary counts the moving parts attached to a single film.
type ProductionSummary struct {
	FilmID            int64 `json:"film_id"`
	CastCount         int64 `json:"cast_count"`
	SceneCount        int64 `json:"scene_count"`
	CrewCount         int64 `json:"crew_count"`
	LocationCount     int64 `json:"location_count"`
	CrewMinutes       int64 `json:"crew_minutes"`
	AverageCastSalary int64 `json:"average_cast_salary"`
}

// BoxOfficeEntry is one row of the box-office report.
type BoxOfficeEntry struct {
	FilmID              int64   `json:"film_id"`
	Title               string  `json:"title"`
	Genre               string  `json:"genre"`
	Budget              int64   `json:"budget"`
	BoxOfficeCollection int64   `json:"box_office_collection"`
	Profit              int64   `json:"profit"`
	ROI                 float64 `json:"roi"`
}

// CastStats carries the raw casting aggregates for a film.
type CastStats struct {
	Count       int64
	TotalSalary int64
}

// ProductionCounts carries the raw per-film relationship counts.
type ProductionCounts struct {
	Cast      int64
	Scenes    int64
	Crew      int64
	Locations int64
}

// ActorBirth carries an actor's date of birth for age derivation.
type ActorBirth struct {
	DateOfBirth time.Time
}
