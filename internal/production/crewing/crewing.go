// Package crewing manages crew assignments to films and the allocation
// of equipment to those crews.
package crewing

import "time"

// Assignment places a crew member on a film for a working window.
//
// Department is copied from the crew member's record at assignment time,
// so later department transfers don't rewrite production history.
type Assignment struct {
	ID         int64     `json:"id"`
	CrewID     int64     `json:"crew_id"`
	FilmID     int64     `json:"film_id"`
	Department string    `json:"department"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	CreatedAt  time.Time `json:"created_at"`
}

// Days returns the inclusive number of working days in the assignment window.
func (a *Assignment) Days() int64 {
	return int64(a.EndDate.Sub(a.StartDate).Hours()/24) + 1
}

// Allocation hands a piece of equipment to a crew member on a film,
// with an efficiency rating observed during use.
type Allocation struct {
	ID               int64     `json:"id"`
	EquipmentID      int64     `json:"equipment_id"`
	FilmID           int64     `json:"film_id"`
	CrewID           int64     `json:"crew_id"`
	EfficiencyRating int       `json:"efficiency_rating"`
	CreatedAt        time.Time `json:"created_at"`
}

// Efficiency rating bounds.
const (
	MinEfficiencyRating = 1
	MaxEfficiencyRating = 10
)

// Global field names for validation
const (
	FieldCrewID           = "crew_id"
	FieldFilmID           = "film_id"
	FieldEquipmentID      = "equipment_id"
	FieldStartDate        = "start_date"
	FieldEndDate          = "end_date"
	FieldEfficiencyRating = "efficiency_rating"
)
