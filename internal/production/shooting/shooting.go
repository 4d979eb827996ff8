// Package shooting manages location bookings for film shoots.
//
// The total cost of a booking is fixed at booking time from the
// location's daily rate, so later rate changes never rewrite the cost
// of past shoots.
package shooting

import "time"

// Window books a shooting location for a film over a date range.
//
// TotalCost = inclusive day count x the location's cost per day, both in
// whole currency units, computed when the window is booked.
type Window struct {
	ID         int64     `json:"id"`
	FilmID     int64     `json:"film_id"`
	LocationID int64     `json:"location_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	TotalCost  int64     `json:"total_cost"`
	CreatedAt  time.Time `json:"created_at"`
}

// Days returns the inclusive number of shooting days in the window.
func (w *Window) Days() int64 {
	return int64(w.EndDate.Sub(w.StartDate).Hours()/24) + 1
}

// Global field names for validation
const (
	FieldFilmID     = "film_id"
	FieldLocationID = "location_id"
	FieldStartDate  = "start_date"
	FieldEndDate    = "end_date"
)
