package producer

import "time"

// Producer represents a film producer or production-house principal.
type Producer struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	ProductionHouse string    `json:"production_house"`
	Contact         string    `json:"contact"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Investment links a producer to a film they financed, with the amount
// committed in whole currency units.
type Investment struct {
	ID         int64     `json:"id"`
	ProducerID int64     `json:"producer_id"`
	FilmID     int64     `json:"film_id"`
	Amount     int64     `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

// Filter holds the parameters for a paginated producer search.
type Filter struct {
	Query string // Case-insensitive match against name and production house
}

// Global field names for validation
const (
	FieldName            = "name"
	FieldProductionHouse = "production_house"
	FieldContact         = "contact"
	FieldFilmID          = "film_id"
	FieldAmount          = "amount"
)
