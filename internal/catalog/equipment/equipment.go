package equipment

import "time"

// Equipment availability statuses.
const (
	StatusAvailable   = "AVAILABLE"
	StatusInUse       = "IN_USE"
	StatusMaintenance = "MAINTENANCE"
	StatusRetired     = "RETIRED"
)

// AvailabilityStatuses lists every valid equipment availability status.
var AvailabilityStatuses = []string{
	StatusAvailable,
	StatusInUse,
	StatusMaintenance,
	StatusRetired,
}

// Equipment represents a rentable piece of production gear.
//
// RentalCost is per day, in whole currency units.
type Equipment struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	RentalCost   int64     `json:"rental_cost"`
	Availability string    `json:"availability"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Filter holds the parameters for a paginated equipment search.
type Filter struct {
	Query        string // Case-insensitive match against name
	Type         string
	Availability string
}

// Global field names for validation
const (
	FieldName         = "name"
	FieldType         = "type"
	FieldRentalCost   = "rental_cost"
	FieldAvailability = "availability"
)
