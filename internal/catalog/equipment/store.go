package equipment

import "context"

type Repository interface {
	ListEquipment(context context.Context, f Filter, limit, offset int) ([]*Equipment, int, error)
	GetEquipment(context context.Context, id int64) (*Equipment, error)
	CreateEquipment(context context.Context, e *Equipment) error
	UpdateEquipment(context context.Context, e *Equipment) error
	DeleteEquipment(context context.Context, id int64) error

	// UpdateAvailability transitions the availability status and writes the
	// equipment audit entry in the same transaction. Returns the old status.
	UpdateAvailability(context context.Context, id int64, newStatus, changedBy string) (string, error)
}
