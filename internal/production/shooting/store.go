package shooting

import "context"

type Repository interface {
	ListWindows(context context.Context, filmID int64, limit, offset int) ([]*Window, int, error)
	GetWindow(context context.Context, id int64) (*Window, error)
	CreateWindow(context context.Context, w *Window) error
	DeleteWindow(context context.Context, id int64) error

	// GetLocationRate resolves the location's current cost per day.
	GetLocationRate(context context.Context, locationID int64) (int64, error)
}
