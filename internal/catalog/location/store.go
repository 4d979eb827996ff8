package location

import "context"

type Repository interface {
	ListLocations(context context.Context, f Filter, limit, offset int) ([]*Location, int, error)
	GetLocation(context context.Context, id int64) (*Location, error)
	GetLocationBySlug(context context.Context, slug string) (*Location, error)
	CreateLocation(context context.Context, l *Location) error
	UpdateLocation(context context.Context, l *Location) error
	DeleteLocation(context context.Context, id int64) error
}
