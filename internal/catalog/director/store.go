package director

import "context"

type Repository interface {
	ListDirectors(context context.Context, f Filter, limit, offset int) ([]*Director, int, error)
	GetDirector(context context.Context, id int64) (*Director, error)
	CreateDirector(context context.Context, d *Director) error
	UpdateDirector(context context.Context, d *Director) error
	DeleteDirector(context context.Context, id int64) error
}
