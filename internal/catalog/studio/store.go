package studio

import "context"

type Repository interface {
	ListStudios(context context.Context, f Filter, limit, offset int) ([]*Studio, int, error)
	GetStudio(context context.Context, id int64) (*Studio, error)
	CreateStudio(context context.Context, s *Studio) error
	UpdateStudio(context context.Context, s *Studio) error
	DeleteStudio(context context.Context, id int64) error
}
