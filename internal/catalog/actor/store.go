package actor

import "context"

type Repository interface {
	ListActors(context context.Context, f Filter, limit, offset int) ([]*Actor, int, error)
	GetActor(context context.Context, id int64) (*Actor, error)
	CreateActor(context context.Context, a *Actor) error
	UpdateActor(context context.Context, a *Actor) error
	DeleteActor(context context.Context, id int64) error
}
