package casting

import "context"

type Repository interface {
	ListRoles(context context.Context, f Filter, limit, offset int) ([]*Role, int, error)
	GetRole(context context.Context, id int64) (*Role, error)

	// AssignRole inserts the role and its INSERT audit entry atomically.
	AssignRole(context context.Context, r *Role, changedBy string) error

	// UpdateRole rewrites the mutable role fields and appends an UPDATE
	// audit entry atomically.
	UpdateRole(context context.Context, r *Role, changedBy string) error

	// RemoveRole deletes the role and its DELETE audit entry atomically.
	RemoveRole(context context.Context, id int64, changedBy string) error
}
