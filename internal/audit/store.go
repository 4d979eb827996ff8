package audit

import "context"

// Repository is the read-only query surface over the audit trail.
type Repository interface {
	ListRoleEntries(context context.Context, f Filter, limit, offset int) ([]*RoleEntry, int, error)
	ListEquipmentEntries(context context.Context, f Filter, limit, offset int) ([]*EquipmentEntry, int, error)
	ListFilmEntries(context context.Context, f Filter, limit, offset int) ([]*FilmEntry, int, error)
	ListUserActivity(context context.Context, username string, f Filter, limit, offset int) ([]*UserActivityEntry, int, error)
}
