package audit

import (
	"context"
	"log/slog"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListRoleEntries(context context.Context, filter Filter, limit, offset int) ([]*RoleEntry, int, error) {
	return service.repo.ListRoleEntries(context, filter, limit, offset)
}

func (service *Service) ListEquipmentEntries(context context.Context, filter Filter, limit, offset int) ([]*EquipmentEntry, int, error) {
	return service.repo.ListEquipmentEntries(context, filter, limit, offset)
}

func (service *Service) ListFilmEntries(context context.Context, filter Filter, limit, offset int) ([]*FilmEntry, int, error) {
	return service.repo.ListFilmEntries(context, filter, limit, offset)
}

func (service *Service) ListUserActivity(context context.Context, username string, filter Filter, limit, offset int) ([]*UserActivityEntry, int, error) {
	return service.repo.ListUserActivity(context, username, filter, limit, offset)
}
