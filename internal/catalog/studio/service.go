package studio

import (
	"context"
	"log/slog"

	"github.com/danghoanh/cinevault/internal/platform/validate"
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

func (service *Service) ListStudios(context context.Context, filter Filter, limit, offset int) ([]*Studio, int, error) {
	return service.repo.ListStudios(context, filter, limit, offset)
}

func (service *Service) GetStudio(context context.Context, id int64) (*Studio, error) {
	return service.repo.GetStudio(context, id)
}

func (service *Service) CreateStudio(context context.Context, studio *Studio) error {
	if err := validateStudio(studio); err != nil {
		return err
	}

	if err := service.repo.CreateStudio(context, studio); err != nil {
		return err
	}

	service.logger.Info("studio_created",
		slog.Int64("studio_id", studio.ID),
		slog.String("name", studio.Name),
	)
	return nil
}

func (service *Service) UpdateStudio(context context.Context, id int64, studio *Studio) error {
	studio.ID = id
	if err := validateStudio(studio); err != nil {
		return err
	}

	if err := service.repo.UpdateStudio(context, studio); err != nil {
		return err
	}

	service.logger.Info("studio_updated", slog.Int64("studio_id", studio.ID))
	return nil
}

func (service *Service) DeleteStudio(context context.Context, id int64) error {
	if err := service.repo.DeleteStudio(context, id); err != nil {
		return err
	}

	service.logger.Warn("studio_deleted", slog.Int64("studio_id", id))
	return nil
}

func validateStudio(studio *Studio) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, studio.Name).MaxLen(FieldName, studio.Name, 200)
	validator.MaxLen(FieldAddress, studio.Address, 500)

	if studio.FoundedYear != 0 {
		validator.Range(FieldFoundedYear, studio.FoundedYear, 1888, 2100)
	}

	return validator.Err()
}
