package location

import (
	"context"
	"log/slog"

	"github.com/danghoanh/cinevault/internal/platform/validate"
	"github.com/danghoanh/cinevault/pkg/slug"
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

func (service *Service) ListLocations(context context.Context, filter Filter, limit, offset int) ([]*Location, int, error) {
	return service.repo.ListLocations(context, filter, limit, offset)
}

func (service *Service) GetLocation(context context.Context, id int64) (*Location, error) {
	return service.repo.GetLocation(context, id)
}

func (service *Service) GetLocationBySlug(context context.Context, locationSlug string) (*Location, error) {
	return service.repo.GetLocationBySlug(context, locationSlug)
}

func (service *Service) CreateLocation(context context.Context, location *Location) error {
	if err := validateLocation(location); err != nil {
		return err
	}

	location.Slug = slug.From(location.Name)

	if err := service.repo.CreateLocation(context, location); err != nil {
		return err
	}

	service.logger.Info("location_created",
		slog.Int64("location_id", location.ID),
		slog.String("name", location.Name),
		slog.Int64("cost_per_day", location.CostPerDay),
	)
	return nil
}

func (service *Service) UpdateLocation(context context.Context, id int64, location *Location) error {
	location.ID = id
	if err := validateLocation(location); err != nil {
		return err
	}

	location.Slug = slug.From(location.Name)

	if err := service.repo.UpdateLocation(context, location); err != nil {
		return err
	}

	service.logger.Info("location_updated", slog.Int64("location_id", location.ID))
	return nil
}

func (service *Service) DeleteLocation(context context.Context, id int64) error {
	if err := service.repo.DeleteLocation(context, id); err != nil {
		return err
	}

	service.logger.Warn("location_deleted", slog.Int64("location_id", id))
	return nil
}

func validateLocation(location *Location) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, location.Name).MaxLen(FieldName, location.Name, 200)
	validator.MaxLen(FieldAddress, location.Address, 500)
	validator.MaxLen(FieldCity, location.City, 100)
	validator.MaxLen(FieldCountry, location.Country, 100)
	validator.NonNegative(FieldCostPerDay, location.CostPerDay)

	return validator.Err()
}
