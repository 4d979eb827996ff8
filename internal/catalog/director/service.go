package director

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

func (service *Service) ListDirectors(context context.Context, filter Filter, limit, offset int) ([]*Director, int, error) {
	return service.repo.ListDirectors(context, filter, limit, offset)
}

func (service *Service) GetDirector(context context.Context, id int64) (*Director, error) {
	return service.repo.GetDirector(context, id)
}

func (service *Service) CreateDirector(context context.Context, director *Director) error {
	if err := validateDirector(director); err != nil {
		return err
	}

	if err := service.repo.CreateDirector(context, director); err != nil {
		return err
	}

	service.logger.Info("director_created",
		slog.Int64("director_id", director.ID),
		slog.String("name", director.Name),
	)
	return nil
}

func (service *Service) UpdateDirector(context context.Context, id int64, director *Director) error {
	director.ID = id
	if err := validateDirector(director); err != nil {
		return err
	}

	if err := service.repo.UpdateDirector(context, director); err != nil {
		return err
	}

	service.logger.Info("director_updated", slog.Int64("director_id", director.ID))
	return nil
}

func (service *Service) DeleteDirector(context context.Context, id int64) error {
	if err := service.repo.DeleteDirector(context, id); err != nil {
		return err
	}

	service.logger.Warn("director_deleted", slog.Int64("director_id", id))
	return nil
}

func validateDirector(director *Director) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, director.Name).MaxLen(FieldName, director.Name, 200)
	validator.MaxLen(FieldNationality, director.Nationality, 100)

	for _, specialization := range director.Specializations {
		validator.Required(FieldSpecializations, specialization).MaxLen(FieldSpecializations, specialization, 100)
	}
	for _, award := range director.Awards {
		validator.Required(FieldAwards, award.Name).MaxLen(FieldAwards, award.Name, 200)
		validator.Range(FieldAwards, award.YearWon, 1888, 2100)
	}

	return validator.Err()
}
