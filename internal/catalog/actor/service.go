package actor

import (
	"context"
	"log/slog"
	"time"

	"github.com/danghoanh/cinevault/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (service *Service) ListActors(context context.Context, filter Filter, limit, offset int) ([]*Actor, int, error) {
	return service.repo.ListActors(context, filter, limit, offset)
}

func (service *Service) GetActor(context context.Context, id int64) (*Actor, error) {
	return service.repo.GetActor(context, id)
}

func (service *Service) CreateActor(context context.Context, actor *Actor) error {
	if err := service.validateActor(actor); err != nil {
		return err
	}

	if err := service.repo.CreateActor(context, actor); err != nil {
		return err
	}

	service.logger.Info("actor_created",
		slog.Int64("actor_id", actor.ID),
		slog.String("name", actor.Name),
	)
	return nil
}

func (service *Service) UpdateActor(context context.Context, id int64, actor *Actor) error {
	actor.ID = id
	if err := service.validateActor(actor); err != nil {
		return err
	}

	if err := service.repo.UpdateActor(context, actor); err != nil {
		return err
	}

	service.logger.Info("actor_updated", slog.Int64("actor_id", actor.ID))
	return nil
}

func (service *Service) DeleteActor(context context.Context, id int64) error {
	if err := service.repo.DeleteActor(context, id); err != nil {
		return err
	}

	service.logger.Warn("actor_deleted", slog.Int64("actor_id", id))
	return nil
}

func (service *Service) validateActor(actor *Actor) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, actor.Name).MaxLen(FieldName, actor.Name, 200)
	validator.MaxLen(FieldGender, actor.Gender, 50)
	validator.MaxLen(FieldNationality, actor.Nationality, 100)

	for _, language := range actor.Languages {
		validator.Required(FieldLanguages, language).MaxLen(FieldLanguages, language, 50)
	}

	if actor.DateOfBirth.IsZero() {
		validator.Custom(FieldDateOfBirth, true, "This field is required")
	} else {
		validator.Custom(FieldDateOfBirth, actor.Age(service.now()) < MinimumAge,
			"Actor must be at least 18 years old")
	}

	return validator.Err()
}
