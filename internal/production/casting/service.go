package casting

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

func (service *Service) ListRoles(context context.Context, filter Filter, limit, offset int) ([]*Role, int, error) {
	return service.repo.ListRoles(context, filter, limit, offset)
}

func (service *Service) GetRole(context context.Context, id int64) (*Role, error) {
	return service.repo.GetRole(context, id)
}

// AssignRole casts an actor in a film on behalf of changedBy.
func (service *Service) AssignRole(context context.Context, role *Role, changedBy string) error {
	if err := validateRole(role, true); err != nil {
		return err
	}

	if err := service.repo.AssignRole(context, role, changedBy); err != nil {
		return err
	}

	service.logger.Info("role_assigned",
		slog.Int64("role_id", role.ID),
		slog.Int64("actor_id", role.ActorID),
		slog.Int64("film_id", role.FilmID),
		slog.String("character", role.CharacterName),
		slog.String("changed_by", changedBy),
	)
	return nil
}

// UpdateRole rewrites a role's character, screen time, importance and salary.
func (service *Service) UpdateRole(context context.Context, id int64, role *Role, changedBy string) error {
	role.ID = id
	if err := validateRole(role, false); err != nil {
		return err
	}

	if err := service.repo.UpdateRole(context, role, changedBy); err != nil {
		return err
	}

	service.logger.Info("role_updated",
		slog.Int64("role_id", role.ID),
		slog.String("changed_by", changedBy),
	)
	return nil
}

// RemoveRole removes an actor from a film on behalf of changedBy.
func (service *Service) RemoveRole(context context.Context, id int64, changedBy string) error {
	if err := service.repo.RemoveRole(context, id, changedBy); err != nil {
		return err
	}

	service.logger.Warn("role_removed",
		slog.Int64("role_id", id),
		slog.String("changed_by", changedBy),
	)
	return nil
}

// validateRole applies the casting guards. The actor and film references
// are only checked on assignment; updates cannot move a role between films.
func validateRole(role *Role, checkRefs bool) error {
	validator := &validate.Validator{}

	if checkRefs {
		validator.Custom(FieldActorID, role.ActorID <= 0, "Must reference an existing actor")
		validator.Custom(FieldFilmID, role.FilmID <= 0, "Must reference an existing film")
	}

	validator.Required(FieldCharacterName, role.CharacterName).MaxLen(FieldCharacterName, role.CharacterName, 200)
	validator.Custom(FieldScreenTimeMinutes, role.ScreenTimeMinutes < 0, "Must be zero or greater")
	validator.Required(FieldImportance, role.Importance).OneOf(FieldImportance, role.Importance, ImportanceTiers...)
	validator.NonNegative(FieldSalary, role.Salary)

	return validator.Err()
}
