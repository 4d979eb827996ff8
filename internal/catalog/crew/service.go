package crew

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

func (service *Service) ListMembers(context context.Context, filter Filter, limit, offset int) ([]*Member, int, error) {
	return service.repo.ListMembers(context, filter, limit, offset)
}

func (service *Service) GetMember(context context.Context, id int64) (*Member, error) {
	return service.repo.GetMember(context, id)
}

func (service *Service) CreateMember(context context.Context, member *Member) error {
	if err := validateMember(member); err != nil {
		return err
	}

	if err := service.repo.CreateMember(context, member); err != nil {
		return err
	}

	service.logger.Info("crew_member_created",
		slog.Int64("crew_id", member.ID),
		slog.String("name", member.Name),
		slog.String("department", member.Department),
	)
	return nil
}

func (service *Service) UpdateMember(context context.Context, id int64, member *Member) error {
	member.ID = id
	if err := validateMember(member); err != nil {
		return err
	}

	// A member cannot supervise themselves.
	if member.SupervisorID != nil && *member.SupervisorID == member.ID {
		validator := &validate.Validator{}
		validator.Custom(FieldSupervisorID, true, "A crew member cannot be their own supervisor")
		return validator.Err()
	}

	if err := service.repo.UpdateMember(context, member); err != nil {
		return err
	}

	service.logger.Info("crew_member_updated", slog.Int64("crew_id", member.ID))
	return nil
}

func (service *Service) DeleteMember(context context.Context, id int64) error {
	if err := service.repo.DeleteMember(context, id); err != nil {
		return err
	}

	service.logger.Warn("crew_member_deleted", slog.Int64("crew_id", id))
	return nil
}

func validateMember(member *Member) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, member.Name).MaxLen(FieldName, member.Name, 200)
	validator.Required(FieldDepartment, member.Department).MaxLen(FieldDepartment, member.Department, 100)
	validator.Custom(FieldExperienceYears, member.ExperienceYears < 0, "Must be zero or greater")

	return validator.Err()
}
