package crewing

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

func (service *Service) ListAssignments(context context.Context, filmID int64, limit, offset int) ([]*Assignment, int, error) {
	return service.repo.ListAssignments(context, filmID, limit, offset)
}

// AssignCrew places a crew member on a film for a working window.
//
// The department is resolved from the crew record, not taken from the
// caller; assignments always reflect the member's department at the time
// they were placed.
func (service *Service) AssignCrew(context context.Context, assignment *Assignment) error {
	validator := &validate.Validator{}
	validator.Custom(FieldCrewID, assignment.CrewID <= 0, "Must reference an existing crew member")
	validator.Custom(FieldFilmID, assignment.FilmID <= 0, "Must reference an existing film")
	validator.Custom(FieldStartDate, assignment.StartDate.IsZero(), "This field is required")
	validator.Custom(FieldEndDate, assignment.EndDate.IsZero(), "This field is required")
	if !assignment.StartDate.IsZero() && !assignment.EndDate.IsZero() {
		validator.DateNotBefore(FieldEndDate, assignment.EndDate, assignment.StartDate)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	department, err := service.repo.GetCrewDepartment(context, assignment.CrewID)
	if err != nil {
		return err
	}
	assignment.Department = department

	if err := service.repo.CreateAssignment(context, assignment); err != nil {
		return err
	}

	service.logger.Info("crew_assigned",
		slog.Int64("assignment_id", assignment.ID),
		slog.Int64("crew_id", assignment.CrewID),
		slog.Int64("film_id", assignment.FilmID),
		slog.String("department", assignment.Department),
		slog.Int64("days", assignment.Days()),
	)
	return nil
}

func (service *Service) RemoveAssignment(context context.Context, id int64) error {
	if err := service.repo.DeleteAssignment(context, id); err != nil {
		return err
	}

	service.logger.Warn("crew_assignment_removed", slog.Int64("assignment_id", id))
	return nil
}

func (service *Service) ListAllocations(context context.Context, filmID int64, limit, offset int) ([]*Allocation, int, error) {
	return service.repo.ListAllocations(context, filmID, limit, offset)
}

// AllocateEquipment hands equipment to a crew member on a film.
func (service *Service) AllocateEquipment(context context.Context, allocation *Allocation) error {
	validator := &validate.Validator{}
	validator.Custom(FieldEquipmentID, allocation.EquipmentID <= 0, "Must reference an existing equipment item")
	validator.Custom(FieldFilmID, allocation.FilmID <= 0, "Must reference an existing film")
	validator.Custom(FieldCrewID, allocation.CrewID <= 0, "Must reference an existing crew member")
	validator.Range(FieldEfficiencyRating, allocation.EfficiencyRating, MinEfficiencyRating, MaxEfficiencyRating)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateAllocation(context, allocation); err != nil {
		return err
	}

	service.logger.Info("equipment_allocated",
		slog.Int64("allocation_id", allocation.ID),
		slog.Int64("equipment_id", allocation.EquipmentID),
		slog.Int64("film_id", allocation.FilmID),
		slog.Int64("crew_id", allocation.CrewID),
	)
	return nil
}

func (service *Service) RemoveAllocation(context context.Context, id int64) error {
	if err := service.repo.DeleteAllocation(context, id); err != nil {
		return err
	}

	service.logger.Warn("equipment_allocation_removed", slog.Int64("allocation_id", id))
	return nil
}
