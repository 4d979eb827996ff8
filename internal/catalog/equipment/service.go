package equipment

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

func (service *Service) ListEquipment(context context.Context, filter Filter, limit, offset int) ([]*Equipment, int, error) {
	return service.repo.ListEquipment(context, filter, limit, offset)
}

func (service *Service) GetEquipment(context context.Context, id int64) (*Equipment, error) {
	return service.repo.GetEquipment(context, id)
}

func (service *Service) CreateEquipment(context context.Context, equipment *Equipment) error {
	if err := validateEquipment(equipment); err != nil {
		return err
	}

	if equipment.Availability == "" {
		equipment.Availability = StatusAvailable
	}

	if err := service.repo.CreateEquipment(context, equipment); err != nil {
		return err
	}

	service.logger.Info("equipment_created",
		slog.Int64("equipment_id", equipment.ID),
		slog.String("name", equipment.Name),
	)
	return nil
}

func (service *Service) UpdateEquipment(context context.Context, id int64, equipment *Equipment) error {
	equipment.ID = id
	if err := validateEquipment(equipment); err != nil {
		return err
	}

	if err := service.repo.UpdateEquipment(context, equipment); err != nil {
		return err
	}

	service.logger.Info("equipment_updated", slog.Int64("equipment_id", equipment.ID))
	return nil
}

// UpdateAvailability transitions a piece of equipment between availability
// statuses on behalf of changedBy, recording the transition in the audit trail.
func (service *Service) UpdateAvailability(context context.Context, id int64, newStatus, changedBy string) error {
	validator := &validate.Validator{}
	validator.Required(FieldAvailability, newStatus).OneOf(FieldAvailability, newStatus, AvailabilityStatuses...)
	if err := validator.Err(); err != nil {
		return err
	}

	oldStatus, err := service.repo.UpdateAvailability(context, id, newStatus, changedBy)
	if err != nil {
		return err
	}

	service.logger.Info("equipment_availability_updated",
		slog.Int64("equipment_id", id),
		slog.String("old_status", oldStatus),
		slog.String("new_status", newStatus),
		slog.String("changed_by", changedBy),
	)
	return nil
}

func (service *Service) DeleteEquipment(context context.Context, id int64) error {
	if err := service.repo.DeleteEquipment(context, id); err != nil {
		return err
	}

	service.logger.Warn("equipment_deleted", slog.Int64("equipment_id", id))
	return nil
}

func validateEquipment(equipment *Equipment) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, equipment.Name).MaxLen(FieldName, equipment.Name, 200)
	validator.MaxLen(FieldType, equipment.Type, 100)
	validator.NonNegative(FieldRentalCost, equipment.RentalCost)

	if equipment.Availability != "" {
		validator.OneOf(FieldAvailability, equipment.Availability, AvailabilityStatuses...)
	}

	return validator.Err()
}
