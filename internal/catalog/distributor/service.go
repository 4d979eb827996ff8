package distributor

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

func (service *Service) ListDistributors(context context.Context, filter Filter, limit, offset int) ([]*Distributor, int, error) {
	return service.repo.ListDistributors(context, filter, limit, offset)
}

func (service *Service) GetDistributor(context context.Context, id int64) (*Distributor, error) {
	return service.repo.GetDistributor(context, id)
}

func (service *Service) CreateDistributor(context context.Context, distributor *Distributor) error {
	if err := validateDistributor(distributor); err != nil {
		return err
	}

	if err := service.repo.CreateDistributor(context, distributor); err != nil {
		return err
	}

	service.logger.Info("distributor_created",
		slog.Int64("distributor_id", distributor.ID),
		slog.String("name", distributor.Name),
	)
	return nil
}

func (service *Service) UpdateDistributor(context context.Context, id int64, distributor *Distributor) error {
	distributor.ID = id
	if err := validateDistributor(distributor); err != nil {
		return err
	}

	if err := service.repo.UpdateDistributor(context, distributor); err != nil {
		return err
	}

	service.logger.Info("distributor_updated", slog.Int64("distributor_id", distributor.ID))
	return nil
}

func (service *Service) DeleteDistributor(context context.Context, id int64) error {
	if err := service.repo.DeleteDistributor(context, id); err != nil {
		return err
	}

	service.logger.Warn("distributor_deleted", slog.Int64("distributor_id", id))
	return nil
}

func (service *Service) ListDeals(context context.Context, distributorID int64) ([]*Deal, error) {
	return service.repo.ListDeals(context, distributorID)
}

func (service *Service) AddDeal(context context.Context, deal *Deal) error {
	validator := &validate.Validator{}
	validator.Custom(FieldFilmID, deal.FilmID <= 0, "Must reference an existing film")
	validator.MinAmount(FieldFee, deal.Fee, 1)
	validator.Required(FieldTerritory, deal.Territory).MaxLen(FieldTerritory, deal.Territory, 100)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.AddDeal(context, deal); err != nil {
		return err
	}

	service.logger.Info("distribution_deal_added",
		slog.Int64("distributor_id", deal.DistributorID),
		slog.Int64("film_id", deal.FilmID),
		slog.Int64("fee", deal.Fee),
		slog.String("territory", deal.Territory),
	)
	return nil
}

func validateDistributor(distributor *Distributor) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, distributor.Name).MaxLen(FieldName, distributor.Name, 200)
	validator.MaxLen(FieldRegion, distributor.Region, 100)

	return validator.Err()
}
