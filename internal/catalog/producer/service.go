package producer

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

func (service *Service) ListProducers(context context.Context, filter Filter, limit, offset int) ([]*Producer, int, error) {
	return service.repo.ListProducers(context, filter, limit, offset)
}

func (service *Service) GetProducer(context context.Context, id int64) (*Producer, error) {
	return service.repo.GetProducer(context, id)
}

func (service *Service) CreateProducer(context context.Context, producer *Producer) error {
	if err := validateProducer(producer); err != nil {
		return err
	}

	if err := service.repo.CreateProducer(context, producer); err != nil {
		return err
	}

	service.logger.Info("producer_created",
		slog.Int64("producer_id", producer.ID),
		slog.String("name", producer.Name),
	)
	return nil
}

func (service *Service) UpdateProducer(context context.Context, id int64, producer *Producer) error {
	producer.ID = id
	if err := validateProducer(producer); err != nil {
		return err
	}

	if err := service.repo.UpdateProducer(context, producer); err != nil {
		return err
	}

	service.logger.Info("producer_updated", slog.Int64("producer_id", producer.ID))
	return nil
}

func (service *Service) DeleteProducer(context context.Context, id int64) error {
	if err := service.repo.DeleteProducer(context, id); err != nil {
		return err
	}

	service.logger.Warn("producer_deleted", slog.Int64("producer_id", id))
	return nil
}

func (service *Service) ListInvestments(context context.Context, producerID int64) ([]*Investment, error) {
	return service.repo.ListInvestments(context, producerID)
}

func (service *Service) AddInvestment(context context.Context, investment *Investment) error {
	validator := &validate.Validator{}
	validator.Custom(FieldFilmID, investment.FilmID <= 0, "Must reference an existing film")
	validator.MinAmount(FieldAmount, investment.Amount, 1)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.AddInvestment(context, investment); err != nil {
		return err
	}

	service.logger.Info("investment_added",
		slog.Int64("producer_id", investment.ProducerID),
		slog.Int64("film_id", investment.FilmID),
		slog.Int64("amount", investment.Amount),
	)
	return nil
}

func validateProducer(producer *Producer) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, producer.Name).MaxLen(FieldName, producer.Name, 200)
	validator.MaxLen(FieldProductionHouse, producer.ProductionHouse, 200)
	validator.MaxLen(FieldContact, producer.Contact, 200)

	return validator.Err()
}
