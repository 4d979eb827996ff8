package shooting

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

func (service *Service) ListWindows(context context.Context, filmID int64, limit, offset int) ([]*Window, int, error) {
	return service.repo.ListWindows(context, filmID, limit, offset)
}

func (service *Service) GetWindow(context context.Context, id int64) (*Window, error) {
	return service.repo.GetWindow(context, id)
}

// BookWindow books a shooting location for a film.
//
// The end date may not precede the start date, and the total cost is
// computed here as inclusive days x the location's daily rate.
func (service *Service) BookWindow(context context.Context, window *Window) error {
	validator := &validate.Validator{}
	validator.Custom(FieldFilmID, window.FilmID <= 0, "Must reference an existing film")
	validator.Custom(FieldLocationID, window.LocationID <= 0, "Must reference an existing location")
	validator.Custom(FieldStartDate, window.StartDate.IsZero(), "This field is required")
	validator.Custom(FieldEndDate, window.EndDate.IsZero(), "This field is required")
	if !window.StartDate.IsZero() && !window.EndDate.IsZero() {
		validator.DateNotBefore(FieldEndDate, window.EndDate, window.StartDate)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	rate, err := service.repo.GetLocationRate(context, window.LocationID)
	if err != nil {
		return err
	}
	window.TotalCost = window.Days() * rate

	if err := service.repo.CreateWindow(context, window); err != nil {
		return err
	}

	service.logger.Info("shooting_window_booked",
		slog.Int64("window_id", window.ID),
		slog.Int64("film_id", window.FilmID),
		slog.Int64("location_id", window.LocationID),
		slog.Int64("days", window.Days()),
		slog.Int64("total_cost", window.TotalCost),
	)
	return nil
}

func (service *Service) CancelWindow(context context.Context, id int64) error {
	if err := service.repo.DeleteWindow(context, id); err != nil {
		return err
	}

	service.logger.Warn("shooting_window_cancelled", slog.Int64("window_id", id))
	return nil
}
