package film

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

func (service *Service) ListFilms(context context.Context, filter Filter, limit, offset int) ([]*Film, int, error) {
	return service.repo.ListFilms(context, filter, limit, offset)
}

func (service *Service) GetFilm(context context.Context, id int64) (*Film, error) {
	return service.repo.GetFilm(context, id)
}

func (service *Service) GetFilmBySlug(context context.Context, filmSlug string) (*Film, error) {
	return service.repo.GetFilmBySlug(context, filmSlug)
}

func (service *Service) CreateFilm(context context.Context, film *Film) error {
	if err := validateFilm(film); err != nil {
		return err
	}

	if film.Status == "" {
		film.Status = StatusPreProduction
	}
	film.Slug = slug.From(film.Title)

	if err := service.repo.CreateFilm(context, film); err != nil {
		return err
	}

	service.logger.Info("film_created",
		slog.Int64("film_id", film.ID),
		slog.String("title", film.Title),
		slog.Int64("budget", film.Budget),
	)
	return nil
}

func (service *Service) UpdateFilm(context context.Context, id int64, film *Film) error {
	film.ID = id
	if err := validateFilm(film); err != nil {
		return err
	}

	film.Slug = slug.From(film.Title)

	if err := service.repo.UpdateFilm(context, film); err != nil {
		return err
	}

	service.logger.Info("film_updated", slog.Int64("film_id", film.ID))
	return nil
}

// UpdateFilmStatus transitions a film between lifecycle statuses on behalf
// of changedBy, recording the transition in the audit trail.
func (service *Service) UpdateFilmStatus(context context.Context, id int64, newStatus, changedBy string) error {
	validator := &validate.Validator{}
	validator.Required(FieldStatus, newStatus).OneOf(FieldStatus, newStatus, Statuses...)
	if err := validator.Err(); err != nil {
		return err
	}

	oldStatus, err := service.repo.UpdateFilmStatus(context, id, newStatus, changedBy)
	if err != nil {
		return err
	}

	service.logger.Info("film_status_updated",
		slog.Int64("film_id", id),
		slog.String("old_status", oldStatus),
		slog.String("new_status", newStatus),
		slog.String("changed_by", changedBy),
	)
	return nil
}

func (service *Service) DeleteFilm(context context.Context, id int64) error {
	if err := service.repo.DeleteFilm(context, id); err != nil {
		return err
	}

	service.logger.Warn("film_deleted", slog.Int64("film_id", id))
	return nil
}

func (service *Service) ListScenes(context context.Context, filmID int64) ([]*Scene, error) {
	return service.repo.ListScenes(context, filmID)
}

func (service *Service) AddScene(context context.Context, scene *Scene) error {
	validator := &validate.Validator{}
	validator.Custom(FieldSceneNumber, scene.SceneNumber <= 0, "Must be a positive number")
	validator.MaxLen(FieldDescription, scene.Description, 2000)
	if scene.TimeOfDay != "" {
		validator.OneOf(FieldTimeOfDay, scene.TimeOfDay, TimeDay, TimeNight)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.AddScene(context, scene); err != nil {
		return err
	}

	service.logger.Info("scene_added",
		slog.Int64("film_id", scene.FilmID),
		slog.Int("scene_number", scene.SceneNumber),
	)
	return nil
}

func (service *Service) DeleteScene(context context.Context, filmID, sceneID int64) error {
	if err := service.repo.DeleteScene(context, filmID, sceneID); err != nil {
		return err
	}

	service.logger.Warn("scene_deleted",
		slog.Int64("film_id", filmID),
		slog.Int64("scene_id", sceneID),
	)
	return nil
}

func (service *Service) GetCertificate(context context.Context, filmID int64) (*Certificate, error) {
	return service.repo.GetCertificate(context, filmID)
}

// SetCertificate records or replaces the film's rating certificate.
func (service *Service) SetCertificate(context context.Context, certificate *Certificate) error {
	validator := &validate.Validator{}
	validator.Required(FieldRatingBoard, certificate.RatingBoard).MaxLen(FieldRatingBoard, certificate.RatingBoard, 100)
	validator.Required(FieldGrade, certificate.Grade).MaxLen(FieldGrade, certificate.Grade, 20)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.SetCertificate(context, certificate); err != nil {
		return err
	}

	service.logger.Info("certificate_set",
		slog.Int64("film_id", certificate.FilmID),
		slog.String("rating_board", certificate.RatingBoard),
		slog.String("grade", certificate.Grade),
	)
	return nil
}

// validateFilm applies the record guards shared by create and update.
func validateFilm(film *Film) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, film.Title).MaxLen(FieldTitle, film.Title, 300)
	validator.MaxLen(FieldGenre, film.Genre, 100)
	validator.MinAmount(FieldBudget, film.Budget, MinimumBudget)
	validator.NonNegative(FieldBoxOfficeCollection, film.BoxOfficeCollection)

	if film.Status != "" {
		validator.OneOf(FieldStatus, film.Status, Statuses...)
	}

	return validator.Err()
}
