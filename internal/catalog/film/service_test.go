package film_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danghoanh/cinevault/internal/catalog/film"
	"github.com/danghoanh/cinevault/internal/platform/apperr"
)

// fakeRepository records calls without touching a database.
type fakeRepository struct {
	created      *film.Film
	updated      *film.Film
	certificate  *film.Certificate
	statusCalls  int
	statusID     int64
	statusNew    string
	statusCaller string
}

func (f *fakeRepository) ListFilms(ctx context.Context, filter film.Filter, limit, offset int) ([]*film.Film, int, error) {
	return nil, 0, nil
}
func (f *fakeRepository) GetFilm(ctx context.Context, id int64) (*film.Film, error) { return nil, nil }
func (f *fakeRepository) GetFilmBySlug(ctx context.Context, slug string) (*film.Film, error) {
	return nil, nil
}
func (f *fakeRepository) CreateFilm(ctx context.Context, m *film.Film) error {
	f.created = m
	return nil
}
func (f *fakeRepository) UpdateFilm(ctx context.Context, m *film.Film) error {
	f.updated = m
	return nil
}
func (f *fakeRepository) DeleteFilm(ctx context.Context, id int64) error { return nil }
func (f *fakeRepository) UpdateFilmStatus(ctx context.Context, id int64, newStatus, changedBy string) (string, error) {
	f.statusCalls++
	f.statusID = id
	f.statusNew = newStatus
	f.statusCaller = changedBy
	return film.StatusPreProduction, nil
}
func (f *fakeRepository) ListScenes(ctx context.Context, filmID int64) ([]*film.Scene, error) {
	return nil, nil
}
func (f *fakeRepository) AddScene(ctx context.Context, s *film.Scene) error { return nil }
func (f *fakeRepository) DeleteScene(ctx context.Context, filmID, sceneID int64) error {
	return nil
}
func (f *fakeRepository) GetCertificate(ctx context.Context, filmID int64) (*film.Certificate, error) {
	return nil, nil
}
func (f *fakeRepository) SetCertificate(ctx context.Context, c *film.Certificate) error {
	f.certificate = c
	return nil
}

func newTestService(repo film.Repository) *film.Service {
	return film.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestCreateFilm_BudgetGuard refuses any film below the minimum budget.
*/
func TestCreateFilm_BudgetGuard(t *testing.T) {
	tests := []struct {
		name    string
		budget  int64
		wantErr bool
	}{
		{"above_minimum", 5_000_000, false},
		{"exactly_minimum", film.MinimumBudget, false},
		{"one_below", film.MinimumBudget - 1, true},
		{"zero", 0, true},
		{"negative", -500, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			service := newTestService(repo)

			err := service.CreateFilm(context.Background(), &film.Film{
				Title:  "Test Production",
				Budget: tt.budget,
			})

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"))
				assert.Nil(t, repo.created, "a rejected film must never reach the store")
			} else {
				require.NoError(t, err)
				require.NotNil(t, repo.created)
			}
		})
	}
}

/*
TestCreateFilm_Defaults checks the status default and slug derivation.
*/
func TestCreateFilm_Defaults(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	input := &film.Film{Title: "The Last Monsoon", Budget: 2_000_000}
	require.NoError(t, service.CreateFilm(context.Background(), input))

	assert.Equal(t, film.StatusPreProduction, input.Status)
	assert.Equal(t, "the-last-monsoon", input.Slug)
}

/*
TestCreateFilm_InvalidStatus rejects statuses outside the lifecycle enum.
*/
func TestCreateFilm_InvalidStatus(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	err := service.CreateFilm(context.Background(), &film.Film{
		Title:  "Test Production",
		Budget: 2_000_000,
		Status: "CANCELLED",
	})

	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"))
}

/*
TestUpdateFilmStatus_Validation checks that invalid transitions never reach the store.
*/
func TestUpdateFilmStatus_Validation(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		wantErr bool
	}{
		{"valid_transition", film.StatusInProduction, false},
		{"released", film.StatusReleased, false},
		{"unknown_status", "ON_HOLD", true},
		{"empty_status", "", true},
		{"lowercase", "released", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			service := newTestService(repo)

			err := service.UpdateFilmStatus(context.Background(), 42, tt.status, "producer.linh")

			if tt.wantErr {
				require.Error(t, err)
				assert.Zero(t, repo.statusCalls, "a rejected transition must leave no trace")
			} else {
				require.NoError(t, err)
				assert.Equal(t, 1, repo.statusCalls)
				assert.Equal(t, int64(42), repo.statusID)
				assert.Equal(t, tt.status, repo.statusNew)
				assert.Equal(t, "producer.linh", repo.statusCaller)
			}
		})
	}
}

/*
TestUpdateFilm_RederivesSlug checks the slug follows a title change.
*/
func TestUpdateFilm_RederivesSlug(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	input := &film.Film{Title: "Renamed Production", Budget: 1_000_000}
	require.NoError(t, service.UpdateFilm(context.Background(), 7, input))

	require.NotNil(t, repo.updated)
	assert.Equal(t, int64(7), repo.updated.ID)
	assert.Equal(t, "renamed-production", repo.updated.Slug)
}

/*
TestSetCertificate_Validation requires both the board and the grade.
*/
func TestSetCertificate_Validation(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	err := service.SetCertificate(context.Background(), &film.Certificate{FilmID: 1})
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"))
	assert.Nil(t, repo.certificate)

	err = service.SetCertificate(context.Background(), &film.Certificate{
		FilmID:      1,
		RatingBoard: "CBFC",
		Grade:       "U/A",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.certificate)
}

/*
TestAddScene_Validation checks the scene guards.
*/
func TestAddScene_Validation(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	err := service.AddScene(context.Background(), &film.Scene{
		FilmID:      1,
		SceneNumber: 0,
		TimeOfDay:   "DUSK",
	})

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 2) // scene number and time of day
}
