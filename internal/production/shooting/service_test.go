package shooting_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danghoanh/cinevault/internal/platform/apperr"
	"github.com/danghoanh/cinevault/internal/production/shooting"
)

type fakeRepository struct {
	rate      int64
	rateCalls int
	created   *shooting.Window
}

func (f *fakeRepository) ListWindows(ctx context.Context, filmID int64, limit, offset int) ([]*shooting.Window, int, error) {
	return nil, 0, nil
}
func (f *fakeRepository) GetWindow(ctx context.Context, id int64) (*shooting.Window, error) {
	return nil, nil
}
func (f *fakeRepository) CreateWindow(ctx context.Context, w *shooting.Window) error {
	f.created = w
	return nil
}
func (f *fakeRepository) DeleteWindow(ctx context.Context, id int64) error { return nil }
func (f *fakeRepository) GetLocationRate(ctx context.Context, locationID int64) (int64, error) {
	f.rateCalls++
	return f.rate, nil
}

func newTestService(repo shooting.Repository) *shooting.Service {
	return shooting.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func date(day int) time.Time {
	return time.Date(2026, time.April, day, 0, 0, 0, 0, time.UTC)
}

/*
TestWindow_Days counts booking days inclusively.
*/
func TestWindow_Days(t *testing.T) {
	single := &shooting.Window{StartDate: date(5), EndDate: date(5)}
	assert.Equal(t, int64(1), single.Days())

	week := &shooting.Window{StartDate: date(1), EndDate: date(7)}
	assert.Equal(t, int64(7), week.Days())
}

/*
TestBookWindow_ComputesTotalCost derives the cost from the location's
daily rate, ignoring any caller-supplied figure.
*/
func TestBookWindow_ComputesTotalCost(t *testing.T) {
	repo := &fakeRepository{rate: 12_000}
	service := newTestService(repo)

	window := &shooting.Window{
		FilmID:     3,
		LocationID: 8,
		StartDate:  date(1),
		EndDate:    date(5),
		TotalCost:  1, // caller figure must be overwritten
	}

	require.NoError(t, service.BookWindow(context.Background(), window))
	assert.Equal(t, int64(5*12_000), window.TotalCost)
	require.NotNil(t, repo.created)
}

/*
TestBookWindow_Validation keeps invalid bookings away from the store.
*/
func TestBookWindow_Validation(t *testing.T) {
	tests := []struct {
		name   string
		window shooting.Window
	}{
		{"missing_film", shooting.Window{LocationID: 8, StartDate: date(1), EndDate: date(2)}},
		{"missing_location", shooting.Window{FilmID: 3, StartDate: date(1), EndDate: date(2)}},
		{"missing_dates", shooting.Window{FilmID: 3, LocationID: 8}},
		{"end_before_start", shooting.Window{FilmID: 3, LocationID: 8, StartDate: date(9), EndDate: date(2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{rate: 12_000}
			service := newTestService(repo)

			err := service.BookWindow(context.Background(), &tt.window)

			require.Error(t, err)
			assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"))
			assert.Zero(t, repo.rateCalls, "validation must run before the rate lookup")
			assert.Nil(t, repo.created)
		})
	}
}
