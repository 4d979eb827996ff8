package metrics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danghoanh/cinevault/internal/metrics"
	"github.com/danghoanh/cinevault/internal/platform/dberr"
)

var errDatabaseDown = errors.New("connection refused")

// fakeReader serves canned figures. Setting missing makes every lookup
// report an absent record; setting failing makes every lookup fail.
type fakeReader struct {
	missing bool
	failing bool

	budget    int64
	boxOffice int64
	birth     time.Time
	filmCount int64
	invested  int64
	crewDays  int64
	scenes    int64
	cast      metrics.CastStats
	counts    metrics.ProductionCounts
	entries   []*metrics.BoxOfficeEntry
}

func (f *fakeReader) err() error {
	if f.missing {
		return dberr.ErrNotFound
	}
	if f.failing {
		return errDatabaseDown
	}
	return nil
}

func (f *fakeReader) FilmFinance(ctx context.Context, filmID int64) (int64, int64, error) {
	return f.budget, f.boxOffice, f.err()
}
func (f *fakeReader) ActorBirthDate(ctx context.Context, actorID int64) (metrics.ActorBirth, error) {
	return metrics.ActorBirth{DateOfBirth: f.birth}, f.err()
}
func (f *fakeReader) DirectorFilmCount(ctx context.Context, directorID int64) (int64, error) {
	return f.filmCount, f.err()
}
func (f *fakeReader) ProducerInvestmentTotal(ctx context.Context, producerID int64) (int64, error) {
	return f.invested, f.err()
}
func (f *fakeReader) FilmCrewDays(ctx context.Context, filmID int64) (int64, error) {
	return f.crewDays, f.err()
}
func (f *fakeReader) FilmSceneCount(ctx context.Context, filmID int64) (int64, error) {
	return f.scenes, f.err()
}
func (f *fakeReader) FilmCastStats(ctx context.Context, filmID int64) (metrics.CastStats, error) {
	return f.cast, f.err()
}
func (f *fakeReader) FilmProductionCounts(ctx context.Context, filmID int64) (metrics.ProductionCounts, error) {
	return f.counts, f.err()
}
func (f *fakeReader) BoxOffice(ctx context.Context, genre string, limit, offset int) ([]*metrics.BoxOfficeEntry, int, error) {
	return f.entries, len(f.entries), f.err()
}

/*
TestProfit allows a film to run at a loss.
*/
func TestProfit(t *testing.T) {
	calculator := metrics.NewCalculator(&fakeReader{budget: 2_000_000, boxOffice: 1_200_000})

	profit, err := calculator.Profit(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(-800_000), profit)
}

/*
TestROI covers the percentage math and the zero-budget guard.
*/
func TestROI(t *testing.T) {
	tests := []struct {
		name      string
		budget    int64
		boxOffice int64
		want      float64
	}{
		{"doubled_money", 1_000_000, 2_000_000, 100},
		{"half_lost", 1_000_000, 500_000, -50},
		{"zero_budget", 0, 3_000_000, 0},
		{"break_even", 1_000_000, 1_000_000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calculator := metrics.NewCalculator(&fakeReader{budget: tt.budget, boxOffice: tt.boxOffice})

			got, err := calculator.ROI(context.Background(), 1)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

/*
TestMissingEntitiesReadAsZero collapses absent records into zero figures.
*/
func TestMissingEntitiesReadAsZero(t *testing.T) {
	calculator := metrics.NewCalculator(&fakeReader{missing: true})
	ctx := context.Background()

	profit, err := calculator.Profit(ctx, 404)
	require.NoError(t, err)
	assert.Zero(t, profit)

	age, err := calculator.ActorAge(ctx, 404)
	require.NoError(t, err)
	assert.Zero(t, age)

	invested, err := calculator.ProducerTotalInvestment(ctx, 404)
	require.NoError(t, err)
	assert.Zero(t, invested)

	financials, err := calculator.FilmFinancials(ctx, 404)
	require.NoError(t, err)
	assert.Equal(t, int64(404), financials.FilmID)
	assert.Zero(t, financials.Budget)

	summary, err := calculator.ProductionSummary(ctx, 404)
	require.NoError(t, err)
	assert.Zero(t, summary.CastCount)
}

/*
TestInfrastructureErrorsSurface keeps real failures from masquerading as zeros.
*/
func TestInfrastructureErrorsSurface(t *testing.T) {
	calculator := metrics.NewCalculator(&fakeReader{failing: true})

	_, err := calculator.Profit(context.Background(), 1)
	require.ErrorIs(t, err, errDatabaseDown)

	_, err = calculator.FilmCrewMinutes(context.Background(), 1)
	require.ErrorIs(t, err, errDatabaseDown)
}

/*
TestActorAge uses plain calendar-year subtraction.
*/
func TestActorAge(t *testing.T) {
	birth := time.Date(time.Now().Year()-30, time.December, 31, 0, 0, 0, 0, time.UTC)
	calculator := metrics.NewCalculator(&fakeReader{birth: birth})

	age, err := calculator.ActorAge(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(30), age)
}

/*
TestFilmCrewMinutes multiplies assignment days by the shooting-day length.
*/
func TestFilmCrewMinutes(t *testing.T) {
	calculator := metrics.NewCalculator(&fakeReader{crewDays: 12})

	minutes, err := calculator.FilmCrewMinutes(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(12*metrics.MinutesPerShootDay), minutes)
}

/*
TestAverageCastSalary truncates to whole units and handles an uncast film.
*/
func TestAverageCastSalary(t *testing.T) {
	tests := []struct {
		name  string
		stats metrics.CastStats
		want  int64
	}{
		{"even_split", metrics.CastStats{Count: 4, TotalSalary: 2_000_000}, 500_000},
		{"truncated", metrics.CastStats{Count: 3, TotalSalary: 1_000_000}, 333_333},
		{"uncast_film", metrics.CastStats{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calculator := metrics.NewCalculator(&fakeReader{cast: tt.stats})

			got, err := calculator.AverageCastSalary(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestProductionSummary assembles counts, minutes and average salary.
*/
func TestProductionSummary(t *testing.T) {
	calculator := metrics.NewCalculator(&fakeReader{
		counts:   metrics.ProductionCounts{Cast: 8, Scenes: 40, Crew: 25, Locations: 3},
		crewDays: 10,
		cast:     metrics.CastStats{Count: 8, TotalSalary: 4_000_000},
	})

	summary, err := calculator.ProductionSummary(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(8), summary.CastCount)
	assert.Equal(t, int64(40), summary.SceneCount)
	assert.Equal(t, int64(25), summary.CrewCount)
	assert.Equal(t, int64(3), summary.LocationCount)
	assert.Equal(t, int64(10*metrics.MinutesPerShootDay), summary.CrewMinutes)
	assert.Equal(t, int64(500_000), summary.AverageCastSalary)
}

/*
TestBoxOfficeReport fills profit and ROI on every entry.
*/
func TestBoxOfficeReport(t *testing.T) {
	calculator := metrics.NewCalculator(&fakeReader{
		entries: []*metrics.BoxOfficeEntry{
			{FilmID: 1, Title: "Hit", Budget: 1_000_000, BoxOfficeCollection: 4_000_000},
			{FilmID: 2, Title: "Flop", Budget: 2_000_000, BoxOfficeCollection: 500_000},
		},
	})

	entries, total, err := calculator.BoxOfficeReport(context.Background(), "", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	assert.Equal(t, int64(3_000_000), entries[0].Profit)
	assert.InDelta(t, 300.0, entries[0].ROI, 0.0001)
	assert.Equal(t, int64(-1_500_000), entries[1].Profit)
	assert.InDelta(t, -75.0, entries[1].ROI, 0.0001)
}
