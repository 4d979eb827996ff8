package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/danghoanh/cinevault/internal/platform/dberr"
)

// Calculator computes derived figures on demand. All methods are pure
// reads; a missing entity yields zero figures rather than an error.
type Calculator struct {
	reader Reader
	now    func() time.Time
}

func NewCalculator(reader Reader) *Calculator {
	return &Calculator{
		reader: reader,
		now:    time.Now,
	}
}

// zeroOnMissing collapses a not-found error so absent records read as
// zero figures. Any other failure still surfaces.
func zeroOnMissing(err error) (bool, error) {
	if err == nil {
		return false, nil
	}
	if errors.Is(err, dberr.ErrNotFound) {
		return true, nil
	}
	return false, err
}

// Profit returns box-office collection minus budget. A film may well be
// in the red, so the result can be negative.
func (calculator *Calculator) Profit(context context.Context, filmID int64) (int64, error) {
	budget, boxOffice, err := calculator.reader.FilmFinance(context, filmID)
	if missing, err := zeroOnMissing(err); missing || err != nil {
		return 0, err
	}
	return boxOffice - budget, nil
}

// ROI returns the return on investment as a percentage of the budget.
// A zero budget yields a zero ROI rather than a division error.
func (calculator *Calculator) ROI(context context.Context, filmID int64) (float64, error) {
	budget, boxOffice, err := calculator.reader.FilmFinance(context, filmID)
	if missing, err := zeroOnMissing(err); missing || err != nil {
		return 0, err
	}
	return roi(budget, boxOffice), nil
}

// FilmFinancials returns the combined money figures for a film.
func (calculator *Calculator) FilmFinancials(context context.Context, filmID int64) (*FilmFinancials, error) {
	budget, boxOffice, err := calculator.reader.FilmFinance(context, filmID)
	if missing, err := zeroOnMissing(err); missing || err != nil {
		return &FilmFinancials{FilmID: filmID}, err
	}

	return &FilmFinancials{
		FilmID:              filmID,
		Budget:              budget,
		BoxOfficeCollection: boxOffice,
		Profit:              boxOffice - budget,
		ROI:                 roi(budget, boxOffice),
	}, nil
}

// ActorAge returns the actor's age in calendar years.
func (calculator *Calculator) ActorAge(context context.Context, actorID int64) (int64, error) {
	birth, err := calculator.reader.ActorBirthDate(context, actorID)
	if missing, err := zeroOnMissing(err); missing || err != nil {
		return 0, err
	}
	return int64(calculator.now().Year() - birth.DateOfBirth.Year()), nil
}

// DirectorFilmCount counts the films credited to a director.
func (calculator *Calculator) DirectorFilmCount(context context.Context, directorID int64) (int64, error) {
	count, err := calculator.reader.DirectorFilmCount(context, directorID)
	if missing, err := zeroOnMissing(err); missing || err != nil {
		return 0, err
	}
	return count, nil
}

// ProducerTotalInvestment sums a producer's investments across all films.
func (calculator *Calculator) ProducerTotalInvestment(context context.Context, producerID int64) (int64, error) {
	total, err := calculator.reader.ProducerInvestmentTotal(context, producerID)
	if missing, err := zeroOnMissing(err); missing || err != nil {
		return 0, err
	}
	return total, nil
}

// FilmCrewMinutes estimates the total crew working minutes on a film:
// the sum of every assignment's inclusive day count times the length of
// a shooting day.
func (calculator *Calculator) FilmCrewMinutes(context context.Context, filmID int64) (int64, error) {
	days, err := calculator.reader.FilmCrewDays(context, filmID)
	if missing, err := zeroOnMissing(err); missing || err != nil {
		return 0, err
	}
	return days * MinutesPerShootDay, nil
}

// SceneCount counts the scenes of a film.
func (calculator *Calculator) SceneCount(context context.Context, filmID int64) (int64, error) {
	count, err := calculator.reader.FilmSceneCount(context, filmID)
	if missing, err := zeroOnMissing(err); missing || err != nil {
		return 0, err
	}
	return count, nil
}

// AverageCastSalary returns the mean salary across the film's cast,
// truncated to whole currency units. An uncast film averages zero.
func (calculator *Calculator) AverageCastSalary(context context.Context, filmID int64) (int64, error) {
	stats, err := calculator.reader.FilmCastStats(context, filmID)
	if missing, err := zeroOnMissing(err); missing || err != nil {
		return 0, err
	}
	if stats.Count == 0 {
		return 0, nil
	}
	return stats.TotalSalary / stats.Count, nil
}

// ProductionSummary assembles the per-film production report.
func (calculator *Calculator) ProductionSummary(context context.Context, filmID int64) (*ProductionSummary, error) {
	counts, err := calculator.reader.FilmProductionCounts(context, filmID)
	if missing, err := zeroOnMissing(err); missing || err != nil {
		return &ProductionSummary{FilmID: filmID}, err
	}

	crewMinutes, err := calculator.FilmCrewMinutes(context, filmID)
	if err != nil {
		return nil, err
	}

	averageSalary, err := calculator.AverageCastSalary(context, filmID)
	if err != nil {
		return nil, err
	}

	return &ProductionSummary{
		FilmID:            filmID,
		CastCount:         counts.Cast,
		SceneCount:        counts.Scenes,
		CrewCount:         counts.Crew,
		LocationCount:     counts.Locations,
		CrewMinutes:       crewMinutes,
		AverageCastSalary: averageSalary,
	}, nil
}

// BoxOfficeReport lists per-film financial figures ordered by collection.
func (calculator *Calculator) BoxOfficeReport(context context.Context, genre string, limit, offset int) ([]*BoxOfficeEntry, int, error) {
	entries, total, err := calculator.reader.BoxOffice(context, genre, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	for _, entry := range entries {
		entry.Profit = entry.BoxOfficeCollection - entry.Budget
		entry.ROI = roi(entry.Budget, entry.BoxOfficeCollection)
	}

	return entries, total, nil
}

func roi(budget, boxOffice int64) float64 {
	if budget == 0 {
		return 0
	}
	return float64(boxOffice-budget) / float64(budget) * 100
}
