package metrics

import "context"

// Reader is the aggregate-query surface the calculator runs on.
//
// Implementations return [dberr.ErrNotFound] when the referenced entity
// does not exist; the calculator translates that into zero figures.
type Reader interface {
	// FilmFinance returns the budget and box-office collection of a film.
	FilmFinance(context context.Context, filmID int64) (budget, boxOffice int64, err error)

	// ActorBirthDate returns the actor's date of birth.
	ActorBirthDate(context context.Context, actorID int64) (ActorBirth, error)

	// DirectorFilmCount counts films credited to the director.
	DirectorFilmCount(context context.Context, directorID int64) (int64, error)

	// ProducerInvestmentTotal sums the producer's investments across all films.
	ProducerInvestmentTotal(context context.Context, producerID int64) (int64, error)

	// FilmCrewDays sums the inclusive day counts of the film's crew assignments.
	FilmCrewDays(context context.Context, filmID int64) (int64, error)

	// FilmSceneCount counts the film's scenes.
	FilmSceneCount(context context.Context, filmID int64) (int64, error)

	// FilmCastStats returns the film's casting count and total salary.
	FilmCastStats(context context.Context, filmID int64) (CastStats, error)

	// FilmProductionCounts returns the film's cast, scene, crew, and location counts.
	FilmProductionCounts(context context.Context, filmID int64) (ProductionCounts, error)

	// BoxOffice lists the financial columns of every film, optionally
	// restricted to a genre, ordered by collection descending.
	BoxOffice(context context.Context, genre string, limit, offset int) ([]*BoxOfficeEntry, int, error)
}
