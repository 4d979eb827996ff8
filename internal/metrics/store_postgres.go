package metrics

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danghoanh/cinevault/internal/platform/database/schema"
	"github.com/danghoanh/cinevault/internal/platform/dberr"
)

type PostgresReader struct {
	db *pgxpool.Pool
}

func NewPostgresReader(db *pgxpool.Pool) *PostgresReader {
	return &PostgresReader{db: db}
}

func (reader *PostgresReader) FilmFinance(context context.Context, filmID int64) (int64, int64, error) {
	t := schema.CatalogFilm
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		t.Budget, t.BoxOfficeCollection, t.Table, t.ID,
	)

	var budget, boxOffice int64
	err := reader.db.QueryRow(context, query, filmID).Scan(&budget, &boxOffice)

	return budget, boxOffice, dberr.Wrap(err, "film_finance")
}

func (reader *PostgresReader) ActorBirthDate(context context.Context, actorID int64) (ActorBirth, error) {
	t := schema.CatalogActor
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, t.DateOfBirth, t.Table, t.ID)

	var birth ActorBirth
	err := reader.db.QueryRow(context, query, actorID).Scan(&birth.DateOfBirth)

	return birth, dberr.Wrap(err, "actor_birth_date")
}

func (reader *PostgresReader) DirectorFilmCount(context context.Context, directorID int64) (int64, error) {
	t := schema.CatalogFilm
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, t.Table, t.DirectorID)

	var total int64
	err := reader.db.QueryRow(context, query, directorID).Scan(&total)

	return total, dberr.Wrap(err, "director_film_count")
}

func (reader *PostgresReader) ProducerInvestmentTotal(context context.Context, producerID int64) (int64, error) {
	t := schema.ProductionProducedBy
	query := fmt.Sprintf(`SELECT COALESCE(SUM(%s), 0) FROM %s WHERE %s = $1`,
		t.InvestmentAmount, t.Table, t.ProducerID,
	)

	var total int64
	err := reader.db.QueryRow(context, query, producerID).Scan(&total)

	return total, dberr.Wrap(err, "producer_investment_total")
}

func (reader *PostgresReader) FilmCrewDays(context context.Context, filmID int64) (int64, error) {
	t := schema.ProductionWorksOn

	// Inclusive day count: both the start and end day are shoot days.
	query := fmt.Sprintf(`
		SELECT COALESCE(SUM(%s::date - %s::date + 1), 0)
		FROM %s
		WHERE %s = $1
	`,
		t.EndDate, t.StartDate,
		t.Table,
		t.FilmID,
	)

	var days int64
	err := reader.db.QueryRow(context, query, filmID).Scan(&days)

	return days, dberr.Wrap(err, "film_crew_days")
}

func (reader *PostgresReader) FilmSceneCount(context context.Context, filmID int64) (int64, error) {
	t := schema.CatalogScene
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, t.Table, t.FilmID)

	var total int64
	err := reader.db.QueryRow(context, query, filmID).Scan(&total)

	return total, dberr.Wrap(err, "film_scene_count")
}

func (reader *PostgresReader) FilmCastStats(context context.Context, filmID int64) (CastStats, error) {
	t := schema.ProductionRole
	query := fmt.Sprintf(`SELECT count(*), COALESCE(SUM(%s), 0) FROM %s WHERE %s = $1`,
		t.Salary, t.Table, t.FilmID,
	)

	var stats CastStats
	err := reader.db.QueryRow(context, query, filmID).Scan(&stats.Count, &stats.TotalSalary)

	return stats, dberr.Wrap(err, "film_cast_stats")
}

func (reader *PostgresReader) FilmProductionCounts(context context.Context, filmID int64) (ProductionCounts, error) {
	role := schema.ProductionRole
	scene := schema.CatalogScene
	workson := schema.ProductionWorksOn
	shotat := schema.ProductionShotAt

	query := fmt.Sprintf(`
		SELECT
			(SELECT count(*) FROM %s WHERE %s = $1),
			(SELECT count(*) FROM %s WHERE %s = $1),
			(SELECT count(DISTINCT %s) FROM %s WHERE %s = $1),
			(SELECT count(DISTINCT %s) FROM %s WHERE %s = $1)
	`,
		role.Table, role.FilmID,
		scene.Table, scene.FilmID,
		workson.CrewID, workson.Table, workson.FilmID,
		shotat.LocationID, shotat.Table, shotat.FilmID,
	)

	var counts ProductionCounts
	err := reader.db.QueryRow(context, query, filmID).Scan(
		&counts.Cast, &counts.Scenes, &counts.Crew, &counts.Locations,
	)

	return counts, dberr.Wrap(err, "film_production_counts")
}

func (reader *PostgresReader) BoxOffice(context context.Context, genre string, limit, offset int) ([]*BoxOfficeEntry, int, error) {
	t := schema.CatalogFilm

	clause := " WHERE 1=1"
	args := []any{}

	if genre != "" {
		args = append(args, genre)
		clause += " AND " + t.Genre + " = $" + strconv.Itoa(len(args))
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table) + clause

	var total int
	if err := reader.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_box_office")
	}

	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s`,
		t.ID, t.Title, t.Genre, t.Budget, t.BoxOfficeCollection, t.Table,
	) + clause + fmt.Sprintf(" ORDER BY %s DESC LIMIT $%d OFFSET $%d",
		t.BoxOfficeCollection, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := reader.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_box_office")
	}
	defer rows.Close()

	var entries []*BoxOfficeEntry
	for rows.Next() {
		e := &BoxOfficeEntry{}
		if err := rows.Scan(&e.FilmID, &e.Title, &e.Genre, &e.Budget, &e.BoxOfficeCollection); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_box_office")
		}
		entries = append(entries, e)
	}

	return entries, total, nil
}
