package shooting

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danghoanh/cinevault/internal/platform/database/schema"
	"github.com/danghoanh/cinevault/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListWindows(context context.Context, filmID int64, limit, offset int) ([]*Window, int, error) {
	t := schema.ProductionShotAt

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, t.Table, t.FilmID)

	var total int
	if err := repository.db.QueryRow(context, countQuery, filmID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_shooting_windows")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
		LIMIT $2 OFFSET $3
	`,
		t.ID, t.FilmID, t.LocationID, t.StartDate, t.EndDate, t.TotalCost, t.CreatedAt,
		t.Table, t.FilmID, t.StartDate,
	)

	rows, err := repository.db.Query(context, query, filmID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_shooting_windows")
	}
	defer rows.Close()

	var windows []*Window
	for rows.Next() {
		w := &Window{}
		if err := rows.Scan(&w.ID, &w.FilmID, &w.LocationID, &w.StartDate, &w.EndDate, &w.TotalCost, &w.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_shooting_window")
		}
		windows = append(windows, w)
	}

	return windows, total, nil
}

func (repository *PostgresRepository) GetWindow(context context.Context, id int64) (*Window, error) {
	t := schema.ProductionShotAt
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		t.ID, t.FilmID, t.LocationID, t.StartDate, t.EndDate, t.TotalCost, t.CreatedAt,
		t.Table, t.ID,
	)

	w := &Window{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&w.ID, &w.FilmID, &w.LocationID, &w.StartDate, &w.EndDate, &w.TotalCost, &w.CreatedAt,
	)

	return w, dberr.Wrap(err, "get_shooting_window")
}

func (repository *PostgresRepository) CreateWindow(context context.Context, w *Window) error {
	t := schema.ProductionShotAt
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING %s, %s
	`,
		t.Table, t.FilmID, t.LocationID, t.StartDate, t.EndDate, t.TotalCost, t.CreatedAt,
		t.ID, t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		w.FilmID, w.LocationID, w.StartDate, w.EndDate, w.TotalCost,
	).Scan(&w.ID, &w.CreatedAt)

	return dberr.WrapConflict(err, "create_shooting_window", "The film already has a booking at this location for that window")
}

func (repository *PostgresRepository) DeleteWindow(context context.Context, id int64) error {
	t := schema.ProductionShotAt
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_shooting_window")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) GetLocationRate(context context.Context, locationID int64) (int64, error) {
	t := schema.CatalogShootingLocation
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, t.CostPerDay, t.Table, t.ID)

	var rate int64
	err := repository.db.QueryRow(context, query, locationID).Scan(&rate)

	return rate, dberr.Wrap(err, "get_location_rate")
}
