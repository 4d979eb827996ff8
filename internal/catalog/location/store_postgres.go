package location

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
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

func locationColumns() string {
	t := schema.CatalogShootingLocation
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Name, t.Slug, t.Address, t.City, t.Country,
		t.CostPerDay, t.Available, t.CreatedAt, t.UpdatedAt,
	)
}

func scanLocation(row pgx.Row) (*Location, error) {
	l := &Location{}
	err := row.Scan(
		&l.ID, &l.Name, &l.Slug, &l.Address, &l.City, &l.Country,
		&l.CostPerDay, &l.Available, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (repository *PostgresRepository) ListLocations(context context.Context, f Filter, limit, offset int) ([]*Location, int, error) {
	t := schema.CatalogShootingLocation

	clause := " WHERE 1=1"
	args := []any{}

	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		n := strconv.Itoa(len(args))
		clause += " AND (" + t.Name + " ILIKE $" + n + " OR " + t.City + " ILIKE $" + n + ")"
	}
	if f.Country != "" {
		args = append(args, f.Country)
		clause += " AND " + t.Country + " = $" + strconv.Itoa(len(args))
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table) + clause

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_locations")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s`, locationColumns(), t.Table) + clause +
		fmt.Sprintf(" ORDER BY %s ASC LIMIT $%d OFFSET $%d", t.Name, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_locations")
	}
	defer rows.Close()

	var locations []*Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_location")
		}
		locations = append(locations, l)
	}

	return locations, total, nil
}

func (repository *PostgresRepository) GetLocation(context context.Context, id int64) (*Location, error) {
	t := schema.CatalogShootingLocation
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, locationColumns(), t.Table, t.ID)

	l, err := scanLocation(repository.db.QueryRow(context, query, id))
	return l, dberr.Wrap(err, "get_location")
}

func (repository *PostgresRepository) GetLocationBySlug(context context.Context, slug string) (*Location, error) {
	t := schema.CatalogShootingLocation
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, locationColumns(), t.Table, t.Slug)

	l, err := scanLocation(repository.db.QueryRow(context, query, slug))
	return l, dberr.Wrap(err, "get_location_by_slug")
}

func (repository *PostgresRepository) CreateLocation(context context.Context, l *Location) error {
	t := schema.CatalogShootingLocation
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		t.Table, t.Name, t.Slug, t.Address, t.City, t.Country, t.CostPerDay, t.Available,
		t.CreatedAt, t.UpdatedAt,
		t.ID, t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		l.Name, l.Slug, l.Address, l.City, l.Country, l.CostPerDay, l.Available,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)

	return dberr.WrapConflict(err, "create_location", "A location with this name already exists")
}

func (repository *PostgresRepository) UpdateLocation(context context.Context, l *Location) error {
	t := schema.CatalogShootingLocation
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.Name, t.Slug, t.Address, t.City, t.Country, t.CostPerDay, t.Available, t.UpdatedAt,
		t.ID,
		t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		l.ID, l.Name, l.Slug, l.Address, l.City, l.Country, l.CostPerDay, l.Available,
	).Scan(&l.UpdatedAt)

	return dberr.WrapConflict(err, "update_location", "A location with this name already exists")
}

func (repository *PostgresRepository) DeleteLocation(context context.Context, id int64) error {
	t := schema.CatalogShootingLocation
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_location")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
