package studio

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

func (repository *PostgresRepository) ListStudios(context context.Context, f Filter, limit, offset int) ([]*Studio, int, error) {
	t := schema.CatalogStudio

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE 1=1
	`,
		t.ID, t.Name, t.Address, t.FoundedYear, t.CreatedAt, t.UpdatedAt,
		t.Table,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE 1=1`, t.Table)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		condition := fmt.Sprintf(" AND %s ILIKE $1", t.Name)
		query += condition
		countQuery += condition
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT $%d OFFSET $%d", t.Name, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_studios")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_studios")
	}
	defer rows.Close()

	var studios []*Studio
	for rows.Next() {
		s := &Studio{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.FoundedYear, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_studio")
		}
		studios = append(studios, s)
	}

	return studios, total, nil
}

func (repository *PostgresRepository) GetStudio(context context.Context, id int64) (*Studio, error) {
	t := schema.CatalogStudio
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		t.ID, t.Name, t.Address, t.FoundedYear, t.CreatedAt, t.UpdatedAt,
		t.Table, t.ID,
	)

	s := &Studio{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&s.ID, &s.Name, &s.Address, &s.FoundedYear, &s.CreatedAt, &s.UpdatedAt,
	)

	return s, dberr.Wrap(err, "get_studio")
}

func (repository *PostgresRepository) CreateStudio(context context.Context, s *Studio) error {
	t := schema.CatalogStudio
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		t.Table, t.Name, t.Address, t.FoundedYear, t.CreatedAt, t.UpdatedAt,
		t.ID, t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, s.Name, s.Address, s.FoundedYear).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	return dberr.WrapConflict(err, "create_studio", "A studio with this name already exists")
}

func (repository *PostgresRepository) UpdateStudio(context context.Context, s *Studio) error {
	t := schema.CatalogStudio
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.Name, t.Address, t.FoundedYear, t.UpdatedAt,
		t.ID,
		t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, s.ID, s.Name, s.Address, s.FoundedYear).Scan(&s.UpdatedAt)
	return dberr.WrapConflict(err, "update_studio", "A studio with this name already exists")
}

func (repository *PostgresRepository) DeleteStudio(context context.Context, id int64) error {
	t := schema.CatalogStudio
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_studio")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
