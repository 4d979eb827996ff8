package director

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

func (repository *PostgresRepository) ListDirectors(context context.Context, f Filter, limit, offset int) ([]*Director, int, error) {
	t := schema.CatalogDirector
	spec := schema.CatalogDirectorSpecialization

	clause := " WHERE 1=1"
	args := []any{}

	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		clause += " AND " + t.Name + " ILIKE $" + strconv.Itoa(len(args))
	}
	if f.Specialization != "" {
		args = append(args, f.Specialization)
		clause += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM %s s WHERE s.%s = %s.%s AND s.%s = $%d)",
			spec.Table, spec.DirectorID, t.Table, t.ID, spec.Specialization, len(args))
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table) + clause

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_directors")
	}

	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s`,
		t.ID, t.Name, t.DateOfBirth, t.Nationality, t.CreatedAt, t.UpdatedAt, t.Table,
	) + clause + fmt.Sprintf(" ORDER BY %s ASC LIMIT $%d OFFSET $%d", t.Name, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_directors")
	}
	defer rows.Close()

	var directors []*Director
	for rows.Next() {
		d := &Director{}
		if err := rows.Scan(&d.ID, &d.Name, &d.DateOfBirth, &d.Nationality, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_director")
		}
		directors = append(directors, d)
	}

	for _, d := range directors {
		if err := repository.loadChildren(context, d); err != nil {
			return nil, 0, err
		}
	}

	return directors, total, nil
}

func (repository *PostgresRepository) GetDirector(context context.Context, id int64) (*Director, error) {
	t := schema.CatalogDirector
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		t.ID, t.Name, t.DateOfBirth, t.Nationality, t.CreatedAt, t.UpdatedAt, t.Table, t.ID,
	)

	d := &Director{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&d.ID, &d.Name, &d.DateOfBirth, &d.Nationality, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_director")
	}

	if err := repository.loadChildren(context, d); err != nil {
		return nil, err
	}

	return d, nil
}

func (repository *PostgresRepository) CreateDirector(context context.Context, d *Director) error {
	t := schema.CatalogDirector

	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_director")
	}
	defer tx.Rollback(context)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		t.Table, t.Name, t.DateOfBirth, t.Nationality, t.CreatedAt, t.UpdatedAt,
		t.ID, t.CreatedAt, t.UpdatedAt,
	)

	if err := tx.QueryRow(context, query, d.Name, d.DateOfBirth, d.Nationality).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return dberr.Wrap(err, "create_director")
	}

	if err := replaceChildren(context, tx, d); err != nil {
		return err
	}

	return dberr.Wrap(tx.Commit(context), "commit_create_director")
}

func (repository *PostgresRepository) UpdateDirector(context context.Context, d *Director) error {
	t := schema.CatalogDirector

	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_update_director")
	}
	defer tx.Rollback(context)

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.Name, t.DateOfBirth, t.Nationality, t.UpdatedAt,
		t.ID,
		t.UpdatedAt,
	)

	if err := tx.QueryRow(context, query, d.ID, d.Name, d.DateOfBirth, d.Nationality).Scan(&d.UpdatedAt); err != nil {
		return dberr.Wrap(err, "update_director")
	}

	if err := replaceChildren(context, tx, d); err != nil {
		return err
	}

	return dberr.Wrap(tx.Commit(context), "commit_update_director")
}

func (repository *PostgresRepository) DeleteDirector(context context.Context, id int64) error {
	t := schema.CatalogDirector
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_director")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// loadChildren fills in the specializations and awards for a director.
func (repository *PostgresRepository) loadChildren(context context.Context, d *Director) error {
	spec := schema.CatalogDirectorSpecialization
	award := schema.CatalogDirectorAward

	specQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s`,
		spec.Specialization, spec.Table, spec.DirectorID, spec.Specialization,
	)
	specRows, err := repository.db.Query(context, specQuery, d.ID)
	if err != nil {
		return dberr.Wrap(err, "list_director_specializations")
	}
	defer specRows.Close()

	d.Specializations = []string{}
	for specRows.Next() {
		var s string
		if err := specRows.Scan(&s); err != nil {
			return dberr.Wrap(err, "scan_director_specialization")
		}
		d.Specializations = append(d.Specializations, s)
	}

	awardQuery := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1 ORDER BY %s DESC`,
		award.Award, award.YearWon, award.Table, award.DirectorID, award.YearWon,
	)
	awardRows, err := repository.db.Query(context, awardQuery, d.ID)
	if err != nil {
		return dberr.Wrap(err, "list_director_awards")
	}
	defer awardRows.Close()

	d.Awards = []Award{}
	for awardRows.Next() {
		var a Award
		if err := awardRows.Scan(&a.Name, &a.YearWon); err != nil {
			return dberr.Wrap(err, "scan_director_award")
		}
		d.Awards = append(d.Awards, a)
	}

	return nil
}

// replaceChildren rewrites the specialization and award sets inside the caller's tx.
func replaceChildren(context context.Context, tx pgx.Tx, d *Director) error {
	spec := schema.CatalogDirectorSpecialization
	award := schema.CatalogDirectorAward

	if _, err := tx.Exec(context, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, spec.Table, spec.DirectorID), d.ID); err != nil {
		return dberr.Wrap(err, "clear_director_specializations")
	}
	for _, s := range d.Specializations {
		insertQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`, spec.Table, spec.DirectorID, spec.Specialization)
		if _, err := tx.Exec(context, insertQuery, d.ID, s); err != nil {
			return dberr.Wrap(err, "insert_director_specialization")
		}
	}

	if _, err := tx.Exec(context, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, award.Table, award.DirectorID), d.ID); err != nil {
		return dberr.Wrap(err, "clear_director_awards")
	}
	for _, a := range d.Awards {
		insertQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`, award.Table, award.DirectorID, award.Award, award.YearWon)
		if _, err := tx.Exec(context, insertQuery, d.ID, a.Name, a.YearWon); err != nil {
			return dberr.Wrap(err, "insert_director_award")
		}
	}

	return nil
}
