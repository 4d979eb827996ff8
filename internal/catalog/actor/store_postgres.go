package actor

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

func (repository *PostgresRepository) ListActors(context context.Context, f Filter, limit, offset int) ([]*Actor, int, error) {
	t := schema.CatalogActor
	lang := schema.CatalogActorLanguage

	clause := " WHERE 1=1"
	args := []any{}

	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		clause += " AND " + t.Name + " ILIKE $" + strconv.Itoa(len(args))
	}
	if f.Nationality != "" {
		args = append(args, f.Nationality)
		clause += " AND " + t.Nationality + " = $" + strconv.Itoa(len(args))
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table) + clause

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_actors")
	}

	// Languages are aggregated from the child table in a single pass.
	query := fmt.Sprintf(`
		SELECT a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s,
			COALESCE(array_agg(l.%s) FILTER (WHERE l.%s IS NOT NULL), '{}')
		FROM %s a
		LEFT JOIN %s l ON l.%s = a.%s
	`,
		t.ID, t.Name, t.DateOfBirth, t.Gender, t.Nationality, t.CreatedAt, t.UpdatedAt,
		lang.Language, lang.Language,
		t.Table, lang.Table, lang.ActorID, t.ID,
	) + clause + fmt.Sprintf(`
		GROUP BY a.%s
		ORDER BY a.%s ASC
		LIMIT $%d OFFSET $%d`,
		t.ID, t.Name, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_actors")
	}
	defer rows.Close()

	var actors []*Actor
	for rows.Next() {
		a := &Actor{}
		if err := rows.Scan(&a.ID, &a.Name, &a.DateOfBirth, &a.Gender, &a.Nationality, &a.CreatedAt, &a.UpdatedAt, &a.Languages); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_actor")
		}
		actors = append(actors, a)
	}

	return actors, total, nil
}

func (repository *PostgresRepository) GetActor(context context.Context, id int64) (*Actor, error) {
	t := schema.CatalogActor
	lang := schema.CatalogActorLanguage

	query := fmt.Sprintf(`
		SELECT a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s,
			COALESCE(array_agg(l.%s) FILTER (WHERE l.%s IS NOT NULL), '{}')
		FROM %s a
		LEFT JOIN %s l ON l.%s = a.%s
		WHERE a.%s = $1
		GROUP BY a.%s
	`,
		t.ID, t.Name, t.DateOfBirth, t.Gender, t.Nationality, t.CreatedAt, t.UpdatedAt,
		lang.Language, lang.Language,
		t.Table, lang.Table, lang.ActorID, t.ID,
		t.ID, t.ID,
	)

	a := &Actor{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&a.ID, &a.Name, &a.DateOfBirth, &a.Gender, &a.Nationality, &a.CreatedAt, &a.UpdatedAt, &a.Languages,
	)

	return a, dberr.Wrap(err, "get_actor")
}

func (repository *PostgresRepository) CreateActor(context context.Context, a *Actor) error {
	t := schema.CatalogActor

	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_actor")
	}
	defer tx.Rollback(context)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		t.Table, t.Name, t.DateOfBirth, t.Gender, t.Nationality, t.CreatedAt, t.UpdatedAt,
		t.ID, t.CreatedAt, t.UpdatedAt,
	)

	if err := tx.QueryRow(context, query, a.Name, a.DateOfBirth, a.Gender, a.Nationality).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return dberr.Wrap(err, "create_actor")
	}

	if err := replaceLanguages(context, tx, a.ID, a.Languages); err != nil {
		return err
	}

	return dberr.Wrap(tx.Commit(context), "commit_create_actor")
}

func (repository *PostgresRepository) UpdateActor(context context.Context, a *Actor) error {
	t := schema.CatalogActor

	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_update_actor")
	}
	defer tx.Rollback(context)

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.Name, t.DateOfBirth, t.Gender, t.Nationality, t.UpdatedAt,
		t.ID,
		t.UpdatedAt,
	)

	if err := tx.QueryRow(context, query, a.ID, a.Name, a.DateOfBirth, a.Gender, a.Nationality).Scan(&a.UpdatedAt); err != nil {
		return dberr.Wrap(err, "update_actor")
	}

	if err := replaceLanguages(context, tx, a.ID, a.Languages); err != nil {
		return err
	}

	return dberr.Wrap(tx.Commit(context), "commit_update_actor")
}

func (repository *PostgresRepository) DeleteActor(context context.Context, id int64) error {
	t := schema.CatalogActor
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_actor")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// replaceLanguages rewrites the actor's language set inside the caller's tx.
func replaceLanguages(context context.Context, tx pgx.Tx, actorID int64, languages []string) error {
	lang := schema.CatalogActorLanguage

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, lang.Table, lang.ActorID)
	if _, err := tx.Exec(context, deleteQuery, actorID); err != nil {
		return dberr.Wrap(err, "clear_actor_languages")
	}

	insertQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`, lang.Table, lang.ActorID, lang.Language)
	for _, language := range languages {
		if _, err := tx.Exec(context, insertQuery, actorID, language); err != nil {
			return dberr.Wrap(err, "insert_actor_language")
		}
	}

	return nil
}
