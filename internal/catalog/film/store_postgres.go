package film

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danghoanh/cinevault/internal/audit"
	"github.com/danghoanh/cinevault/internal/platform/database/schema"
	"github.com/danghoanh/cinevault/internal/platform/dberr"
)

type PostgresRepository struct {
	db       *pgxpool.Pool
	recorder *audit.Recorder
}

func NewPostgresRepository(db *pgxpool.Pool, recorder *audit.Recorder) *PostgresRepository {
	return &PostgresRepository{db: db, recorder: recorder}
}

func filmColumns() string {
	t := schema.CatalogFilm
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Title, t.Slug, t.Genre, t.ReleaseDate, t.Budget,
		t.BoxOfficeCollection, t.Status, t.DirectorID, t.StudioID,
		t.DistributorID, t.CreatedAt, t.UpdatedAt,
	)
}

func scanFilm(row pgx.Row) (*Film, error) {
	f := &Film{}
	err := row.Scan(
		&f.ID, &f.Title, &f.Slug, &f.Genre, &f.ReleaseDate, &f.Budget,
		&f.BoxOfficeCollection, &f.Status, &f.DirectorID, &f.StudioID,
		&f.DistributorID, &f.CreatedAt, &f.UpdatedAt,
	)
	return f, err
}

func (repository *PostgresRepository) ListFilms(context context.Context, f Filter, limit, offset int) ([]*Film, int, error) {
	t := schema.CatalogFilm

	clause := " WHERE 1=1"
	args := []any{}

	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		clause += " AND " + t.Title + " ILIKE $" + strconv.Itoa(len(args))
	}
	if f.Genre != "" {
		args = append(args, f.Genre)
		clause += " AND " + t.Genre + " = $" + strconv.Itoa(len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		clause += " AND " + t.Status + " = $" + strconv.Itoa(len(args))
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table) + clause

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_films")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s`, filmColumns(), t.Table) + clause +
		fmt.Sprintf(" ORDER BY %s ASC LIMIT $%d OFFSET $%d", t.Title, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_films")
	}
	defer rows.Close()

	var films []*Film
	for rows.Next() {
		film, err := scanFilm(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_film")
		}
		films = append(films, film)
	}

	return films, total, nil
}

func (repository *PostgresRepository) GetFilm(context context.Context, id int64) (*Film, error) {
	t := schema.CatalogFilm
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, filmColumns(), t.Table, t.ID)

	film, err := scanFilm(repository.db.QueryRow(context, query, id))
	return film, dberr.Wrap(err, "get_film")
}

func (repository *PostgresRepository) GetFilmBySlug(context context.Context, slug string) (*Film, error) {
	t := schema.CatalogFilm
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, filmColumns(), t.Table, t.Slug)

	film, err := scanFilm(repository.db.QueryRow(context, query, slug))
	return film, dberr.Wrap(err, "get_film_by_slug")
}

func (repository *PostgresRepository) CreateFilm(context context.Context, film *Film) error {
	t := schema.CatalogFilm
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		t.Table, t.Title, t.Slug, t.Genre, t.ReleaseDate, t.Budget,
		t.BoxOfficeCollection, t.Status, t.DirectorID, t.StudioID, t.DistributorID,
		t.CreatedAt, t.UpdatedAt,
		t.ID, t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		film.Title, film.Slug, film.Genre, film.ReleaseDate, film.Budget,
		film.BoxOfficeCollection, film.Status, film.DirectorID, film.StudioID, film.DistributorID,
	).Scan(&film.ID, &film.CreatedAt, &film.UpdatedAt)

	return dberr.WrapConflict(err, "create_film", "A film with this title already exists")
}

func (repository *PostgresRepository) UpdateFilm(context context.Context, film *Film) error {
	t := schema.CatalogFilm
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.Title, t.Slug, t.Genre, t.ReleaseDate, t.Budget,
		t.BoxOfficeCollection, t.DirectorID, t.StudioID, t.DistributorID, t.UpdatedAt,
		t.ID,
		t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		film.ID, film.Title, film.Slug, film.Genre, film.ReleaseDate, film.Budget,
		film.BoxOfficeCollection, film.DirectorID, film.StudioID, film.DistributorID,
	).Scan(&film.UpdatedAt)

	return dberr.WrapConflict(err, "update_film", "A film with this title already exists")
}

func (repository *PostgresRepository) DeleteFilm(context context.Context, id int64) error {
	t := schema.CatalogFilm
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_film")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ListScenes(context context.Context, filmID int64) ([]*Scene, error) {
	t := schema.CatalogScene
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
	`,
		t.ID, t.FilmID, t.LocationID, t.SceneNumber, t.Description, t.TimeOfDay, t.Interior, t.CreatedAt,
		t.Table, t.FilmID, t.SceneNumber,
	)

	rows, err := repository.db.Query(context, query, filmID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_scenes")
	}
	defer rows.Close()

	var scenes []*Scene
	for rows.Next() {
		s := &Scene{}
		if err := rows.Scan(&s.ID, &s.FilmID, &s.LocationID, &s.SceneNumber, &s.Description, &s.TimeOfDay, &s.Interior, &s.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_scene")
		}
		scenes = append(scenes, s)
	}

	return scenes, nil
}

func (repository *PostgresRepository) AddScene(context context.Context, s *Scene) error {
	t := schema.CatalogScene
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING %s, %s
	`,
		t.Table, t.FilmID, t.LocationID, t.SceneNumber, t.Description, t.TimeOfDay, t.Interior, t.CreatedAt,
		t.ID, t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		s.FilmID, s.LocationID, s.SceneNumber, s.Description, s.TimeOfDay, s.Interior,
	).Scan(&s.ID, &s.CreatedAt)

	return dberr.WrapConflict(err, "add_scene", "This scene number already exists for the film")
}

func (repository *PostgresRepository) DeleteScene(context context.Context, filmID, sceneID int64) error {
	t := schema.CatalogScene
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`, t.Table, t.ID, t.FilmID)

	cmd, err := repository.db.Exec(context, query, sceneID, filmID)
	if err != nil {
		return dberr.Wrap(err, "delete_scene")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) GetCertificate(context context.Context, filmID int64) (*Certificate, error) {
	t := schema.CatalogCertificate
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		t.ID, t.FilmID, t.RatingBoard, t.Grade, t.CreatedAt, t.UpdatedAt, t.Table, t.FilmID,
	)

	c := &Certificate{}
	err := repository.db.QueryRow(context, query, filmID).Scan(
		&c.ID, &c.FilmID, &c.RatingBoard, &c.Grade, &c.CreatedAt, &c.UpdatedAt,
	)

	return c, dberr.Wrap(err, "get_certificate")
}

func (repository *PostgresRepository) SetCertificate(context context.Context, c *Certificate) error {
	t := schema.CatalogCertificate
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (%s) DO UPDATE
		SET %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = NOW()
		RETURNING %s, %s, %s
	`,
		t.Table, t.FilmID, t.RatingBoard, t.Grade, t.CreatedAt, t.UpdatedAt,
		t.FilmID,
		t.RatingBoard, t.RatingBoard, t.Grade, t.Grade, t.UpdatedAt,
		t.ID, t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, c.FilmID, c.RatingBoard, c.Grade).Scan(
		&c.ID, &c.CreatedAt, &c.UpdatedAt,
	)
	return dberr.Wrap(err, "set_certificate")
}

// UpdateFilmStatus transitions the lifecycle status of a film.
//
// The status row lock, the update, and the audit entries all happen inside
// a single transaction so the trail can never diverge from the record.
// Two audit entries are written per transition: a STATUS_CHANGE entry
// carrying the old and new values, and a STATUS_UPDATE marker entry.
func (repository *PostgresRepository) UpdateFilmStatus(context context.Context, id int64, newStatus, changedBy string) (string, error) {
	t := schema.CatalogFilm

	tx, err := repository.db.Begin(context)
	if err != nil {
		return "", dberr.Wrap(err, "begin_update_film_status")
	}
	defer tx.Rollback(context)

	// ── 1. Lock the row and read the current status, title and budget ─────
	var oldStatus, title string
	var budget int64
	lockQuery := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1 FOR UPDATE`,
		t.Status, t.Title, t.Budget, t.Table, t.ID,
	)
	if err := tx.QueryRow(context, lockQuery, id).Scan(&oldStatus, &title, &budget); err != nil {
		return "", dberr.Wrap(err, "lock_film_status")
	}

	// ── 2. Apply the transition ───────────────────────────────────────────
	updateQuery := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		t.Table, t.Status, t.UpdatedAt, t.ID,
	)
	if _, err := tx.Exec(context, updateQuery, id, newStatus); err != nil {
		return "", dberr.Wrap(err, "update_film_status")
	}

	// ── 3. Append the audit entries ───────────────────────────────────────
	// A status transition does not touch the budget, so the entry carries
	// the locked value on both sides.
	entry := &audit.FilmEntry{
		FilmID:    id,
		Title:     title,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		OldBudget: budget,
		NewBudget: budget,
		ChangedBy: changedBy,
	}
	if err := repository.recorder.RecordFilmStatusTransition(context, tx, entry); err != nil {
		return "", err
	}

	if err := tx.Commit(context); err != nil {
		return "", dberr.Wrap(err, "commit_update_film_status")
	}

	return oldStatus, nil
}
