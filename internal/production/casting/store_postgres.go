package casting

import (
	"context"
	"fmt"
	"strconv"

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

func roleColumns() string {
	t := schema.ProductionRole
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.ActorID, t.FilmID, t.CharacterName, t.ScreenTimeMinutes,
		t.Importance, t.Salary, t.CreatedAt, t.UpdatedAt,
	)
}

func (repository *PostgresRepository) ListRoles(context context.Context, f Filter, limit, offset int) ([]*Role, int, error) {
	t := schema.ProductionRole

	clause := " WHERE 1=1"
	args := []any{}

	if f.FilmID != 0 {
		args = append(args, f.FilmID)
		clause += " AND " + t.FilmID + " = $" + strconv.Itoa(len(args))
	}
	if f.ActorID != 0 {
		args = append(args, f.ActorID)
		clause += " AND " + t.ActorID + " = $" + strconv.Itoa(len(args))
	}
	if f.Importance != "" {
		args = append(args, f.Importance)
		clause += " AND " + t.Importance + " = $" + strconv.Itoa(len(args))
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table) + clause

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_roles")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s`, roleColumns(), t.Table) + clause +
		fmt.Sprintf(" ORDER BY %s DESC LIMIT $%d OFFSET $%d", t.CreatedAt, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_roles")
	}
	defer rows.Close()

	var roles []*Role
	for rows.Next() {
		r := &Role{}
		if err := rows.Scan(&r.ID, &r.ActorID, &r.FilmID, &r.CharacterName, &r.ScreenTimeMinutes, &r.Importance, &r.Salary, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_role")
		}
		roles = append(roles, r)
	}

	return roles, total, nil
}

func (repository *PostgresRepository) GetRole(context context.Context, id int64) (*Role, error) {
	t := schema.ProductionRole
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, roleColumns(), t.Table, t.ID)

	r := &Role{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&r.ID, &r.ActorID, &r.FilmID, &r.CharacterName, &r.ScreenTimeMinutes, &r.Importance, &r.Salary, &r.CreatedAt, &r.UpdatedAt,
	)

	return r, dberr.Wrap(err, "get_role")
}

func (repository *PostgresRepository) AssignRole(context context.Context, r *Role, changedBy string) error {
	t := schema.ProductionRole

	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_assign_role")
	}
	defer tx.Rollback(context)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		t.Table, t.ActorID, t.FilmID, t.CharacterName, t.ScreenTimeMinutes,
		t.Importance, t.Salary, t.CreatedAt, t.UpdatedAt,
		t.ID, t.CreatedAt, t.UpdatedAt,
	)

	err = tx.QueryRow(context, query,
		r.ActorID, r.FilmID, r.CharacterName, r.ScreenTimeMinutes, r.Importance, r.Salary,
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return dberr.WrapConflict(err, "assign_role", "This actor is already cast as that character in the film")
	}

	entry := &audit.RoleEntry{
		RoleID:        r.ID,
		ActorID:       r.ActorID,
		FilmID:        r.FilmID,
		CharacterName: r.CharacterName,
		Action:        audit.ActionInsert,
		Salary:        r.Salary,
		ChangedBy:     changedBy,
	}
	if err := repository.recorder.RecordRoleChange(context, tx, entry); err != nil {
		return err
	}

	return dberr.Wrap(tx.Commit(context), "commit_assign_role")
}

func (repository *PostgresRepository) UpdateRole(context context.Context, r *Role, changedBy string) error {
	t := schema.ProductionRole

	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_update_role")
	}
	defer tx.Rollback(context)

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s, %s
	`,
		t.Table, t.CharacterName, t.ScreenTimeMinutes, t.Importance, t.Salary, t.UpdatedAt,
		t.ID,
		t.ActorID, t.FilmID, t.UpdatedAt,
	)

	err = tx.QueryRow(context, query,
		r.ID, r.CharacterName, r.ScreenTimeMinutes, r.Importance, r.Salary,
	).Scan(&r.ActorID, &r.FilmID, &r.UpdatedAt)
	if err != nil {
		return dberr.WrapConflict(err, "update_role", "This actor is already cast as that character in the film")
	}

	entry := &audit.RoleEntry{
		RoleID:        r.ID,
		ActorID:       r.ActorID,
		FilmID:        r.FilmID,
		CharacterName: r.CharacterName,
		Action:        audit.ActionUpdate,
		Salary:        r.Salary,
		ChangedBy:     changedBy,
	}
	if err := repository.recorder.RecordRoleChange(context, tx, entry); err != nil {
		return err
	}

	return dberr.Wrap(tx.Commit(context), "commit_update_role")
}

func (repository *PostgresRepository) RemoveRole(context context.Context, id int64, changedBy string) error {
	t := schema.ProductionRole

	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_remove_role")
	}
	defer tx.Rollback(context)

	// The deleted row is returned so the DELETE audit entry carries the
	// final character and salary the role held.
	query := fmt.Sprintf(`
		DELETE FROM %s WHERE %s = $1
		RETURNING %s, %s, %s, %s
	`,
		t.Table, t.ID,
		t.ActorID, t.FilmID, t.CharacterName, t.Salary,
	)

	var actorID, filmID, salary int64
	var characterName string
	if err := tx.QueryRow(context, query, id).Scan(&actorID, &filmID, &characterName, &salary); err != nil {
		return dberr.Wrap(err, "remove_role")
	}

	entry := &audit.RoleEntry{
		RoleID:        id,
		ActorID:       actorID,
		FilmID:        filmID,
		CharacterName: characterName,
		Action:        audit.ActionDelete,
		Salary:        salary,
		ChangedBy:     changedBy,
	}
	if err := repository.recorder.RecordRoleChange(context, tx, entry); err != nil {
		return err
	}

	return dberr.Wrap(tx.Commit(context), "commit_remove_role")
}
