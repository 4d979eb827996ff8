package audit

import (
	"context"
	"fmt"
	"strconv"

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

// trailClause builds the WHERE tail shared by the count and page queries.
// entityColumn is the column the Filter.EntityID applies to.
func trailClause(f Filter, entityColumn, actionColumn, timeColumn string) (string, []any) {
	clause := " WHERE 1=1"
	args := []any{}

	if f.EntityID != 0 {
		args = append(args, f.EntityID)
		clause += " AND " + entityColumn + " = $" + strconv.Itoa(len(args))
	}
	if f.Action != "" {
		args = append(args, f.Action)
		clause += " AND " + actionColumn + " = $" + strconv.Itoa(len(args))
	}
	if f.From != nil {
		args = append(args, *f.From)
		clause += " AND " + timeColumn + " >= $" + strconv.Itoa(len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		clause += " AND " + timeColumn + " <= $" + strconv.Itoa(len(args))
	}

	return clause, args
}

func (repository *PostgresRepository) ListRoleEntries(context context.Context, f Filter, limit, offset int) ([]*RoleEntry, int, error) {
	t := schema.AuditRoleAudit
	clause, args := trailClause(f, t.RoleID, t.Action, t.ChangedAt)

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table) + clause

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_role_audit")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
	`,
		t.ID, t.RoleID, t.ActorID, t.FilmID, t.CharacterName, t.Action, t.Salary, t.ChangedBy, t.ChangedAt,
		t.Table,
	) + clause + fmt.Sprintf(" ORDER BY %s DESC LIMIT $%d OFFSET $%d", t.ChangedAt, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_role_audit")
	}
	defer rows.Close()

	var entries []*RoleEntry
	for rows.Next() {
		e := &RoleEntry{}
		if err := rows.Scan(&e.ID, &e.RoleID, &e.ActorID, &e.FilmID, &e.CharacterName, &e.Action, &e.Salary, &e.ChangedBy, &e.ChangedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_role_audit")
		}
		entries = append(entries, e)
	}

	return entries, total, nil
}

func (repository *PostgresRepository) ListEquipmentEntries(context context.Context, f Filter, limit, offset int) ([]*EquipmentEntry, int, error) {
	t := schema.AuditEquipmentAudit
	clause, args := trailClause(f, t.EquipmentID, t.Action, t.ChangedAt)

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table) + clause

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_equipment_audit")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
	`,
		t.ID, t.EquipmentID, t.Name, t.Action, t.OldStatus, t.NewStatus, t.ChangedBy, t.ChangedAt,
		t.Table,
	) + clause + fmt.Sprintf(" ORDER BY %s DESC LIMIT $%d OFFSET $%d", t.ChangedAt, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_equipment_audit")
	}
	defer rows.Close()

	var entries []*EquipmentEntry
	for rows.Next() {
		e := &EquipmentEntry{}
		if err := rows.Scan(&e.ID, &e.EquipmentID, &e.Name, &e.Action, &e.OldStatus, &e.NewStatus, &e.ChangedBy, &e.ChangedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_equipment_audit")
		}
		entries = append(entries, e)
	}

	return entries, total, nil
}

func (repository *PostgresRepository) ListFilmEntries(context context.Context, f Filter, limit, offset int) ([]*FilmEntry, int, error) {
	t := schema.AuditFilmAudit
	clause, args := trailClause(f, t.FilmID, t.Action, t.ChangedAt)

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table) + clause

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_film_audit")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
	`,
		t.ID, t.FilmID, t.Title, t.Action, t.OldStatus, t.NewStatus, t.OldBudget, t.NewBudget, t.ChangedBy, t.ChangedAt,
		t.Table,
	) + clause + fmt.Sprintf(" ORDER BY %s DESC LIMIT $%d OFFSET $%d", t.ChangedAt, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_film_audit")
	}
	defer rows.Close()

	var entries []*FilmEntry
	for rows.Next() {
		e := &FilmEntry{}
		if err := rows.Scan(&e.ID, &e.FilmID, &e.Title, &e.Action, &e.OldStatus, &e.NewStatus, &e.OldBudget, &e.NewBudget, &e.ChangedBy, &e.ChangedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_film_audit")
		}
		entries = append(entries, e)
	}

	return entries, total, nil
}

func (repository *PostgresRepository) ListUserActivity(context context.Context, username string, f Filter, limit, offset int) ([]*UserActivityEntry, int, error) {
	t := schema.AuditUserActivity

	clause := " WHERE 1=1"
	args := []any{}

	if username != "" {
		args = append(args, username)
		clause += " AND " + t.Username + " = $" + strconv.Itoa(len(args))
	}
	if f.Action != "" {
		args = append(args, f.Action)
		clause += " AND " + t.Action + " = $" + strconv.Itoa(len(args))
	}
	if f.From != nil {
		args = append(args, *f.From)
		clause += " AND " + t.CreatedAt + " >= $" + strconv.Itoa(len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		clause += " AND " + t.CreatedAt + " <= $" + strconv.Itoa(len(args))
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table) + clause

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_user_activity")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
	`,
		t.ID, t.Username, t.Action, t.Detail, t.IPAddress, t.CreatedAt,
		t.Table,
	) + clause + fmt.Sprintf(" ORDER BY %s DESC LIMIT $%d OFFSET $%d", t.CreatedAt, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_user_activity")
	}
	defer rows.Close()

	var entries []*UserActivityEntry
	for rows.Next() {
		e := &UserActivityEntry{}
		if err := rows.Scan(&e.ID, &e.Username, &e.Action, &e.Detail, &e.IPAddress, &e.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_user_activity")
		}
		entries = append(entries, e)
	}

	return entries, total, nil
}
