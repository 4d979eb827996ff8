package audit

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/danghoanh/cinevault/internal/platform/database/schema"
	"github.com/danghoanh/cinevault/internal/platform/dberr"
)

// Querier is the subset of pgx operations the recorder needs.
//
// Both *pgxpool.Pool and pgx.Tx satisfy it, which lets domain services
// append audit entries inside their own transactions.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Recorder appends audit entries. It never opens its own transaction:
// the caller passes the Querier (tx or pool) the primary write runs on.
type Recorder struct{}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// RecordRoleChange appends a casting audit entry.
func (recorder *Recorder) RecordRoleChange(context context.Context, q Querier, entry *RoleEntry) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING %s, %s
	`,
		schema.AuditRoleAudit.Table,
		schema.AuditRoleAudit.RoleID, schema.AuditRoleAudit.ActorID, schema.AuditRoleAudit.FilmID,
		schema.AuditRoleAudit.CharacterName, schema.AuditRoleAudit.Action, schema.AuditRoleAudit.Salary,
		schema.AuditRoleAudit.ChangedBy, schema.AuditRoleAudit.ChangedAt,
		schema.AuditRoleAudit.ID, schema.AuditRoleAudit.ChangedAt,
	)

	err := q.QueryRow(context, query,
		entry.RoleID, entry.ActorID, entry.FilmID, entry.CharacterName, entry.Action, entry.Salary, entry.ChangedBy,
	).Scan(&entry.ID, &entry.ChangedAt)

	return dberr.Wrap(err, "record_role_change")
}

// RecordEquipmentChange appends an equipment availability audit entry.
func (recorder *Recorder) RecordEquipmentChange(context context.Context, q Querier, entry *EquipmentEntry) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING %s, %s
	`,
		schema.AuditEquipmentAudit.Table,
		schema.AuditEquipmentAudit.EquipmentID, schema.AuditEquipmentAudit.Name,
		schema.AuditEquipmentAudit.Action, schema.AuditEquipmentAudit.OldStatus,
		schema.AuditEquipmentAudit.NewStatus, schema.AuditEquipmentAudit.ChangedBy,
		schema.AuditEquipmentAudit.ChangedAt,
		schema.AuditEquipmentAudit.ID, schema.AuditEquipmentAudit.ChangedAt,
	)

	err := q.QueryRow(context, query,
		entry.EquipmentID, entry.Name, entry.Action, entry.OldStatus, entry.NewStatus, entry.ChangedBy,
	).Scan(&entry.ID, &entry.ChangedAt)

	return dberr.Wrap(err, "record_equipment_change")
}

// RecordFilmChange appends a film status audit entry.
func (recorder *Recorder) RecordFilmChange(context context.Context, q Querier, entry *FilmEntry) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING %s, %s
	`,
		schema.AuditFilmAudit.Table,
		schema.AuditFilmAudit.FilmID, schema.AuditFilmAudit.Title, schema.AuditFilmAudit.Action,
		schema.AuditFilmAudit.OldStatus, schema.AuditFilmAudit.NewStatus,
		schema.AuditFilmAudit.OldBudget, schema.AuditFilmAudit.NewBudget,
		schema.AuditFilmAudit.ChangedBy, schema.AuditFilmAudit.ChangedAt,
		schema.AuditFilmAudit.ID, schema.AuditFilmAudit.ChangedAt,
	)

	err := q.QueryRow(context, query,
		entry.FilmID, entry.Title, entry.Action, entry.OldStatus, entry.NewStatus,
		entry.OldBudget, entry.NewBudget, entry.ChangedBy,
	).Scan(&entry.ID, &entry.ChangedAt)

	return dberr.Wrap(err, "record_film_change")
}

// RecordFilmStatusTransition appends the entry pair a film status transition
// produces: a STATUS_CHANGE entry with the transition's values, then a
// STATUS_UPDATE marker entry carrying the same values. Both ride the
// caller's Querier, so they commit or roll back with the status write.
func (recorder *Recorder) RecordFilmStatusTransition(context context.Context, q Querier, entry *FilmEntry) error {
	entry.Action = ActionStatusChange
	if err := recorder.RecordFilmChange(context, q, entry); err != nil {
		return err
	}

	marker := *entry
	marker.ID = 0
	marker.Action = ActionStatusUpdate
	return recorder.RecordFilmChange(context, q, &marker)
}

// RecordUserActivity appends an account activity entry.
func (recorder *Recorder) RecordUserActivity(context context.Context, q Querier, entry *UserActivityEntry) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING %s, %s
	`,
		schema.AuditUserActivity.Table,
		schema.AuditUserActivity.Username, schema.AuditUserActivity.Action,
		schema.AuditUserActivity.Detail, schema.AuditUserActivity.IPAddress,
		schema.AuditUserActivity.CreatedAt,
		schema.AuditUserActivity.ID, schema.AuditUserActivity.CreatedAt,
	)

	err := q.QueryRow(context, query,
		entry.Username, entry.Action, entry.Detail, entry.IPAddress,
	).Scan(&entry.ID, &entry.CreatedAt)

	return dberr.Wrap(err, "record_user_activity")
}
