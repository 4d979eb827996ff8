package equipment

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

func (repository *PostgresRepository) ListEquipment(context context.Context, f Filter, limit, offset int) ([]*Equipment, int, error) {
	t := schema.CatalogEquipment

	clause := " WHERE 1=1"
	args := []any{}

	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		clause += " AND " + t.Name + " ILIKE $" + strconv.Itoa(len(args))
	}
	if f.Type != "" {
		args = append(args, f.Type)
		clause += " AND " + t.Type + " = $" + strconv.Itoa(len(args))
	}
	if f.Availability != "" {
		args = append(args, f.Availability)
		clause += " AND " + t.Availability + " = $" + strconv.Itoa(len(args))
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table) + clause

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_equipment")
	}

	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s`,
		t.ID, t.Name, t.Type, t.RentalCost, t.Availability, t.CreatedAt, t.UpdatedAt,
		t.Table,
	) + clause + fmt.Sprintf(" ORDER BY %s ASC LIMIT $%d OFFSET $%d", t.Name, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_equipment")
	}
	defer rows.Close()

	var items []*Equipment
	for rows.Next() {
		e := &Equipment{}
		if err := rows.Scan(&e.ID, &e.Name, &e.Type, &e.RentalCost, &e.Availability, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_equipment")
		}
		items = append(items, e)
	}

	return items, total, nil
}

func (repository *PostgresRepository) GetEquipment(context context.Context, id int64) (*Equipment, error) {
	t := schema.CatalogEquipment
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		t.ID, t.Name, t.Type, t.RentalCost, t.Availability, t.CreatedAt, t.UpdatedAt,
		t.Table, t.ID,
	)

	e := &Equipment{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&e.ID, &e.Name, &e.Type, &e.RentalCost, &e.Availability, &e.CreatedAt, &e.UpdatedAt,
	)

	return e, dberr.Wrap(err, "get_equipment")
}

func (repository *PostgresRepository) CreateEquipment(context context.Context, e *Equipment) error {
	t := schema.CatalogEquipment
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		t.Table, t.Name, t.Type, t.RentalCost, t.Availability, t.CreatedAt, t.UpdatedAt,
		t.ID, t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, e.Name, e.Type, e.RentalCost, e.Availability).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	return dberr.Wrap(err, "create_equipment")
}

func (repository *PostgresRepository) UpdateEquipment(context context.Context, e *Equipment) error {
	t := schema.CatalogEquipment
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.Name, t.Type, t.RentalCost, t.UpdatedAt,
		t.ID,
		t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, e.ID, e.Name, e.Type, e.RentalCost).Scan(&e.UpdatedAt)
	return dberr.Wrap(err, "update_equipment")
}

func (repository *PostgresRepository) DeleteEquipment(context context.Context, id int64) error {
	t := schema.CatalogEquipment
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_equipment")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// UpdateAvailability transitions the availability status of an equipment item.
//
// The row lock, the update, and the audit entry all happen inside a single
// transaction so the trail can never diverge from the record.
func (repository *PostgresRepository) UpdateAvailability(context context.Context, id int64, newStatus, changedBy string) (string, error) {
	t := schema.CatalogEquipment

	tx, err := repository.db.Begin(context)
	if err != nil {
		return "", dberr.Wrap(err, "begin_update_availability")
	}
	defer tx.Rollback(context)

	var oldStatus, name string
	lockQuery := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1 FOR UPDATE`, t.Availability, t.Name, t.Table, t.ID)
	if err := tx.QueryRow(context, lockQuery, id).Scan(&oldStatus, &name); err != nil {
		return "", dberr.Wrap(err, "lock_equipment_availability")
	}

	// A no-op transition leaves both the record and the trail untouched.
	if oldStatus == newStatus {
		return oldStatus, nil
	}

	updateQuery := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		t.Table, t.Availability, t.UpdatedAt, t.ID,
	)
	if _, err := tx.Exec(context, updateQuery, id, newStatus); err != nil {
		return "", dberr.Wrap(err, "update_equipment_availability")
	}

	entry := &audit.EquipmentEntry{
		EquipmentID: id,
		Name:        name,
		Action:      audit.ActionUpdate,
		OldStatus:   oldStatus,
		NewStatus:   newStatus,
		ChangedBy:   changedBy,
	}
	if err := repository.recorder.RecordEquipmentChange(context, tx, entry); err != nil {
		return "", err
	}

	if err := tx.Commit(context); err != nil {
		return "", dberr.Wrap(err, "commit_update_availability")
	}

	return oldStatus, nil
}
