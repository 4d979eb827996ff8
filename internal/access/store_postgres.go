package access

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danghoanh/cinevault/internal/audit"
	"github.com/danghoanh/cinevault/internal/platform/apperr"
	"github.com/danghoanh/cinevault/internal/platform/database/schema"
	"github.com/danghoanh/cinevault/internal/platform/dberr"
	"github.com/danghoanh/cinevault/internal/platform/sec"
)

type PostgresRepository struct {
	db       *pgxpool.Pool
	recorder *audit.Recorder
}

func NewPostgresRepository(db *pgxpool.Pool, recorder *audit.Recorder) *PostgresRepository {
	return &PostgresRepository{db: db, recorder: recorder}
}

func accountColumns() string {
	t := schema.UserAccount
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.Username, t.PasswordHash, t.FullName, t.Email, t.Role, t.Status,
		t.CreatedBy, t.LastLoginAt, t.CreatedAt, t.UpdatedAt,
	)
}

func scanAccount(row pgx.Row) (*Account, error) {
	a := &Account{}
	err := row.Scan(
		&a.Username, &a.PasswordHash, &a.FullName, &a.Email, &a.Role, &a.Status,
		&a.CreatedBy, &a.LastLoginAt, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (repository *PostgresRepository) ListAccounts(context context.Context, limit, offset int) ([]*Account, int, error) {
	t := schema.UserAccount

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_accounts")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC LIMIT $1 OFFSET $2`,
		accountColumns(), t.Table, t.Username,
	)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_accounts")
	}
	defer rows.Close()

	var accounts []*Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_account")
		}
		accounts = append(accounts, account)
	}

	return accounts, total, nil
}

func (repository *PostgresRepository) GetAccount(context context.Context, username string) (*Account, error) {
	t := schema.UserAccount
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, accountColumns(), t.Table, t.Username)

	account, err := scanAccount(repository.db.QueryRow(context, query, username))
	return account, dberr.Wrap(err, "get_account")
}

func (repository *PostgresRepository) CreateAccount(context context.Context, account *Account, entry *audit.UserActivityEntry) error {
	t := schema.UserAccount

	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_account")
	}
	defer tx.Rollback(context)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s
	`,
		t.Table, t.Username, t.PasswordHash, t.FullName, t.Email, t.Role,
		t.Status, t.CreatedBy, t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)

	err = tx.QueryRow(context, query,
		account.Username, account.PasswordHash, account.FullName, account.Email,
		account.Role, account.Status, account.CreatedBy,
	).Scan(&account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return dberr.WrapConflict(err, "create_account", "Username or email is already taken")
	}

	if err := repository.recorder.RecordUserActivity(context, tx, entry); err != nil {
		return err
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_create_account")
	}
	return nil
}

func (repository *PostgresRepository) UpdateStatus(context context.Context, username, status string, entry *audit.UserActivityEntry) error {
	return repository.updateField(context, username, schema.UserAccount.Status, status, "update_account_status", entry)
}

func (repository *PostgresRepository) UpdateRole(context context.Context, username, role string, entry *audit.UserActivityEntry) error {
	return repository.updateField(context, username, schema.UserAccount.Role, role, "update_account_role", entry)
}

// updateField applies a single-column account update plus its activity
// entry in one transaction.
func (repository *PostgresRepository) updateField(context context.Context, username, column, value, action string, entry *audit.UserActivityEntry) error {
	t := schema.UserAccount

	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_"+action)
	}
	defer tx.Rollback(context)

	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		t.Table, column, t.UpdatedAt, t.Username,
	)

	cmd, err := tx.Exec(context, query, username, value)
	if err != nil {
		return dberr.Wrap(err, action)
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	if err := repository.recorder.RecordUserActivity(context, tx, entry); err != nil {
		return err
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_"+action)
	}
	return nil
}

// DeleteAccount removes an account inside a transaction that first
// counts the remaining active admins with the rows locked, so two
// concurrent deletions cannot both observe a survivor and leave the
// system with no admin at all.
func (repository *PostgresRepository) DeleteAccount(context context.Context, username string, entry *audit.UserActivityEntry) error {
	t := schema.UserAccount

	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_account")
	}
	defer tx.Rollback(context)

	// ── 1. Lock the target and learn its role ─────────────────────────────
	var targetRole, targetStatus string
	lockQuery := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1 FOR UPDATE`,
		t.Role, t.Status, t.Table, t.Username,
	)
	if err := tx.QueryRow(context, lockQuery, username).Scan(&targetRole, &targetStatus); err != nil {
		return dberr.Wrap(err, "lock_account")
	}

	// ── 2. Last-active-admin guard ────────────────────────────────────────
	if targetRole == string(sec.RoleAdmin) && targetStatus == StatusActive {
		countQuery := fmt.Sprintf(`
			SELECT count(*) FROM (
				SELECT %s FROM %s WHERE %s = $1 AND %s = $2 FOR UPDATE
			) admins
		`,
			t.Username, t.Table, t.Role, t.Status,
		)

		var activeAdmins int
		if err := tx.QueryRow(context, countQuery, string(sec.RoleAdmin), StatusActive).Scan(&activeAdmins); err != nil {
			return dberr.Wrap(err, "count_active_admins")
		}
		if activeAdmins <= 1 {
			return apperr.Invariant("Cannot delete the last active admin")
		}
	}

	// ── 3. Delete and record ──────────────────────────────────────────────
	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.Username)
	if _, err := tx.Exec(context, deleteQuery, username); err != nil {
		return dberr.Wrap(err, "delete_account")
	}

	if err := repository.recorder.RecordUserActivity(context, tx, entry); err != nil {
		return err
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_delete_account")
	}
	return nil
}

func (repository *PostgresRepository) TouchLastLogin(context context.Context, username string) error {
	t := schema.UserAccount
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1`, t.Table, t.LastLoginAt, t.Username)

	_, err := repository.db.Exec(context, query, username)
	return dberr.Wrap(err, "touch_last_login")
}

func (repository *PostgresRepository) RecordActivity(context context.Context, entry *audit.UserActivityEntry) error {
	return repository.recorder.RecordUserActivity(context, repository.db, entry)
}
