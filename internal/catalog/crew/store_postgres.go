package crew

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

func (repository *PostgresRepository) ListMembers(context context.Context, f Filter, limit, offset int) ([]*Member, int, error) {
	t := schema.CatalogCrew

	clause := " WHERE 1=1"
	args := []any{}

	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		clause += " AND " + t.Name + " ILIKE $" + strconv.Itoa(len(args))
	}
	if f.Department != "" {
		args = append(args, f.Department)
		clause += " AND " + t.Department + " = $" + strconv.Itoa(len(args))
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table) + clause

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_crew")
	}

	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s`,
		t.ID, t.Name, t.Department, t.ExperienceYears, t.SupervisorID, t.CreatedAt, t.UpdatedAt,
		t.Table,
	) + clause + fmt.Sprintf(" ORDER BY %s ASC LIMIT $%d OFFSET $%d", t.Name, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_crew")
	}
	defer rows.Close()

	var members []*Member
	for rows.Next() {
		m := &Member{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Department, &m.ExperienceYears, &m.SupervisorID, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_crew_member")
		}
		members = append(members, m)
	}

	return members, total, nil
}

func (repository *PostgresRepository) GetMember(context context.Context, id int64) (*Member, error) {
	t := schema.CatalogCrew
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		t.ID, t.Name, t.Department, t.ExperienceYears, t.SupervisorID, t.CreatedAt, t.UpdatedAt,
		t.Table, t.ID,
	)

	m := &Member{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&m.ID, &m.Name, &m.Department, &m.ExperienceYears, &m.SupervisorID, &m.CreatedAt, &m.UpdatedAt,
	)

	return m, dberr.Wrap(err, "get_crew_member")
}

func (repository *PostgresRepository) CreateMember(context context.Context, m *Member) error {
	t := schema.CatalogCrew
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		t.Table, t.Name, t.Department, t.ExperienceYears, t.SupervisorID, t.CreatedAt, t.UpdatedAt,
		t.ID, t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, m.Name, m.Department, m.ExperienceYears, m.SupervisorID).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	return dberr.Wrap(err, "create_crew_member")
}

func (repository *PostgresRepository) UpdateMember(context context.Context, m *Member) error {
	t := schema.CatalogCrew
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.Name, t.Department, t.ExperienceYears, t.SupervisorID, t.UpdatedAt,
		t.ID,
		t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, m.ID, m.Name, m.Department, m.ExperienceYears, m.SupervisorID).Scan(&m.UpdatedAt)
	return dberr.Wrap(err, "update_crew_member")
}

func (repository *PostgresRepository) DeleteMember(context context.Context, id int64) error {
	t := schema.CatalogCrew
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_crew_member")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
