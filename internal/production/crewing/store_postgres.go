package crewing

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

func (repository *PostgresRepository) ListAssignments(context context.Context, filmID int64, limit, offset int) ([]*Assignment, int, error) {
	t := schema.ProductionWorksOn

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, t.Table, t.FilmID)

	var total int
	if err := repository.db.QueryRow(context, countQuery, filmID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_assignments")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
		LIMIT $2 OFFSET $3
	`,
		t.ID, t.CrewID, t.FilmID, t.Department, t.StartDate, t.EndDate, t.CreatedAt,
		t.Table, t.FilmID, t.StartDate,
	)

	rows, err := repository.db.Query(context, query, filmID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_assignments")
	}
	defer rows.Close()

	var assignments []*Assignment
	for rows.Next() {
		a := &Assignment{}
		if err := rows.Scan(&a.ID, &a.CrewID, &a.FilmID, &a.Department, &a.StartDate, &a.EndDate, &a.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_assignment")
		}
		assignments = append(assignments, a)
	}

	return assignments, total, nil
}

func (repository *PostgresRepository) CreateAssignment(context context.Context, a *Assignment) error {
	t := schema.ProductionWorksOn
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING %s, %s
	`,
		t.Table, t.CrewID, t.FilmID, t.Department, t.StartDate, t.EndDate, t.CreatedAt,
		t.ID, t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.CrewID, a.FilmID, a.Department, a.StartDate, a.EndDate,
	).Scan(&a.ID, &a.CreatedAt)

	return dberr.WrapConflict(err, "create_assignment", "This crew member is already assigned to the film for that window")
}

func (repository *PostgresRepository) DeleteAssignment(context context.Context, id int64) error {
	t := schema.ProductionWorksOn
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_assignment")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) GetCrewDepartment(context context.Context, crewID int64) (string, error) {
	t := schema.CatalogCrew
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, t.Department, t.Table, t.ID)

	var department string
	err := repository.db.QueryRow(context, query, crewID).Scan(&department)

	return department, dberr.Wrap(err, "get_crew_department")
}

func (repository *PostgresRepository) ListAllocations(context context.Context, filmID int64, limit, offset int) ([]*Allocation, int, error) {
	t := schema.ProductionEquipmentUsage

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, t.Table, t.FilmID)

	var total int
	if err := repository.db.QueryRow(context, countQuery, filmID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_allocations")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC
		LIMIT $2 OFFSET $3
	`,
		t.ID, t.EquipmentID, t.FilmID, t.CrewID, t.EfficiencyRating, t.CreatedAt,
		t.Table, t.FilmID, t.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, filmID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_allocations")
	}
	defer rows.Close()

	var allocations []*Allocation
	for rows.Next() {
		a := &Allocation{}
		if err := rows.Scan(&a.ID, &a.EquipmentID, &a.FilmID, &a.CrewID, &a.EfficiencyRating, &a.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_allocation")
		}
		allocations = append(allocations, a)
	}

	return allocations, total, nil
}

func (repository *PostgresRepository) CreateAllocation(context context.Context, a *Allocation) error {
	t := schema.ProductionEquipmentUsage
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING %s, %s
	`,
		t.Table, t.EquipmentID, t.FilmID, t.CrewID, t.EfficiencyRating, t.CreatedAt,
		t.ID, t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.EquipmentID, a.FilmID, a.CrewID, a.EfficiencyRating,
	).Scan(&a.ID, &a.CreatedAt)

	return dberr.WrapConflict(err, "create_allocation", "This equipment is already allocated to that crew member on the film")
}

func (repository *PostgresRepository) DeleteAllocation(context context.Context, id int64) error {
	t := schema.ProductionEquipmentUsage
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_allocation")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
