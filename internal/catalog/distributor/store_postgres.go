package distributor

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

func (repository *PostgresRepository) ListDistributors(context context.Context, f Filter, limit, offset int) ([]*Distributor, int, error) {
	t := schema.CatalogDistributor

	clause := " WHERE 1=1"
	args := []any{}

	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		clause += " AND " + t.Name + " ILIKE $" + strconv.Itoa(len(args))
	}
	if f.Region != "" {
		args = append(args, f.Region)
		clause += " AND " + t.Region + " = $" + strconv.Itoa(len(args))
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table) + clause

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_distributors")
	}

	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s`,
		t.ID, t.Name, t.Region, t.CreatedAt, t.UpdatedAt, t.Table,
	) + clause + fmt.Sprintf(" ORDER BY %s ASC LIMIT $%d OFFSET $%d", t.Name, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_distributors")
	}
	defer rows.Close()

	var distributors []*Distributor
	for rows.Next() {
		d := &Distributor{}
		if err := rows.Scan(&d.ID, &d.Name, &d.Region, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_distributor")
		}
		distributors = append(distributors, d)
	}

	return distributors, total, nil
}

func (repository *PostgresRepository) GetDistributor(context context.Context, id int64) (*Distributor, error) {
	t := schema.CatalogDistributor
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		t.ID, t.Name, t.Region, t.CreatedAt, t.UpdatedAt, t.Table, t.ID,
	)

	d := &Distributor{}
	err := repository.db.QueryRow(context, query, id).Scan(&d.ID, &d.Name, &d.Region, &d.CreatedAt, &d.UpdatedAt)

	return d, dberr.Wrap(err, "get_distributor")
}

func (repository *PostgresRepository) CreateDistributor(context context.Context, d *Distributor) error {
	t := schema.CatalogDistributor
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		t.Table, t.Name, t.Region, t.CreatedAt, t.UpdatedAt,
		t.ID, t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, d.Name, d.Region).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	return dberr.WrapConflict(err, "create_distributor", "A distributor with this name already exists")
}

func (repository *PostgresRepository) UpdateDistributor(context context.Context, d *Distributor) error {
	t := schema.CatalogDistributor
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.Name, t.Region, t.UpdatedAt,
		t.ID,
		t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, d.ID, d.Name, d.Region).Scan(&d.UpdatedAt)
	return dberr.WrapConflict(err, "update_distributor", "A distributor with this name already exists")
}

func (repository *PostgresRepository) ListDeals(context context.Context, distributorID int64) ([]*Deal, error) {
	t := schema.ProductionDistributedBy
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC
	`,
		t.ID, t.DistributorID, t.FilmID, t.Fee, t.Territory, t.CreatedAt,
		t.Table, t.DistributorID, t.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, distributorID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_deals")
	}
	defer rows.Close()

	var deals []*Deal
	for rows.Next() {
		deal := &Deal{}
		if err := rows.Scan(&deal.ID, &deal.DistributorID, &deal.FilmID, &deal.Fee, &deal.Territory, &deal.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_deal")
		}
		deals = append(deals, deal)
	}

	return deals, nil
}

func (repository *PostgresRepository) AddDeal(context context.Context, deal *Deal) error {
	t := schema.ProductionDistributedBy
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING %s, %s
	`,
		t.Table, t.DistributorID, t.FilmID, t.Fee, t.Territory, t.CreatedAt,
		t.ID, t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, deal.DistributorID, deal.FilmID, deal.Fee, deal.Territory).Scan(&deal.ID, &deal.CreatedAt)
	return dberr.WrapConflict(err, "add_deal", "This distributor already has a deal for the film")
}

func (repository *PostgresRepository) DeleteDistributor(context context.Context, id int64) error {
	t := schema.CatalogDistributor
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_distributor")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
