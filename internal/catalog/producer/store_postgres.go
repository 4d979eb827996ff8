package producer

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

func (repository *PostgresRepository) ListProducers(context context.Context, f Filter, limit, offset int) ([]*Producer, int, error) {
	t := schema.CatalogProducer

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE 1=1
	`,
		t.ID, t.Name, t.ProductionHouse, t.Contact, t.CreatedAt, t.UpdatedAt,
		t.Table,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE 1=1`, t.Table)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		condition := fmt.Sprintf(" AND (%s ILIKE $1 OR %s ILIKE $1)", t.Name, t.ProductionHouse)
		query += condition
		countQuery += condition
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT $%d OFFSET $%d", t.Name, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_producers")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_producers")
	}
	defer rows.Close()

	var producers []*Producer
	for rows.Next() {
		p := &Producer{}
		if err := rows.Scan(&p.ID, &p.Name, &p.ProductionHouse, &p.Contact, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_producer")
		}
		producers = append(producers, p)
	}

	return producers, total, nil
}

func (repository *PostgresRepository) GetProducer(context context.Context, id int64) (*Producer, error) {
	t := schema.CatalogProducer
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		t.ID, t.Name, t.ProductionHouse, t.Contact, t.CreatedAt, t.UpdatedAt,
		t.Table, t.ID,
	)

	p := &Producer{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&p.ID, &p.Name, &p.ProductionHouse, &p.Contact, &p.CreatedAt, &p.UpdatedAt,
	)

	return p, dberr.Wrap(err, "get_producer")
}

func (repository *PostgresRepository) CreateProducer(context context.Context, p *Producer) error {
	t := schema.CatalogProducer
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		t.Table, t.Name, t.ProductionHouse, t.Contact, t.CreatedAt, t.UpdatedAt,
		t.ID, t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, p.Name, p.ProductionHouse, p.Contact).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return dberr.Wrap(err, "create_producer")
}

func (repository *PostgresRepository) UpdateProducer(context context.Context, p *Producer) error {
	t := schema.CatalogProducer
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.Name, t.ProductionHouse, t.Contact, t.UpdatedAt,
		t.ID,
		t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, p.ID, p.Name, p.ProductionHouse, p.Contact).Scan(&p.UpdatedAt)
	return dberr.Wrap(err, "update_producer")
}

func (repository *PostgresRepository) ListInvestments(context context.Context, producerID int64) ([]*Investment, error) {
	t := schema.ProductionProducedBy
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC
	`,
		t.ID, t.ProducerID, t.FilmID, t.InvestmentAmount, t.CreatedAt,
		t.Table, t.ProducerID, t.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, producerID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_investments")
	}
	defer rows.Close()

	var investments []*Investment
	for rows.Next() {
		inv := &Investment{}
		if err := rows.Scan(&inv.ID, &inv.ProducerID, &inv.FilmID, &inv.Amount, &inv.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_investment")
		}
		investments = append(investments, inv)
	}

	return investments, nil
}

func (repository *PostgresRepository) AddInvestment(context context.Context, inv *Investment) error {
	t := schema.ProductionProducedBy
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s, %s
	`,
		t.Table, t.ProducerID, t.FilmID, t.InvestmentAmount, t.CreatedAt,
		t.ID, t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, inv.ProducerID, inv.FilmID, inv.Amount).Scan(&inv.ID, &inv.CreatedAt)
	return dberr.WrapConflict(err, "add_investment", "This producer already has an investment in the film")
}

func (repository *PostgresRepository) DeleteProducer(context context.Context, id int64) error {
	t := schema.CatalogProducer
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_producer")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
