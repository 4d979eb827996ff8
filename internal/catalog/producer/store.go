package producer

import "context"

type Repository interface {
	ListProducers(context context.Context, f Filter, limit, offset int) ([]*Producer, int, error)
	GetProducer(context context.Context, id int64) (*Producer, error)
	CreateProducer(context context.Context, p *Producer) error
	UpdateProducer(context context.Context, p *Producer) error
	DeleteProducer(context context.Context, id int64) error

	ListInvestments(context context.Context, producerID int64) ([]*Investment, error)
	AddInvestment(context context.Context, inv *Investment) error
}
