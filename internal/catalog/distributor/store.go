package distributor

import "context"

type Repository interface {
	ListDistributors(context context.Context, f Filter, limit, offset int) ([]*Distributor, int, error)
	GetDistributor(context context.Context, id int64) (*Distributor, error)
	CreateDistributor(context context.Context, d *Distributor) error
	UpdateDistributor(context context.Context, d *Distributor) error
	DeleteDistributor(context context.Context, id int64) error

	ListDeals(context context.Context, distributorID int64) ([]*Deal, error)
	AddDeal(context context.Context, deal *Deal) error
}
