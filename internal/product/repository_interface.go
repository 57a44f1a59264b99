package product

import "context"

type Repository interface {
	Create(ctx context.Context, p *Product) (*Product, error)
	GetByID(ctx context.Context, id int) (*Product, error)
	List(ctx context.Context, category string) ([]Product, error)
	ListByVendor(ctx context.Context, vendorID int) ([]Product, error)
	Update(ctx context.Context, p *Product) (*Product, error)
	Delete(ctx context.Context, id int) error
}
