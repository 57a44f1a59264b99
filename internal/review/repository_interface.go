package review

import "context"

type Repository interface {
	Create(ctx context.Context, r *Review) (*Review, error)
	ListByPandit(ctx context.Context, panditID int) ([]ReviewWithAuthor, error)
	ListByProduct(ctx context.Context, productID int) ([]ReviewWithAuthor, error)
}
