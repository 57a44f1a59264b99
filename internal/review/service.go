package review

import (
	"context"
	"errors"
)

// ErrBadTarget is returned when a review names both a pandit and a product,
// or neither.
var ErrBadTarget = errors.New("review must target exactly one of pandit or product")

type Service interface {
	Create(ctx context.Context, userID int, req CreateReviewRequest) (*Review, error)
	ForPandit(ctx context.Context, panditID int) ([]ReviewWithAuthor, error)
	ForProduct(ctx context.Context, productID int) ([]ReviewWithAuthor, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, userID int, req CreateReviewRequest) (*Review, error) {
	if (req.PanditID == nil) == (req.ProductID == nil) {
		return nil, ErrBadTarget
	}

	return s.repo.Create(ctx, &Review{
		UserID:    userID,
		PanditID:  req.PanditID,
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Review:    req.Review,
	})
}

func (s *service) ForPandit(ctx context.Context, panditID int) ([]ReviewWithAuthor, error) {
	return s.repo.ListByPandit(ctx, panditID)
}

func (s *service) ForProduct(ctx context.Context, productID int) ([]ReviewWithAuthor, error) {
	return s.repo.ListByProduct(ctx, productID)
}
