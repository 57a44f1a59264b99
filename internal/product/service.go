package product

import (
	"context"
	"errors"
)

var (
	ErrNotOwner        = errors.New("product belongs to another vendor")
	ErrUnknownCategory = errors.New("unknown product category")
)

type Service interface {
	Create(ctx context.Context, vendorID int, req CreateProductRequest) (*Product, error)
	Get(ctx context.Context, id int) (*Product, error)
	List(ctx context.Context, category string) ([]Product, error)
	ListMine(ctx context.Context, vendorID int) ([]Product, error)
	// Update applies a partial update; only the owning vendor may change a
	// listing.
	Update(ctx context.Context, vendorID, productID int, req UpdateProductRequest) (*Product, error)
	Delete(ctx context.Context, vendorID, productID int) error
	// DeleteAny removes a listing regardless of owner, for admins.
	DeleteAny(ctx context.Context, productID int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, vendorID int, req CreateProductRequest) (*Product, error) {
	if !ValidCategory(req.Category) {
		return nil, ErrUnknownCategory
	}

	return s.repo.Create(ctx, &Product{
		VendorID:        vendorID,
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		PricePaise:      req.PricePaise,
		DiscountPercent: req.DiscountPercent,
		Stock:           req.Stock,
	})
}

func (s *service) Get(ctx context.Context, id int) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, category string) ([]Product, error) {
	if category != "" && !ValidCategory(category) {
		return nil, ErrUnknownCategory
	}
	return s.repo.List(ctx, category)
}

func (s *service) ListMine(ctx context.Context, vendorID int) ([]Product, error) {
	return s.repo.ListByVendor(ctx, vendorID)
}

func (s *service) Update(ctx context.Context, vendorID, productID int, req UpdateProductRequest) (*Product, error) {
	p, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p.VendorID != vendorID {
		return nil, ErrNotOwner
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Category != nil {
		if !ValidCategory(*req.Category) {
			return nil, ErrUnknownCategory
		}
		p.Category = *req.Category
	}
	if req.PricePaise != nil {
		p.PricePaise = *req.PricePaise
	}
	if req.DiscountPercent != nil {
		p.DiscountPercent = *req.DiscountPercent
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.IsAvailable != nil {
		p.IsAvailable = *req.IsAvailable
	}

	return s.repo.Update(ctx, p)
}

func (s *service) Delete(ctx context.Context, vendorID, productID int) error {
	p, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p.VendorID != vendorID {
		return ErrNotOwner
	}

	return s.repo.Delete(ctx, productID)
}

func (s *service) DeleteAny(ctx context.Context, productID int) error {
	if _, err := s.repo.GetByID(ctx, productID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, productID)
}
