package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockProductRepo struct{ mock.Mock }

func (m *MockProductRepo) Create(ctx context.Context, p *Product) (*Product, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockProductRepo) GetByID(ctx context.Context, id int) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockProductRepo) List(ctx context.Context, category string) ([]Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockProductRepo) ListByVendor(ctx context.Context, vendorID int) ([]Product, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockProductRepo) Update(ctx context.Context, p *Product) (*Product, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockProductRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func TestCreateProduct(t *testing.T) {
	repo := new(MockProductRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *Product) bool {
		return p.VendorID == 3 && p.Category == "Idols" && p.PricePaise == 250_000
	})).Return(&Product{ID: 1, VendorID: 3, Category: "Idols", PricePaise: 250_000}, nil)

	svc := NewService(repo)
	p, err := svc.Create(context.Background(), 3, CreateProductRequest{
		Name:        "Brass Ganesha",
		Description: "Hand cast",
		Category:    "Idols",
		PricePaise:  250_000,
		Stock:       5,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, p.ID)
	repo.AssertExpectations(t)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	svc := NewService(new(MockProductRepo))

	_, err := svc.Create(context.Background(), 3, CreateProductRequest{
		Name:        "X",
		Description: "Y",
		Category:    "Electronics",
		PricePaise:  100,
	})

	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestUpdateProductNotOwner(t *testing.T) {
	repo := new(MockProductRepo)
	repo.On("GetByID", mock.Anything, 1).Return(&Product{ID: 1, VendorID: 3}, nil)

	svc := NewService(repo)
	name := "Renamed"
	_, err := svc.Update(context.Background(), 99, 1, UpdateProductRequest{Name: &name})

	assert.ErrorIs(t, err, ErrNotOwner)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateProductPartial(t *testing.T) {
	repo := new(MockProductRepo)
	repo.On("GetByID", mock.Anything, 1).
		Return(&Product{ID: 1, VendorID: 3, Name: "Old", Stock: 5, PricePaise: 100_000, Category: "Idols", IsAvailable: true}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *Product) bool {
		return p.Name == "New" && p.Stock == 2 && p.PricePaise == 100_000
	})).Return(&Product{ID: 1, VendorID: 3, Name: "New", Stock: 2, PricePaise: 100_000}, nil)

	svc := NewService(repo)
	name := "New"
	stock := 2
	p, err := svc.Update(context.Background(), 3, 1, UpdateProductRequest{Name: &name, Stock: &stock})

	assert.NoError(t, err)
	assert.Equal(t, "New", p.Name)
	repo.AssertExpectations(t)
}

func TestDeleteProductOwnerOnly(t *testing.T) {
	repo := new(MockProductRepo)
	repo.On("GetByID", mock.Anything, 1).Return(&Product{ID: 1, VendorID: 3}, nil)
	repo.On("Delete", mock.Anything, 1).Return(nil)

	svc := NewService(repo)

	assert.NoError(t, svc.Delete(context.Background(), 3, 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 4, 1), ErrNotOwner)
}

func TestDeleteAnyIgnoresOwner(t *testing.T) {
	repo := new(MockProductRepo)
	repo.On("GetByID", mock.Anything, 1).Return(&Product{ID: 1, VendorID: 3}, nil)
	repo.On("Delete", mock.Anything, 1).Return(nil)

	svc := NewService(repo)

	assert.NoError(t, svc.DeleteAny(context.Background(), 1))
	repo.AssertExpectations(t)
}

func TestDeleteAnyNotFound(t *testing.T) {
	repo := new(MockProductRepo)
	repo.On("GetByID", mock.Anything, 99).Return(nil, ErrProductNotFound)

	svc := NewService(repo)

	assert.ErrorIs(t, svc.DeleteAny(context.Background(), 99), ErrProductNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestListRejectsUnknownCategory(t *testing.T) {
	svc := NewService(new(MockProductRepo))

	_, err := svc.List(context.Background(), "Electronics")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
