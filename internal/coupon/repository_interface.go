package coupon

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, code, discountType string, discountValue int64, expiresAt time.Time, usageLimit int) (*Coupon, error)
	GetByCode(ctx context.Context, code string) (*Coupon, error)
	List(ctx context.Context) ([]Coupon, error)
	Delete(ctx context.Context, id int) error
	ConsumeUsage(ctx context.Context, code string) error
}
