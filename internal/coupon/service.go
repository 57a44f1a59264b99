package coupon

import (
	"context"
	"strings"
	"time"

	"github.com/jsaurabh334/PanditJii/internal/metrics"
	"github.com/jsaurabh334/PanditJii/internal/pricing"
)

type Service interface {
	// Validate runs the full validation chain without consuming usage.
	Validate(ctx context.Context, code string) (*Coupon, error)
	// Redeem validates the coupon, consumes one usage and returns the discount
	// for the given amount. Usage is consumed even when the caller's later
	// settlement steps fail.
	Redeem(ctx context.Context, code string, amountPaise int64) (int64, error)
	// Apply is the standalone checkout-preview variant: same chain as Redeem,
	// with the final amount clamped at zero.
	Apply(ctx context.Context, code string, totalPaise int64) (*ApplyResult, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// NormalizeCode upper-cases and trims a coupon code; codes are stored
// normalized and matched case-insensitively.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// DiscountFor computes the raw discount for an amount. Percentage discounts
// are rounded to the nearest paise. The result is deliberately not clamped to
// the amount; callers clamp the final price instead.
func DiscountFor(c *Coupon, amountPaise int64) int64 {
	if c.DiscountType == DiscountFixed {
		return c.DiscountValue
	}
	return pricing.RoundPaise(float64(amountPaise) * float64(c.DiscountValue) / 100)
}

func (s *service) Validate(ctx context.Context, code string) (*Coupon, error) {
	c, err := s.repo.GetByCode(ctx, NormalizeCode(code))
	if err != nil {
		return nil, err
	}

	if time.Now().After(c.ExpiresAt) {
		return nil, ErrCouponExpired
	}

	if c.UsageLimit > 0 && c.UsageCount >= c.UsageLimit {
		return nil, ErrCouponExhausted
	}

	return c, nil
}

func (s *service) Redeem(ctx context.Context, code string, amountPaise int64) (int64, error) {
	c, err := s.Validate(ctx, code)
	if err != nil {
		metrics.RecordCouponApplication("rejected")
		return 0, err
	}

	discount := DiscountFor(c, amountPaise)

	if err := s.repo.ConsumeUsage(ctx, c.Code); err != nil {
		metrics.RecordCouponApplication("rejected")
		return 0, err
	}

	metrics.RecordCouponApplication("applied")
	return discount, nil
}

func (s *service) Apply(ctx context.Context, code string, totalPaise int64) (*ApplyResult, error) {
	discount, err := s.Redeem(ctx, code, totalPaise)
	if err != nil {
		return nil, err
	}

	final := totalPaise - discount
	if final < 0 {
		final = 0
	}

	return &ApplyResult{
		Code:          NormalizeCode(code),
		DiscountPaise: discount,
		FinalPaise:    final,
	}, nil
}
