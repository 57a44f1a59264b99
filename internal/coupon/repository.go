package coupon

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrCouponNotFound  = errors.New("coupon not found")
	ErrCouponExpired   = errors.New("coupon expired")
	ErrCouponExhausted = errors.New("coupon usage limit reached")
	ErrCodeTaken       = errors.New("coupon code already exists")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, code, discountType string, discountValue int64, expiresAt time.Time, usageLimit int) (*Coupon, error) {
	query := `
		INSERT INTO coupons (code, discount_type, discount_value, expires_at, usage_limit)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, code, discount_type, discount_value, expires_at, usage_limit, usage_count, created_at
	`

	var c Coupon
	err := r.db.GetContext(ctx, &c, query, code, discountType, discountValue, expiresAt, usageLimit)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrCodeTaken
		}
		return nil, err
	}

	return &c, nil
}

func (r *repository) GetByCode(ctx context.Context, code string) (*Coupon, error) {
	query := `
		SELECT id, code, discount_type, discount_value, expires_at, usage_limit, usage_count, created_at
		FROM coupons
		WHERE code = $1
	`

	var c Coupon
	err := r.db.GetContext(ctx, &c, query, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}

	return &c, nil
}

func (r *repository) List(ctx context.Context) ([]Coupon, error) {
	query := `
		SELECT id, code, discount_type, discount_value, expires_at, usage_limit, usage_count, created_at
		FROM coupons
		ORDER BY created_at DESC
	`

	var coupons []Coupon
	err := r.db.SelectContext(ctx, &coupons, query)
	if err != nil {
		return nil, err
	}

	return coupons, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCouponNotFound
	}

	return nil
}

// ConsumeUsage increments usage_count with a guard on usage_limit so that two
// concurrent applications of a nearly exhausted coupon cannot both get through.
func (r *repository) ConsumeUsage(ctx context.Context, code string) error {
	query := `
		UPDATE coupons
		SET usage_count = usage_count + 1
		WHERE code = $1 AND (usage_limit = 0 OR usage_count < usage_limit)
	`

	result, err := r.db.ExecContext(ctx, query, code)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCouponExhausted
	}

	return nil
}
