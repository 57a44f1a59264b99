package coupon

import "time"

const (
	DiscountFixed      = "fixed"
	DiscountPercentage = "percentage"
)

type Coupon struct {
	ID           int       `db:"id" json:"id"`
	Code         string    `db:"code" json:"code"`
	DiscountType string    `db:"discount_type" json:"discount_type"`
	// DiscountValue is paise for fixed coupons and a whole percent for
	// percentage coupons.
	DiscountValue int64     `db:"discount_value" json:"discount_value"`
	ExpiresAt     time.Time `db:"expires_at" json:"expires_at"`
	// UsageLimit zero means unlimited.
	UsageLimit int       `db:"usage_limit" json:"usage_limit"`
	UsageCount int       `db:"usage_count" json:"usage_count"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type ApplyResult struct {
	Code          string `json:"code"`
	DiscountPaise int64  `json:"discount_paise"`
	FinalPaise    int64  `json:"final_paise"`
}
