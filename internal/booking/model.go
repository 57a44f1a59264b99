package booking

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCanceled  = "canceled"
)

// ValidStatus reports whether s is a known booking status. The settlement
// core only ever moves pending to completed or canceled; other transitions
// are reserved for the admin override endpoint.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

type Booking struct {
	ID       int       `db:"id" json:"id"`
	UserID   int       `db:"user_id" json:"user_id"`
	PanditID int       `db:"pandit_id" json:"pandit_id"`
	Date     time.Time `db:"booking_date" json:"date"`
	// BaseAmountPaise is the pre-surge, pre-discount price quoted by the caller.
	BaseAmountPaise int64 `db:"base_amount_paise" json:"base_amount_paise"`
	// AmountPaise is the final settled price: surge applied, discount subtracted.
	AmountPaise     int64   `db:"amount_paise" json:"amount_paise"`
	SurgeMultiplier float64 `db:"surge_multiplier" json:"surge_multiplier"`
	DiscountPaise   int64   `db:"discount_paise" json:"discount_paise"`
	CouponCode      *string `db:"coupon_code" json:"coupon_code,omitempty"`
	Status          string  `db:"status" json:"status"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type BookingWithDetails struct {
	Booking
	UserName    string `db:"user_name" json:"user_name"`
	UserEmail   string `db:"user_email" json:"user_email"`
	PanditName  string `db:"pandit_name" json:"pandit_name"`
	PanditEmail string `db:"pandit_email" json:"pandit_email"`
}

// Settlement is what a successful booking creation returns: the persisted
// booking plus the money movement that backed it.
type Settlement struct {
	Booking            *Booking `json:"booking"`
	DiscountPaise      int64    `json:"discount_paise"`
	FinalPaise         int64    `json:"final_paise"`
	WalletBalancePaise int64    `json:"wallet_balance_paise"`
}

type Dashboard struct {
	TotalBookings      int   `json:"total_bookings"`
	TotalEarningsPaise int64 `json:"total_earnings_paise"`
}

// AdminStats is the marketplace-wide dashboard for operators.
type AdminStats struct {
	TotalUsers    int `json:"total_users"`
	TotalVendors  int `json:"total_vendors"`
	TotalPandits  int `json:"total_pandits"`
	TotalBookings int `json:"total_bookings"`
}

type CreateBookingRequest struct {
	PanditID        int    `json:"pandit_id" binding:"required"`
	Date            string `json:"date" binding:"required"`
	BaseAmountPaise int64  `json:"base_amount_paise" binding:"required,gt=0"`
	CouponCode      string `json:"coupon_code"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
