package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidState    = errors.New("invalid booking state")
)

const bookingColumns = `id, user_id, pandit_id, booking_date, base_amount_paise, amount_paise, surge_multiplier, discount_paise, coupon_code, status, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, b *Booking) (*Booking, error) {
	query := `
		INSERT INTO bookings (user_id, pandit_id, booking_date, base_amount_paise, amount_paise, surge_multiplier, discount_paise, coupon_code, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'pending')
		RETURNING ` + bookingColumns

	var created Booking
	err := r.db.GetContext(ctx, &created, query,
		b.UserID, b.PanditID, b.Date, b.BaseAmountPaise, b.AmountPaise, b.SurgeMultiplier, b.DiscountPaise, b.CouponCode)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Booking, error) {
	var b Booking
	err := r.db.GetContext(ctx, &b, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return &b, nil
}

func (r *repository) UpdateStatusFrom(ctx context.Context, id int, from, to string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET status = $1 WHERE id = $2 AND status = $3`,
		to, id, from,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrInvalidState
	}

	return nil
}

func (r *repository) SetStatus(ctx context.Context, id int, status string) (*Booking, error) {
	query := `
		UPDATE bookings
		SET status = $1
		WHERE id = $2
		RETURNING ` + bookingColumns

	var b Booking
	err := r.db.GetContext(ctx, &b, query, status, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return &b, nil
}

func (r *repository) ListAll(ctx context.Context) ([]BookingWithDetails, error) {
	query := `
		SELECT
			b.id, b.user_id, b.pandit_id, b.booking_date, b.base_amount_paise, b.amount_paise,
			b.surge_multiplier, b.discount_paise, b.coupon_code, b.status, b.created_at,
			u.name AS user_name,
			u.email AS user_email,
			p.name AS pandit_name,
			p.email AS pandit_email
		FROM bookings b
		JOIN users u ON b.user_id = u.id
		JOIN users p ON b.pandit_id = p.id
		ORDER BY b.created_at DESC
	`

	var bookings []BookingWithDetails
	err := r.db.SelectContext(ctx, &bookings, query)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]Booking, error) {
	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings,
		`SELECT `+bookingColumns+` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) ListByPandit(ctx context.Context, panditID int) ([]BookingWithDetails, error) {
	query := `
		SELECT
			b.id, b.user_id, b.pandit_id, b.booking_date, b.base_amount_paise, b.amount_paise,
			b.surge_multiplier, b.discount_paise, b.coupon_code, b.status, b.created_at,
			u.name AS user_name,
			u.email AS user_email,
			p.name AS pandit_name,
			p.email AS pandit_email
		FROM bookings b
		JOIN users u ON b.user_id = u.id
		JOIN users p ON b.pandit_id = p.id
		WHERE b.pandit_id = $1
		ORDER BY b.created_at DESC
	`

	var bookings []BookingWithDetails
	err := r.db.SelectContext(ctx, &bookings, query, panditID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) CountByPandit(ctx context.Context, panditID int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM bookings WHERE pandit_id = $1`, panditID)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM bookings`)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}
