package booking

import "context"

type Repository interface {
	Insert(ctx context.Context, b *Booking) (*Booking, error)
	GetByID(ctx context.Context, id int) (*Booking, error)
	// UpdateStatusFrom moves a booking between statuses only when it is
	// currently in the expected state; losing the race returns ErrInvalidState.
	UpdateStatusFrom(ctx context.Context, id int, from, to string) error
	// SetStatus is the unconditional admin override.
	SetStatus(ctx context.Context, id int, status string) (*Booking, error)
	ListAll(ctx context.Context) ([]BookingWithDetails, error)
	ListByUser(ctx context.Context, userID int) ([]Booking, error)
	ListByPandit(ctx context.Context, panditID int) ([]BookingWithDetails, error)
	CountByPandit(ctx context.Context, panditID int) (int, error)
	Count(ctx context.Context) (int, error)
	// Delete removes a booking outright; money already settled is untouched.
	Delete(ctx context.Context, id int) error
}
