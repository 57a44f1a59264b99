package user

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, name, email, phone, passwordHash, role string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ListByRole(ctx context.Context, role string) ([]User, error)
	ListAll(ctx context.Context) ([]User, error)
	// UpdateProfile changes only the non-nil fields.
	UpdateProfile(ctx context.Context, id int, name, phone *string) (*User, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	ToggleSuspended(ctx context.Context, id int) (*User, error)
	SetRole(ctx context.Context, id int, role string) (*User, error)
	SetApproved(ctx context.Context, id int, approved bool) (*User, error)
	Delete(ctx context.Context, id int) error
	Counts(ctx context.Context) (*RoleCounts, error)
	SetAvailability(ctx context.Context, userID int, dates []time.Time) error
	GetAvailability(ctx context.Context, userID int) ([]time.Time, error)
}
