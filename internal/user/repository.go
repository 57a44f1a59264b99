package user

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var ErrUserNotFound = errors.New("user not found")

const userColumns = "id, name, email, phone, password_hash, role, is_suspended, is_approved, created_at"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name, email, phone, passwordHash, role string) (*User, error) {
	query := `
		INSERT INTO users (name, email, phone, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	var u User
	err := r.db.GetContext(ctx, &u, query, name, email, phone, passwordHash, role)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &u, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*User, error) {
	var u User
	err := r.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &u, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func (r *repository) ListByRole(ctx context.Context, role string) ([]User, error) {
	var users []User
	err := r.db.SelectContext(ctx, &users, `SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY name`, role)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repository) ListAll(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.SelectContext(ctx, &users, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repository) UpdateProfile(ctx context.Context, id int, name, phone *string) (*User, error) {
	query := `
		UPDATE users
		SET name = COALESCE($2, name), phone = COALESCE($3, phone)
		WHERE id = $1
		RETURNING ` + userColumns

	var u User
	err := r.db.GetContext(ctx, &u, query, id, name, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE users SET password_hash = $2 WHERE id = $1`, id, passwordHash)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *repository) ToggleSuspended(ctx context.Context, id int) (*User, error) {
	query := `
		UPDATE users
		SET is_suspended = NOT is_suspended
		WHERE id = $1
		RETURNING ` + userColumns

	var u User
	err := r.db.GetContext(ctx, &u, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) SetRole(ctx context.Context, id int, role string) (*User, error) {
	var u User
	err := r.db.GetContext(ctx, &u, `UPDATE users SET role = $2 WHERE id = $1 RETURNING `+userColumns, id, role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) SetApproved(ctx context.Context, id int, approved bool) (*User, error) {
	var u User
	err := r.db.GetContext(ctx, &u, `UPDATE users SET is_approved = $2 WHERE id = $1 RETURNING `+userColumns, id, approved)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *repository) Counts(ctx context.Context) (*RoleCounts, error) {
	query := `
		SELECT COUNT(*) AS total_users,
		       COUNT(*) FILTER (WHERE role = 'vendor') AS total_vendors,
		       COUNT(*) FILTER (WHERE role = 'pandit') AS total_pandits
		FROM users
	`

	var counts RoleCounts
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		return nil, err
	}
	return &counts, nil
}

// SetAvailability replaces the pandit's declared dates wholesale, matching the
// legacy update semantics.
func (r *repository) SetAvailability(ctx context.Context, userID int, dates []time.Time) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM pandit_availability WHERE user_id = $1`, userID); err != nil {
		return err
	}

	for _, d := range dates {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO pandit_availability (user_id, available_on)
			 VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`,
			userID, d,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *repository) GetAvailability(ctx context.Context, userID int) ([]time.Time, error) {
	var dates []time.Time
	err := r.db.SelectContext(ctx, &dates,
		`SELECT available_on FROM pandit_availability WHERE user_id = $1 ORDER BY available_on`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return dates, nil
}
