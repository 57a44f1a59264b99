package review

import (
	"context"

	"github.com/jmoiron/sqlx"
)

const reviewColumns = `id, user_id, pandit_id, product_id, rating, review, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rev *Review) (*Review, error) {
	query := `
		INSERT INTO reviews (user_id, pandit_id, product_id, rating, review)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + reviewColumns

	var created Review
	err := r.db.GetContext(ctx, &created, query,
		rev.UserID, rev.PanditID, rev.ProductID, rev.Rating, rev.Review)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) ListByPandit(ctx context.Context, panditID int) ([]ReviewWithAuthor, error) {
	return r.list(ctx, "r.pandit_id", panditID)
}

func (r *repository) ListByProduct(ctx context.Context, productID int) ([]ReviewWithAuthor, error) {
	return r.list(ctx, "r.product_id", productID)
}

func (r *repository) list(ctx context.Context, column string, id int) ([]ReviewWithAuthor, error) {
	query := `
		SELECT r.id, r.user_id, r.pandit_id, r.product_id, r.rating, r.review, r.created_at,
		       u.name AS user_name
		FROM reviews r
		JOIN users u ON r.user_id = u.id
		WHERE ` + column + ` = $1
		ORDER BY r.created_at DESC
	`

	var reviews []ReviewWithAuthor
	err := r.db.SelectContext(ctx, &reviews, query, id)
	if err != nil {
		return nil, err
	}

	return reviews, nil
}
