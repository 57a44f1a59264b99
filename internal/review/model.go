package review

import "time"

type Review struct {
	ID     int  `db:"id" json:"id"`
	UserID int  `db:"user_id" json:"user_id"`
	// Exactly one of PanditID / ProductID is set; the table enforces it.
	PanditID  *int      `db:"pandit_id" json:"pandit_id,omitempty"`
	ProductID *int      `db:"product_id" json:"product_id,omitempty"`
	Rating    int       `db:"rating" json:"rating"`
	Review    string    `db:"review" json:"review"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type ReviewWithAuthor struct {
	Review
	UserName string `db:"user_name" json:"user_name"`
}

type CreateReviewRequest struct {
	PanditID  *int   `json:"pandit_id"`
	ProductID *int   `json:"product_id"`
	Rating    int    `json:"rating" binding:"required,gte=1,lte=5"`
	Review    string `json:"review" binding:"required"`
}
