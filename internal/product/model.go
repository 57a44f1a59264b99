package product

import "time"

// Categories mirror the storefront taxonomy; the database enforces the same
// set with a CHECK constraint.
var Categories = []string{
	"Puja Items",
	"Idols",
	"Flowers",
	"Clothing",
	"Accessories",
	"Miscellaneous",
}

func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Product struct {
	ID          int    `db:"id" json:"id"`
	VendorID    int    `db:"vendor_id" json:"vendor_id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Category    string `db:"category" json:"category"`
	PricePaise  int64  `db:"price_paise" json:"price_paise"`
	// DiscountPercent is a listing-level display discount; it never feeds the
	// booking settlement math.
	DiscountPercent int       `db:"discount_percent" json:"discount_percent"`
	Stock           int       `db:"stock" json:"stock"`
	IsAvailable     bool      `db:"is_available" json:"is_available"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type CreateProductRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description" binding:"required"`
	Category        string `json:"category" binding:"required"`
	PricePaise      int64  `json:"price_paise" binding:"required,gt=0"`
	DiscountPercent int    `json:"discount_percent" binding:"gte=0,lte=100"`
	Stock           int    `json:"stock" binding:"gte=0"`
}

type UpdateProductRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	Category        *string `json:"category"`
	PricePaise      *int64  `json:"price_paise"`
	DiscountPercent *int    `json:"discount_percent"`
	Stock           *int    `json:"stock"`
	IsAvailable     *bool   `json:"is_available"`
}
