package product

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrProductNotFound = errors.New("product not found")

const productColumns = `id, vendor_id, name, description, category, price_paise, discount_percent, stock, is_available, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Product) (*Product, error) {
	query := `
		INSERT INTO products (vendor_id, name, description, category, price_paise, discount_percent, stock, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		RETURNING ` + productColumns

	var created Product
	err := r.db.GetContext(ctx, &created, query,
		p.VendorID, p.Name, p.Description, p.Category, p.PricePaise, p.DiscountPercent, p.Stock)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Product, error) {
	var p Product
	err := r.db.GetContext(ctx, &p, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	return &p, nil
}

func (r *repository) List(ctx context.Context, category string) ([]Product, error) {
	var products []Product
	var err error

	if category != "" {
		err = r.db.SelectContext(ctx, &products,
			`SELECT `+productColumns+` FROM products WHERE is_available = TRUE AND category = $1 ORDER BY created_at DESC`,
			category,
		)
	} else {
		err = r.db.SelectContext(ctx, &products,
			`SELECT `+productColumns+` FROM products WHERE is_available = TRUE ORDER BY created_at DESC`,
		)
	}
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *repository) ListByVendor(ctx context.Context, vendorID int) ([]Product, error) {
	var products []Product
	err := r.db.SelectContext(ctx, &products,
		`SELECT `+productColumns+` FROM products WHERE vendor_id = $1 ORDER BY created_at DESC`,
		vendorID,
	)
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *repository) Update(ctx context.Context, p *Product) (*Product, error) {
	query := `
		UPDATE products
		SET name = $1, description = $2, category = $3, price_paise = $4,
		    discount_percent = $5, stock = $6, is_available = $7
		WHERE id = $8
		RETURNING ` + productColumns

	var updated Product
	err := r.db.GetContext(ctx, &updated, query,
		p.Name, p.Description, p.Category, p.PricePaise, p.DiscountPercent, p.Stock, p.IsAvailable, p.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	return &updated, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}
