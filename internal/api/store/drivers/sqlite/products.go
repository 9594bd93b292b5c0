package sqlite

import (
	"context"

	"github.com/shkapi/storefront/internal/api/domain"
)

type productsRepo struct {
	db dbtx
}

const listProductsSQL = `
SELECT id, name, description, price, image, created_at
FROM products
ORDER BY created_at DESC, id DESC`

func (r *productsRepo) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, listProductsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

const createProductSQL = `
INSERT INTO products (id, name, description, price, image, created_at)
VALUES (?, ?, ?, ?, ?, ?)`

func (r *productsRepo) CreateProduct(ctx context.Context, p domain.Product) error {
	_, err := r.db.ExecContext(ctx, createProductSQL,
		p.ID, p.Name, p.Description, p.Price, p.Image, p.CreatedAt)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}
