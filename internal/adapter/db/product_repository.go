package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/daveshb/taskload/internal/core/domain"
	"github.com/daveshb/taskload/internal/core/ports"
)

const insertProductQuery = `
INSERT INTO products (id, name_product, price, file)
VALUES (?, ?, ?, ?);
`

type ProductRepository struct {
	db *sqlx.DB
}

var _ ports.ProductRepository = (*ProductRepository)(nil)

func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	product.ID = uuid.NewString()

	if _, err := r.db.ExecContext(ctx, insertProductQuery, product.ID, product.NameProduct, product.Price, product.File); err != nil {
		return domain.Product{}, err
	}

	return product, nil
}
