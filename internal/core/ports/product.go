package ports

import (
	"context"

	"github.com/daveshb/taskload/internal/core/domain"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
}

// ImageStore persists an uploaded image and returns the URL the stored
// product record should reference.
type ImageStore interface {
	Save(ctx context.Context, name string, data []byte, contentType string) (string, error)
}

type ProductService interface {
	CreateProduct(ctx context.Context, input domain.CreateProductInput) (domain.Product, error)
}
