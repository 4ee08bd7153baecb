package service

import (
	"context"
	"time"

	"github.com/daveshb/taskload/internal/core/domain"
	"github.com/daveshb/taskload/internal/core/ports"
)

type ProductService struct {
	productRepository ports.ProductRepository
	imageStore        ports.ImageStore
	dbTimeout         time.Duration
}

func NewProductService(productRepository ports.ProductRepository, imageStore ports.ImageStore, dbTimeout time.Duration) *ProductService {
	return &ProductService{
		productRepository: productRepository,
		imageStore:        imageStore,
		dbTimeout:         dbTimeout,
	}
}

// CreateProduct stores the image first; the product row only ever
// references an image that was actually written.
func (s *ProductService) CreateProduct(ctx context.Context, input domain.CreateProductInput) (domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	fileURL, err := s.imageStore.Save(ctx, input.FileName, input.Data, input.ContentType)
	if err != nil {
		return domain.Product{}, err
	}

	return s.productRepository.CreateProduct(ctx, domain.Product{
		NameProduct: input.NameProduct,
		Price:       input.Price,
		File:        fileURL,
	})
}

var _ ports.ProductService = (*ProductService)(nil)
