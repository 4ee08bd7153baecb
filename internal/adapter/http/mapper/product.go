package mapper

import (
	"github.com/daveshb/taskload/internal/adapter/http/dto"
	"github.com/daveshb/taskload/internal/core/domain"
)

func ToProductItem(product domain.Product) dto.ProductItem {
	return dto.ProductItem{
		ID:          product.ID,
		NameProduct: product.NameProduct,
		Price:       product.Price,
		File:        product.File,
	}
}
