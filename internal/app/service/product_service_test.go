package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appservice "github.com/daveshb/taskload/internal/app/service"
	"github.com/daveshb/taskload/internal/core/domain"
)

type productRepositoryMock struct {
	mock.Mock
}

func (m *productRepositoryMock) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(domain.Product), args.Error(1)
}

type imageStoreMock struct {
	mock.Mock
}

func (m *imageStoreMock) Save(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, name, data, contentType)
	return args.String(0), args.Error(1)
}

func TestProductService_CreateProduct_StoresImageFirst(t *testing.T) {
	input := domain.CreateProductInput{
		NameProduct: "Coffee",
		Price:       12.5,
		FileName:    "coffee.png",
		ContentType: "image/png",
		Data:        []byte{0x89, 0x50},
	}

	storeMock := new(imageStoreMock)
	storeMock.On("Save", mock.Anything, "coffee.png", input.Data, "image/png").Return("/uploads/abc.png", nil).Once()

	repositoryMock := new(productRepositoryMock)
	repositoryMock.On("CreateProduct", mock.Anything, domain.Product{NameProduct: "Coffee", Price: 12.5, File: "/uploads/abc.png"}).
		Return(domain.Product{ID: "p1", NameProduct: "Coffee", Price: 12.5, File: "/uploads/abc.png"}, nil).
		Once()

	service := appservice.NewProductService(repositoryMock, storeMock, time.Second)
	product, err := service.CreateProduct(context.Background(), input)

	require.NoError(t, err)
	require.Equal(t, "p1", product.ID)
	require.Equal(t, "/uploads/abc.png", product.File)
	storeMock.AssertExpectations(t)
	repositoryMock.AssertExpectations(t)
}

func TestProductService_CreateProduct_NoRowWhenImageFails(t *testing.T) {
	storeMock := new(imageStoreMock)
	storeMock.On("Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("disk full")).Once()

	repositoryMock := new(productRepositoryMock)

	service := appservice.NewProductService(repositoryMock, storeMock, time.Second)
	_, err := service.CreateProduct(context.Background(), domain.CreateProductInput{NameProduct: "Coffee", FileName: "coffee.png"})

	require.Error(t, err)
	repositoryMock.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	storeMock.AssertExpectations(t)
}
