package product

import (
	"context"
	"errors"

	"github.com/bun612/shop-api/entity"
)

var (
	// ErrProductNotFound is returned when no product row matches the id.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductInUse blocks deletion while order line items reference the product.
	ErrProductInUse = errors.New("product is in use by existing orders")
)

// ProductRequest carries the full set of product fields. Updates replace the
// stored row wholesale; there are no partial-field semantics.
type ProductRequest struct {
	Name        string
	Price       float64
	Image       string
	Description string
}

// ProductService exposes product-related business operations.
type ProductService interface {
	CreateProduct(ctx context.Context, req ProductRequest) (*entity.Product, error)
	GetProduct(ctx context.Context, id uint) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]entity.Product, error)
	UpdateProduct(ctx context.Context, id uint, req ProductRequest) error
	DeleteProduct(ctx context.Context, id uint) error
	// SeedSampleData resets all shop tables and loads the sample catalog,
	// returning how many products were inserted.
	SeedSampleData(ctx context.Context) (int, error)
}
