package product

import (
	"context"

	"github.com/bun612/shop-api/entity"
)

// ProductRepository specifies product related database operations.
type ProductRepository interface {
	StoreProduct(ctx context.Context, p *entity.Product) (*entity.Product, error)
	// GetProductByID returns nil without error when no row matches.
	GetProductByID(ctx context.Context, id uint) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]entity.Product, error)
	// UpdateProduct replaces every column of the matching row and reports how
	// many rows matched.
	UpdateProduct(ctx context.Context, id uint, p *entity.Product) (int64, error)
	// DeleteProduct removes the row and reports how many rows matched.
	DeleteProduct(ctx context.Context, id uint) (int64, error)
	// CountOrderItems reports how many order line items reference the product.
	CountOrderItems(ctx context.Context, productID uint) (int64, error)
	ProductExists(ctx context.Context, id uint) (bool, error)
	// ResetShopData wipes all shop tables and inserts the given sample
	// products atomically.
	ResetShopData(ctx context.Context, samples []entity.Product) error
}
