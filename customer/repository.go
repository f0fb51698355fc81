package customer

import (
	"context"

	"github.com/bun612/shop-api/entity"
)

// CustomerRepository specifies customer related database operations.
type CustomerRepository interface {
	StoreCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	// GetCustomerByID returns nil without error when no row matches.
	GetCustomerByID(ctx context.Context, id uint) (*entity.Customer, error)
	ListCustomers(ctx context.Context) ([]entity.Customer, error)
	// UpdateCustomer replaces every column of the matching row and reports how
	// many rows matched.
	UpdateCustomer(ctx context.Context, id uint, c *entity.Customer) (int64, error)
	// DeleteCustomer removes the row and reports how many rows matched.
	DeleteCustomer(ctx context.Context, id uint) (int64, error)
	// CountOrders reports how many orders reference the customer.
	CountOrders(ctx context.Context, customerID uint) (int64, error)
	CustomerExists(ctx context.Context, id uint) (bool, error)
}
