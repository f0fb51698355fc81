package customer

import (
	"context"
	"errors"

	"github.com/bun612/shop-api/entity"
)

var (
	// ErrCustomerNotFound is returned when no customer row matches the id.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrCustomerHasOrders blocks deletion while orders reference the customer.
	ErrCustomerHasOrders = errors.New("customer has existing orders")
)

// CustomerRequest carries the full set of customer fields. Updates replace
// the stored row wholesale.
type CustomerRequest struct {
	Name  string
	Phone string
}

// CustomerService exposes customer-related business operations.
type CustomerService interface {
	CreateCustomer(ctx context.Context, req CustomerRequest) (*entity.Customer, error)
	GetCustomer(ctx context.Context, id uint) (*entity.Customer, error)
	ListCustomers(ctx context.Context) ([]entity.Customer, error)
	UpdateCustomer(ctx context.Context, id uint, req CustomerRequest) error
	DeleteCustomer(ctx context.Context, id uint) error
}
