package order

import (
	"context"
	"errors"

	"github.com/bun612/shop-api/entity"
)

var (
	// ErrOrderNotFound is returned when no order row matches the id.
	ErrOrderNotFound = errors.New("order not found")
	// ErrCustomerNotFound is returned when a referenced customer does not exist.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrProductNotFound is returned when a referenced product does not exist.
	ErrProductNotFound = errors.New("product not found")
)

// OrderItemRequest is one requested line item. Price is the unit price to
// snapshot on the order, not the product's current price.
type OrderItemRequest struct {
	ProductID uint
	Quantity  int
	Price     float64
}

// CreateOrderRequest carries the data required to place an order. The total
// is always recomputed from the items; clients cannot supply it.
type CreateOrderRequest struct {
	CustomerID uint
	Items      []OrderItemRequest
}

// UpdateOrderRequest carries a partial order update. Nil fields are left
// untouched. A non-nil Items list (including an empty one) replaces the
// stored line items wholesale.
type UpdateOrderRequest struct {
	CustomerID *uint
	Total      *float64
	Items      []OrderItemRequest
}

type Service interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*entity.Order, error)
	// GetOrder loads the order with customer and product display fields and
	// repairs a zero stored total before returning.
	GetOrder(ctx context.Context, id uint) (*entity.Order, error)
	ListOrders(ctx context.Context) ([]entity.Order, error)
	UpdateOrder(ctx context.Context, id uint, req UpdateOrderRequest) error
	DeleteOrder(ctx context.Context, id uint) error
	// RepairTotal recomputes a zero stored total from the order's line items
	// and persists any positive result, reporting whether a write happened.
	RepairTotal(ctx context.Context, o *entity.Order) (bool, error)
	// RepairZeroTotals recomputes every zero-total order and returns the ids
	// that were fixed. Orders whose items also sum to zero are left alone.
	RepairZeroTotals(ctx context.Context) ([]uint, error)
}

// ItemsTotal sums price*quantity over line items.
func ItemsTotal(items []entity.OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
