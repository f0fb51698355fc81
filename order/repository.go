package order

import (
	"context"

	"github.com/bun612/shop-api/entity"
)

// Repository defines DB operations for orders and their line items.
type Repository interface {
	// CreateOrder inserts the order row and all attached line items in a
	// single transaction.
	CreateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error)
	// GetOrderByID loads the order with its customer and its line items
	// joined to their products. Returns nil without error when no row matches.
	GetOrderByID(ctx context.Context, id uint) (*entity.Order, error)
	// ListOrders returns all orders with customer display fields preloaded.
	ListOrders(ctx context.Context) ([]entity.Order, error)
	// UpdateOrder overwrites the given header fields (nil leaves a field
	// untouched) and, when items is non-nil, wholesale-replaces the order's
	// line items. Everything runs in one transaction.
	UpdateOrder(ctx context.Context, id uint, customerID *uint, total *float64, items []entity.OrderItem) error
	UpdateOrderTotal(ctx context.Context, id uint, total float64) error
	// UpdateTotals persists recomputed totals for the given order ids in a
	// single transaction.
	UpdateTotals(ctx context.Context, totals map[uint]float64) error
	// ListZeroTotalOrders returns orders whose stored total is zero, line
	// items preloaded.
	ListZeroTotalOrders(ctx context.Context) ([]entity.Order, error)
	// DeleteOrder removes the order's line items and then the order itself in
	// one transaction.
	DeleteOrder(ctx context.Context, id uint) error
}
