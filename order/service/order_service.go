package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	customerpkg "github.com/bun612/shop-api/customer"
	"github.com/bun612/shop-api/entity"
	orderpkg "github.com/bun612/shop-api/order"
	productpkg "github.com/bun612/shop-api/product"
)

// orderService implements order.Service. It leans on the customer and product
// repositories for the referential checks that gate every order write.
type orderService struct {
	repo      orderpkg.Repository
	customers customerpkg.CustomerRepository
	products  productpkg.ProductRepository
}

func NewOrderService(repo orderpkg.Repository, customers customerpkg.CustomerRepository, products productpkg.ProductRepository) orderpkg.Service {
	return &orderService{repo: repo, customers: customers, products: products}
}

// CreateOrder verifies every referenced row before anything is written, so a
// missing customer or product leaves no order or line-item rows behind. The
// total is always recomputed from the items; any client-supplied total is
// ignored. Each line item keeps the client-supplied unit price as a
// historical snapshot.
func (s *orderService) CreateOrder(ctx context.Context, req orderpkg.CreateOrderRequest) (*entity.Order, error) {
	exists, err := s.customers.CustomerExists(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, orderpkg.ErrCustomerNotFound
	}

	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		ok, err := s.products.ProductExists(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, orderpkg.ErrProductNotFound
		}
		items = append(items, entity.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	o := &entity.Order{
		CustomerID: req.CustomerID,
		OrderDate:  time.Now().UTC(),
		Total:      orderpkg.ItemsTotal(items),
		Items:      items,
	}
	return s.repo.CreateOrder(ctx, o)
}

func (s *orderService) GetOrder(ctx context.Context, id uint) (*entity.Order, error) {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, orderpkg.ErrOrderNotFound
	}
	if _, err := s.RepairTotal(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]entity.Order, error) {
	return s.repo.ListOrders(ctx)
}

// UpdateOrder applies a partial update. A supplied customer id must resolve;
// the total is then taken from the request as-is, not recomputed. A supplied
// item list replaces the stored items wholesale, and any unresolvable
// product aborts the whole update before the repository is touched.
func (s *orderService) UpdateOrder(ctx context.Context, id uint, req orderpkg.UpdateOrderRequest) error {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return err
	}
	if o == nil {
		return orderpkg.ErrOrderNotFound
	}

	if req.CustomerID != nil {
		ok, err := s.customers.CustomerExists(ctx, *req.CustomerID)
		if err != nil {
			return err
		}
		if !ok {
			return orderpkg.ErrCustomerNotFound
		}
	}

	var items []entity.OrderItem
	if req.Items != nil {
		items = make([]entity.OrderItem, 0, len(req.Items))
		for _, it := range req.Items {
			ok, err := s.products.ProductExists(ctx, it.ProductID)
			if err != nil {
				return err
			}
			if !ok {
				return orderpkg.ErrProductNotFound
			}
			items = append(items, entity.OrderItem{
				OrderID:   id,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				Price:     it.Price,
			})
		}
	}
	return s.repo.UpdateOrder(ctx, id, req.CustomerID, req.Total, items)
}

func (s *orderService) DeleteOrder(ctx context.Context, id uint) error {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return err
	}
	if o == nil {
		return orderpkg.ErrOrderNotFound
	}
	return s.repo.DeleteOrder(ctx, id)
}

// RepairTotal is the self-healing step invoked by the read path. It only
// writes when the stored total is zero and the line items sum to a positive
// amount, so repeated reads after a repair are pure.
func (s *orderService) RepairTotal(ctx context.Context, o *entity.Order) (bool, error) {
	if o.Total != 0 {
		return false, nil
	}
	sum := orderpkg.ItemsTotal(o.Items)
	if sum <= 0 {
		return false, nil
	}
	if err := s.repo.UpdateOrderTotal(ctx, o.ID, sum); err != nil {
		return false, err
	}
	o.Total = sum
	logrus.WithFields(logrus.Fields{"order_id": o.ID, "total": sum}).Info("repaired zero order total")
	return true, nil
}

func (s *orderService) RepairZeroTotals(ctx context.Context) ([]uint, error) {
	orders, err := s.repo.ListZeroTotalOrders(ctx)
	if err != nil {
		return nil, err
	}
	fixed := make([]uint, 0)
	totals := make(map[uint]float64)
	for i := range orders {
		sum := orderpkg.ItemsTotal(orders[i].Items)
		if sum > 0 {
			totals[orders[i].ID] = sum
			fixed = append(fixed, orders[i].ID)
		}
	}
	if len(totals) > 0 {
		if err := s.repo.UpdateTotals(ctx, totals); err != nil {
			return nil, err
		}
	}
	logrus.WithField("orders_fixed", len(fixed)).Info("zero-total repair completed")
	return fixed, nil
}
