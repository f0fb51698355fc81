package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/bun612/shop-api/entity"
	orderpkg "github.com/bun612/shop-api/order"
)

// GormOrderRepo implements order.Repository using GORM.
type GormOrderRepo struct {
	db *gorm.DB
}

func NewGormOrderRepo(db *gorm.DB) orderpkg.Repository {
	return &GormOrderRepo{db: db}
}

// CreateOrder relies on GORM inserting the Items association together with
// the order row inside one transaction.
func (r *GormOrderRepo) CreateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error) {
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		return nil, errors.Wrap(err, "create order")
	}
	return o, nil
}

func (r *GormOrderRepo) GetOrderByID(ctx context.Context, id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items.Product").
		First(&o, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Wrap(err, "get order")
	}
	return &o, nil
}

func (r *GormOrderRepo) ListOrders(ctx context.Context) ([]entity.Order, error) {
	var list []entity.Order
	if err := r.db.WithContext(ctx).Preload("Customer").Order("id ASC").Find(&list).Error; err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return list, nil
}

func (r *GormOrderRepo) UpdateOrder(ctx context.Context, id uint, customerID *uint, total *float64, items []entity.OrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fields := map[string]interface{}{}
		if customerID != nil {
			fields["customer_id"] = *customerID
		}
		if total != nil {
			fields["total"] = *total
		}
		if len(fields) > 0 {
			if err := tx.Model(&entity.Order{}).Where("id = ?", id).Updates(fields).Error; err != nil {
				return errors.Wrap(err, "update order")
			}
		}
		if items == nil {
			return nil
		}
		if err := tx.Where("order_id = ?", id).Delete(&entity.OrderItem{}).Error; err != nil {
			return errors.Wrap(err, "clear order items")
		}
		for i := range items {
			items[i].ID = 0
			items[i].OrderID = id
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return errors.Wrap(err, "replace order items")
			}
		}
		return nil
	})
}

func (r *GormOrderRepo) UpdateOrderTotal(ctx context.Context, id uint, total float64) error {
	err := r.db.WithContext(ctx).Model(&entity.Order{}).Where("id = ?", id).Update("total", total).Error
	return errors.Wrap(err, "update order total")
}

func (r *GormOrderRepo) UpdateTotals(ctx context.Context, totals map[uint]float64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, total := range totals {
			if err := tx.Model(&entity.Order{}).Where("id = ?", id).Update("total", total).Error; err != nil {
				return errors.Wrap(err, "update order total")
			}
		}
		return nil
	})
}

func (r *GormOrderRepo) ListZeroTotalOrders(ctx context.Context) ([]entity.Order, error) {
	var list []entity.Order
	if err := r.db.WithContext(ctx).Preload("Items").Where("total = ?", 0).Order("id ASC").Find(&list).Error; err != nil {
		return nil, errors.Wrap(err, "list zero-total orders")
	}
	return list, nil
}

func (r *GormOrderRepo) DeleteOrder(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&entity.OrderItem{}).Error; err != nil {
			return errors.Wrap(err, "delete order items")
		}
		if err := tx.Delete(&entity.Order{}, id).Error; err != nil {
			return errors.Wrap(err, "delete order")
		}
		return nil
	})
}
