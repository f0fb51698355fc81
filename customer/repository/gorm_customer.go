package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	customerpkg "github.com/bun612/shop-api/customer"
	"github.com/bun612/shop-api/entity"
)

// GormCustomerRepo implements customer.CustomerRepository using GORM.
type GormCustomerRepo struct {
	db *gorm.DB
}

func NewGormCustomerRepo(db *gorm.DB) customerpkg.CustomerRepository {
	return &GormCustomerRepo{db: db}
}

func (r *GormCustomerRepo) StoreCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, errors.Wrap(err, "store customer")
	}
	return c, nil
}

func (r *GormCustomerRepo) GetCustomerByID(ctx context.Context, id uint) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Wrap(err, "get customer")
	}
	return &c, nil
}

func (r *GormCustomerRepo) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	var list []entity.Customer
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, errors.Wrap(err, "list customers")
	}
	return list, nil
}

func (r *GormCustomerRepo) UpdateCustomer(ctx context.Context, id uint, c *entity.Customer) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entity.Customer{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":  c.Name,
		"phone": c.Phone,
	})
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "update customer")
	}
	return res.RowsAffected, nil
}

func (r *GormCustomerRepo) DeleteCustomer(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&entity.Customer{}, id)
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "delete customer")
	}
	return res.RowsAffected, nil
}

func (r *GormCustomerRepo) CountOrders(ctx context.Context, customerID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Order{}).Where("customer_id = ?", customerID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count customer orders")
	}
	return count, nil
}

func (r *GormCustomerRepo) CustomerExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Customer{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "check customer")
	}
	return count > 0, nil
}
