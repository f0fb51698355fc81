package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/bun612/shop-api/entity"
	productpkg "github.com/bun612/shop-api/product"
)

// GormProductRepo implements product.ProductRepository using GORM.
type GormProductRepo struct {
	db *gorm.DB
}

func NewGormProductRepo(db *gorm.DB) productpkg.ProductRepository {
	return &GormProductRepo{db: db}
}

func (r *GormProductRepo) StoreProduct(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, errors.Wrap(err, "store product")
	}
	return p, nil
}

func (r *GormProductRepo) GetProductByID(ctx context.Context, id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Wrap(err, "get product")
	}
	return &p, nil
}

func (r *GormProductRepo) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var list []entity.Product
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	return list, nil
}

// UpdateProduct overwrites all columns with a map so that zero values (an
// empty image, a zero price) are written as given.
func (r *GormProductRepo) UpdateProduct(ctx context.Context, id uint, p *entity.Product) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entity.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        p.Name,
		"price":       p.Price,
		"image":       p.Image,
		"description": p.Description,
	})
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "update product")
	}
	return res.RowsAffected, nil
}

func (r *GormProductRepo) DeleteProduct(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&entity.Product{}, id)
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "delete product")
	}
	return res.RowsAffected, nil
}

func (r *GormProductRepo) CountOrderItems(ctx context.Context, productID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.OrderItem{}).Where("product_id = ?", productID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count product references")
	}
	return count, nil
}

func (r *GormProductRepo) ProductExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "check product")
	}
	return count > 0, nil
}

// ResetShopData deletes dependents before owners so the wipe also works when
// the store enforces the foreign keys.
func (r *GormProductRepo) ResetShopData(ctx context.Context, samples []entity.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&entity.OrderItem{},
			&entity.Order{},
			&entity.Customer{},
			&entity.Product{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return errors.Wrap(err, "reset shop data")
			}
		}
		if len(samples) == 0 {
			return nil
		}
		if err := tx.Create(&samples).Error; err != nil {
			return errors.Wrap(err, "seed sample products")
		}
		return nil
	})
}
