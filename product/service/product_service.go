package service

import (
	"context"

	"github.com/bun612/shop-api/entity"
	productpkg "github.com/bun612/shop-api/product"
)

// sampleProducts is the catalog loaded by the init-data endpoint.
var sampleProducts = []entity.Product{
	{
		Name:        "iPhone 14 Pro Max",
		Price:       27990000,
		Image:       "https://th.bing.com/th/id/OIP.HlFVZumCmO9aSI_w5x7tIgHaEK?rs=1&pid=ImgDetMain",
		Description: "iPhone 14 Pro Max 128GB",
	},
	{
		Name:        "Samsung Galaxy S23 Ultra",
		Price:       23990000,
		Image:       "https://cdn.tgdd.vn/Products/Images/42/249948/samsung-galaxy-s23-ultra-thumb-xanh-600x600.jpg",
		Description: "Samsung Galaxy S23 Ultra with S-Pen",
	},
	{
		Name:        "Xiaomi 13 Pro",
		Price:       19990000,
		Image:       "https://cdn.tgdd.vn/Products/Images/42/267984/xiaomi-13-pro-thumb-1-600x600.jpg",
		Description: "Xiaomi 13 Pro with Leica camera",
	},
}

// productService implements ProductService.
type productService struct {
	repo productpkg.ProductRepository
}

// NewProductService constructs a ProductService backed by the provided repository.
func NewProductService(repo productpkg.ProductRepository) productpkg.ProductService {
	return &productService{repo: repo}
}

func (s *productService) CreateProduct(ctx context.Context, req productpkg.ProductRequest) (*entity.Product, error) {
	p := &entity.Product{
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
	}
	return s.repo.StoreProduct(ctx, p)
}

func (s *productService) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	p, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, productpkg.ErrProductNotFound
	}
	return p, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *productService) UpdateProduct(ctx context.Context, id uint, req productpkg.ProductRequest) error {
	p := &entity.Product{
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
	}
	matched, err := s.repo.UpdateProduct(ctx, id, p)
	if err != nil {
		return err
	}
	if matched == 0 {
		return productpkg.ErrProductNotFound
	}
	return nil
}

// DeleteProduct refuses to remove a product that order line items still
// reference, regardless of any foreign keys the store may enforce.
func (s *productService) DeleteProduct(ctx context.Context, id uint) error {
	refs, err := s.repo.CountOrderItems(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return productpkg.ErrProductInUse
	}
	deleted, err := s.repo.DeleteProduct(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return productpkg.ErrProductNotFound
	}
	return nil
}

func (s *productService) SeedSampleData(ctx context.Context) (int, error) {
	samples := make([]entity.Product, len(sampleProducts))
	copy(samples, sampleProducts)
	if err := s.repo.ResetShopData(ctx, samples); err != nil {
		return 0, err
	}
	return len(samples), nil
}
