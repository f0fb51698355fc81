package service

import (
	"context"

	customerpkg "github.com/bun612/shop-api/customer"
	"github.com/bun612/shop-api/entity"
)

// customerService implements CustomerService.
type customerService struct {
	repo customerpkg.CustomerRepository
}

// NewCustomerService constructs a CustomerService backed by the provided repository.
func NewCustomerService(repo customerpkg.CustomerRepository) customerpkg.CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) CreateCustomer(ctx context.Context, req customerpkg.CustomerRequest) (*entity.Customer, error) {
	c := &entity.Customer{Name: req.Name, Phone: req.Phone}
	return s.repo.StoreCustomer(ctx, c)
}

func (s *customerService) GetCustomer(ctx context.Context, id uint) (*entity.Customer, error) {
	c, err := s.repo.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, customerpkg.ErrCustomerNotFound
	}
	return c, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	return s.repo.ListCustomers(ctx)
}

func (s *customerService) UpdateCustomer(ctx context.Context, id uint, req customerpkg.CustomerRequest) error {
	matched, err := s.repo.UpdateCustomer(ctx, id, &entity.Customer{Name: req.Name, Phone: req.Phone})
	if err != nil {
		return err
	}
	if matched == 0 {
		return customerpkg.ErrCustomerNotFound
	}
	return nil
}

// DeleteCustomer refuses to remove a customer that orders still reference.
func (s *customerService) DeleteCustomer(ctx context.Context, id uint) error {
	orders, err := s.repo.CountOrders(ctx, id)
	if err != nil {
		return err
	}
	if orders > 0 {
		return customerpkg.ErrCustomerHasOrders
	}
	deleted, err := s.repo.DeleteCustomer(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return customerpkg.ErrCustomerNotFound
	}
	return nil
}
