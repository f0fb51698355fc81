package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customerpkg "github.com/bun612/shop-api/customer"
	"github.com/bun612/shop-api/entity"
)

type mockCustomerRepo struct {
	store  map[uint]*entity.Customer
	orders map[uint]int64
	nextID uint
}

func newMockCustomerRepo() *mockCustomerRepo {
	return &mockCustomerRepo{store: make(map[uint]*entity.Customer), orders: make(map[uint]int64)}
}

func (m *mockCustomerRepo) StoreCustomer(_ context.Context, c *entity.Customer) (*entity.Customer, error) {
	m.nextID++
	c.ID = m.nextID
	cp := *c
	m.store[c.ID] = &cp
	return c, nil
}

func (m *mockCustomerRepo) GetCustomerByID(_ context.Context, id uint) (*entity.Customer, error) {
	c, ok := m.store[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *mockCustomerRepo) ListCustomers(_ context.Context) ([]entity.Customer, error) {
	list := make([]entity.Customer, 0, len(m.store))
	for id := uint(1); id <= m.nextID; id++ {
		if c, ok := m.store[id]; ok {
			list = append(list, *c)
		}
	}
	return list, nil
}

func (m *mockCustomerRepo) UpdateCustomer(_ context.Context, id uint, c *entity.Customer) (int64, error) {
	if _, ok := m.store[id]; !ok {
		return 0, nil
	}
	cp := *c
	cp.ID = id
	m.store[id] = &cp
	return 1, nil
}

func (m *mockCustomerRepo) DeleteCustomer(_ context.Context, id uint) (int64, error) {
	if _, ok := m.store[id]; !ok {
		return 0, nil
	}
	delete(m.store, id)
	return 1, nil
}

func (m *mockCustomerRepo) CountOrders(_ context.Context, customerID uint) (int64, error) {
	return m.orders[customerID], nil
}

func (m *mockCustomerRepo) CustomerExists(_ context.Context, id uint) (bool, error) {
	_, ok := m.store[id]
	return ok, nil
}

func setup() (customerpkg.CustomerService, *mockCustomerRepo) {
	repo := newMockCustomerRepo()
	return NewCustomerService(repo), repo
}

func TestCreateCustomer(t *testing.T) {
	svc, repo := setup()

	created, err := svc.CreateCustomer(context.Background(), customerpkg.CustomerRequest{Name: "A", Phone: "123"})

	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	saved, ok := repo.store[created.ID]
	require.True(t, ok)
	assert.Equal(t, "A", saved.Name)
	assert.Equal(t, "123", saved.Phone)
}

func TestGetCustomerNotFound(t *testing.T) {
	svc, _ := setup()

	_, err := svc.GetCustomer(context.Background(), 42)

	assert.ErrorIs(t, err, customerpkg.ErrCustomerNotFound)
}

func TestUpdateCustomer(t *testing.T) {
	svc, repo := setup()
	created, err := svc.CreateCustomer(context.Background(), customerpkg.CustomerRequest{Name: "A", Phone: "123"})
	require.NoError(t, err)

	err = svc.UpdateCustomer(context.Background(), created.ID, customerpkg.CustomerRequest{Name: "B", Phone: "456"})

	require.NoError(t, err)
	saved := repo.store[created.ID]
	assert.Equal(t, "B", saved.Name)
	assert.Equal(t, "456", saved.Phone)

	err = svc.UpdateCustomer(context.Background(), 42, customerpkg.CustomerRequest{Name: "B", Phone: "456"})
	assert.ErrorIs(t, err, customerpkg.ErrCustomerNotFound)
}

func TestDeleteCustomer(t *testing.T) {
	svc, repo := setup()
	created, err := svc.CreateCustomer(context.Background(), customerpkg.CustomerRequest{Name: "A", Phone: "123"})
	require.NoError(t, err)

	t.Run("Blocked while orders reference the customer", func(t *testing.T) {
		repo.orders[created.ID] = 1

		err := svc.DeleteCustomer(context.Background(), created.ID)

		assert.ErrorIs(t, err, customerpkg.ErrCustomerHasOrders)
		_, ok := repo.store[created.ID]
		assert.True(t, ok, "customer row must remain")
	})

	t.Run("Removed once unreferenced", func(t *testing.T) {
		repo.orders[created.ID] = 0

		err := svc.DeleteCustomer(context.Background(), created.ID)

		require.NoError(t, err)
		_, ok := repo.store[created.ID]
		assert.False(t, ok)
	})

	t.Run("Not found", func(t *testing.T) {
		err := svc.DeleteCustomer(context.Background(), 42)
		assert.ErrorIs(t, err, customerpkg.ErrCustomerNotFound)
	})
}
