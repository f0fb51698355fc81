package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bun612/shop-api/entity"
	productpkg "github.com/bun612/shop-api/product"
)

type mockProductRepo struct {
	store  map[uint]*entity.Product
	refs   map[uint]int64
	nextID uint
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{store: make(map[uint]*entity.Product), refs: make(map[uint]int64)}
}

func (m *mockProductRepo) StoreProduct(_ context.Context, p *entity.Product) (*entity.Product, error) {
	m.nextID++
	p.ID = m.nextID
	cp := *p
	m.store[p.ID] = &cp
	return p, nil
}

func (m *mockProductRepo) GetProductByID(_ context.Context, id uint) (*entity.Product, error) {
	p, ok := m.store[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *mockProductRepo) ListProducts(_ context.Context) ([]entity.Product, error) {
	list := make([]entity.Product, 0, len(m.store))
	for id := uint(1); id <= m.nextID; id++ {
		if p, ok := m.store[id]; ok {
			list = append(list, *p)
		}
	}
	return list, nil
}

func (m *mockProductRepo) UpdateProduct(_ context.Context, id uint, p *entity.Product) (int64, error) {
	if _, ok := m.store[id]; !ok {
		return 0, nil
	}
	cp := *p
	cp.ID = id
	m.store[id] = &cp
	return 1, nil
}

func (m *mockProductRepo) DeleteProduct(_ context.Context, id uint) (int64, error) {
	if _, ok := m.store[id]; !ok {
		return 0, nil
	}
	delete(m.store, id)
	return 1, nil
}

func (m *mockProductRepo) CountOrderItems(_ context.Context, productID uint) (int64, error) {
	return m.refs[productID], nil
}

func (m *mockProductRepo) ProductExists(_ context.Context, id uint) (bool, error) {
	_, ok := m.store[id]
	return ok, nil
}

func (m *mockProductRepo) ResetShopData(_ context.Context, samples []entity.Product) error {
	m.store = make(map[uint]*entity.Product)
	m.refs = make(map[uint]int64)
	m.nextID = 0
	for i := range samples {
		m.nextID++
		cp := samples[i]
		cp.ID = m.nextID
		m.store[cp.ID] = &cp
	}
	return nil
}

func setup() (productpkg.ProductService, *mockProductRepo) {
	repo := newMockProductRepo()
	return NewProductService(repo), repo
}

func TestCreateProduct(t *testing.T) {
	svc, repo := setup()

	created, err := svc.CreateProduct(context.Background(), productpkg.ProductRequest{
		Name:  "X",
		Price: 100,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	saved, ok := repo.store[created.ID]
	require.True(t, ok)
	assert.Equal(t, "X", saved.Name)
	assert.Equal(t, float64(100), saved.Price)
}

func TestGetProductNotFound(t *testing.T) {
	svc, _ := setup()

	_, err := svc.GetProduct(context.Background(), 42)

	assert.ErrorIs(t, err, productpkg.ErrProductNotFound)
}

func TestUpdateProductReplacesRowWholesale(t *testing.T) {
	svc, repo := setup()
	created, err := svc.CreateProduct(context.Background(), productpkg.ProductRequest{
		Name:  "X",
		Price: 100,
		Image: "http://example.com/x.png",
	})
	require.NoError(t, err)

	err = svc.UpdateProduct(context.Background(), created.ID, productpkg.ProductRequest{
		Name:  "Y",
		Price: 0,
	})

	require.NoError(t, err)
	saved := repo.store[created.ID]
	assert.Equal(t, "Y", saved.Name)
	assert.Equal(t, float64(0), saved.Price)
	assert.Empty(t, saved.Image)
}

func TestUpdateProductNotFound(t *testing.T) {
	svc, _ := setup()

	err := svc.UpdateProduct(context.Background(), 42, productpkg.ProductRequest{Name: "Y"})

	assert.ErrorIs(t, err, productpkg.ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	svc, repo := setup()
	created, err := svc.CreateProduct(context.Background(), productpkg.ProductRequest{Name: "X", Price: 100})
	require.NoError(t, err)

	t.Run("Blocked while referenced by order items", func(t *testing.T) {
		repo.refs[created.ID] = 2

		err := svc.DeleteProduct(context.Background(), created.ID)

		assert.ErrorIs(t, err, productpkg.ErrProductInUse)
		_, ok := repo.store[created.ID]
		assert.True(t, ok, "product row must remain")
	})

	t.Run("Removed once unreferenced", func(t *testing.T) {
		repo.refs[created.ID] = 0

		err := svc.DeleteProduct(context.Background(), created.ID)

		require.NoError(t, err)
		_, ok := repo.store[created.ID]
		assert.False(t, ok)
	})

	t.Run("Not found", func(t *testing.T) {
		err := svc.DeleteProduct(context.Background(), 42)
		assert.ErrorIs(t, err, productpkg.ErrProductNotFound)
	})
}

func TestSeedSampleData(t *testing.T) {
	svc, repo := setup()
	_, err := svc.CreateProduct(context.Background(), productpkg.ProductRequest{Name: "old", Price: 1})
	require.NoError(t, err)

	count, err := svc.SeedSampleData(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Len(t, repo.store, 3)
	for _, p := range repo.store {
		assert.NotEqual(t, "old", p.Name)
	}
}
