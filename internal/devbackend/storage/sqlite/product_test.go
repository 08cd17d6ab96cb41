package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/paclead/internal/devbackend/storage"
)

func TestProductStorage_CRUD(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)
	user := createTestUser(t, s, "owner@example.com")

	products, err := s.ListProducts(ctx, user.ID)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)

	p := &storage.Product{UserID: user.ID, Name: "Curso", Description: "Online", Price: 197}
	require.NoError(t, s.CreateProduct(ctx, p))
	assert.NotZero(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())

	second := &storage.Product{UserID: user.ID, Name: "Ebook", Price: 29.9}
	require.NoError(t, s.CreateProduct(ctx, second))

	products, err = s.ListProducts(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Curso", products[0].Name)
	assert.Equal(t, "Ebook", products[1].Name)

	p.Name = "Curso Premium"
	p.Price = 297
	require.NoError(t, s.UpdateProduct(ctx, p))

	products, err = s.ListProducts(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Curso Premium", products[0].Name)
	assert.InDelta(t, 297, products[0].Price, 1e-9)

	require.NoError(t, s.DeleteProduct(ctx, user.ID, p.ID))
	assert.ErrorIs(t, s.DeleteProduct(ctx, user.ID, p.ID), storage.ErrProductNotFound)

	products, err = s.ListProducts(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, second.ID, products[0].ID)
}

func TestProductStorage_ScopedToOwner(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)
	owner := createTestUser(t, s, "owner@example.com")
	other := createTestUser(t, s, "other@example.com")

	p := &storage.Product{UserID: owner.ID, Name: "Curso", Price: 10}
	require.NoError(t, s.CreateProduct(ctx, p))

	products, err := s.ListProducts(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, products)

	stolen := *p
	stolen.UserID = other.ID
	stolen.Name = "Hacked"
	assert.ErrorIs(t, s.UpdateProduct(ctx, &stolen), storage.ErrProductNotFound)
	assert.ErrorIs(t, s.DeleteProduct(ctx, other.ID, p.ID), storage.ErrProductNotFound)

	products, err = s.ListProducts(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Curso", products[0].Name)
}

func TestProductStorage_RequiresExistingUser(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	err := s.CreateProduct(ctx, &storage.Product{UserID: 42, Name: "Orphan"})
	assert.Error(t, err)
}
