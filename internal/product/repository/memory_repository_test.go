package repository

import (
	"context"
	"testing"

	"shop-backend/internal/product/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryProductRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository()

	lamp := &domain.Product{Name: "Lamp", Price: 10, SellerID: "s1"}
	chair := &domain.Product{Name: "Chair", Price: 20, SellerID: "s2", Tags: []string{"wood"}}
	require.NoError(t, repo.Create(ctx, lamp))
	require.NoError(t, repo.Create(ctx, chair))
	require.Len(t, lamp.ID, 24)
	assert.NotNil(t, lamp.Tags)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, lamp.ID, all[0].ID)

	mine, err := repo.List(ctx, "s2")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Chair", mine[0].Name)

	found, err := repo.FindByID(ctx, chair.ID)
	require.NoError(t, err)
	found.Tags[0] = "mutated"
	again, _ := repo.FindByID(ctx, chair.ID)
	assert.Equal(t, "wood", again.Tags[0])

	missing, err := repo.FindByID(ctx, "63326decb3abcde1006481234")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryProductRepository_UpdateKeepsSeller(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository()

	p := &domain.Product{Name: "Lamp", Price: 10, SellerID: "s1"}
	require.NoError(t, repo.Create(ctx, p))

	update := p.Clone()
	update.Name = "Desk lamp"
	update.SellerID = "intruder"
	require.NoError(t, repo.Update(ctx, update))

	stored, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Desk lamp", stored.Name)
	assert.Equal(t, "s1", stored.SellerID)

	assert.ErrorIs(t, repo.Update(ctx, &domain.Product{ID: "missing"}), ErrNotFound)
}

func TestMemoryProductRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository()

	p := &domain.Product{Name: "Lamp", SellerID: "s1"}
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Delete(ctx, p.ID))
	assert.ErrorIs(t, repo.Delete(ctx, p.ID), ErrNotFound)

	stored, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}
