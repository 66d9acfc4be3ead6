package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-service/internal/model"
)

func TestSellerRepositoryCreate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSellerRepository(db)

	seller := &model.Seller{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "hashed-password",
	}
	require.NoError(t, repo.Create(context.Background(), seller))
	assert.NotZero(t, seller.ID)
}

func TestSellerRepositoryFindByUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSellerRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Seller{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "hashed-password",
	}))

	seller, err := repo.FindByUsername(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, "carol", seller.Username)
	assert.Equal(t, "carol@example.com", seller.Email)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSellerRepositoryFindByUsernameDuplicates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSellerRepository(db)
	ctx := context.Background()

	first := &model.Seller{Username: "dave", Email: "dave@one.com", Password: "h1"}
	second := &model.Seller{Username: "dave", Email: "dave@two.com", Password: "h2"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	found, err := repo.FindByUsername(ctx, "dave")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
	assert.Equal(t, "dave@one.com", found.Email)
}
