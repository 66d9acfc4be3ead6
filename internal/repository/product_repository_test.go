package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"catalog-service/internal/model"
	"catalog-service/pkg/database"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createTestSeller(t *testing.T, db *gorm.DB) *model.Seller {
	t.Helper()

	seller := &model.Seller{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "$2a$10$notarealhashnotarealhashnotarealhash",
	}
	require.NoError(t, db.Create(seller).Error)
	return seller
}

func TestProductRepositoryCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	seller := createTestSeller(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product := &model.Product{
		Name:        "Laptop",
		Description: "A fast laptop",
		Price:       1200,
		SellerID:    seller.ID,
	}
	require.NoError(t, repo.Create(ctx, product))
	assert.NotZero(t, product.ID)

	got, err := repo.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", got.Name)
	assert.Equal(t, "A fast laptop", got.Description)
	assert.Equal(t, 1200, got.Price)
	require.NotNil(t, got.Seller)
	assert.Equal(t, "alice", got.Seller.Username)
	assert.Equal(t, "alice@example.com", got.Seller.Email)
}

func TestProductRepositoryGetNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)

	_, err := repo.Get(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductRepositoryList(t *testing.T) {
	db := setupTestDB(t)
	seller := createTestSeller(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	require.NoError(t, repo.Create(ctx, &model.Product{Name: "Desk", Description: "Standing desk", Price: 300, SellerID: seller.ID}))
	require.NoError(t, repo.Create(ctx, &model.Product{Name: "Chair", Description: "Office chair", Price: 150, SellerID: seller.ID}))

	products, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, p := range products {
		require.NotNil(t, p.Seller)
		assert.Equal(t, "alice", p.Seller.Username)
	}
}

func TestProductRepositoryUpdate(t *testing.T) {
	db := setupTestDB(t)
	seller := createTestSeller(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product := &model.Product{Name: "Phone", Description: "Old model", Price: 500, SellerID: seller.ID}
	require.NoError(t, repo.Create(ctx, product))

	got, err := repo.Get(ctx, product.ID)
	require.NoError(t, err)

	got.Name = "Phone Pro"
	got.Price = 800
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Phone Pro", updated.Name)
	assert.Equal(t, "Old model", updated.Description)
	assert.Equal(t, 800, updated.Price)

	// Saving a product fetched with its seller preloaded must not touch the
	// sellers table.
	var sellerCount int64
	require.NoError(t, db.Model(&model.Seller{}).Count(&sellerCount).Error)
	assert.Equal(t, int64(1), sellerCount)
}

func TestProductRepositoryDelete(t *testing.T) {
	db := setupTestDB(t)
	seller := createTestSeller(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product := &model.Product{Name: "Camera", Description: "Mirrorless", Price: 900, SellerID: seller.ID}
	require.NoError(t, repo.Create(ctx, product))

	require.NoError(t, repo.Delete(ctx, product.ID))

	_, err := repo.Get(ctx, product.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Delete(ctx, product.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
