package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"catalog-service/internal/model"
	"catalog-service/prometheus"
)

type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository creates a SellerRepository backed by the given
// database handle
func NewSellerRepository(db *gorm.DB) SellerRepository {
	return &sellerRepository{db: db}
}

func (r *sellerRepository) Create(ctx context.Context, seller *model.Seller) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	return r.db.WithContext(ctx).Create(seller).Error
}

// FindByUsername returns the earliest-created seller with the given
// username. Usernames are not unique, so duplicates resolve to the lowest id.
func (r *sellerRepository) FindByUsername(ctx context.Context, username string) (*model.Seller, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var seller model.Seller
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&seller).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &seller, nil
}
