package repository

import (
	"context"
	"errors"

	"catalog-service/internal/model"
)

// ErrNotFound is returned when the requested record does not exist. Handlers
// translate it to an HTTP 404; any other storage error surfaces as a server
// error.
var ErrNotFound = errors.New("record not found")

// ProductRepository defines the data access operations for products
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id uint) error
}

// SellerRepository defines the data access operations for sellers
type SellerRepository interface {
	Create(ctx context.Context, seller *model.Seller) error
	FindByUsername(ctx context.Context, username string) (*model.Seller, error)
}
