package repository

import (
	"context"
	"errors"

	"shop-backend/internal/product/domain"
)

// ErrNotFound is returned by mutations whose target does not exist.
// Lookups return (nil, nil) instead.
var ErrNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	// Create assigns an id and timestamps and persists the product
	Create(ctx context.Context, product *domain.Product) error

	// FindByID returns nil when id is unknown or malformed for the store
	FindByID(ctx context.Context, id string) (*domain.Product, error)

	// List returns products in insertion order, optionally restricted to one seller
	List(ctx context.Context, sellerID string) ([]*domain.Product, error)

	// Update writes every mutable field. The seller is never changed.
	Update(ctx context.Context, product *domain.Product) error

	Delete(ctx context.Context, id string) error
}
