package usecase

import (
	"context"

	authdomain "shop-backend/internal/auth/domain"
	"shop-backend/internal/product/domain"
	"shop-backend/internal/product/dto"
)

// ProductUsecase defines the interface for product business logic
type ProductUsecase interface {
	// CreateProduct lists a new product sold by the session's user
	CreateProduct(ctx context.Context, session *authdomain.Session, req *dto.CreateProductRequest) (*domain.Product, error)

	GetProduct(ctx context.Context, id string) (*domain.Product, error)

	// ListProducts returns products matching filter. A text query ranks results by relevance.
	ListProducts(ctx context.Context, filter domain.Filter) ([]*domain.Product, error)

	// UpdateProduct changes a product owned by the session's user
	UpdateProduct(ctx context.Context, session *authdomain.Session, id string, req *dto.UpdateProductRequest) (*domain.Product, error)

	// DeleteProduct removes a product owned by the session's user
	DeleteProduct(ctx context.Context, session *authdomain.Session, id string) (*domain.Product, error)
}
