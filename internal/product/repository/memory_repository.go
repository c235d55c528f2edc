package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"shop-backend/internal/product/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryProductRepository keeps products in process memory with ObjectID hex ids
type memoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
}

func NewMemoryProductRepository() ProductRepository {
	return &memoryProductRepository{
		products: make(map[string]*domain.Product),
	}
}

func (r *memoryProductRepository) Create(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	product.ID = primitive.NewObjectID().Hex()
	product.CreatedAt = now
	product.UpdatedAt = now
	if product.Tags == nil {
		product.Tags = []string{}
	}

	r.products[product.ID] = product.Clone()
	return nil
}

func (r *memoryProductRepository) FindByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.products[id].Clone(), nil
}

func (r *memoryProductRepository) List(_ context.Context, sellerID string) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if sellerID != "" && p.SellerID != sellerID {
			continue
		}
		products = append(products, p.Clone())
	}
	// ObjectID hex sorts by creation time
	sort.Slice(products, func(i, j int) bool {
		return products[i].ID < products[j].ID
	})
	return products, nil
}

func (r *memoryProductRepository) Update(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.products[product.ID]
	if !ok {
		return ErrNotFound
	}

	product.SellerID = stored.SellerID
	product.CreatedAt = stored.CreatedAt
	product.UpdatedAt = time.Now().UTC()
	r.products[product.ID] = product.Clone()
	return nil
}

func (r *memoryProductRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrNotFound
	}
	delete(r.products, id)
	return nil
}
