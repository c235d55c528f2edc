package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shop-backend/internal/product/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormProductRepository implements ProductRepository using GORM
type gormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM-based ProductRepository
func NewGormProductRepository(db *gorm.DB) ProductRepository {
	return &gormProductRepository{db: db}
}

func (r *gormProductRepository) Create(ctx context.Context, product *domain.Product) error {
	product.ID = uuid.New().String()
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()
	if product.Tags == nil {
		product.Tags = []string{}
	}

	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}
	return nil
}

func (r *gormProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	var product domain.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding product: %w", err)
	}
	return &product, nil
}

func (r *gormProductRepository) List(ctx context.Context, sellerID string) ([]*domain.Product, error) {
	query := r.db.WithContext(ctx).Model(&domain.Product{})
	if sellerID != "" {
		query = query.Where("seller_id = ?", sellerID)
	}

	var products []*domain.Product
	if err := query.Order("created_at").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return products, nil
}

func (r *gormProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if _, err := uuid.Parse(product.ID); err != nil {
		return ErrNotFound
	}

	product.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).
		Model(&domain.Product{ID: product.ID}).
		Select("name", "description", "price", "tags", "updated_at").
		Updates(product)
	if res.Error != nil {
		return fmt.Errorf("updating product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormProductRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	res := r.db.WithContext(ctx).Delete(&domain.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("deleting product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
