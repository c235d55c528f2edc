package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	authdomain "shop-backend/internal/auth/domain"
	"shop-backend/internal/product/domain"
	"shop-backend/internal/product/dto"
	"shop-backend/internal/product/repository"
	"shop-backend/pkg/apperr"
	"shop-backend/pkg/fuzzy"
)

// Field weights for text search
const (
	nameWeight        = 100.0
	tagWeight         = 60.0
	descriptionWeight = 40.0
)

// productUsecase implements ProductUsecase interface
type productUsecase struct {
	productRepo repository.ProductRepository
	log         *slog.Logger
}

// NewProductUsecase creates a new instance of productUsecase
func NewProductUsecase(productRepo repository.ProductRepository, log *slog.Logger) ProductUsecase {
	if log == nil {
		log = slog.Default()
	}
	return &productUsecase{
		productRepo: productRepo,
		log:         log.With("component", "product"),
	}
}

func (u *productUsecase) CreateProduct(ctx context.Context, session *authdomain.Session, req *dto.CreateProductRequest) (*domain.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       *req.Price,
		Tags:        dto.NormalizeTags(req.Tags),
		SellerID:    session.UserID(),
	}
	if err := u.productRepo.Create(ctx, product); err != nil {
		return nil, apperr.Internal(err, "failed to create product")
	}

	u.log.InfoContext(ctx, "product created", "product_id", product.ID, "seller_id", product.SellerID)
	return product, nil
}

func (u *productUsecase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err, "failed to load product")
	}
	if product == nil {
		return nil, apperr.NotFound("product")
	}
	return product, nil
}

func (u *productUsecase) ListProducts(ctx context.Context, filter domain.Filter) ([]*domain.Product, error) {
	products, err := u.productRepo.List(ctx, filter.SellerID)
	if err != nil {
		return nil, apperr.Internal(err, "failed to list products")
	}

	if strings.TrimSpace(filter.Query) == "" {
		return products, nil
	}
	return rank(filter.Query, products), nil
}

// rank keeps products that match query, best first. Ties keep store order.
func rank(query string, products []*domain.Product) []*domain.Product {
	type hit struct {
		product *domain.Product
		score   float64
	}

	hits := make([]hit, 0, len(products))
	for _, p := range products {
		tags := strings.Join(p.Tags, " ")
		if !fuzzy.Match(query, p.Name+" "+tags+" "+p.Description) {
			continue
		}
		score := fuzzy.Score(query,
			fuzzy.Field{Text: p.Name, Weight: nameWeight},
			fuzzy.Field{Text: tags, Weight: tagWeight},
			fuzzy.Field{Text: p.Description, Weight: descriptionWeight},
		)
		if score > 0 {
			hits = append(hits, hit{product: p, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	out := make([]*domain.Product, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.product)
	}
	return out
}

// findOwned loads a product and checks the session owns it.
// A missing product is reported before ownership is considered.
func (u *productUsecase) findOwned(ctx context.Context, session *authdomain.Session, id string) (*domain.Product, error) {
	product, err := u.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.OwnedBy(session.UserID()) {
		u.log.DebugContext(ctx, "ownership check failed", "product_id", id, "user_id", session.UserID())
		return nil, apperr.ErrUnauthorized
	}
	return product, nil
}

func (u *productUsecase) UpdateProduct(ctx context.Context, session *authdomain.Session, id string, req *dto.UpdateProductRequest) (*domain.Product, error) {
	product, err := u.findOwned(ctx, session, id)
	if err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.Apply(product)

	if err := u.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("product")
		}
		return nil, apperr.Internal(err, "failed to update product")
	}
	return product, nil
}

func (u *productUsecase) DeleteProduct(ctx context.Context, session *authdomain.Session, id string) (*domain.Product, error) {
	product, err := u.findOwned(ctx, session, id)
	if err != nil {
		return nil, err
	}

	if err := u.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("product")
		}
		return nil, apperr.Internal(err, "failed to delete product")
	}

	u.log.InfoContext(ctx, "product deleted", "product_id", id, "seller_id", product.SellerID)
	return product, nil
}
