package dto

import (
	"strings"
	"time"

	"shop-backend/internal/product/domain"
	"shop-backend/pkg/apperr"

	validation "github.com/go-ozzo/ozzo-validation"
)

// CreateProductRequest is the body of POST /products.
// The seller is always the caller, so seller_id is not accepted.
type CreateProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Tags        []string `json:"tags"`
}

func (r CreateProductRequest) Validate() error {
	err := validation.Errors{
		"name":  validation.Validate(strings.TrimSpace(r.Name), validation.Required),
		"price": validation.Validate(r.Price, validation.NotNil, validation.Min(0.0)),
	}.Filter()
	if err != nil {
		return apperr.Validation(err.Error())
	}
	return nil
}

// UpdateProductRequest is a partial update: nil fields are left unchanged
type UpdateProductRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Tags        *[]string `json:"tags"`

	// BindErr holds a body decoding failure, reported after the lookup
	// and ownership checks
	BindErr error `json:"-"`
}

func (r UpdateProductRequest) Validate() error {
	if r.BindErr != nil {
		return apperr.Validation("invalid request body")
	}
	errs := validation.Errors{}
	if r.Name != nil {
		errs["name"] = validation.Validate(strings.TrimSpace(*r.Name), validation.Required)
	}
	if r.Price != nil {
		errs["price"] = validation.Validate(*r.Price, validation.Min(0.0))
	}
	if err := errs.Filter(); err != nil {
		return apperr.Validation(err.Error())
	}
	return nil
}

// Apply copies the supplied fields onto p
func (r UpdateProductRequest) Apply(p *domain.Product) {
	if r.Name != nil {
		p.Name = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Tags != nil {
		p.Tags = NormalizeTags(*r.Tags)
	}
}

// NormalizeTags trims tags and drops blanks and repeats, keeping first-seen order
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Tags        []string  `json:"tags"`
	SellerID    string    `json:"seller_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewProductResponse(p *domain.Product) *ProductResponse {
	tags := make([]string, 0, len(p.Tags))
	tags = append(tags, p.Tags...)
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Tags:        tags,
		SellerID:    p.SellerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func NewProductResponses(products []*domain.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p))
	}
	return out
}
