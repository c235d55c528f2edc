package domain

import (
	"slices"
	"time"
)

// Product is an item listed for sale by a seller
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	Tags        []string  `json:"tags" gorm:"serializer:json;type:text"`
	SellerID    string    `json:"seller_id" gorm:"index;not null"` // Set once at creation
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OwnedBy reports whether userID is the product's seller
func (p *Product) OwnedBy(userID string) bool {
	return userID != "" && p.SellerID == userID
}

func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Tags = slices.Clone(p.Tags)
	return &cp
}

// Filter narrows a product listing. Zero values match everything.
type Filter struct {
	SellerID string
	Query    string
}
