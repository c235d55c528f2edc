package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shop-backend/internal/product/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ProductsCollection = "products"

type productDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"productName"`
	Description string             `bson:"productDescription,omitempty"`
	Price       float64            `bson:"productPrice"`
	Tags        []string           `bson:"productTag"`
	SellerID    string             `bson:"sellerId"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty"`
}

func (d *productDocument) toDomain() *domain.Product {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return &domain.Product{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Tags:        tags,
		SellerID:    d.SellerID,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// mongoProductRepository implements ProductRepository on a MongoDB collection
type mongoProductRepository struct {
	coll *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) ProductRepository {
	return &mongoProductRepository{
		coll: db.Collection(ProductsCollection),
	}
}

// EnsureMongoProductIndexes indexes products by seller
func EnsureMongoProductIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(ProductsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "sellerId", Value: 1}},
		Options: options.Index().SetName("seller_id"),
	})
	if err != nil {
		return fmt.Errorf("creating products seller index: %w", err)
	}
	return nil
}

func (r *mongoProductRepository) Create(ctx context.Context, product *domain.Product) error {
	now := time.Now().UTC()
	if product.Tags == nil {
		product.Tags = []string{}
	}
	doc := productDocument{
		ID:          primitive.NewObjectID(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Tags:        product.Tags,
		SellerID:    product.SellerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}

	product.ID = doc.ID.Hex()
	product.CreatedAt = now
	product.UpdatedAt = now
	return nil
}

func (r *mongoProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc productDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding product: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *mongoProductRepository) List(ctx context.Context, sellerID string) ([]*domain.Product, error) {
	filter := bson.M{}
	if sellerID != "" {
		filter["sellerId"] = sellerID
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]*domain.Product, 0)
	for cursor.Next(ctx) {
		var doc productDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding product: %w", err)
		}
		products = append(products, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}
	return products, nil
}

func (r *mongoProductRepository) Update(ctx context.Context, product *domain.Product) error {
	oid, err := primitive.ObjectIDFromHex(product.ID)
	if err != nil {
		return ErrNotFound
	}

	product.UpdatedAt = time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"productName":        product.Name,
		"productDescription": product.Description,
		"productPrice":       product.Price,
		"productTag":         product.Tags,
		"updatedAt":          product.UpdatedAt,
	}})
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
