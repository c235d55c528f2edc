// Package database opens the store connections selected by configuration.
package database

import (
	"context"
	"fmt"
	"time"

	"shop-backend/pkg/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// MongoConnection is an open client and the configured database
type MongoConnection struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// NewMongoConnection connects to cfg.MongoURI and verifies the primary is reachable
func NewMongoConnection(ctx context.Context, cfg *config.Config) (*MongoConnection, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerSelectionTimeout(connectTimeout)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mongo uri: %w", err)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}

	return &MongoConnection{
		Client: client,
		DB:     client.Database(cfg.MongoDatabase),
	}, nil
}

func (c *MongoConnection) Close(ctx context.Context) error {
	return c.Client.Disconnect(ctx)
}
