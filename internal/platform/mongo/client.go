package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"motorvault/internal/platform/config"
)

// Client wraps the mongo client with health checking capabilities.
type Client struct {
	*mongo.Client
	db *mongo.Database
}

// New connects to MongoDB from the provided configuration. Returns nil if the
// URL is empty (Mongo not configured; callers fall back to in-memory stores).
func New(cfg config.Server) (*Client, error) {
	if cfg.MongoURL == "" {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	return &Client{Client: client, db: client.Database(cfg.DBName)}, nil
}

// Database returns the configured application database.
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Health checks if the Mongo connection is healthy.
func (c *Client) Health(ctx context.Context) error {
	return c.Ping(ctx, readpref.Primary())
}

// Close disconnects from Mongo.
func (c *Client) Close(ctx context.Context) error {
	return c.Client.Disconnect(ctx)
}
