package database

import (
	"context"
	"fmt"
	"time"

	"lupang-store/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Store is the document-store gateway. The client is created once at
// startup and shared across requests; it is stateless beyond its
// connection pool, so no per-request setup or teardown is needed.
type Store struct {
	client  *mongo.Client
	Users   *mongo.Collection
	Orders  *mongo.Collection
	Timeout time.Duration
}

// InitStore connects to the document store and resolves the two
// collections this service works with.
func InitStore(config utils.StoreConfig) (*Store, error) {
	if config.URI == "" {
		return nil, fmt.Errorf("MONGO_URI is not set")
	}

	timeout := time.Duration(config.TimeoutSeconds) * time.Second

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to document store: %w", err)
	}

	// Test connection
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancelPing()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping document store: %w", err)
	}

	db := client.Database(config.Name)

	return &Store{
		client:  client,
		Users:   db.Collection(config.UsersCollection),
		Orders:  db.Collection(config.OrdersCollection),
		Timeout: timeout,
	}, nil
}

// EnsureIndexes creates the email index the login point lookup relies on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.Users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
