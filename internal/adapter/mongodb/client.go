// Package mongodb provides the MongoDB connection and shared error mapping
// for the repository subpackages.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/firewatch-bo/chiquitos-backend/internal/config"
)

// Collection names shared by the repositories and index setup.
const (
	RecordsCollection = "fireriskdata"
	UsersCollection   = "users"
)

// Connect establishes a MongoDB connection, verifies it with a ping, and
// returns the configured database handle.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetServerSelectionTimeout(cfg.ConnectTimeout).
		SetConnectTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb: connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongodb: ping: %w", err)
	}

	return client.Database(cfg.Name), nil
}

// EnsureIndexes creates the indexes the application relies on:
// unique ci for users, unique sparse sourceId for reconciled records,
// and a timestamp sort index for recent-first listing.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "ci", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("mongodb: users ci index: %w", err)
	}

	_, err = db.Collection(RecordsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "sourceId", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		{
			Keys: bson.D{{Key: "timestamp", Value: -1}},
		},
	})
	if err != nil {
		return fmt.Errorf("mongodb: record indexes: %w", err)
	}

	return nil
}

// Pinger adapts a database handle to the health handler's pinger interface.
type Pinger struct {
	DB *mongo.Database
}

// Ping checks connectivity to the primary.
func (p Pinger) Ping(ctx context.Context) error {
	return p.DB.Client().Ping(ctx, readpref.Primary())
}
