package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"issue-tracker/internal/issue/repository"
	"issue-tracker/pkg/log"
)

// DefaultCollection is the collection name used when none is configured.
const DefaultCollection = "issues"

type implRepository struct {
	coll *mongo.Collection
	l    log.Logger
}

// New creates a new MongoDB-backed Repository for the issue domain.
func New(db *mongo.Database, collection string, l log.Logger) repository.Repository {
	if db == nil {
		panic("issue/repository/mongodb: db is required")
	}
	if collection == "" {
		collection = DefaultCollection
	}
	return &implRepository{coll: db.Collection(collection), l: l}
}

// EnsureIndexes creates the index backing the default newest-first listing.
func EnsureIndexes(ctx context.Context, db *mongo.Database, collection string) error {
	if collection == "" {
		collection = DefaultCollection
	}
	_, err := db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "created", Value: -1}},
		Options: options.Index().SetName("created_desc"),
	})
	if err != nil {
		return fmt.Errorf("create created index: %w", err)
	}
	return nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("issue/repository/mongodb.%s", method)
}
