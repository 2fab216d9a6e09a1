package rulesRepo

import (
	"context"
	"fmt"
	"time"

	"turfhub/database"
	"turfhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRulesRepo implements RulesRepository using MongoDB.
type MongoRulesRepo struct {
	coll *mongo.Collection
}

// NewMongoRulesRepo creates a new instance of RulesRepository using MongoDB.
func NewMongoRulesRepo() RulesRepository {
	coll := database.Collection("turf_rules")
	repo := &MongoRulesRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoRulesRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "turfId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "ownerId", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoRulesRepo) GetByTurfID(turfID string) (*models.RulesConfig, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var config models.RulesConfig
	if err := r.coll.FindOne(ctx, bson.M{"turfId": turfID}).Decode(&config); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to retrieve rules: %w", err)
	}
	return &config, nil
}

func (r *MongoRulesRepo) Replace(config *models.RulesConfig) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"turfId": config.TurfID}, config, opts); err != nil {
		return fmt.Errorf("failed to save rules: %w", err)
	}
	return nil
}

func (r *MongoRulesRepo) Delete(turfID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"turfId": turfID})
	if err != nil {
		return fmt.Errorf("failed to delete rules: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
