package turfRepo

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

// MongoTurfRepo implements TurfRepository using MongoDB.
type MongoTurfRepo struct {
	coll *mongo.Collection
}

// NewMongoTurfRepo creates a new instance of TurfRepository using MongoDB.
func NewMongoTurfRepo() TurfRepository {
	coll := database.Collection("turfs")
	repo := &MongoTurfRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTurfRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "location", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoTurfRepo) Create(turf *models.Turf) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, turf); err != nil {
		return fmt.Errorf("failed to create turf: %w", err)
	}
	return nil
}

func (r *MongoTurfRepo) GetByID(id string) (*models.Turf, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var turf models.Turf
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&turf); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to retrieve turf: %w", err)
	}
	return &turf, nil
}

func (r *MongoTurfRepo) Update(turf *models.Turf) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	turf.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": turf.ID}, turf)
	if err != nil {
		return fmt.Errorf("failed to update turf: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoTurfRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete turf: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoTurfRepo) SetStatus(id, status, reason string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":        status,
		"reject_reason": reason,
		"updated_at":    time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update turf status: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoTurfRepo) List(params models.ListParams, ownerID string) (*models.Page[models.Turf], error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	params = params.WithDefaults()
	filter := bson.M{}
	if ownerID != "" {
		filter["owner_id"] = ownerID
	}
	if params.Status != "" {
		filter["status"] = params.Status
	}
	if params.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": params.Search, "$options": "i"}},
			bson.M{"location": bson.M{"$regex": params.Search, "$options": "i"}},
			bson.M{"sports": bson.M{"$regex": params.Search, "$options": "i"}},
		}
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count turfs: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((params.Page - 1) * params.Limit)).
		SetLimit(int64(params.Limit))
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list turfs: %w", err)
	}
	defer cursor.Close(ctx)

	var turfs []models.Turf
	if err := cursor.All(ctx, &turfs); err != nil {
		return nil, fmt.Errorf("failed to decode turfs: %w", err)
	}

	return &models.Page[models.Turf]{
		Items:       turfs,
		TotalPages:  models.TotalPagesFor(total, params.Limit),
		CurrentPage: params.Page,
	}, nil
}
