package gameRepo

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

// MongoGameRepo implements GameRepository using MongoDB.
type MongoGameRepo struct {
	coll *mongo.Collection
}

// NewMongoGameRepo creates a new instance of GameRepository using MongoDB.
func NewMongoGameRepo() GameRepository {
	coll := database.Collection("games")
	repo := &MongoGameRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoGameRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "turf_id", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoGameRepo) Create(game *models.Game) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, game); err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

func (r *MongoGameRepo) GetByID(id string) (*models.Game, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var game models.Game
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&game); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to retrieve game: %w", err)
	}
	return &game, nil
}

func (r *MongoGameRepo) Update(game *models.Game) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": game.ID}, game)
	if err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoGameRepo) List(params models.ListParams, turfID string) (*models.Page[models.Game], error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	params = params.WithDefaults()
	filter := bson.M{}
	if turfID != "" {
		filter["turf_id"] = turfID
	}
	if params.Status != "" {
		filter["status"] = params.Status
	}
	if params.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"sport": bson.M{"$regex": params.Search, "$options": "i"}},
			bson.M{"date": bson.M{"$regex": params.Search}},
		}
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count games: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}}).
		SetSkip(int64((params.Page - 1) * params.Limit)).
		SetLimit(int64(params.Limit))
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer cursor.Close(ctx)

	var games []models.Game
	if err := cursor.All(ctx, &games); err != nil {
		return nil, fmt.Errorf("failed to decode games: %w", err)
	}

	return &models.Page[models.Game]{
		Items:       games,
		TotalPages:  models.TotalPagesFor(total, params.Limit),
		CurrentPage: params.Page,
	}, nil
}
