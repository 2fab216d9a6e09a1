package database

import (
	"context"
	"log"
	"time"

	"turfhub/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const dbName = "turfhub"

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// Collection opens a collection in the application database. Repositories
// go through this so the database name lives in one place.
func Collection(name string) *mongo.Collection {
	return MongoClient.Database(dbName).Collection(name)
}

// InitDB connects to MongoDB and verifies the connection with a ping.
// Startup aborts on failure since nothing works without the store.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.AppConfig.DatabaseURL))
	if err != nil {
		log.Fatalf("mongo connect failed: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("mongo ping failed: %v", err)
	}
	MongoClient = client
	log.Println("Connected to MongoDB")
}
