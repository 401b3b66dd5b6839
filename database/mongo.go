package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	BlogCollection    = "blogs"
	MessageCollection = "messages"
)

// Connect dials MongoDB and returns a handle to the application
// database. The caller owns disconnecting the client.
func Connect(uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	if uri == "" {
		return nil, nil, errors.New("MONGO_URI is not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(10*time.Second).
		SetRetryWrites(true))
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}
	return client, client.Database(dbName), nil
}

// EnsureIndexes creates the indexes the API depends on: a unique slug
// index, a status index and the text indexes backing /search, plus
// the slugKey index backing /public/resolve.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	blogIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "slugKey", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
		{
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "excerpt", Value: "text"},
				{Key: "content", Value: "text"},
			},
		},
	}
	if _, err := db.Collection(BlogCollection).Indexes().CreateMany(ctx, blogIndexes); err != nil {
		return err
	}

	messageIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "text", Value: "text"}},
		},
	}
	if _, err := db.Collection(MessageCollection).Indexes().CreateMany(ctx, messageIndexes); err != nil {
		return err
	}
	return nil
}
