package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// ConnectDB establishes a connection to MongoDB using the provided URI.
// It returns the mongo.Client which can be used to access databases and collections.
func ConnectDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	// Ping the primary node to verify the connection. The server might accept
	// the connection and still be unresponsive.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes of every collection. A failure is logged
// and skipped; the app still works without indexes, only slower.
func EnsureIndexes(ctx context.Context, db *mongo.Database, logger *zap.Logger) {
	collections := map[string][]mongo.IndexModel{
		userCollectionName:             userIndexes(),
		sessionCollectionName:          sessionIndexes(),
		athleteCollectionName:          athleteIndexes(),
		exerciseCollectionName:         exerciseIndexes(),
		completedWorkoutCollectionName: completedWorkoutIndexes(),
		conversationCollectionName:     conversationIndexes(),
		plannedWorkoutCollectionName:   plannedWorkoutIndexes(),
	}
	for name, indexes := range collections {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			logger.Warn("Failed to create indexes", zap.String("collection", name), zap.Error(err))
		}
	}
}

func insertMany[T any](ctx context.Context, collection *mongo.Collection, docs []T) error {
	if len(docs) == 0 {
		return nil
	}
	batch := make([]interface{}, len(docs))
	for i := range docs {
		batch[i] = docs[i]
	}
	if _, err := collection.InsertMany(ctx, batch); err != nil {
		return fmt.Errorf("insert into %s: %w", collection.Name(), err)
	}
	return nil
}

func findAll[T any](ctx context.Context, collection *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []T{}
	if err = cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func countAll(ctx context.Context, collection *mongo.Collection) (int64, error) {
	return collection.CountDocuments(ctx, bson.M{})
}
