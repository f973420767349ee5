// internal/repository/mongo/workout_repo.go
package mongo

import (
	"alcyxob/coach-studio/internal/domain"
	"alcyxob/coach-studio/internal/repository"
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const completedWorkoutCollectionName = "completed_workouts"

// mongoCompletedWorkoutRepository implements repository.CompletedWorkoutRepository
type mongoCompletedWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoCompletedWorkoutRepository creates a new completed workout repository.
func NewMongoCompletedWorkoutRepository(db *mongo.Database) repository.CompletedWorkoutRepository {
	return &mongoCompletedWorkoutRepository{
		collection: db.Collection(completedWorkoutCollectionName),
	}
}

func (r *mongoCompletedWorkoutRepository) CreateMany(ctx context.Context, workouts []domain.CompletedWorkout) error {
	return insertMany(ctx, r.collection, workouts)
}

// GetByID retrieves a single completed workout by its ID.
func (r *mongoCompletedWorkoutRepository) GetByID(ctx context.Context, id string) (*domain.CompletedWorkout, error) {
	var workout domain.CompletedWorkout
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// ListByAthlete retrieves an athlete's completed workouts, newest first.
func (r *mongoCompletedWorkoutRepository) ListByAthlete(ctx context.Context, athleteID string) ([]domain.CompletedWorkout, error) {
	// completedDate is an ISO date string, so it sorts chronologically
	findOptions := options.Find().SetSort(bson.D{{Key: "completedDate", Value: -1}})
	workouts, err := findAll[domain.CompletedWorkout](ctx, r.collection, bson.M{"athleteId": athleteID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("list completed workouts: %w", err)
	}
	return workouts, nil
}

// AddComment pushes a comment onto the workout or onto the set with the given id.
func (r *mongoCompletedWorkoutRepository) AddComment(ctx context.Context, workoutID, setID string, c domain.Comment) error {
	filter := bson.M{"_id": workoutID}
	update := bson.M{"$push": bson.M{"comments": c}}
	opts := options.Update()
	if setID != "" {
		filter["exercises.sets.id"] = setID
		update = bson.M{"$push": bson.M{"exercises.$[].sets.$[s].comments": c}}
		opts.SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{bson.M{"s.id": setID}},
		})
	}

	result, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("add comment: %w", err)
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoCompletedWorkoutRepository) Count(ctx context.Context) (int64, error) {
	return countAll(ctx, r.collection)
}

func completedWorkoutIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "athleteId", Value: 1}, {Key: "completedDate", Value: -1}},
			Options: options.Index(),
		},
	}
}
