package mongo

import (
	"alcyxob/coach-studio/internal/domain"
	"alcyxob/coach-studio/internal/repository"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const plannedWorkoutCollectionName = "planned_workouts"

// mongoPlannedWorkoutRepository implements repository.PlannedWorkoutRepository
type mongoPlannedWorkoutRepository struct {
	collection *mongo.Collection
}

func NewMongoPlannedWorkoutRepository(db *mongo.Database) repository.PlannedWorkoutRepository {
	return &mongoPlannedWorkoutRepository{
		collection: db.Collection(plannedWorkoutCollectionName),
	}
}

func (r *mongoPlannedWorkoutRepository) CreateMany(ctx context.Context, workouts []domain.PlannedWorkout) error {
	return insertMany(ctx, r.collection, workouts)
}

// List returns the workout list, newest first.
func (r *mongoPlannedWorkoutRepository) List(ctx context.Context) ([]domain.PlannedWorkout, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	workouts, err := findAll[domain.PlannedWorkout](ctx, r.collection, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list planned workouts: %w", err)
	}
	return workouts, nil
}

func (r *mongoPlannedWorkoutRepository) Count(ctx context.Context) (int64, error) {
	return countAll(ctx, r.collection)
}

func plannedWorkoutIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}
}
