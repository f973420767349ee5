package mongo

import (
	"alcyxob/coach-studio/internal/domain"
	"alcyxob/coach-studio/internal/repository"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository
type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates a new exercise library repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
	}
}

// Create inserts a custom exercise into the library.
func (r *mongoExerciseRepository) Create(ctx context.Context, exercise *domain.CatalogExercise) (string, error) {
	if exercise.Name == "" || exercise.Type == "" {
		return "", errors.New("exercise name and type are required")
	}
	if exercise.ID == "" {
		exercise.ID = uuid.NewString()
	}

	if _, err := r.collection.InsertOne(ctx, exercise); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", repository.ErrDuplicate
		}
		return "", fmt.Errorf("insert exercise: %w", err)
	}
	return exercise.ID, nil
}

func (r *mongoExerciseRepository) CreateMany(ctx context.Context, exercises []domain.CatalogExercise) error {
	return insertMany(ctx, r.collection, exercises)
}

// GetByID retrieves an exercise by its ID.
func (r *mongoExerciseRepository) GetByID(ctx context.Context, id string) (*domain.CatalogExercise, error) {
	var exercise domain.CatalogExercise
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&exercise)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// List returns the whole library. Seeded entries keep their numeric order;
// custom exercises sort after them by name.
func (r *mongoExerciseRepository) List(ctx context.Context) ([]domain.CatalogExercise, error) {
	exercises, err := findAll[domain.CatalogExercise](ctx, r.collection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	sortCatalog(exercises)
	return exercises, nil
}

func (r *mongoExerciseRepository) Count(ctx context.Context) (int64, error) {
	return countAll(ctx, r.collection)
}

func exerciseIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "type", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "muscleGroups", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "name", Value: "text"}, {Key: "instructions", Value: "text"}},
			Options: options.Index().SetName("exercise_text_search"),
		},
	}
}

// sortCatalog puts numeric ids first in numeric order, then everything else by name.
func sortCatalog(exercises []domain.CatalogExercise) {
	slices.SortStableFunc(exercises, func(a, b domain.CatalogExercise) int {
		na, errA := strconv.Atoi(a.ID)
		nb, errB := strconv.Atoi(b.ID)
		switch {
		case errA == nil && errB == nil:
			return na - nb
		case errA == nil:
			return -1
		case errB == nil:
			return 1
		}
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
}
