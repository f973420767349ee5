package mongo

import (
	"alcyxob/coach-studio/internal/domain"
	"alcyxob/coach-studio/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const athleteCollectionName = "athletes"

// mongoAthleteRepository implements repository.AthleteRepository
type mongoAthleteRepository struct {
	collection *mongo.Collection
}

// NewMongoAthleteRepository creates a roster store backed by MongoDB.
func NewMongoAthleteRepository(db *mongo.Database) repository.AthleteRepository {
	return &mongoAthleteRepository{
		collection: db.Collection(athleteCollectionName),
	}
}

// List returns the whole roster ordered by id.
func (r *mongoAthleteRepository) List(ctx context.Context) ([]domain.AthleteRosterEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	return findAll[domain.AthleteRosterEntry](ctx, r.collection, bson.M{}, opts)
}

func (r *mongoAthleteRepository) GetByID(ctx context.Context, id string) (*domain.AthleteRosterEntry, error) {
	var athlete domain.AthleteRosterEntry
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&athlete)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &athlete, nil
}

func (r *mongoAthleteRepository) CreateMany(ctx context.Context, athletes []domain.AthleteRosterEntry) error {
	return insertMany(ctx, r.collection, athletes)
}

func (r *mongoAthleteRepository) Count(ctx context.Context) (int64, error) {
	return countAll(ctx, r.collection)
}

func athleteIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index(),
		},
	}
}
