package mongo

import (
	"alcyxob/coach-studio/internal/domain"
	"alcyxob/coach-studio/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const conversationCollectionName = "conversations"

// mongoConversationRepository implements repository.ConversationRepository
type mongoConversationRepository struct {
	collection *mongo.Collection
}

// NewMongoConversationRepository creates a message thread store backed by MongoDB.
func NewMongoConversationRepository(db *mongo.Database) repository.ConversationRepository {
	return &mongoConversationRepository{
		collection: db.Collection(conversationCollectionName),
	}
}

func (r *mongoConversationRepository) CreateMany(ctx context.Context, conversations []domain.Conversation) error {
	return insertMany(ctx, r.collection, conversations)
}

func (r *mongoConversationRepository) List(ctx context.Context) ([]domain.Conversation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	conversations, err := findAll[domain.Conversation](ctx, r.collection, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return conversations, nil
}

func (r *mongoConversationRepository) GetByID(ctx context.Context, id string) (*domain.Conversation, error) {
	var conversation domain.Conversation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&conversation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &conversation, nil
}

func (r *mongoConversationRepository) AppendMessage(ctx context.Context, conversationID string, m domain.Message, at time.Time) error {
	update := bson.M{
		"$push": bson.M{"messages": m},
		"$set":  bson.M{"updatedAt": at},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": conversationID}, update)
	if err != nil {
		return fmt.Errorf("append message: %w", err)
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoConversationRepository) MarkRead(ctx context.Context, conversationID string, reader domain.MessageSender) error {
	update := bson.M{"$set": bson.M{"messages.$[m].read": true}}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"m.sender": bson.M{"$ne": reader}, "m.read": false}},
	})
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": conversationID}, update, opts)
	if err != nil {
		return fmt.Errorf("mark messages read: %w", err)
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoConversationRepository) Count(ctx context.Context) (int64, error) {
	return countAll(ctx, r.collection)
}

func conversationIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "athleteId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "updatedAt", Value: -1}},
			Options: options.Index(),
		},
	}
}
