package services

import (
	"context"
	"fmt"
	"time"

	"clinic-triage-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TranscriptService persists conversation turns to MongoDB. Persistence is
// best-effort: the triage core never depends on it, and a nil database
// disables logging entirely (the service becomes a no-op).
type TranscriptService struct {
	collection *mongo.Collection
}

func NewTranscriptService(db *mongo.Database) *TranscriptService {
	if db == nil {
		return &TranscriptService{}
	}
	return &TranscriptService{
		collection: db.Collection("messages"),
	}
}

// Enabled reports whether turns are actually being persisted.
func (s *TranscriptService) Enabled() bool {
	return s.collection != nil
}

// LogTurn stores one user-message/bot-reply pair.
func (s *TranscriptService) LogTurn(ctx context.Context, message *models.Message) error {
	if s.collection == nil {
		return nil
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}

	if _, err := s.collection.InsertOne(ctx, message); err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}
	return nil
}

// History returns up to limit turns for a session, oldest first.
func (s *TranscriptService) History(ctx context.Context, sessionID string, limit int64) ([]models.Message, error) {
	if s.collection == nil {
		return nil, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: 1}}).
		SetLimit(limit)

	cursor, err := s.collection.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return messages, nil
}
