package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SessionRecord is the raw shape of an assessment document in the remote
// store. The remote store assigns the id on insert.
type SessionRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	Completed   bool               `bson:"completed"`
	CreatedAt   time.Time          `bson:"created_at"`
	CompletedAt *time.Time         `bson:"completed_at,omitempty"`
}

type SessionRepository struct {
	Col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{Col: db.Collection("assessments")}
}

// Create inserts a new, not yet completed assessment and returns the id the
// store assigned to it.
func (r *SessionRepository) Create(ctx context.Context, userID string) (string, error) {
	record := SessionRecord{
		UserID:    userID,
		Completed: false,
		CreatedAt: time.Now().UTC(),
	}
	res, err := r.Col.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", mongo.ErrNilDocument
	}
	return oid.Hex(), nil
}

func (r *SessionRepository) MarkComplete(ctx context.Context, id string, completedAt time.Time) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Col.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"completed": true, "completed_at": completedAt}},
	)
	return err
}

// FindMostRecentCompleted returns the user's latest completed assessment, or
// nil when there is none.
func (r *SessionRepository) FindMostRecentCompleted(ctx context.Context, userID string) (*SessionRecord, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "completed_at", Value: -1}})
	var record SessionRecord
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID, "completed": true}, opts).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}
