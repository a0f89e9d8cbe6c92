package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AnswerRecord is the raw shape of an answer document in the remote store,
// keyed by (assessment_id, question_id).
type AnswerRecord struct {
	AssessmentID   string    `bson:"assessment_id"`
	QuestionID     string    `bson:"question_id"`
	SelectedOption int       `bson:"selected_option"`
	UpdatedAt      time.Time `bson:"updated_at"`
}

type AnswerRepository struct {
	Col *mongo.Collection
}

func NewAnswerRepository(db *mongo.Database) *AnswerRepository {
	return &AnswerRepository{Col: db.Collection("answers")}
}

// Upsert records an answer, replacing any previous document for the same
// (assessment, question) pair. Out-of-order arrival of two upserts for the
// same pair is tolerated by the key.
func (r *AnswerRepository) Upsert(ctx context.Context, assessmentID, questionID string, selectedOption int) error {
	_, err := r.Col.UpdateOne(ctx,
		bson.M{"assessment_id": assessmentID, "question_id": questionID},
		bson.M{"$set": bson.M{
			"selected_option": selectedOption,
			"updated_at":      time.Now().UTC(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *AnswerRepository) FindByAssessment(ctx context.Context, assessmentID string) ([]AnswerRecord, error) {
	cur, err := r.Col.Find(ctx, bson.M{"assessment_id": assessmentID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var answers []AnswerRecord
	for cur.Next(ctx) {
		var a AnswerRecord
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, nil
}
