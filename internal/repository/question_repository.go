package repository

import (
	"context"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// QuestionRecord is the raw shape of a question document in the remote store.
type QuestionRecord struct {
	ID       string               `bson:"_id"`
	ThemeID  string               `bson:"theme_id"`
	Position int                  `bson:"position"`
	Text     models.LocalizedText `bson:"text"`
	Options  models.LocalizedList `bson:"options"`
}

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

func (r *QuestionRepository) FindAll(ctx context.Context) ([]QuestionRecord, error) {
	sort := options.Find().SetSort(bson.D{{Key: "theme_id", Value: 1}, {Key: "position", Value: 1}})
	cur, err := r.Col.Find(ctx, bson.M{}, sort)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []QuestionRecord
	for cur.Next(ctx) {
		var q QuestionRecord
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (r *QuestionRepository) Upsert(ctx context.Context, record QuestionRecord) error {
	_, err := r.Col.ReplaceOne(ctx,
		bson.M{"_id": record.ID},
		record,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *QuestionRepository) Count(ctx context.Context) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{})
}
