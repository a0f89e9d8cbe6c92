package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ResultRecord is the raw shape of a result document in the remote store,
// keyed by (assessment_id, theme_id).
type ResultRecord struct {
	AssessmentID string    `bson:"assessment_id"`
	ThemeID      string    `bson:"theme_id"`
	Score        int       `bson:"score"`
	Status       string    `bson:"status"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

type ResultRepository struct {
	Col *mongo.Collection
}

func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{Col: db.Collection("results")}
}

// Upsert records a theme result, replacing any previous document for the same
// (assessment, theme) pair so a retried completion has no duplicate side
// effects.
func (r *ResultRepository) Upsert(ctx context.Context, assessmentID, themeID string, score int, status string) error {
	_, err := r.Col.UpdateOne(ctx,
		bson.M{"assessment_id": assessmentID, "theme_id": themeID},
		bson.M{"$set": bson.M{
			"score":      score,
			"status":     status,
			"updated_at": time.Now().UTC(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *ResultRepository) FindByAssessment(ctx context.Context, assessmentID string) ([]ResultRecord, error) {
	cur, err := r.Col.Find(ctx, bson.M{"assessment_id": assessmentID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var results []ResultRecord
	for cur.Next(ctx) {
		var res ResultRecord
		if err := cur.Decode(&res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
