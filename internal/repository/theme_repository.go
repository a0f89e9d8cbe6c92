package repository

import (
	"context"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ThemeRecord is the raw shape of a theme document in the remote store.
type ThemeRecord struct {
	ID          string               `bson:"_id"`
	Position    int                  `bson:"position"`
	Title       models.LocalizedText `bson:"title"`
	Description models.LocalizedText `bson:"description"`
	Icon        string               `bson:"icon"`
	Color       string               `bson:"color"`
	Tips        models.LocalizedList `bson:"tips"`
}

type ThemeRepository struct {
	Col *mongo.Collection
}

func NewThemeRepository(db *mongo.Database) *ThemeRepository {
	return &ThemeRepository{Col: db.Collection("themes")}
}

func (r *ThemeRepository) FindAll(ctx context.Context) ([]ThemeRecord, error) {
	cur, err := r.Col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var themes []ThemeRecord
	for cur.Next(ctx) {
		var th ThemeRecord
		if err := cur.Decode(&th); err != nil {
			return nil, err
		}
		themes = append(themes, th)
	}
	return themes, nil
}

func (r *ThemeRepository) Upsert(ctx context.Context, record ThemeRecord) error {
	_, err := r.Col.ReplaceOne(ctx,
		bson.M{"_id": record.ID},
		record,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *ThemeRepository) Count(ctx context.Context) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{})
}
