package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"coachpulse/internal/model"
)

// AnalysisRepo handles MongoDB operations for cached client analyses.
// The store may physically hold more than one record per client; the
// most recent by generatedAt is the authoritative one.
type AnalysisRepo interface {
	FindLatestByClient(ctx context.Context, clientID string) (*model.CachedAnalysis, error)
	Insert(ctx context.Context, analysis *model.CachedAnalysis) error
	Update(ctx context.Context, id string, analysis *model.CachedAnalysis) error
}

type analysisRepo struct {
	collection *mongo.Collection
}

// NewAnalysisRepo creates a new analysis repository
func NewAnalysisRepo(db *mongo.Database) AnalysisRepo {
	return &analysisRepo{
		collection: db.Collection("client_analyses"),
	}
}

// FindLatestByClient fetches the client's analyses unordered and picks the
// most recent in memory. The collection carries no generatedAt index, so a
// sorted query cannot be relied on; selecting here keeps the read path
// working either way.
func (r *analysisRepo) FindLatestByClient(ctx context.Context, clientID string) (*model.CachedAnalysis, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"clientId": clientID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var analyses []*model.CachedAnalysis
	if err := cursor.All(ctx, &analyses); err != nil {
		return nil, err
	}

	var latest *model.CachedAnalysis
	for _, a := range analyses {
		if latest == nil || a.GeneratedAt.After(latest.GeneratedAt) {
			latest = a
		}
	}
	return latest, nil
}

func (r *analysisRepo) Insert(ctx context.Context, analysis *model.CachedAnalysis) error {
	if analysis.ID == "" {
		analysis.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, analysis)
	return err
}

// Update replaces an existing record in place, keeping at most one
// authoritative analysis per client after an upsert
func (r *analysisRepo) Update(ctx context.Context, id string, analysis *model.CachedAnalysis) error {
	analysis.ID = id
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, analysis)
	return err
}
