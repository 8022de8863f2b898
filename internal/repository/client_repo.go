package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"coachpulse/internal/model"
)

// ClientRepo handles MongoDB operations for coached clients
type ClientRepo interface {
	Create(ctx context.Context, client *model.Client) (string, error)
	GetByID(ctx context.Context, id string) (*model.Client, error)
	GetByCoachID(ctx context.Context, coachID string) ([]*model.Client, error)
	GetScoringConfig(ctx context.Context, clientID string) (*model.ScoringConfig, error)
	SetScoringConfig(ctx context.Context, clientID string, cfg *model.ScoringConfig) error
	Update(ctx context.Context, client *model.Client) error
}

type clientRepo struct {
	collection *mongo.Collection
}

// NewClientRepo creates a new client repository
func NewClientRepo(db *mongo.Database) ClientRepo {
	return &clientRepo{
		collection: db.Collection("clients"),
	}
}

func (r *clientRepo) Create(ctx context.Context, client *model.Client) (string, error) {
	if client.ID == "" {
		client.ID = primitive.NewObjectID().Hex()
	}
	client.CreatedAt = time.Now()
	client.UpdatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, client); err != nil {
		return "", err
	}
	return client.ID, nil
}

func (r *clientRepo) GetByID(ctx context.Context, id string) (*model.Client, error) {
	var client model.Client
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&client)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) GetByCoachID(ctx context.Context, coachID string) ([]*model.Client, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"coachId": coachID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clients []*model.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// GetScoringConfig returns the client's stored threshold configuration in
// whichever historical shape it was written, or nil when none exists
func (r *clientRepo) GetScoringConfig(ctx context.Context, clientID string) (*model.ScoringConfig, error) {
	client, err := r.GetByID(ctx, clientID)
	if err != nil || client == nil {
		return nil, err
	}
	return client.Scoring, nil
}

func (r *clientRepo) SetScoringConfig(ctx context.Context, clientID string, cfg *model.ScoringConfig) error {
	update := bson.M{"$set": bson.M{"scoring": cfg, "updatedAt": time.Now()}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": clientID}, update)
	return err
}

func (r *clientRepo) Update(ctx context.Context, client *model.Client) error {
	client.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": client.ID}, client)
	return err
}
