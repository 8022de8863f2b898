package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"coachpulse/internal/model"
)

// CheckInRepo handles MongoDB operations for submitted check-ins
type CheckInRepo interface {
	Create(ctx context.Context, checkIn *model.CheckIn) (string, error)
	GetByID(ctx context.Context, id string) (*model.CheckIn, error)
	GetRecentByClient(ctx context.Context, clientID string, limit int) ([]*model.CheckIn, error)
	CountByClient(ctx context.Context, clientID string) (int64, error)
}

type checkInRepo struct {
	collection *mongo.Collection
}

// NewCheckInRepo creates a new check-in repository
func NewCheckInRepo(db *mongo.Database) CheckInRepo {
	return &checkInRepo{
		collection: db.Collection("checkins"),
	}
}

func (r *checkInRepo) Create(ctx context.Context, checkIn *model.CheckIn) (string, error) {
	if checkIn.ID == "" {
		checkIn.ID = primitive.NewObjectID().Hex()
	}
	if checkIn.SubmittedAt.IsZero() {
		checkIn.SubmittedAt = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, checkIn); err != nil {
		return "", err
	}
	return checkIn.ID, nil
}

func (r *checkInRepo) GetByID(ctx context.Context, id string) (*model.CheckIn, error) {
	var checkIn model.CheckIn
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&checkIn)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &checkIn, nil
}

// GetRecentByClient returns the client's check-ins, newest first
func (r *checkInRepo) GetRecentByClient(ctx context.Context, clientID string, limit int) ([]*model.CheckIn, error) {
	opts := options.Find().SetSort(bson.M{"submittedAt": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"clientId": clientID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var checkIns []*model.CheckIn
	if err := cursor.All(ctx, &checkIns); err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (r *checkInRepo) CountByClient(ctx context.Context, clientID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"clientId": clientID})
}
