package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"coachpulse/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect(ctx)

	db := mongoClient.Database("coachpulse")
	questionColl := db.Collection("questions")
	clientColl := db.Collection("clients")
	checkInColl := db.Collection("checkins")

	// Coach ID observed in logs
	coachID := "coach_8263b93c"
	now := time.Now()

	yes := true
	questions := []model.Question{
		{
			ID:      primitive.NewObjectID().Hex(),
			CoachID: coachID,
			Prompt:  "How well did you sleep this week, 1-10?",
			Type:    model.QuestionTypeScale,
			Weight:  8,
		},
		{
			ID:            primitive.NewObjectID().Hex(),
			CoachID:       coachID,
			Prompt:        "Did you complete all planned workouts?",
			Type:          model.QuestionTypeBoolean,
			Weight:        5,
			YesIsPositive: &yes,
		},
		{
			ID:      primitive.NewObjectID().Hex(),
			CoachID: coachID,
			Prompt:  "How many minutes of cardio did you average per day?",
			Type:    model.QuestionTypeNumber,
			Weight:  6,
		},
		{
			ID:      primitive.NewObjectID().Hex(),
			CoachID: coachID,
			Prompt:  "How was your nutrition adherence?",
			Type:    model.QuestionTypeMultipleChoice,
			Weight:  7,
			Options: []model.Option{
				{Value: "on_plan", Text: "Fully on plan", Weight: 10},
				{Value: "mostly", Text: "Mostly on plan", Weight: 7},
				{Value: "off_plan", Text: "Off plan", Weight: 2},
			},
		},
		{
			ID:      primitive.NewObjectID().Hex(),
			CoachID: coachID,
			Prompt:  "Anything else your coach should know?",
			Type:    model.QuestionTypeText,
		},
	}
	for i := range questions {
		questions[i].CreatedAt = now
		questions[i].UpdatedAt = now
		if _, err := questionColl.InsertOne(ctx, questions[i]); err != nil {
			log.Fatalf("Failed to insert question: %v", err)
		}
	}

	// A client still on the legacy floor-style threshold config
	red, yellow := 41, 80
	client := model.Client{
		ID:      primitive.NewObjectID().Hex(),
		CoachID: coachID,
		Name:    "Ana Martins",
		Email:   "ana@example.com",
		Goal:    "Run a sub-2h half marathon",
		Scoring: &model.ScoringConfig{
			Thresholds: &model.ThresholdConfig{Red: &red, Yellow: &yellow},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := clientColl.InsertOne(ctx, client); err != nil {
		log.Fatalf("Failed to insert client: %v", err)
	}

	// A few weeks of history so insights have something to chew on
	scores := []struct {
		score int
		band  model.StatusBand
		ago   int
	}{
		{62, model.BandOrange, 21},
		{71, model.BandOrange, 14},
		{84, model.BandGreen, 7},
	}
	for _, s := range scores {
		checkIn := model.CheckIn{
			ID:       primitive.NewObjectID().Hex(),
			ClientID: client.ID,
			CoachID:  coachID,
			Answers: []model.Answer{
				{QuestionID: questions[0].ID, Value: float64(7)},
				{QuestionID: questions[1].ID, Value: "yes"},
			},
			Score:       s.score,
			Band:        s.band,
			SubmittedAt: now.AddDate(0, 0, -s.ago),
		}
		if _, err := checkInColl.InsertOne(ctx, checkIn); err != nil {
			log.Fatalf("Failed to insert check-in: %v", err)
		}
	}

	fmt.Printf("Seeded %d questions, client '%s', and %d check-ins for coach '%s'\n",
		len(questions), client.Name, len(scores), coachID)
}
