package model

import "time"

// Client is a coached client receiving periodic check-ins
type Client struct {
	ID        string         `json:"id" bson:"_id,omitempty"`
	CoachID   string         `json:"coachId" bson:"coachId"`
	Name      string         `json:"name" bson:"name"`
	Email     string         `json:"email,omitempty" bson:"email,omitempty"`
	Goal      string         `json:"goal,omitempty" bson:"goal,omitempty"`
	Scoring   *ScoringConfig `json:"scoring,omitempty" bson:"scoring,omitempty"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// CaseloadEntry is one row of a coach's caseload overview, ordered by
// latest check-in score (lowest first, so at-risk clients surface)
type CaseloadEntry struct {
	ClientID string `json:"clientId"`
	Score    int    `json:"score"`
	Rank     int    `json:"rank"`
}
