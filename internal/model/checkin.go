package model

import "time"

// Answer is one response to one question within a submitted check-in.
// Value is heterogeneous: number, string, or bool depending on the
// question type (decoded as-is from JSON/BSON).
type Answer struct {
	QuestionID string      `json:"questionId" bson:"questionId"`
	Value      interface{} `json:"value" bson:"value"`
	Comment    string      `json:"comment,omitempty" bson:"comment,omitempty"`
}

// CheckIn is a client's single submission of answers. The percent score
// and band are computed at submission time and stored with the record.
type CheckIn struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	ClientID    string     `json:"clientId" bson:"clientId"`
	CoachID     string     `json:"coachId" bson:"coachId"`
	Answers     []Answer   `json:"answers" bson:"answers"`
	Score       int        `json:"score" bson:"score"`
	Band        StatusBand `json:"band" bson:"band"`
	SubmittedAt time.Time  `json:"submittedAt" bson:"submittedAt"`
}

// SubmitCheckInRequest is the request body for submitting a check-in
type SubmitCheckInRequest struct {
	Answers []Answer `json:"answers"`
}

// CheckInResult is returned after a check-in is scored
type CheckInResult struct {
	CheckInID string    `json:"checkInId"`
	Score     int       `json:"score"`
	Status    Status    `json:"status"`
	Submitted time.Time `json:"submittedAt"`
}

// ScoreSummary is the cached latest-score view of a client
type ScoreSummary struct {
	ClientID     string     `json:"clientId"`
	Score        int        `json:"score"`
	Band         StatusBand `json:"band"`
	CheckInCount int        `json:"checkInCount"`
	SubmittedAt  time.Time  `json:"submittedAt"`
}
