package model

import "time"

// QuestionType defines the type of check-in question
type QuestionType string

const (
	QuestionTypeScale          QuestionType = "scale"           // 1-10 self-rating
	QuestionTypeRating         QuestionType = "rating"          // Alias for scale, kept for older questionnaires
	QuestionTypeNumber         QuestionType = "number"          // Free numeric entry
	QuestionTypeMultipleChoice QuestionType = "multiple_choice" // One option from a list
	QuestionTypeSelect         QuestionType = "select"          // Alias for multiple_choice
	QuestionTypeBoolean        QuestionType = "boolean"         // Yes/no
	QuestionTypeText           QuestionType = "text"            // Short free text, never scored
	QuestionTypeTextarea       QuestionType = "textarea"        // Long free text, keyword-scored
)

const (
	// DefaultQuestionWeight applies when a scored question has no weight set
	DefaultQuestionWeight = 5
	// MaxQuestionWeight caps per-question importance
	MaxQuestionWeight = 10
)

// Option is one selectable choice on a multiple_choice/select question.
// Weight 0 means no explicit weight; the scorer falls back to positional scoring.
type Option struct {
	Value  string `json:"value" bson:"value"`
	Text   string `json:"text,omitempty" bson:"text,omitempty"`
	Weight int    `json:"weight,omitempty" bson:"weight,omitempty"`
}

// Question is a reusable check-in question definition owned by a coach.
// Edits apply to future scoring only; historical check-ins keep the scores
// they were given at submission time.
type Question struct {
	ID            string       `json:"id" bson:"_id,omitempty"`
	CoachID       string       `json:"coachId" bson:"coachId"`
	Prompt        string       `json:"prompt" bson:"prompt"`
	Type          QuestionType `json:"type" bson:"type"`
	Weight        int          `json:"weight,omitempty" bson:"weight,omitempty"`
	Options       []Option     `json:"options,omitempty" bson:"options,omitempty"`
	YesIsPositive *bool        `json:"yesIsPositive,omitempty" bson:"yesIsPositive,omitempty"`
	CreatedAt     time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt" bson:"updatedAt"`
}

// IsFreeText reports whether the question type never contributes weight
func (q *Question) IsFreeText() bool {
	return q.Type == QuestionTypeText || q.Type == QuestionTypeTextarea
}

// EffectiveWeight returns the weight used for aggregation, clamped to
// [1,10]. Scored types default to 5 when unset; free-text types default
// to 0 so commentary does not dilute the score unless a coach explicitly
// weights it.
func (q *Question) EffectiveWeight() int {
	w := q.Weight
	if w < 1 {
		if q.IsFreeText() {
			return 0
		}
		return DefaultQuestionWeight
	}
	if w > MaxQuestionWeight {
		return MaxQuestionWeight
	}
	return w
}

// IsYesPositive resolves the boolean polarity, defaulting to true
func (q *Question) IsYesPositive() bool {
	if q.YesIsPositive == nil {
		return true
	}
	return *q.YesIsPositive
}
