package scoring

import (
	"testing"

	"coachpulse/internal/model"
)

func sampleQuestions() []*model.Question {
	return []*model.Question{
		{ID: "sleep", Type: model.QuestionTypeScale, Weight: 8},
		{ID: "exercise", Type: model.QuestionTypeBoolean, Weight: 5},
		{ID: "notes", Type: model.QuestionTypeText, Weight: 2},
	}
}

func sampleAnswers() []model.Answer {
	return []model.Answer{
		{QuestionID: "sleep", Value: 7},
		{QuestionID: "exercise", Value: "yes"},
		{QuestionID: "notes", Value: "felt good most days"},
	}
}

// Documented sample check-in: Sleep 7x8=56, Exercise yes 8x5=40,
// Notes neutral 5x2=10. 106 of 150 rounds to 71.
func TestAggregateSample(t *testing.T) {
	agg := Aggregate(sampleQuestions(), sampleAnswers())

	if agg.TotalWeighted != 106 {
		t.Fatalf("total weighted = %v, want 106", agg.TotalWeighted)
	}
	if agg.TotalPossible != 150 {
		t.Fatalf("total possible = %v, want 150", agg.TotalPossible)
	}
	if agg.Percent != 71 {
		t.Fatalf("percent = %d, want 71", agg.Percent)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	questions := sampleQuestions()
	answers := sampleAnswers()

	want := Aggregate(questions, answers).Percent

	reversed := []model.Answer{answers[2], answers[0], answers[1]}
	if got := Aggregate(questions, reversed).Percent; got != want {
		t.Fatalf("permuted answers scored %d, want %d", got, want)
	}
}

func TestAggregateSkipsMissingQuestions(t *testing.T) {
	questions := []*model.Question{
		{ID: "sleep", Type: model.QuestionTypeScale, Weight: 8},
	}
	answers := []model.Answer{
		{QuestionID: "sleep", Value: 7},
		{QuestionID: "deleted-question", Value: 3},
	}

	agg := Aggregate(questions, answers)
	if agg.TotalPossible != 80 {
		t.Fatalf("missing question contributed weight: total possible = %v, want 80", agg.TotalPossible)
	}
	if len(agg.Breakdown) != 1 {
		t.Fatalf("breakdown has %d entries, want 1", len(agg.Breakdown))
	}
	if agg.Percent != 70 {
		t.Fatalf("percent = %d, want 70", agg.Percent)
	}
}

func TestAggregateZeroWeight(t *testing.T) {
	questions := []*model.Question{
		{ID: "notes", Type: model.QuestionTypeText},
		{ID: "journal", Type: model.QuestionTypeTextarea},
	}
	answers := []model.Answer{
		{QuestionID: "notes", Value: "all fine"},
		{QuestionID: "journal", Value: "great"},
	}

	agg := Aggregate(questions, answers)
	if agg.Percent != 0 {
		t.Fatalf("all-unweighted check-in scored %d, want 0", agg.Percent)
	}
	if agg.TotalPossible != 0 {
		t.Fatalf("total possible = %v, want 0", agg.TotalPossible)
	}
}

func TestAggregateEmptyAnswers(t *testing.T) {
	agg := Aggregate(sampleQuestions(), nil)
	if agg.Percent != 0 || agg.TotalPossible != 0 {
		t.Fatalf("empty check-in produced %+v", agg)
	}
}

func TestAggregateDefaultWeight(t *testing.T) {
	questions := []*model.Question{
		{ID: "mood", Type: model.QuestionTypeScale}, // no weight set
	}
	answers := []model.Answer{{QuestionID: "mood", Value: 10}}

	agg := Aggregate(questions, answers)
	if agg.TotalPossible != 50 {
		t.Fatalf("default weight not applied: total possible = %v, want 50", agg.TotalPossible)
	}
	if agg.Percent != 100 {
		t.Fatalf("percent = %d, want 100", agg.Percent)
	}
}

func TestWeightedContribution(t *testing.T) {
	q := &model.Question{ID: "sleep", Type: model.QuestionTypeScale, Weight: 8}
	agg := Aggregate([]*model.Question{q}, []model.Answer{{QuestionID: "sleep", Value: 7}})
	if len(agg.Breakdown) != 1 || agg.Breakdown[0].WeightedScore != 56 {
		t.Fatalf("breakdown = %+v, want weighted score 56", agg.Breakdown)
	}
}
