package scoring

import (
	"math"

	"coachpulse/internal/model"
)

// Aggregate combines all answers of one check-in into a single weighted
// percentage score. Answers whose question is missing are skipped entirely:
// they contribute neither weight nor score, so a client is never punished
// for a since-removed question.
func Aggregate(questions []*model.Question, answers []model.Answer) model.AggregatedScore {
	byID := make(map[string]*model.Question, len(questions))
	for _, q := range questions {
		if q != nil {
			byID[q.ID] = q
		}
	}

	agg := model.AggregatedScore{}
	for _, ans := range answers {
		q, ok := byID[ans.QuestionID]
		if !ok {
			continue
		}

		weight := q.EffectiveWeight()
		score := Score(q, ans.Value)
		weighted := score * float64(weight)

		agg.TotalWeighted += weighted
		agg.TotalPossible += float64(weight) * 10
		agg.Breakdown = append(agg.Breakdown, model.ScoredAnswer{
			QuestionID:    q.ID,
			QuestionScore: score,
			Weight:        weight,
			WeightedScore: weighted,
		})
	}

	if agg.TotalPossible == 0 {
		return agg
	}

	percent := int(math.Round(agg.TotalWeighted / agg.TotalPossible * 100))
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	agg.Percent = percent
	return agg
}
