package scoring

import (
	"strconv"
	"strings"

	"coachpulse/internal/model"
)

// Score converts one answer value into a raw sub-score on the 0-10 scale.
// It never fails: unrecognized or malformed input degrades to a neutral or
// zero score so one bad answer cannot block a whole check-in.
func Score(q *model.Question, value interface{}) float64 {
	switch q.Type {
	case model.QuestionTypeScale, model.QuestionTypeRating:
		return scoreScale(value)
	case model.QuestionTypeNumber:
		return scoreNumber(value)
	case model.QuestionTypeMultipleChoice, model.QuestionTypeSelect:
		return scoreChoice(q.Options, value)
	case model.QuestionTypeBoolean:
		return scoreBoolean(q.IsYesPositive(), value)
	case model.QuestionTypeText:
		return 5
	case model.QuestionTypeTextarea:
		return scoreTextarea(value)
	default:
		// Unknown types score neutral so aggregation stays total
		return 5
	}
}

// scoreScale uses the value verbatim when it parses into [1,10].
// Anything else contributes nothing.
func scoreScale(value interface{}) float64 {
	v, ok := parseNumber(value)
	if !ok || v < 1 || v > 10 {
		return 0
	}
	return v
}

// scoreNumber rescales [0,100] linearly onto [1,10]; out-of-range values
// are divided by 10 and clamped.
func scoreNumber(value interface{}) float64 {
	v, ok := parseNumber(value)
	if !ok {
		return 0
	}
	if v >= 0 && v <= 100 {
		return 1 + (v/100)*9
	}
	scaled := v / 10
	if scaled < 1 {
		return 1
	}
	if scaled > 10 {
		return 10
	}
	return scaled
}

// scoreChoice prefers an option's explicit weight; without one it scores by
// position in the option list, first option low and last option high.
func scoreChoice(options []model.Option, value interface{}) float64 {
	answer := strings.TrimSpace(stringify(value))
	if answer == "" || len(options) == 0 {
		return 0
	}

	idx := -1
	for i, opt := range options {
		if strings.EqualFold(opt.Value, answer) || (opt.Text != "" && strings.EqualFold(opt.Text, answer)) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0
	}

	if w := options[idx].Weight; w > 0 {
		if w > model.MaxQuestionWeight {
			return model.MaxQuestionWeight
		}
		return float64(w)
	}

	n := len(options)
	if n == 1 {
		return 5
	}
	return 1 + (float64(idx)/float64(n-1))*9
}

// scoreBoolean maps yes/no onto 8/3, inverted when yes is the negative signal
func scoreBoolean(yesIsPositive bool, value interface{}) float64 {
	yes := false
	switch v := value.(type) {
	case bool:
		yes = v
	case string:
		yes = strings.EqualFold(strings.TrimSpace(v), "yes")
	}

	if yes == yesIsPositive {
		return 8
	}
	return 3
}

// scoreTextarea keyword-scores known sentiment words and treats everything
// else as neutral commentary
func scoreTextarea(value interface{}) float64 {
	switch strings.ToLower(strings.TrimSpace(stringify(value))) {
	case "great":
		return 9
	case "average":
		return 5
	case "poor":
		return 2
	default:
		return 5
	}
}

// parseNumber extracts a float from the numeric and string shapes BSON and
// JSON decoding produce
func parseNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
