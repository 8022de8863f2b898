package scoring

import "coachpulse/internal/model"

// DefaultProfile is the fallback threshold profile for clients without any
// stored scoring configuration
const DefaultProfile = "lifestyle"

// profileDefaults are the built-in threshold pairs per named profile
var profileDefaults = map[string]model.ScoringThresholds{
	"lifestyle":   {RedMax: 40, OrangeMax: 79},
	"performance": {RedMax: 49, OrangeMax: 84},
	"recovery":    {RedMax: 34, OrangeMax: 69},
}

// LegacyConverter maps the historical {red, yellow} threshold format onto
// the canonical {redMax, orangeMax} pair. It sits behind an interface so the
// mapping can be corrected without touching resolver callers.
type LegacyConverter interface {
	Convert(red, yellow int) model.ScoringThresholds
}

// inclusiveBoundConverter implements the historical semantics: legacy red
// and yellow were the first scores *inside* the orange and green bands, so
// the canonical inclusive upper bounds sit one point below them.
type inclusiveBoundConverter struct{}

func (inclusiveBoundConverter) Convert(red, yellow int) model.ScoringThresholds {
	return model.ScoringThresholds{RedMax: red - 1, OrangeMax: yellow - 1}
}

// ThresholdResolver normalizes a client's stored scoring configuration into
// canonical thresholds
type ThresholdResolver struct {
	legacy LegacyConverter
}

// NewThresholdResolver returns a resolver using the default legacy conversion
func NewThresholdResolver() *ThresholdResolver {
	return &ThresholdResolver{legacy: inclusiveBoundConverter{}}
}

// Resolve applies the format precedence: canonical fields win, then the
// legacy pair, then a named profile, then the default profile. Any result
// violating 0 <= redMax < orangeMax < 100 falls through to the default
// profile so classification always has usable cut points.
func (r *ThresholdResolver) Resolve(cfg *model.ScoringConfig) model.ScoringThresholds {
	if cfg != nil && cfg.Thresholds != nil {
		tc := cfg.Thresholds
		if tc.RedMax != nil && tc.OrangeMax != nil {
			t := model.ScoringThresholds{RedMax: *tc.RedMax, OrangeMax: *tc.OrangeMax}
			if t.Valid() {
				return t
			}
			return profileDefaults[DefaultProfile]
		}
		if tc.Red != nil && tc.Yellow != nil {
			t := r.legacy.Convert(*tc.Red, *tc.Yellow)
			if t.Valid() {
				return t
			}
			return profileDefaults[DefaultProfile]
		}
	}

	if cfg != nil && cfg.ScoringProfile != "" {
		if t, ok := profileDefaults[cfg.ScoringProfile]; ok {
			return t
		}
	}

	return profileDefaults[DefaultProfile]
}

// Canonical returns a stored config holding the canonical form of t, the
// shape persisted when a client's configuration is created lazily
func Canonical(t model.ScoringThresholds) *model.ScoringConfig {
	redMax, orangeMax := t.RedMax, t.OrangeMax
	return &model.ScoringConfig{
		Thresholds: &model.ThresholdConfig{RedMax: &redMax, OrangeMax: &orangeMax},
	}
}
