package model

// ScoredAnswer is the per-question scoring breakdown, computed per request
// and never persisted on its own.
type ScoredAnswer struct {
	QuestionID    string  `json:"questionId"`
	QuestionScore float64 `json:"questionScore"` // 0-10
	Weight        int     `json:"weight"`        // 0-10, 0 for non-scored types
	WeightedScore float64 `json:"weightedScore"` // QuestionScore * Weight
}

// AggregatedScore is the weighted result of one check-in
type AggregatedScore struct {
	TotalWeighted float64        `json:"totalWeighted"`
	TotalPossible float64        `json:"totalPossible"`
	Percent       int            `json:"percent"` // 0-100, 0 when TotalPossible is 0
	Breakdown     []ScoredAnswer `json:"breakdown,omitempty"`
}

// ScoringThresholds is the canonical two-cut-point form.
// Red band = [0, RedMax], Orange = [RedMax+1, OrangeMax], Green = [OrangeMax+1, 100].
type ScoringThresholds struct {
	RedMax    int `json:"redMax" bson:"redMax"`
	OrangeMax int `json:"orangeMax" bson:"orangeMax"`
}

// Valid reports whether the band invariant 0 <= redMax < orangeMax < 100 holds
func (t ScoringThresholds) Valid() bool {
	return t.RedMax >= 0 && t.RedMax < t.OrangeMax && t.OrangeMax < 100
}

// ThresholdConfig is the stored threshold shape. Three historical formats
// coexist in the clients collection: canonical {redMax, orangeMax}, legacy
// {red, yellow}, or neither (profile name on the parent config decides).
type ThresholdConfig struct {
	RedMax    *int `json:"redMax,omitempty" bson:"redMax,omitempty"`
	OrangeMax *int `json:"orangeMax,omitempty" bson:"orangeMax,omitempty"`
	Red       *int `json:"red,omitempty" bson:"red,omitempty"`
	Yellow    *int `json:"yellow,omitempty" bson:"yellow,omitempty"`
}

// ScoringConfig is a client's stored scoring configuration
type ScoringConfig struct {
	Thresholds     *ThresholdConfig `json:"thresholds,omitempty" bson:"thresholds,omitempty"`
	ScoringProfile string           `json:"scoringProfile,omitempty" bson:"scoringProfile,omitempty"`
}

// StatusBand is the coarse traffic-light classification of a percent score
type StatusBand string

const (
	BandRed    StatusBand = "red"
	BandOrange StatusBand = "orange"
	BandGreen  StatusBand = "green"
)

// Status carries the band plus its display descriptors
type Status struct {
	Band       StatusBand `json:"band"`
	Label      string     `json:"label"`
	ColorToken string     `json:"colorToken"`
	Message    string     `json:"message"`
}
