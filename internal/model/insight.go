package model

import "time"

// ClientInsights is the AI-generated analysis payload. The structure is
// opaque to the cache policy beyond being JSON-serializable.
type ClientInsights struct {
	Summary         string   `json:"summary" bson:"summary"`
	Strengths       []string `json:"strengths" bson:"strengths"`
	FocusAreas      []string `json:"focusAreas" bson:"focusAreas"`
	Recommendations []string `json:"recommendations" bson:"recommendations"`
}

// CachedAnalysis is the persisted analysis artifact for one client.
// At most one record per client is authoritative; resolution always picks
// the most recent by GeneratedAt.
type CachedAnalysis struct {
	ID          string         `json:"id" bson:"_id,omitempty"`
	ClientID    string         `json:"clientId" bson:"clientId"`
	Analysis    ClientInsights `json:"analysis" bson:"analysis"`
	GeneratedAt time.Time      `json:"generatedAt" bson:"generatedAt"`

	// Fingerprint of the inputs that produced the analysis
	CheckInCount int `json:"checkInCount" bson:"checkInCount"`
	LatestScore  int `json:"latestScore" bson:"latestScore"`
}

// AgeDays returns the age of the analysis relative to now, in fractional days
func (a *CachedAnalysis) AgeDays(now time.Time) float64 {
	return now.Sub(a.GeneratedAt).Hours() / 24
}

// InsightsResponse wraps a cached analysis for API consumers
type InsightsResponse struct {
	ClientID    string         `json:"clientId"`
	Analysis    ClientInsights `json:"analysis"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Stale       bool           `json:"stale,omitempty"` // Set when a failed regeneration fell back to an old record
}
