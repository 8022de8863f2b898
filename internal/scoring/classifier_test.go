package scoring

import (
	"testing"

	"coachpulse/internal/model"
)

func TestClassifyBoundaries(t *testing.T) {
	thresholds := model.ScoringThresholds{RedMax: 40, OrangeMax: 79}

	cases := []struct {
		percent int
		want    model.StatusBand
	}{
		{0, model.BandRed},
		{39, model.BandRed},
		{40, model.BandRed},    // redMax itself is red
		{41, model.BandOrange}, // first score above redMax
		{71, model.BandOrange}, // documented sample check-in
		{79, model.BandOrange}, // orangeMax itself is orange
		{80, model.BandGreen},  // first score above orangeMax
		{100, model.BandGreen},
	}
	for _, c := range cases {
		if got := Classify(c.percent, thresholds); got.Band != c.want {
			t.Fatalf("Classify(%d) = %s, want %s", c.percent, got.Band, c.want)
		}
	}
}

func TestClassifyCoversWholeRange(t *testing.T) {
	thresholds := model.ScoringThresholds{RedMax: 40, OrangeMax: 79}

	for percent := 0; percent <= 100; percent++ {
		status := Classify(percent, thresholds)
		switch status.Band {
		case model.BandRed, model.BandOrange, model.BandGreen:
		default:
			t.Fatalf("Classify(%d) returned unknown band %q", percent, status.Band)
		}
	}
}

func TestClassifyDescriptors(t *testing.T) {
	thresholds := model.ScoringThresholds{RedMax: 40, OrangeMax: 79}

	cases := []struct {
		percent    int
		label      string
		colorToken string
	}{
		{10, "Needs Attention", "red"},
		{60, "On Track", "orange"},
		{95, "Excellent", "green"},
	}
	for _, c := range cases {
		got := Classify(c.percent, thresholds)
		if got.Label != c.label || got.ColorToken != c.colorToken {
			t.Fatalf("Classify(%d) = {%s %s}, want {%s %s}", c.percent, got.Label, got.ColorToken, c.label, c.colorToken)
		}
		if got.Message == "" {
			t.Fatalf("Classify(%d) returned empty message", c.percent)
		}
	}
}

// Full pipeline over the documented sample: aggregate then classify
func TestScoreAndClassifySample(t *testing.T) {
	agg := Aggregate(sampleQuestions(), sampleAnswers())
	thresholds := NewThresholdResolver().Resolve(nil)

	status := Classify(agg.Percent, thresholds)
	if agg.Percent != 71 || status.Band != model.BandOrange {
		t.Fatalf("sample check-in = %d/%s, want 71/orange", agg.Percent, status.Band)
	}
}
