package scoring

import (
	"testing"

	"coachpulse/internal/model"
)

func intPtr(n int) *int { return &n }

func TestResolveCanonicalWinsVerbatim(t *testing.T) {
	cfg := &model.ScoringConfig{
		Thresholds: &model.ThresholdConfig{
			RedMax:    intPtr(30),
			OrangeMax: intPtr(70),
			// Legacy fields present too; canonical must win
			Red:    intPtr(99),
			Yellow: intPtr(1),
		},
		ScoringProfile: "performance",
	}

	got := NewThresholdResolver().Resolve(cfg)
	want := model.ScoringThresholds{RedMax: 30, OrangeMax: 70}
	if got != want {
		t.Fatalf("Resolve = %+v, want %+v", got, want)
	}
}

func TestResolveLegacyConversion(t *testing.T) {
	cfg := &model.ScoringConfig{
		Thresholds: &model.ThresholdConfig{Red: intPtr(41), Yellow: intPtr(80)},
	}

	got := NewThresholdResolver().Resolve(cfg)
	want := model.ScoringThresholds{RedMax: 40, OrangeMax: 79}
	if got != want {
		t.Fatalf("Resolve(legacy) = %+v, want %+v", got, want)
	}
}

// Resolving a legacy config and re-resolving its canonical output must be
// a fixed point.
func TestResolveLegacyIdempotent(t *testing.T) {
	r := NewThresholdResolver()

	first := r.Resolve(&model.ScoringConfig{
		Thresholds: &model.ThresholdConfig{Red: intPtr(35), Yellow: intPtr(75)},
	})
	second := r.Resolve(Canonical(first))

	if first != second {
		t.Fatalf("re-resolution changed thresholds: %+v -> %+v", first, second)
	}
}

func TestResolveProfiles(t *testing.T) {
	r := NewThresholdResolver()

	cases := []struct {
		name string
		cfg  *model.ScoringConfig
		want model.ScoringThresholds
	}{
		{"named profile", &model.ScoringConfig{ScoringProfile: "performance"}, model.ScoringThresholds{RedMax: 49, OrangeMax: 84}},
		{"lifestyle profile", &model.ScoringConfig{ScoringProfile: "lifestyle"}, model.ScoringThresholds{RedMax: 40, OrangeMax: 79}},
		{"unknown profile falls back", &model.ScoringConfig{ScoringProfile: "crossfit"}, model.ScoringThresholds{RedMax: 40, OrangeMax: 79}},
		{"empty config falls back", &model.ScoringConfig{}, model.ScoringThresholds{RedMax: 40, OrangeMax: 79}},
		{"nil config falls back", nil, model.ScoringThresholds{RedMax: 40, OrangeMax: 79}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := r.Resolve(c.cfg); got != c.want {
				t.Fatalf("Resolve = %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestResolveMalformedFallsBack(t *testing.T) {
	r := NewThresholdResolver()
	want := model.ScoringThresholds{RedMax: 40, OrangeMax: 79}

	cases := []struct {
		name string
		cfg  *model.ScoringConfig
	}{
		{"inverted canonical", &model.ScoringConfig{
			Thresholds: &model.ThresholdConfig{RedMax: intPtr(80), OrangeMax: intPtr(20)},
		}},
		{"negative redMax", &model.ScoringConfig{
			Thresholds: &model.ThresholdConfig{RedMax: intPtr(-5), OrangeMax: intPtr(50)},
		}},
		{"orangeMax at 100", &model.ScoringConfig{
			Thresholds: &model.ThresholdConfig{RedMax: intPtr(40), OrangeMax: intPtr(100)},
		}},
		{"legacy collapsing bands", &model.ScoringConfig{
			Thresholds: &model.ThresholdConfig{Red: intPtr(50), Yellow: intPtr(50)},
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := r.Resolve(c.cfg)
			if got != want {
				t.Fatalf("Resolve(malformed) = %+v, want default %+v", got, want)
			}
			if !got.Valid() {
				t.Fatalf("resolver produced unusable thresholds %+v", got)
			}
		})
	}
}
