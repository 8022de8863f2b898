package scoring

import "coachpulse/internal/model"

// Classify maps a percent score onto its traffic-light band. Pure function:
// redMax and orangeMax are inclusive upper bounds of the red and orange bands.
func Classify(percent int, t model.ScoringThresholds) model.Status {
	switch {
	case percent <= t.RedMax:
		return model.Status{
			Band:       model.BandRed,
			Label:      "Needs Attention",
			ColorToken: "red",
			Message:    "Recent check-ins are trending low. Reach out and revisit the plan together.",
		}
	case percent <= t.OrangeMax:
		return model.Status{
			Band:       model.BandOrange,
			Label:      "On Track",
			ColorToken: "orange",
			Message:    "Progress is steady. Keep the current plan and watch the trend.",
		}
	default:
		return model.Status{
			Band:       model.BandGreen,
			Label:      "Excellent",
			ColorToken: "green",
			Message:    "Outstanding progress. Consider raising the targets.",
		}
	}
}
