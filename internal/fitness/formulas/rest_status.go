package formulas

import "github.com/utrackapp/utrack/internal/fitness/exercises"

// RestStatusText is the three-tier rest classification shown on the rest
// timer between sets.
type RestStatusText string

const (
	RestStatusRest       RestStatusText = "Rest"
	RestStatusRecharging RestStatusText = "Recharging..."
	RestStatusReady      RestStatusText = "Ready to Go!"
)

// Rest thresholds in seconds. Compound movements need longer breaks.
const (
	compoundPhase1Seconds  = 90
	compoundPhase2Seconds  = 180
	isolationPhase1Seconds = 60
	isolationPhase2Seconds = 90
)

// RestStatus carries the classification plus the traffic-light color and
// the rest goals the timer UI renders.
type RestStatus struct {
	Text           RestStatusText `json:"text"`
	Color          string         `json:"color"`
	GoalSeconds    int            `json:"goal"`
	MaxGoalSeconds int            `json:"maxGoal"`
}

// ClassifyRest classifies elapsed rest time for an exercise category.
func ClassifyRest(elapsedSeconds int, category exercises.Category) RestStatus {
	phase1 := isolationPhase1Seconds
	phase2 := isolationPhase2Seconds
	if category == exercises.CategoryCompound {
		phase1 = compoundPhase1Seconds
		phase2 = compoundPhase2Seconds
	}

	switch {
	case elapsedSeconds < phase1:
		return RestStatus{
			Text:           RestStatusRest,
			Color:          "#FF3B30",
			GoalSeconds:    phase1,
			MaxGoalSeconds: phase2,
		}
	case elapsedSeconds < phase2:
		return RestStatus{
			Text:           RestStatusRecharging,
			Color:          "#FF9F0A",
			GoalSeconds:    phase2,
			MaxGoalSeconds: phase2,
		}
	default:
		return RestStatus{
			Text:           RestStatusReady,
			Color:          "#34C759",
			GoalSeconds:    phase2,
			MaxGoalSeconds: phase2,
		}
	}
}
