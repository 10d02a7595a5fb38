package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/utrackapp/utrack/internal/fitness/exercises"
)

// Scoring model: every workout starts at the base score, each positive
// signal adds half a point, each negative subtracts half a point, the
// result is clamped to [0, 10]. Neutral signals carry information but
// never move the score.
const (
	baseScore            = 5.0
	signalWeight         = 0.5
	minScore             = 0.0
	maxScore             = 10.0
	fullyRecoveredCutoff = 100.0
	underRecovered       = 70.0
)

const (
	SignalTypeRecovery = "recovery"
	SignalTypeOneRM    = "1rm"
)

// Signal is one scored observation about the workout, either a recovery
// check on a worked muscle or a 1RM comparison on an exercise.
type Signal struct {
	Type          string   `json:"type"`
	Message       string   `json:"message"`
	PreRecovery   *float64 `json:"preRecovery,omitempty"`
	CurrentOneRM  *float64 `json:"current1rm,omitempty"`
	PreviousOneRM *float64 `json:"previous1rm,omitempty"`
	Difference    *float64 `json:"difference,omitempty"`
	PercentChange *float64 `json:"percentChange,omitempty"`
}

// Summary aggregates the signal counts and what the workout covered.
type Summary struct {
	TotalPositives     int      `json:"totalPositives"`
	TotalNegatives     int      `json:"totalNegatives"`
	TotalNeutrals      int      `json:"totalNeutrals"`
	MusclesWorked      []string `json:"musclesWorked"`
	ExercisesPerformed int      `json:"exercisesPerformed"`
}

// WorkoutScore is the full scored summary of one workout.
type WorkoutScore struct {
	WorkoutID           int               `json:"workoutId"`
	Score               float64           `json:"score"`
	Positives           map[string]Signal `json:"positives"`
	Negatives           map[string]Signal `json:"negatives"`
	Neutrals            map[string]Signal `json:"neutrals"`
	Summary             Summary           `json:"summary"`
	IsPro               bool              `json:"isPro"`
	HasAdvancedInsights bool              `json:"hasAdvancedInsights"`
}

// OneRMComparison feeds the PRO 1RM signal for one exercise.
type OneRMComparison struct {
	ExerciseName  string
	CurrentOneRM  float64
	PreviousOneRM *float64 // nil when there is no prior data
}

// Scorer turns recovery and 1RM observations into a workout score. Pure,
// no I/O.
type Scorer struct{}

func NewScorer() *Scorer {
	return &Scorer{}
}

// Score builds the scored summary. preRecovery maps worked muscles to
// their recovery percentage captured before the workout; muscles missing
// from the map count as fully recovered. The 1RM comparisons only apply
// for PRO users, non-PRO scores come from recovery signals alone.
func (s *Scorer) Score(
	workoutID int,
	musclesWorked []exercises.MuscleGroup,
	preRecovery map[exercises.MuscleGroup]float64,
	oneRMComparisons []OneRMComparison,
	isPro bool,
) WorkoutScore {
	result := WorkoutScore{
		WorkoutID:           workoutID,
		Positives:           map[string]Signal{},
		Negatives:           map[string]Signal{},
		Neutrals:            map[string]Signal{},
		IsPro:               isPro,
		HasAdvancedInsights: isPro,
	}

	for _, muscle := range musclesWorked {
		recovery, ok := preRecovery[muscle]
		if !ok {
			recovery = 100.0
		}
		key := muscle.String()
		signal := s.recoverySignal(muscle, recovery)
		switch {
		case recovery >= fullyRecoveredCutoff:
			result.Positives[key] = signal
		case recovery < underRecovered:
			result.Negatives[key] = signal
		default:
			result.Neutrals[key] = signal
		}
	}

	if isPro {
		for _, comparison := range oneRMComparisons {
			key := comparison.ExerciseName + "_1rm"
			signal, verdict := s.oneRMSignal(comparison)
			switch verdict {
			case verdictPositive:
				result.Positives[key] = signal
			case verdictNegative:
				result.Negatives[key] = signal
			default:
				result.Neutrals[key] = signal
			}
		}
	}

	score := baseScore +
		float64(len(result.Positives))*signalWeight -
		float64(len(result.Negatives))*signalWeight
	score = math.Max(minScore, math.Min(maxScore, score))
	result.Score = math.Round(score*10) / 10

	muscleNames := make([]string, 0, len(musclesWorked))
	for _, m := range musclesWorked {
		muscleNames = append(muscleNames, m.String())
	}
	sort.Strings(muscleNames)

	result.Summary = Summary{
		TotalPositives:     len(result.Positives),
		TotalNegatives:     len(result.Negatives),
		TotalNeutrals:      len(result.Neutrals),
		MusclesWorked:      muscleNames,
		ExercisesPerformed: len(oneRMComparisons),
	}
	return result
}

type verdict int

const (
	verdictNeutral verdict = iota
	verdictPositive
	verdictNegative
)

func (s *Scorer) recoverySignal(muscle exercises.MuscleGroup, recovery float64) Signal {
	name := capitalize(muscle.String())
	var message string
	switch {
	case recovery >= fullyRecoveredCutoff:
		message = fmt.Sprintf("%s was fully recovered before workout", name)
	case recovery < underRecovered:
		message = fmt.Sprintf("%s was only %.1f%% recovered before workout", name, recovery)
	default:
		message = fmt.Sprintf("%s was %.1f%% recovered before workout", name, recovery)
	}
	recoveryVal := recovery
	return Signal{
		Type:        SignalTypeRecovery,
		Message:     message,
		PreRecovery: &recoveryVal,
	}
}

func (s *Scorer) oneRMSignal(c OneRMComparison) (Signal, verdict) {
	current := c.CurrentOneRM
	signal := Signal{
		Type:         SignalTypeOneRM,
		CurrentOneRM: &current,
	}

	if c.PreviousOneRM == nil {
		signal.Message = fmt.Sprintf("%s: No previous 1RM data to compare", c.ExerciseName)
		return signal, verdictNeutral
	}

	previous := *c.PreviousOneRM
	difference := current - previous
	percentChange := 0.0
	if previous > 0 {
		percentChange = difference / previous * 100
	}
	percentChange = math.Round(percentChange*10) / 10

	signal.PreviousOneRM = &previous
	signal.Difference = &difference
	signal.PercentChange = &percentChange

	switch {
	case difference > 0:
		signal.Message = fmt.Sprintf(
			"%s: 1RM increased from %.1fkg to %.1fkg (+%.1f%%)",
			c.ExerciseName, previous, current, percentChange,
		)
		return signal, verdictPositive
	case difference < 0:
		signal.Message = fmt.Sprintf(
			"%s: 1RM decreased from %.1fkg to %.1fkg (%.1f%%)",
			c.ExerciseName, previous, current, percentChange,
		)
		return signal, verdictNegative
	default:
		signal.Message = fmt.Sprintf("%s: 1RM maintained at %.1fkg", c.ExerciseName, current)
		return signal, verdictNeutral
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
