package formulas

import "math"

// MET values for the workout styles the derivation can land on.
const (
	METLight        = 3.0
	METGeneral      = 3.5
	METPowerlifting = 5.0
	METBodybuilding = 6.0

	// explicit intensity overrides
	METHighIntensity = 6.0
	METLowIntensity  = 3.0
)

// DefaultBodyWeightKg is assumed when the user never recorded their weight.
const DefaultBodyWeightKg = 70.0

// Workout composition thresholds used to derive a MET value when the user
// did not set the workout intensity explicitly.
const (
	heavyWeightKg          = 80.0
	longRestSeconds        = 150.0
	shortRestSeconds       = 90.0
	highCompoundRatio      = 0.6
	moderateCompoundRatio  = 0.3
	generalSetCountCutoff  = 15
	minPlausibleDurationS  = 360
	estimatedSecondsPerSet = 30
)

// WorkoutComposition describes a completed workout just enough to derive
// its MET value and sanity-check its duration.
type WorkoutComposition struct {
	TotalSets        int
	CompoundSets     int
	MaxWeightKg      float64
	AvgRestSeconds   float64
	TotalRestSeconds int
}

// CompoundRatio returns the share of sets done on compound exercises.
func (c WorkoutComposition) CompoundRatio() float64 {
	if c.TotalSets == 0 {
		return 0
	}
	return float64(c.CompoundSets) / float64(c.TotalSets)
}

// ResolveMET picks the MET value for a workout. An explicit high or low
// intensity wins; otherwise the workout composition decides:
//   - heavy weight and long rests look like powerlifting
//   - mostly compounds, heavy weight, short rests look like bodybuilding
//   - a moderate compound share or a high set count is general training
//   - everything else counts as light effort
func ResolveMET(intensity string, comp WorkoutComposition) float64 {
	switch intensity {
	case "high":
		return METHighIntensity
	case "low":
		return METLowIntensity
	}

	ratio := comp.CompoundRatio()
	switch {
	case comp.MaxWeightKg >= heavyWeightKg && comp.AvgRestSeconds >= longRestSeconds:
		return METPowerlifting
	case ratio >= highCompoundRatio &&
		comp.MaxWeightKg >= heavyWeightKg &&
		comp.AvgRestSeconds < shortRestSeconds:
		return METBodybuilding
	case ratio >= moderateCompoundRatio || comp.TotalSets > generalSetCountCutoff:
		return METGeneral
	default:
		return METLight
	}
}

// EffectiveDurationSeconds returns the workout duration to use for the
// calorie estimate. Implausibly short recorded durations (the user forgot
// to start or stop the timer) are re-estimated from the set count plus the
// recorded rest time.
func EffectiveDurationSeconds(recordedSeconds int, comp WorkoutComposition) int {
	if recordedSeconds >= minPlausibleDurationS {
		return recordedSeconds
	}
	return comp.TotalSets*estimatedSecondsPerSet + comp.TotalRestSeconds
}

// CalorieEstimate reports the result of a calorie calculation together
// with the inputs that produced it.
type CalorieEstimate struct {
	Calories        float64 `json:"calories"`
	MET             float64 `json:"met"`
	BodyWeightKg    float64 `json:"bodyWeightKg"`
	DurationSeconds int     `json:"durationSeconds"`
}

// EstimateCalories applies the MET method:
//
//	calories = MET × body weight (kg) × duration (hours)
//
// A non-positive body weight falls back to DefaultBodyWeightKg.
func EstimateCalories(met, bodyWeightKg float64, durationSeconds int) CalorieEstimate {
	if bodyWeightKg <= 0 {
		bodyWeightKg = DefaultBodyWeightKg
	}

	durationHours := float64(durationSeconds) / 3600.0
	calories := met * bodyWeightKg * durationHours

	return CalorieEstimate{
		Calories:        math.Round(calories*100) / 100,
		MET:             met,
		BodyWeightKg:    bodyWeightKg,
		DurationSeconds: durationSeconds,
	}
}
