package recovery

import (
	"math"
	"time"
)

// Three-phase recovery curve breakpoints. Early recovery appears slower
// than linear time (inflammation), the middle window catches up fast
// (protein synthesis peak), the tail flattens out (structural repair).
const (
	phase1End = 0.3
	phase2End = 0.7

	phase1Slope = 0.7
	phase2Slope = 1.225
	phase3Slope = 1.0

	phase2Offset = 0.21 // phase1End * phase1Slope, keeps the curve continuous
	phase3Offset = 0.70
)

// Percentage computes the recovery percentage at the given query time for
// a fatigue window that started at workoutAt and lasts recoveryHours. It
// is a pure function, always computed fresh from the stored timestamps.
// Zero or negative recovery hours mean fully recovered.
func Percentage(workoutAt time.Time, recoveryHours int, at time.Time) float64 {
	if recoveryHours <= 0 {
		return 100
	}

	totalDuration := time.Duration(recoveryHours) * time.Hour
	elapsed := at.Sub(workoutAt)
	if elapsed >= totalDuration {
		return 100
	}
	if elapsed <= 0 {
		return 0
	}

	linearProgress := elapsed.Seconds() / totalDuration.Seconds()

	var nonLinear float64
	switch {
	case linearProgress <= phase1End:
		nonLinear = linearProgress * phase1Slope
	case linearProgress <= phase2End:
		nonLinear = phase2Offset + (linearProgress-phase1End)*phase2Slope
	default:
		nonLinear = phase3Offset + (linearProgress-phase2End)*phase3Slope
	}

	percentage := math.Round(nonLinear*100*100) / 100
	return math.Min(100, math.Max(0, percentage))
}
