package formulas

import (
	"errors"
	"math"
)

// ErrUndefined means the formula has no defined result for the given
// inputs. Callers must treat it as "no contribution", never as zero.
var ErrUndefined = errors.New("formula result undefined for given inputs")

// brzyckiRepCap - the Brzycki linear model gets unreliable past 12 reps,
// so higher rep counts are clamped instead of extrapolated.
const brzyckiRepCap = 12

// BrzyckiOneRepMax estimates the one-rep max from a single set:
//
//	1RM = weight / (1.0278 - 0.0278 × reps)
//
// With reps == 1 the estimate is the weight itself. Returns ErrUndefined
// for non-positive weight or reps.
func BrzyckiOneRepMax(weightKg float64, reps int) (float64, error) {
	if weightKg <= 0 || reps <= 0 {
		return 0, ErrUndefined
	}
	if reps == 1 {
		return weightKg, nil
	}
	if reps > brzyckiRepCap {
		reps = brzyckiRepCap
	}

	denominator := 1.0278 - 0.0278*float64(reps)
	if denominator <= 0 {
		return 0, ErrUndefined
	}

	oneRM := weightKg / denominator
	return math.Round(oneRM*100) / 100, nil
}
