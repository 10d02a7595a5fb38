package workouts

import (
	"time"

	"github.com/utrackapp/utrack/internal/fitness/exercises"
	"github.com/utrackapp/utrack/internal/fitness/formulas"
)

// Intensity is the user-declared workout intensity. When unset, the MET
// value is derived from the workout composition instead.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// Set is a single set within a workout exercise.
type Set struct {
	ID                    int       `json:"id"`
	SetNumber             int       `json:"setNumber"`
	Reps                  int       `json:"reps"`
	WeightKg              float64   `json:"weightKg"`
	RestSecondsBeforeSet  int       `json:"restSecondsBeforeSet"`
	RepsInReserve         int       `json:"repsInReserve"`
	IsWarmup              bool      `json:"isWarmup"`
	TimeUnderTensionSecs  int       `json:"timeUnderTensionSecs,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
}

// WorkoutExercise links an exercise to a workout and owns its sets.
type WorkoutExercise struct {
	ID        int                `json:"id"`
	Exercise  exercises.Exercise `json:"exercise"`
	Order     int                `json:"order"`
	Sets      []Set              `json:"sets"`
	OneRepMax *float64           `json:"oneRepMax,omitempty"`
}

// WorkingSets returns the non-warmup sets, the only ones that count
// towards fatigue, 1RM and calories.
func (we WorkoutExercise) WorkingSets() []Set {
	working := make([]Set, 0, len(we.Sets))
	for _, s := range we.Sets {
		if s.IsWarmup {
			continue
		}
		working = append(working, s)
	}
	return working
}

// ComputeOneRepMax derives the exercise 1RM as the max Brzycki estimate
// across its non-warmup sets. Returns formulas.ErrUndefined when no set
// yields a defined estimate.
func (we WorkoutExercise) ComputeOneRepMax() (float64, error) {
	var best float64
	found := false
	for _, s := range we.WorkingSets() {
		oneRM, err := formulas.BrzyckiOneRepMax(s.WeightKg, s.Reps)
		if err != nil {
			continue
		}
		if !found || oneRM > best {
			best = oneRM
			found = true
		}
	}
	if !found {
		return 0, formulas.ErrUndefined
	}
	return best, nil
}

// Workout is a single training session with its exercises and sets.
type Workout struct {
	ID                int               `json:"id"`
	UserID            int               `json:"userId"`
	Title             string            `json:"title"`
	StartedAt         time.Time         `json:"startedAt"`
	DurationSeconds   int               `json:"durationSeconds"`
	Intensity         Intensity         `json:"intensity,omitempty"`
	IsDone            bool              `json:"isDone"`
	IsRestDay         bool              `json:"isRestDay"`
	CaloriesBurned    float64           `json:"caloriesBurned"`
	RestTimerPausedAt *time.Time        `json:"restTimerPausedAt,omitempty"`
	Exercises         []WorkoutExercise `json:"exercises"`
}

// Composition summarizes the workout for the MET derivation.
func (w *Workout) Composition() formulas.WorkoutComposition {
	var comp formulas.WorkoutComposition
	var restSum, restCount int

	for _, we := range w.Exercises {
		isCompound := we.Exercise.Category == exercises.CategoryCompound
		for _, s := range we.WorkingSets() {
			comp.TotalSets++
			if isCompound {
				comp.CompoundSets++
			}
			if s.WeightKg > comp.MaxWeightKg {
				comp.MaxWeightKg = s.WeightKg
			}
			restSum += s.RestSecondsBeforeSet
			restCount++
		}
	}

	comp.TotalRestSeconds = restSum
	if restCount > 0 {
		comp.AvgRestSeconds = float64(restSum) / float64(restCount)
	}
	return comp
}

// EstimateCalories runs the MET calorie estimate for the whole workout.
func (w *Workout) EstimateCalories(bodyWeightKg float64) formulas.CalorieEstimate {
	comp := w.Composition()
	met := formulas.ResolveMET(string(w.Intensity), comp)
	duration := formulas.EffectiveDurationSeconds(w.DurationSeconds, comp)
	return formulas.EstimateCalories(met, bodyWeightKg, duration)
}

// TouchedMuscles returns every muscle group the workout touched, primary
// or secondary, without duplicates.
func (w *Workout) TouchedMuscles() []exercises.MuscleGroup {
	seen := make(map[exercises.MuscleGroup]bool)
	var muscles []exercises.MuscleGroup
	for _, we := range w.Exercises {
		for _, m := range we.Exercise.Muscles() {
			if !seen[m] {
				seen[m] = true
				muscles = append(muscles, m)
			}
		}
	}
	return muscles
}
