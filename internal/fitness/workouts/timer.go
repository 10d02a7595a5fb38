package workouts

import (
	"time"

	"github.com/utrackapp/utrack/internal/fitness/exercises"
	"github.com/utrackapp/utrack/internal/fitness/formulas"
)

// TimerState is the rest timer state for an active workout: how long ago
// the last set was logged and what rest phase that puts the user in.
type TimerState struct {
	LastSetTimestamp     *time.Time           `json:"lastSetTimestamp"`
	LastExerciseCategory exercises.Category   `json:"lastExerciseCategory,omitempty"`
	ElapsedSeconds       int                  `json:"elapsedSeconds"`
	RestStatus           *formulas.RestStatus `json:"restStatus,omitempty"`
	IsPaused             bool                 `json:"isPaused"`
}

// RestTimerState computes the rest timer state from the workout's most
// recently logged set. Done workouts and workouts without sets get an
// empty state.
func RestTimerState(w *Workout, now time.Time) TimerState {
	if w == nil || w.IsDone {
		return TimerState{}
	}

	var lastSet *Set
	var lastCategory exercises.Category
	for i := range w.Exercises {
		we := &w.Exercises[i]
		for j := range we.Sets {
			s := &we.Sets[j]
			if lastSet == nil || s.CreatedAt.After(lastSet.CreatedAt) {
				lastSet = s
				lastCategory = we.Exercise.Category
			}
		}
	}
	if lastSet == nil {
		return TimerState{}
	}

	if !lastCategory.IsValid() {
		lastCategory = exercises.CategoryIsolation
	}

	isPaused := w.RestTimerPausedAt != nil
	var elapsed int
	if isPaused {
		elapsed = int(w.RestTimerPausedAt.Sub(lastSet.CreatedAt).Seconds())
	} else {
		elapsed = int(now.Sub(lastSet.CreatedAt).Seconds())
	}

	restStatus := formulas.ClassifyRest(elapsed, lastCategory)

	lastSetAt := lastSet.CreatedAt
	return TimerState{
		LastSetTimestamp:     &lastSetAt,
		LastExerciseCategory: lastCategory,
		ElapsedSeconds:       elapsed,
		RestStatus:           &restStatus,
		IsPaused:             isPaused,
	}
}
