package events

import (
	"fmt"
	"time"
)

// EventType can be one of:
//   - workout_completed
//   - workout_edited
type EventType string

const (
	EventTypeWorkoutCompleted EventType = "workout_completed"
	EventTypeWorkoutEdited    EventType = "workout_edited"
)

func (et EventType) String() string {
	return string(et)
}

// Event records one pipeline run against a workout, so every recompute of
// calories and fatigue stays traceable to the request that caused it.
type Event struct {
	ID        int               `json:"id"`
	Type      EventType         `json:"type"`
	UserID    int               `json:"userId"`
	WorkoutID int               `json:"workoutId"`
	Data      map[string]string `json:"data"`
	Timestamp time.Time         `json:"timestamp"`
}

func NewWorkoutCompletedEvent(userID, workoutID int, calories float64, musclesTouched int, at time.Time) Event {
	return Event{
		Type:      EventTypeWorkoutCompleted,
		UserID:    userID,
		WorkoutID: workoutID,
		Data: map[string]string{
			"calories":        fmt.Sprintf("%.2f", calories),
			"muscles_touched": fmt.Sprintf("%d", musclesTouched),
		},
		Timestamp: at,
	}
}

func NewWorkoutEditedEvent(userID, workoutID int, calories float64, musclesTouched int, at time.Time) Event {
	return Event{
		Type:      EventTypeWorkoutEdited,
		UserID:    userID,
		WorkoutID: workoutID,
		Data: map[string]string{
			"calories":        fmt.Sprintf("%.2f", calories),
			"muscles_touched": fmt.Sprintf("%d", musclesTouched),
		},
		Timestamp: at,
	}
}
