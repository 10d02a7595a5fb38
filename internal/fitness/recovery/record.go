package recovery

import (
	"time"

	"github.com/utrackapp/utrack/internal/fitness/exercises"
)

// MuscleFatigueRecord is the current fatigue state of one muscle group for
// one user. Each workout touching the muscle replaces the record entirely,
// fatigue never accumulates across workouts.
type MuscleFatigueRecord struct {
	ID              int                   `json:"id"`
	UserID          int                   `json:"userId"`
	MuscleGroup     exercises.MuscleGroup `json:"muscleGroup"`
	FatigueScore    float64               `json:"fatigueScore"`
	TotalSets       int                   `json:"totalSets"`
	RecoveryHours   int                   `json:"recoveryHours"`
	SourceWorkoutID int                   `json:"sourceWorkoutId"`
	WorkoutAt       time.Time             `json:"workoutAt"`
	// Version bumps when a different workout supersedes the record, and
	// stays put when the same workout is recomputed.
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RecoveryUntil is the moment the muscle is projected to be fully
// recovered.
func (r *MuscleFatigueRecord) RecoveryUntil() time.Time {
	return r.WorkoutAt.Add(time.Duration(r.RecoveryHours) * time.Hour)
}

// IsRecovered reports whether the recovery window has passed at the given
// time.
func (r *MuscleFatigueRecord) IsRecovered(at time.Time) bool {
	if r.RecoveryHours <= 0 {
		return true
	}
	return !at.Before(r.RecoveryUntil())
}

// HoursUntilRecovery returns the remaining recovery time in hours, zero
// when already recovered.
func (r *MuscleFatigueRecord) HoursUntilRecovery(at time.Time) float64 {
	if r.IsRecovered(at) {
		return 0
	}
	return r.RecoveryUntil().Sub(at).Hours()
}

// MuscleStatus is the full recovery picture for one muscle group, as
// served by the status API. Muscles without a fatigue record report as
// fully recovered.
type MuscleStatus struct {
	MuscleGroup        exercises.MuscleGroup `json:"muscleGroup"`
	FatigueScore       float64               `json:"fatigueScore"`
	TotalSets          int                   `json:"totalSets"`
	RecoveryHours      int                   `json:"recoveryHours"`
	RecoveryUntil      *time.Time            `json:"recoveryUntil"`
	IsRecovered        bool                  `json:"isRecovered"`
	HoursUntilRecovery float64               `json:"hoursUntilRecovery"`
	RecoveryPercentage float64               `json:"recoveryPercentage"`
	SourceWorkoutID    *int                  `json:"sourceWorkoutId"`
}

// fullyRecoveredStatus is what a muscle with no training history reports.
func fullyRecoveredStatus(muscle exercises.MuscleGroup) MuscleStatus {
	return MuscleStatus{
		MuscleGroup:        muscle,
		IsRecovered:        true,
		RecoveryPercentage: 100,
	}
}
