package scoring

import (
	"context"
	"fmt"

	"github.com/utrackapp/utrack/internal/fitness/exercises"
	"github.com/utrackapp/utrack/internal/fitness/recovery"
	"github.com/utrackapp/utrack/internal/fitness/workouts"
	"github.com/utrackapp/utrack/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=scoring_test

type workoutsRepo interface {
	Get(ctx context.Context, id int) (*workouts.Workout, error)
	PreviousOneRepMax(ctx context.Context, userID, exerciseID, excludeWorkoutID int) (*float64, error)
}

type snapshotsRepo interface {
	ListForWorkout(ctx context.Context, userID, workoutID int) ([]recovery.Snapshot, error)
}

type Service struct {
	workouts  workoutsRepo
	snapshots snapshotsRepo
	scorer    *Scorer
}

func NewService(workoutsRepo workoutsRepo, snapshotsRepo snapshotsRepo) *Service {
	return &Service{
		workouts:  workoutsRepo,
		snapshots: snapshotsRepo,
		scorer:    NewScorer(),
	}
}

// Summarize scores a completed workout against its pre-workout recovery
// snapshots and, for PRO users, against prior 1RM performance.
func (s *Service) Summarize(ctx context.Context, workoutID int, isPro bool) (_ *WorkoutScore, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "scoring.summarize")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout_id", workoutID))
	span.SetAttributes(attribute.Bool("is_pro", isPro))

	workout, err := s.workouts.Get(ctx, workoutID)
	if err != nil {
		return nil, err
	}

	snapshots, err := s.snapshots.ListForWorkout(ctx, workout.UserID, workoutID)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	preRecovery := make(map[exercises.MuscleGroup]float64)
	for _, snapshot := range snapshots {
		if snapshot.Condition == recovery.ConditionPreWorkout {
			preRecovery[snapshot.MuscleGroup] = snapshot.RecoveryPercentage
		}
	}

	var comparisons []OneRMComparison
	exercisesWithOneRM := 0
	for _, we := range workout.Exercises {
		if we.OneRepMax == nil {
			continue
		}
		exercisesWithOneRM++
		if !isPro {
			continue
		}
		previous, err := s.workouts.PreviousOneRepMax(ctx, workout.UserID, we.Exercise.ID, workoutID)
		if err != nil {
			return nil, fmt.Errorf("previous 1RM [%s]: %w", we.Exercise.Name, err)
		}
		comparisons = append(comparisons, OneRMComparison{
			ExerciseName:  we.Exercise.Name,
			CurrentOneRM:  *we.OneRepMax,
			PreviousOneRM: previous,
		})
	}

	score := s.scorer.Score(workoutID, workout.TouchedMuscles(), preRecovery, comparisons, isPro)
	score.Summary.ExercisesPerformed = exercisesWithOneRM
	return &score, nil
}
