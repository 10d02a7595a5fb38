package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/utrackapp/utrack/internal/fitness/formulas"
	"github.com/utrackapp/utrack/internal/fitness/recovery"
	"github.com/utrackapp/utrack/internal/fitness/workouts"
	"github.com/utrackapp/utrack/internal/telemetry/metrics"
	"github.com/utrackapp/utrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=pipeline_mocks_test.go -package=events_test

var ErrAlreadyCompleted = errors.New("workout is already completed")

type workoutsRepo interface {
	Get(ctx context.Context, id int) (*workouts.Workout, error)
	Complete(ctx context.Context, workoutID int, durationSeconds *int, intensity *workouts.Intensity) error
	SetCaloriesBurned(ctx context.Context, workoutID int, calories float64) error
	SetExerciseOneRepMax(ctx context.Context, workoutExerciseID int, oneRepMax float64) error
	UserBodyWeightKg(ctx context.Context, userID int) (float64, error)
}

type recoveryService interface {
	RecomputeForWorkout(ctx context.Context, workout *workouts.Workout) error
	CaptureSnapshot(ctx context.Context, userID, workoutID int, condition recovery.Condition, now time.Time) ([]recovery.Snapshot, error)
}

type eventsRepo interface {
	Add(ctx context.Context, event Event) (*Event, error)
}

// PipelineConfig carries the tunables of the recompute pipeline.
type PipelineConfig struct {
	// RecomputeWindowDays is how long after completion edits still
	// trigger a metrics recompute.
	RecomputeWindowDays int
	// DefaultBodyWeightKg is used for the calorie estimate when the user
	// has no recorded body weight.
	DefaultBodyWeightKg float64
}

// CompleteParams are the optional fields the app can send along with a
// workout completion.
type CompleteParams struct {
	DurationSeconds *int                `json:"duration,omitempty"`
	Intensity       *workouts.Intensity `json:"intensity,omitempty"`
}

// PipelineResult reports what one pipeline run did.
type PipelineResult struct {
	Workout    *workouts.Workout         `json:"workout"`
	Calories   *formulas.CalorieEstimate `json:"calories,omitempty"`
	Recomputed bool                      `json:"recomputed"`
	Snapshots  int                       `json:"snapshotsCaptured"`
}

// Pipeline runs the side effects of completing or editing a workout, in
// order: per-exercise 1RM derivation, calorie estimate, fatigue recompute
// with record upserts, post-workout recovery snapshot, event record. Each
// step is idempotent, re-running the pipeline for the same workout
// converges to the same state.
type Pipeline struct {
	workouts workoutsRepo
	recovery recoveryService
	events   eventsRepo
	config   PipelineConfig
	metrics  *metrics.Manager
	now      func() time.Time
}

func NewPipeline(
	workoutsRepo workoutsRepo,
	recoveryService recoveryService,
	eventsRepo eventsRepo,
	config PipelineConfig,
	metricsManager *metrics.Manager,
) *Pipeline {
	return &Pipeline{
		workouts: workoutsRepo,
		recovery: recoveryService,
		events:   eventsRepo,
		config:   config,
		metrics:  metricsManager,
		now:      time.Now,
	}
}

// CompleteWorkout marks the workout done and runs the full pipeline.
func (p *Pipeline) CompleteWorkout(ctx context.Context, workoutID int, params CompleteParams) (_ *PipelineResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "pipeline.completeWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout_id", workoutID))

	started := p.now()

	workout, err := p.workouts.Get(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	if workout.IsDone {
		return nil, ErrAlreadyCompleted
	}

	if err := p.workouts.Complete(ctx, workoutID, params.DurationSeconds, params.Intensity); err != nil {
		return nil, fmt.Errorf("mark workout done: %w", err)
	}
	workout.IsDone = true
	if params.DurationSeconds != nil {
		workout.DurationSeconds = *params.DurationSeconds
	}
	if params.Intensity != nil {
		workout.Intensity = *params.Intensity
	}

	result, err := p.run(ctx, workout, NewWorkoutCompletedEvent)
	if err != nil {
		return nil, err
	}

	p.metrics.CounterWorkoutsCompleted.Inc()
	p.metrics.HistogramRecomputeDuration.Observe(p.now().Sub(started).Seconds())
	return result, nil
}

// RecalculateWorkout re-runs the pipeline after a post-completion edit.
// Outside the recompute window nothing is recalculated and the result
// reports Recomputed=false.
func (p *Pipeline) RecalculateWorkout(ctx context.Context, workoutID int) (_ *PipelineResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "pipeline.recalculateWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout_id", workoutID))

	started := p.now()

	workout, err := p.workouts.Get(ctx, workoutID)
	if err != nil {
		return nil, err
	}

	if !p.withinRecomputeWindow(workout) {
		log.Debugf("workout %d: outside recompute window, skipping", workoutID)
		return &PipelineResult{Workout: workout}, nil
	}

	result, err := p.run(ctx, workout, NewWorkoutEditedEvent)
	if err != nil {
		return nil, err
	}

	p.metrics.CounterWorkoutsRecomputed.Inc()
	p.metrics.HistogramRecomputeDuration.Observe(p.now().Sub(started).Seconds())
	return result, nil
}

type eventConstructor func(userID, workoutID int, calories float64, musclesTouched int, at time.Time) Event

func (p *Pipeline) run(ctx context.Context, workout *workouts.Workout, newEvent eventConstructor) (*PipelineResult, error) {
	now := p.now()

	// 1RM per exercise, from the working sets
	for i := range workout.Exercises {
		we := &workout.Exercises[i]
		oneRM, err := we.ComputeOneRepMax()
		if err != nil {
			if errors.Is(err, formulas.ErrUndefined) {
				continue
			}
			return nil, fmt.Errorf("compute 1RM [%s]: %w", we.Exercise.Name, err)
		}
		if err := p.workouts.SetExerciseOneRepMax(ctx, we.ID, oneRM); err != nil {
			return nil, fmt.Errorf("store 1RM [%s]: %w", we.Exercise.Name, err)
		}
		we.OneRepMax = &oneRM
	}

	result := &PipelineResult{Workout: workout}

	if workout.IsRestDay {
		return result, nil
	}

	// calories
	bodyWeightKg, err := p.workouts.UserBodyWeightKg(ctx, workout.UserID)
	if err != nil {
		return nil, fmt.Errorf("get body weight: %w", err)
	}
	if bodyWeightKg <= 0 {
		bodyWeightKg = p.config.DefaultBodyWeightKg
	}
	estimate := workout.EstimateCalories(bodyWeightKg)
	if err := p.workouts.SetCaloriesBurned(ctx, workout.ID, estimate.Calories); err != nil {
		return nil, fmt.Errorf("store calories: %w", err)
	}
	workout.CaloriesBurned = estimate.Calories
	result.Calories = &estimate

	// fatigue records
	if err := p.recovery.RecomputeForWorkout(ctx, workout); err != nil {
		return nil, fmt.Errorf("recompute fatigue: %w", err)
	}

	// post-workout snapshot, after fatigue so it reflects the new state
	snapshots, err := p.recovery.CaptureSnapshot(ctx, workout.UserID, workout.ID, recovery.ConditionPostWorkout, now)
	if err != nil {
		return nil, fmt.Errorf("capture post snapshot: %w", err)
	}
	result.Snapshots = len(snapshots)
	result.Recomputed = true

	event := newEvent(workout.UserID, workout.ID, estimate.Calories, len(workout.TouchedMuscles()), now)
	if _, err := p.events.Add(ctx, event); err != nil {
		// the recompute itself succeeded, a missing audit event is not
		// worth failing the request over
		log.Errorf("record %s event for workout %d: %s", event.Type, workout.ID, err)
	}

	return result, nil
}

func (p *Pipeline) withinRecomputeWindow(workout *workouts.Workout) bool {
	if !workout.IsDone || workout.IsRestDay {
		return false
	}
	sinceWorkout := p.now().Sub(workout.StartedAt)
	if sinceWorkout < 0 {
		return false
	}
	window := time.Duration(p.config.RecomputeWindowDays) * 24 * time.Hour
	return sinceWorkout <= window
}
