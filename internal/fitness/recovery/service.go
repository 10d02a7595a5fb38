package recovery

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/utrackapp/utrack/internal/fitness/exercises"
	"github.com/utrackapp/utrack/internal/fitness/workouts"
	"github.com/utrackapp/utrack/internal/telemetry/metrics"
	"github.com/utrackapp/utrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=recovery_test

type recordsRepo interface {
	Upsert(ctx context.Context, record MuscleFatigueRecord) (*MuscleFatigueRecord, error)
	ListForUser(ctx context.Context, userID int) (map[exercises.MuscleGroup]MuscleFatigueRecord, error)
}

type snapshotsRepo interface {
	SaveBatch(ctx context.Context, snapshots []Snapshot) error
}

// ProgressReport aggregates per-muscle recovery into one view for the
// recovery dashboard.
type ProgressReport struct {
	OverallPercentage float64        `json:"overallPercentage"`
	FatiguedMuscles   int            `json:"fatiguedMuscles"`
	Muscles           []MuscleStatus `json:"muscles"`
}

type Service struct {
	records    recordsRepo
	snapshots  snapshotsRepo
	calculator *Calculator
	metrics    *metrics.Manager
}

func NewService(
	records recordsRepo,
	snapshots snapshotsRepo,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		records:    records,
		snapshots:  snapshots,
		calculator: NewCalculator(),
		metrics:    metricsManager,
	}
}

// Status returns the recovery state of every muscle group for the given
// user, at the given moment. Muscles without a fatigue record are
// reported as fully recovered.
func (s *Service) Status(ctx context.Context, userID int, now time.Time) (_ []MuscleStatus, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "recovery.status")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	records, err := s.records.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list fatigue records: %w", err)
	}

	statuses := make([]MuscleStatus, 0, len(exercises.AllMuscleGroups()))
	for _, muscle := range exercises.AllMuscleGroups() {
		record, ok := records[muscle]
		if !ok {
			statuses = append(statuses, fullyRecoveredStatus(muscle))
			continue
		}
		statuses = append(statuses, s.statusFromRecord(record, now))
	}

	return statuses, nil
}

// Progress condenses the per-muscle statuses into one report: the
// overall percentage is the average across all muscle groups, recovered
// ones counting as 100.
func (s *Service) Progress(ctx context.Context, userID int, now time.Time) (_ *ProgressReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "recovery.progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	statuses, err := s.Status(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	sortStatuses(statuses)

	report := &ProgressReport{
		Muscles:           statuses,
		OverallPercentage: 100,
	}
	var sum float64
	for _, status := range statuses {
		sum += status.RecoveryPercentage
		if !status.IsRecovered {
			report.FatiguedMuscles++
		}
	}
	if len(statuses) > 0 {
		report.OverallPercentage = math.Round(sum/float64(len(statuses))*100) / 100
	}

	return report, nil
}

// RecomputeForWorkout recalculates fatigue from the given workout and
// upserts a record per touched muscle. Failures on single muscles do
// not stop the rest, the errors are aggregated and returned together.
func (s *Service) RecomputeForWorkout(ctx context.Context, workout *workouts.Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "recovery.recomputeForWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout_id", workout.ID))

	fatigues := s.calculator.Calculate(workout)
	for _, fatigue := range fatigues {
		_, upsertErr := s.records.Upsert(ctx, MuscleFatigueRecord{
			UserID:          workout.UserID,
			MuscleGroup:     fatigue.MuscleGroup,
			FatigueScore:    fatigue.FatigueScore,
			TotalSets:       fatigue.TotalSets,
			RecoveryHours:   fatigue.RecoveryHours,
			SourceWorkoutID: workout.ID,
			WorkoutAt:       workout.StartedAt,
		})
		if upsertErr != nil {
			err = multierr.Append(err, fmt.Errorf("upsert fatigue [%s]: %w", fatigue.MuscleGroup, upsertErr))
			continue
		}
		s.metrics.CounterFatigueUpserts.Inc()
	}
	if err != nil {
		return err
	}

	log.Debugf("workout %d: upserted fatigue for %d muscles", workout.ID, len(fatigues))
	return nil
}

// CaptureSnapshot freezes the current recovery state of every muscle
// group under one batch id, tied to a workout and a condition.
func (s *Service) CaptureSnapshot(
	ctx context.Context,
	userID, workoutID int,
	condition Condition,
	now time.Time,
) (_ []Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "recovery.captureSnapshot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("condition", string(condition)))

	records, err := s.records.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list fatigue records: %w", err)
	}

	batchID := uuid.New()
	allMuscles := exercises.AllMuscleGroups()
	snapshots := make([]Snapshot, 0, len(allMuscles))
	for _, muscle := range allMuscles {
		snapshot := Snapshot{
			BatchID:            batchID,
			UserID:             userID,
			WorkoutID:          workoutID,
			MuscleGroup:        muscle,
			Condition:          condition,
			RecoveryPercentage: 100,
			CapturedAt:         now,
		}
		// a muscle never trained is frozen as fully recovered
		if record, ok := records[muscle]; ok {
			snapshot.FatigueScore = record.FatigueScore
			snapshot.RecoveryHours = record.RecoveryHours
			snapshot.RecoveryPercentage = Percentage(record.WorkoutAt, record.RecoveryHours, now)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err := s.snapshots.SaveBatch(ctx, snapshots); err != nil {
		return nil, fmt.Errorf("save snapshots: %w", err)
	}
	s.metrics.CounterRecoverySnapshots.WithLabelValues(string(condition)).Inc()

	return snapshots, nil
}

func (s *Service) statusFromRecord(record MuscleFatigueRecord, now time.Time) MuscleStatus {
	recoveryUntil := record.RecoveryUntil()
	sourceWorkoutID := record.SourceWorkoutID
	return MuscleStatus{
		MuscleGroup:        record.MuscleGroup,
		FatigueScore:       record.FatigueScore,
		TotalSets:          record.TotalSets,
		RecoveryHours:      record.RecoveryHours,
		RecoveryUntil:      &recoveryUntil,
		IsRecovered:        record.IsRecovered(now),
		HoursUntilRecovery: record.HoursUntilRecovery(now),
		RecoveryPercentage: Percentage(record.WorkoutAt, record.RecoveryHours, now),
		SourceWorkoutID:    &sourceWorkoutID,
	}
}

// sortStatuses orders fatigued muscles first, most fatigued on top.
func sortStatuses(statuses []MuscleStatus) {
	sort.SliceStable(statuses, func(i, j int) bool {
		if statuses[i].IsRecovered != statuses[j].IsRecovered {
			return !statuses[i].IsRecovered
		}
		return statuses[i].FatigueScore > statuses[j].FatigueScore
	})
}
