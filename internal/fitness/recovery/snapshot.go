package recovery

import (
	"context"
	"fmt"
	"time"

	"github.com/utrackapp/utrack/internal/fitness/exercises"
	"github.com/utrackapp/utrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// Condition marks when a recovery snapshot was taken relative to
// the workout it belongs to.
type Condition string

const (
	ConditionPreWorkout  Condition = "pre_workout"
	ConditionPostWorkout Condition = "post_workout"
)

func ParseCondition(s string) (Condition, error) {
	switch Condition(s) {
	case ConditionPreWorkout, ConditionPostWorkout:
		return Condition(s), nil
	}
	return "", fmt.Errorf("invalid snapshot condition: %q", s)
}

// Snapshot freezes one muscle's recovery state around a workout, so the
// before/after effect of a session stays visible after later workouts
// overwrite the live fatigue records.
type Snapshot struct {
	ID                 int                   `json:"id"`
	BatchID            uuid.UUID             `json:"batchId"`
	UserID             int                   `json:"userId"`
	WorkoutID          int                   `json:"workoutId"`
	MuscleGroup        exercises.MuscleGroup `json:"muscleGroup"`
	Condition          Condition             `json:"condition"`
	FatigueScore       float64               `json:"fatigueScore"`
	RecoveryHours      int                   `json:"recoveryHours"`
	RecoveryPercentage float64               `json:"recoveryPercentage"`
	CapturedAt         time.Time             `json:"capturedAt"`
}

type SnapshotRepo struct {
	db *pgxpool.Pool
}

func NewSnapshotRepo(db *pgxpool.Pool) *SnapshotRepo {
	return &SnapshotRepo{
		db: db,
	}
}

// SaveBatch stores the given snapshots under a single batch id,
// replacing any earlier capture for the same (workout, muscle,
// condition). Retaking a snapshot is an overwrite, not a duplicate.
func (r *SnapshotRepo) SaveBatch(ctx context.Context, snapshots []Snapshot) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recovery.savesnapshots")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("count", len(snapshots)))

	if len(snapshots) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	for _, s := range snapshots {
		_, err = tx.Exec(ctx, `
			INSERT INTO recovery_snapshot
				(batch_id, user_id, workout_id, muscle_group, condition,
				 fatigue_score, recovery_hours, recovery_percentage, captured_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (user_id, workout_id, muscle_group, condition) DO UPDATE SET
				batch_id = EXCLUDED.batch_id,
				fatigue_score = EXCLUDED.fatigue_score,
				recovery_hours = EXCLUDED.recovery_hours,
				recovery_percentage = EXCLUDED.recovery_percentage,
				captured_at = EXCLUDED.captured_at
		`,
			s.BatchID, s.UserID, s.WorkoutID, s.MuscleGroup, s.Condition,
			s.FatigueScore, s.RecoveryHours, s.RecoveryPercentage, s.CapturedAt,
		)
		if err != nil {
			return fmt.Errorf("insert snapshot [muscle %s]: %w", s.MuscleGroup, err)
		}
	}

	return tx.Commit(ctx)
}

// ListForWorkout returns all snapshots captured around one workout,
// both conditions, ordered for a stable API response.
func (r *SnapshotRepo) ListForWorkout(ctx context.Context, userID, workoutID int) (_ []Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recovery.listsnapshots")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, batch_id, user_id, workout_id, muscle_group, condition,
		       fatigue_score, recovery_hours, recovery_percentage, captured_at
		FROM recovery_snapshot
		WHERE user_id = $1 AND workout_id = $2
		ORDER BY condition, muscle_group
	`, userID, workoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		var s Snapshot
		if err := rows.Scan(
			&s.ID, &s.BatchID, &s.UserID, &s.WorkoutID, &s.MuscleGroup,
			&s.Condition, &s.FatigueScore, &s.RecoveryHours,
			&s.RecoveryPercentage, &s.CapturedAt,
		); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return snapshots, nil
}
