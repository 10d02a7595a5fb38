package recovery

import (
	"context"

	"github.com/utrackapp/utrack/internal/fitness/exercises"
	"github.com/utrackapp/utrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert stores the fatigue record for (user, muscle). A record from a
// different source workout supersedes the previous one and bumps the
// version; recomputing the same workout overwrites in place with the
// version untouched, which makes recompute idempotent and auditable.
func (r *Repo) Upsert(ctx context.Context, record MuscleFatigueRecord) (_ *MuscleFatigueRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recovery.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("muscle_group", record.MuscleGroup.String()))
	span.SetAttributes(attribute.Int("source_workout_id", record.SourceWorkoutID))

	err = r.db.QueryRow(ctx, `
		INSERT INTO muscle_fatigue
			(user_id, muscle_group, fatigue_score, total_sets, recovery_hours,
			 source_workout_id, workout_at, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 1, NOW(), NOW())
		ON CONFLICT (user_id, muscle_group) DO UPDATE SET
			fatigue_score = EXCLUDED.fatigue_score,
			total_sets = EXCLUDED.total_sets,
			recovery_hours = EXCLUDED.recovery_hours,
			source_workout_id = EXCLUDED.source_workout_id,
			workout_at = EXCLUDED.workout_at,
			version = muscle_fatigue.version + CASE
				WHEN muscle_fatigue.source_workout_id = EXCLUDED.source_workout_id THEN 0
				ELSE 1
			END,
			updated_at = NOW()
		RETURNING id, version, created_at, updated_at
	`,
		record.UserID, record.MuscleGroup, record.FatigueScore, record.TotalSets,
		record.RecoveryHours, record.SourceWorkoutID, record.WorkoutAt,
	).Scan(&record.ID, &record.Version, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListForUser returns the current fatigue record of every muscle group
// that has one.
func (r *Repo) ListForUser(ctx context.Context, userID int) (_ map[exercises.MuscleGroup]MuscleFatigueRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recovery.listforuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, muscle_group, fatigue_score, total_sets,
		       recovery_hours, source_workout_id, workout_at, version,
		       created_at, updated_at
		FROM muscle_fatigue
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make(map[exercises.MuscleGroup]MuscleFatigueRecord)
	for rows.Next() {
		var record MuscleFatigueRecord
		if err := rows.Scan(
			&record.ID, &record.UserID, &record.MuscleGroup, &record.FatigueScore,
			&record.TotalSets, &record.RecoveryHours, &record.SourceWorkoutID,
			&record.WorkoutAt, &record.Version, &record.CreatedAt, &record.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records[record.MuscleGroup] = record
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
