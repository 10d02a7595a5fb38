package events

import (
	"context"
	"fmt"

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

func (r *Repo) Add(ctx context.Context, event Event) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.events.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("type", event.Type.String()))

	err = r.db.QueryRow(ctx, `
		INSERT INTO workout_event (type, user_id, workout_id, data, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		event.Type, event.UserID, event.WorkoutID, event.Data, event.Timestamp,
	).Scan(&event.ID)
	if err != nil {
		return nil, fmt.Errorf("insert workout event: %w", err)
	}
	return &event, nil
}

// ListForWorkout returns the pipeline events recorded for one workout,
// newest first.
func (r *Repo) ListForWorkout(ctx context.Context, workoutID int) (_ []Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.events.listforworkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, type, user_id, workout_id, data, timestamp
		FROM workout_event
		WHERE workout_id = $1
		ORDER BY timestamp DESC
	`, workoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var eventsList []Event
	for rows.Next() {
		var event Event
		if err := rows.Scan(
			&event.ID, &event.Type, &event.UserID,
			&event.WorkoutID, &event.Data, &event.Timestamp,
		); err != nil {
			return nil, err
		}
		eventsList = append(eventsList, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return eventsList, nil
}
