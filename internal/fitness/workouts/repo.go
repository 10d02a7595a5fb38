package workouts

import (
	"context"
	"errors"

	"github.com/utrackapp/utrack/internal/fitness/exercises"
	"github.com/utrackapp/utrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Get loads a workout with its exercises and sets, ordered the way they
// were performed.
func (r *Repo) Get(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout_id", id))

	w := &Workout{}
	err = r.db.QueryRow(ctx, `
		SELECT id, user_id, title, started_at, duration_seconds,
		       COALESCE(intensity, ''), is_done, is_rest_day,
		       COALESCE(calories_burned, 0), rest_timer_paused_at
		FROM workout
		WHERE id = $1
	`, id).Scan(
		&w.ID, &w.UserID, &w.Title, &w.StartedAt, &w.DurationSeconds,
		&w.Intensity, &w.IsDone, &w.IsRestDay,
		&w.CaloriesBurned, &w.RestTimerPausedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	if err := r.loadExercises(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (r *Repo) loadExercises(ctx context.Context, w *Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.loadexercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT we.id, we.exercise_order, we.one_rep_max,
		       e.id, e.name, e.primary_muscle, e.secondary_muscles, e.category
		FROM workout_exercise we
		JOIN exercise e ON e.id = we.exercise_id
		WHERE we.workout_id = $1
		ORDER BY we.exercise_order
	`, w.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	weByID := make(map[int]*WorkoutExercise)
	for rows.Next() {
		we := WorkoutExercise{}
		var secondaryMuscles []string
		if err := rows.Scan(
			&we.ID, &we.Order, &we.OneRepMax,
			&we.Exercise.ID, &we.Exercise.Name, &we.Exercise.PrimaryMuscle,
			&secondaryMuscles, &we.Exercise.Category,
		); err != nil {
			return err
		}
		for _, m := range secondaryMuscles {
			we.Exercise.SecondaryMuscles = append(we.Exercise.SecondaryMuscles, exercises.MuscleGroup(m))
		}
		w.Exercises = append(w.Exercises, we)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range w.Exercises {
		weByID[w.Exercises[i].ID] = &w.Exercises[i]
	}
	if len(weByID) == 0 {
		return nil
	}

	setRows, err := r.db.Query(ctx, `
		SELECT s.id, s.workout_exercise_id, s.set_number, s.reps, s.weight_kg,
		       s.rest_seconds_before_set, s.reps_in_reserve, s.is_warmup,
		       COALESCE(s.time_under_tension_seconds, 0), s.created_at
		FROM exercise_set s
		JOIN workout_exercise we ON we.id = s.workout_exercise_id
		WHERE we.workout_id = $1
		ORDER BY s.set_number
	`, w.ID)
	if err != nil {
		return err
	}
	defer setRows.Close()

	for setRows.Next() {
		var s Set
		var workoutExerciseID int
		if err := setRows.Scan(
			&s.ID, &workoutExerciseID, &s.SetNumber, &s.Reps, &s.WeightKg,
			&s.RestSecondsBeforeSet, &s.RepsInReserve, &s.IsWarmup,
			&s.TimeUnderTensionSecs, &s.CreatedAt,
		); err != nil {
			return err
		}
		if we, ok := weByID[workoutExerciseID]; ok {
			we.Sets = append(we.Sets, s)
		}
	}
	return setRows.Err()
}

// Complete marks the workout done, optionally updating its duration and
// intensity in the same statement.
func (r *Repo) Complete(ctx context.Context, workoutID int, durationSeconds *int, intensity *Intensity) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout_id", workoutID))

	tag, err := r.db.Exec(ctx, `
		UPDATE workout SET
			is_done = TRUE,
			duration_seconds = COALESCE($1, duration_seconds),
			intensity = COALESCE($2, intensity),
			updated_at = NOW()
		WHERE id = $3
	`, durationSeconds, intensity, workoutID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func (r *Repo) SetCaloriesBurned(ctx context.Context, workoutID int, calories float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.setcalories")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE workout SET calories_burned = $1, updated_at = NOW()
		WHERE id = $2
	`, calories, workoutID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func (r *Repo) SetExerciseOneRepMax(ctx context.Context, workoutExerciseID int, oneRepMax float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.setexercise1rm")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		UPDATE workout_exercise SET one_rep_max = $1
		WHERE id = $2
	`, oneRepMax, workoutExerciseID)
	return err
}

// PreviousOneRepMax returns the 1RM of the most recent prior completed
// workout for the same exercise, or nil when there is no prior data.
func (r *Repo) PreviousOneRepMax(
	ctx context.Context,
	userID, exerciseID, excludeWorkoutID int,
) (_ *float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.previous1rm")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise_id", exerciseID))

	var oneRM float64
	err = r.db.QueryRow(ctx, `
		SELECT we.one_rep_max
		FROM workout_exercise we
		JOIN workout w ON w.id = we.workout_id
		WHERE we.exercise_id = $1
		  AND w.user_id = $2
		  AND w.is_done = TRUE
		  AND w.id != $3
		  AND we.one_rep_max IS NOT NULL
		ORDER BY w.started_at DESC
		LIMIT 1
	`, exerciseID, userID, excludeWorkoutID).Scan(&oneRM)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &oneRM, nil
}

// ActiveWorkout returns the user's most recent workout still in
// progress, or nil when nothing is active. The rest timer only runs
// against an active workout.
func (r *Repo) ActiveWorkout(ctx context.Context, userID int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.activeworkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var workoutID int
	err = r.db.QueryRow(ctx, `
		SELECT id FROM workout
		WHERE user_id = $1 AND is_done = FALSE AND is_rest_day = FALSE
		ORDER BY started_at DESC
		LIMIT 1
	`, userID).Scan(&workoutID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return r.Get(ctx, workoutID)
}

// UserBodyWeightKg returns the user's latest recorded body weight, or 0
// when there is none (the calorie formula then falls back to its default).
func (r *Repo) UserBodyWeightKg(ctx context.Context, userID int) (_ float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.userbodyweight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var weight float64
	err = r.db.QueryRow(ctx, `
		SELECT weight_kg FROM body_measurement
		WHERE user_id = $1
		ORDER BY measured_at DESC
		LIMIT 1
	`, userID).Scan(&weight)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return weight, nil
}
