package recovery

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/utrackapp/utrack/internal/fitness/workouts"
	"github.com/utrackapp/utrack/internal/telemetry/tracing"
	"github.com/utrackapp/utrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=recovery_test

type recoveryService interface {
	Status(ctx context.Context, userID int, now time.Time) ([]MuscleStatus, error)
	Progress(ctx context.Context, userID int, now time.Time) (*ProgressReport, error)
	CaptureSnapshot(ctx context.Context, userID, workoutID int, condition Condition, now time.Time) ([]Snapshot, error)
}

type activeWorkoutsRepo interface {
	Get(ctx context.Context, id int) (*workouts.Workout, error)
	ActiveWorkout(ctx context.Context, userID int) (*workouts.Workout, error)
}

type StatusResponse struct {
	Muscles   []MuscleStatus       `json:"muscles"`
	RestTimer *workouts.TimerState `json:"restTimer,omitempty"`
}

type SnapshotResponse struct {
	BatchID   string     `json:"batchId"`
	Condition Condition  `json:"condition"`
	Snapshots []Snapshot `json:"snapshots"`
}

type Handler struct {
	service      recoveryService
	workoutsRepo activeWorkoutsRepo
	now          func() time.Time
}

func NewHandler(service recoveryService, workoutsRepo activeWorkoutsRepo) *Handler {
	return &Handler{
		service:      service,
		workoutsRepo: workoutsRepo,
		now:          time.Now,
	}
}

func (handler *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recovery.status")
	defer span.End()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	now := handler.now()
	statuses, err := handler.service.Status(ctx, userID, now)
	if err != nil {
		log.Errorf("get recovery status for user %d: %s", userID, err)
		http.Error(w, "failed to get recovery status", http.StatusInternalServerError)
		return
	}

	resp := StatusResponse{
		Muscles: statuses,
	}

	// the rest timer is only meaningful while a workout is in progress
	activeWorkout, err := handler.workoutsRepo.ActiveWorkout(ctx, userID)
	if err != nil {
		log.Errorf("get active workout for user %d: %s", userID, err)
	} else if activeWorkout != nil {
		timerState := workouts.RestTimerState(activeWorkout, now)
		resp.RestTimer = &timerState
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal recovery status response: %s", err)
		http.Error(w, "failed to get recovery status", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recovery.progress")
	defer span.End()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	report, err := handler.service.Progress(ctx, userID, handler.now())
	if err != nil {
		log.Errorf("get recovery progress for user %d: %s", userID, err)
		http.Error(w, "failed to get recovery progress", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(report)
	if err != nil {
		log.Errorf("marshal recovery progress response: %s", err)
		http.Error(w, "failed to get recovery progress", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleCaptureSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recovery.captureSnapshot")
	defer span.End()

	vars := mux.Vars(r)
	workoutID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "invalid workout id", http.StatusBadRequest)
		return
	}
	condition, err := ParseCondition(vars["condition"])
	if err != nil {
		http.Error(w, "invalid snapshot condition", http.StatusBadRequest)
		return
	}

	workout, err := handler.workoutsRepo.Get(ctx, workoutID)
	if err != nil {
		if errors.Is(err, workouts.ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("get workout %d for snapshot: %s", workoutID, err)
		http.Error(w, "failed to capture snapshot", http.StatusInternalServerError)
		return
	}

	snapshots, err := handler.service.CaptureSnapshot(ctx, workout.UserID, workoutID, condition, handler.now())
	if err != nil {
		log.Errorf("capture %s snapshot for workout %d: %s", condition, workoutID, err)
		http.Error(w, "failed to capture snapshot", http.StatusInternalServerError)
		return
	}

	resp := SnapshotResponse{
		Condition: condition,
		Snapshots: snapshots,
	}
	if len(snapshots) > 0 {
		resp.BatchID = snapshots[0].BatchID.String()
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal snapshot response: %s", err)
		http.Error(w, "failed to capture snapshot", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func userIDFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, err := strconv.Atoi(r.URL.Query().Get("user_id"))
	if err != nil || userID <= 0 {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return 0, false
	}
	return userID, true
}
