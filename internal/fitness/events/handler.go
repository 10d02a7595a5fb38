package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/utrackapp/utrack/internal/fitness/workouts"
	"github.com/utrackapp/utrack/internal/telemetry/tracing"
	"github.com/utrackapp/utrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=events_test

type workoutPipeline interface {
	CompleteWorkout(ctx context.Context, workoutID int, params CompleteParams) (*PipelineResult, error)
	RecalculateWorkout(ctx context.Context, workoutID int) (*PipelineResult, error)
}

type eventsLister interface {
	ListForWorkout(ctx context.Context, workoutID int) ([]Event, error)
}

type Handler struct {
	pipeline workoutPipeline
	events   eventsLister
}

func NewHandler(pipeline workoutPipeline, events eventsLister) *Handler {
	return &Handler{
		pipeline: pipeline,
		events:   events,
	}
}

func (handler *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.complete")
	defer span.End()

	workoutID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid workout id", http.StatusBadRequest)
		return
	}

	var params CompleteParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil && !errors.Is(err, io.EOF) {
		log.Tracef("complete workout, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := handler.pipeline.CompleteWorkout(ctx, workoutID, params)
	if err != nil {
		switch {
		case errors.Is(err, workouts.ErrWorkoutNotFound):
			http.Error(w, "workout not found", http.StatusNotFound)
		case errors.Is(err, ErrAlreadyCompleted):
			http.Error(w, "workout is already completed", http.StatusBadRequest)
		default:
			log.Errorf("complete workout %d: %s", workoutID, err)
			http.Error(w, "failed to complete workout", http.StatusInternalServerError)
		}
		return
	}

	writeResult(w, result)
}

func (handler *Handler) HandleRecalculate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.recalculate")
	defer span.End()

	workoutID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid workout id", http.StatusBadRequest)
		return
	}

	result, err := handler.pipeline.RecalculateWorkout(ctx, workoutID)
	if err != nil {
		if errors.Is(err, workouts.ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("recalculate workout %d: %s", workoutID, err)
		http.Error(w, "failed to recalculate workout", http.StatusInternalServerError)
		return
	}

	writeResult(w, result)
}

func (handler *Handler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.events")
	defer span.End()

	workoutID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid workout id", http.StatusBadRequest)
		return
	}

	workoutEvents, err := handler.events.ListForWorkout(ctx, workoutID)
	if err != nil {
		log.Errorf("list events for workout %d: %s", workoutID, err)
		http.Error(w, "failed to list workout events", http.StatusInternalServerError)
		return
	}

	eventsJson, err := json.Marshal(workoutEvents)
	if err != nil {
		log.Errorf("marshal workout events: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, eventsJson)
}

func writeResult(w http.ResponseWriter, result *PipelineResult) {
	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("marshal pipeline result: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resultJson)
}
