package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/utrackapp/utrack/internal/fitness/workouts"
	"github.com/utrackapp/utrack/internal/telemetry/tracing"
	"github.com/utrackapp/utrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=scoring_test

// ProHeader marks the request as coming from a PRO subscriber. The app
// sets it after subscription validation, advanced insights are gated
// on it.
const ProHeader = "X-UTRACK-PRO"

type summarizer interface {
	Summarize(ctx context.Context, workoutID int, isPro bool) (*WorkoutScore, error)
}

type Handler struct {
	service summarizer
}

func NewHandler(service summarizer) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.scoring.summary")
	defer span.End()

	workoutID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid workout id", http.StatusBadRequest)
		return
	}

	isPro := r.Header.Get(ProHeader) == "true"

	score, err := handler.service.Summarize(ctx, workoutID, isPro)
	if err != nil {
		if errors.Is(err, workouts.ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("summarize workout %d: %s", workoutID, err)
		http.Error(w, "failed to get workout summary", http.StatusInternalServerError)
		return
	}

	scoreJson, err := json.Marshal(score)
	if err != nil {
		log.Errorf("marshal workout summary: %s", err)
		http.Error(w, "failed to get workout summary", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, scoreJson)
}
