package predictions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/peakform/backend/internal/cache"
	"github.com/peakform/backend/internal/telemetry/metrics"
	"github.com/peakform/backend/internal/telemetry/tracing"
	"github.com/peakform/backend/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=predictions_test

const defaultHorizonPeriods = 4

type projector interface {
	Predict(ctx context.Context, userID uuid.UUID, metric string, horizonPeriods int) (*Prediction, error)
}

type outcomesStore interface {
	RecordOutcome(ctx context.Context, userID uuid.UUID, metric string, targetDate time.Time, realizedValue float64) (*Prediction, error)
}

type OutcomeRequest struct {
	TargetDate    time.Time `json:"targetDate"`
	RealizedValue float64   `json:"realizedValue"`
}

type Handler struct {
	projector      projector
	outcomes       outcomesStore
	memo           cache.Memo
	memoTTL        time.Duration
	metricsManager *metrics.Manager
}

func NewHandler(
	projector projector,
	outcomes outcomesStore,
	memo cache.Memo,
	memoTTL time.Duration,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		projector:      projector,
		outcomes:       outcomes,
		memo:           memo,
		memoTTL:        memoTTL,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/analytics/users/{userID}/predictions/{metric}", handler.HandleGetPrediction).
		Methods("GET", "OPTIONS").
		Name("get-prediction")
	r.HandleFunc("/analytics/users/{userID}/predictions/{metric}/outcome", handler.HandleRecordOutcome).
		Methods("POST", "OPTIONS").
		Name("record-prediction-outcome")
}

func (handler *Handler) HandleGetPrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.predictions.get")
	defer span.End()

	vars := mux.Vars(r)

	userID, err := uuid.Parse(vars["userID"])
	if err != nil {
		http.Error(w, "error, invalid user id", http.StatusBadRequest)
		return
	}
	metric := vars["metric"]

	horizon := defaultHorizonPeriods
	if horizonParam := r.URL.Query().Get("horizon"); horizonParam != "" {
		horizon, err = strconv.Atoi(horizonParam)
		if err != nil || horizon <= 0 {
			http.Error(w, "error, invalid horizon param", http.StatusBadRequest)
			return
		}
	}

	memoKey := fmt.Sprintf("prediction::%s::%s::%d", userID, metric, horizon)
	if cached, ok := handler.memo.Get(ctx, memoKey); ok {
		pkg.WriteJSONResponseOK(w, string(cached))
		return
	}

	prediction, err := handler.projector.Predict(ctx, userID, metric, horizon)
	if err != nil {
		switch {
		case errors.Is(err, ErrInsufficientData):
			http.Error(w, "error, insufficient data", http.StatusUnprocessableEntity)
		case errors.Is(err, ErrNoImprovementTrend):
			http.Error(w, "error, no improvement trend to project", http.StatusUnprocessableEntity)
		default:
			log.Errorf("get prediction [user %s, metric %s]: %s", userID, metric, err)
			http.Error(w, "error, failed to compute prediction", http.StatusInternalServerError)
		}
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterPredictionsComputed.Inc()
	}

	respJson, err := json.Marshal(prediction)
	if err != nil {
		log.Errorf("get prediction [user %s, metric %s]: marshal: %s", userID, metric, err)
		http.Error(w, "error, failed to compute prediction", http.StatusInternalServerError)
		return
	}

	handler.memo.Set(ctx, memoKey, respJson, handler.memoTTL)

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleRecordOutcome(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.predictions.outcome")
	defer span.End()

	vars := mux.Vars(r)

	userID, err := uuid.Parse(vars["userID"])
	if err != nil {
		http.Error(w, "error, invalid user id", http.StatusBadRequest)
		return
	}
	metric := vars["metric"]

	var req OutcomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("record outcome, unmarshal json params: %s", err)
		http.Error(w, "record outcome failed", http.StatusBadRequest)
		return
	}
	if req.TargetDate.IsZero() {
		http.Error(w, "error, target date empty", http.StatusBadRequest)
		return
	}

	prediction, err := handler.outcomes.RecordOutcome(ctx, userID, metric, req.TargetDate, req.RealizedValue)
	if err != nil {
		if errors.Is(err, ErrPredictionNotFound) {
			http.Error(w, "error, prediction not found", http.StatusNotFound)
			return
		}
		log.Errorf("record outcome [user %s, metric %s]: %s", userID, metric, err)
		http.Error(w, "error, failed to record outcome", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(prediction)
	if err != nil {
		log.Errorf("record outcome [user %s, metric %s]: marshal: %s", userID, metric, err)
		http.Error(w, "error, failed to record outcome", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
