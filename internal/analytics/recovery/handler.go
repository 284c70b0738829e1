package recovery

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/peakform/backend/internal/telemetry/metrics"
	"github.com/peakform/backend/internal/telemetry/tracing"
	"github.com/peakform/backend/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=recovery_test

type recoveryEngine interface {
	Analyze(ctx context.Context, userID uuid.UUID) (*Analysis, error)
}

type Handler struct {
	engine         recoveryEngine
	metricsManager *metrics.Manager
}

func NewHandler(engine recoveryEngine, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		engine:         engine,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/analytics/users/{userID}/recovery", handler.HandleGetRecovery).
		Methods("GET", "OPTIONS").
		Name("get-recovery")
}

func (handler *Handler) HandleGetRecovery(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.recovery.get")
	defer span.End()

	userID, err := uuid.Parse(mux.Vars(r)["userID"])
	if err != nil {
		http.Error(w, "error, invalid user id", http.StatusBadRequest)
		return
	}

	analysis, err := handler.engine.Analyze(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrInsufficientData) {
			http.Error(w, "error, insufficient data", http.StatusUnprocessableEntity)
			return
		}
		log.Errorf("get recovery [user %s]: %s", userID, err)
		http.Error(w, "error, failed to analyze recovery", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterRecoveryAnalyses.Inc()
	}

	respJson, err := json.Marshal(analysis)
	if err != nil {
		log.Errorf("get recovery [user %s]: marshal: %s", userID, err)
		http.Error(w, "error, failed to analyze recovery", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
