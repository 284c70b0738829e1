package adjustments

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

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=adjustments_test

type adjustmentEngine interface {
	Recommend(ctx context.Context, userID uuid.UUID) (*Adjustment, error)
}

type Handler struct {
	engine         adjustmentEngine
	metricsManager *metrics.Manager
}

func NewHandler(engine adjustmentEngine, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		engine:         engine,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/analytics/users/{userID}/adjustment", handler.HandleGetAdjustment).
		Methods("GET", "OPTIONS").
		Name("get-adjustment")
}

func (handler *Handler) HandleGetAdjustment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.adjustments.get")
	defer span.End()

	userID, err := uuid.Parse(mux.Vars(r)["userID"])
	if err != nil {
		http.Error(w, "error, invalid user id", http.StatusBadRequest)
		return
	}

	adjustment, err := handler.engine.Recommend(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrInsufficientData) {
			http.Error(w, "error, insufficient data", http.StatusUnprocessableEntity)
			return
		}
		log.Errorf("get adjustment [user %s]: %s", userID, err)
		http.Error(w, "error, failed to compute adjustment", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterAdjustments.Inc()
	}

	respJson, err := json.Marshal(adjustment)
	if err != nil {
		log.Errorf("get adjustment [user %s]: marshal: %s", userID, err)
		http.Error(w, "error, failed to compute adjustment", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
