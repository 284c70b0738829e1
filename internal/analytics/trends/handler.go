package trends

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/peakform/backend/internal/telemetry/tracing"
	"github.com/peakform/backend/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=trends_test

const defaultWindowDays = 90

type trendAnalyzer interface {
	AnalyzeTrend(ctx context.Context, userID uuid.UUID, metric string, windowDays int) (*Result, error)
}

type Handler struct {
	analyzer trendAnalyzer
}

func NewHandler(analyzer trendAnalyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/analytics/users/{userID}/trends/{metric}", handler.HandleGetTrend).
		Methods("GET", "OPTIONS").
		Name("get-trend")
}

func (handler *Handler) HandleGetTrend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.trends.get")
	defer span.End()

	vars := mux.Vars(r)

	userID, err := uuid.Parse(vars["userID"])
	if err != nil {
		http.Error(w, "error, invalid user id", http.StatusBadRequest)
		return
	}

	metric := vars["metric"]
	if metric == "" {
		http.Error(w, "error, metric empty", http.StatusBadRequest)
		return
	}

	windowDays := defaultWindowDays
	if daysParam := r.URL.Query().Get("days"); daysParam != "" {
		windowDays, err = strconv.Atoi(daysParam)
		if err != nil || windowDays <= 0 {
			http.Error(w, "error, invalid days param", http.StatusBadRequest)
			return
		}
	}

	result, err := handler.analyzer.AnalyzeTrend(ctx, userID, metric, windowDays)
	if err != nil {
		log.Errorf("get trend [user %s, metric %s]: %s", userID, metric, err)
		http.Error(w, "error, failed to analyze trend", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("get trend [user %s, metric %s]: marshal: %s", userID, metric, err)
		http.Error(w, "error, failed to analyze trend", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
