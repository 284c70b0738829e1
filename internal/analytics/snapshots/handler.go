package snapshots

import (
	"context"
	"encoding/json"
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

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=snapshots_test

type snapshotAggregator interface {
	Aggregate(ctx context.Context, userID uuid.UUID, periodType PeriodType, periodsBack int) (*Snapshot, error)
}

type Handler struct {
	aggregator     snapshotAggregator
	memo           cache.Memo
	memoTTL        time.Duration
	metricsManager *metrics.Manager
}

func NewHandler(
	aggregator snapshotAggregator,
	memo cache.Memo,
	memoTTL time.Duration,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		aggregator:     aggregator,
		memo:           memo,
		memoTTL:        memoTTL,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/analytics/users/{userID}/snapshot/{period}", handler.HandleGetSnapshot).
		Methods("GET", "OPTIONS").
		Name("get-snapshot")
}

func (handler *Handler) HandleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.snapshots.get")
	defer span.End()

	vars := mux.Vars(r)

	userID, err := uuid.Parse(vars["userID"])
	if err != nil {
		http.Error(w, "error, invalid user id", http.StatusBadRequest)
		return
	}

	periodType, err := ParsePeriodType(vars["period"])
	if err != nil {
		http.Error(w, "error, invalid period", http.StatusBadRequest)
		return
	}

	periodsBack := 0
	if backParam := r.URL.Query().Get("back"); backParam != "" {
		periodsBack, err = strconv.Atoi(backParam)
		if err != nil || periodsBack < 0 {
			http.Error(w, "error, invalid back param", http.StatusBadRequest)
			return
		}
	}

	memoKey := fmt.Sprintf("snapshot::%s::%s::%d", userID, periodType, periodsBack)
	if cached, ok := handler.memo.Get(ctx, memoKey); ok {
		pkg.WriteJSONResponseOK(w, string(cached))
		return
	}

	aggregateStart := time.Now()
	snapshot, err := handler.aggregator.Aggregate(ctx, userID, periodType, periodsBack)
	if err != nil {
		log.Errorf("get snapshot [user %s]: aggregate: %s", userID, err)
		http.Error(w, "error, failed to compute snapshot", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.HistSnapshotAggregationDuration.
			Observe(time.Since(aggregateStart).Seconds())
		handler.metricsManager.CounterSnapshotsComputed.Inc()
	}

	respJson, err := json.Marshal(snapshot)
	if err != nil {
		log.Errorf("get snapshot [user %s]: marshal: %s", userID, err)
		http.Error(w, "error, failed to compute snapshot", http.StatusInternalServerError)
		return
	}

	handler.memo.Set(ctx, memoKey, respJson, handler.memoTTL)

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
