package events

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/peakform/backend/internal/telemetry/metrics"
	"github.com/peakform/backend/internal/telemetry/tracing"
	"github.com/peakform/backend/pkg"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=events_test

type eventsRepo interface {
	AddWorkout(ctx context.Context, ws WorkoutSession) (*WorkoutSession, error)
	AddSleep(ctx context.Context, sl SleepLog) (*SleepLog, error)
	AddHRV(ctx context.Context, hs HRVSample) (*HRVSample, error)
	AddBodyMeasurement(ctx context.Context, bm BodyMeasurement) (*BodyMeasurement, error)
	AddPersonalRecord(ctx context.Context, pr PersonalRecord) (*PersonalRecord, error)
	AddGoal(ctx context.Context, ge GoalEvent) (*GoalEvent, error)
}

type AddedEventResponse struct {
	AddedID int `json:"addedId"`
}

type Handler struct {
	repo           eventsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo eventsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/analytics/events/workout", handler.HandleAddWorkout).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/analytics/events/sleep", handler.HandleAddSleep).Methods("POST", "OPTIONS").Name("new-sleep")
	r.HandleFunc("/analytics/events/hrv", handler.HandleAddHRV).Methods("POST", "OPTIONS").Name("new-hrv")
	r.HandleFunc("/analytics/events/body", handler.HandleAddBodyMeasurement).Methods("POST", "OPTIONS").Name("new-body-measurement")
	r.HandleFunc("/analytics/events/pr", handler.HandleAddPersonalRecord).Methods("POST", "OPTIONS").Name("new-pr")
	r.HandleFunc("/analytics/events/goal", handler.HandleAddGoal).Methods("POST", "OPTIONS").Name("new-goal")
}

func (handler *Handler) HandleAddWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.events.workout")
	defer span.End()

	var ws WorkoutSession
	if !decodeEvent(w, r, &ws) {
		return
	}
	if ws.OccurredAt.IsZero() {
		ws.OccurredAt = time.Now().UTC()
	}

	added, err := handler.repo.AddWorkout(ctx, ws)
	if err != nil {
		log.Errorf("failed to add workout session: %s", err)
		http.Error(w, "error, failed to add workout session", http.StatusInternalServerError)
		return
	}

	handler.countIngested("workout")
	writeAdded(w, added.ID)
}

func (handler *Handler) HandleAddSleep(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.events.sleep")
	defer span.End()

	var sl SleepLog
	if !decodeEvent(w, r, &sl) {
		return
	}
	if sl.OccurredAt.IsZero() {
		sl.OccurredAt = time.Now().UTC()
	}

	added, err := handler.repo.AddSleep(ctx, sl)
	if err != nil {
		log.Errorf("failed to add sleep log: %s", err)
		http.Error(w, "error, failed to add sleep log", http.StatusInternalServerError)
		return
	}

	handler.countIngested("sleep")
	writeAdded(w, added.ID)
}

func (handler *Handler) HandleAddHRV(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.events.hrv")
	defer span.End()

	var hs HRVSample
	if !decodeEvent(w, r, &hs) {
		return
	}
	if hs.OccurredAt.IsZero() {
		hs.OccurredAt = time.Now().UTC()
	}

	added, err := handler.repo.AddHRV(ctx, hs)
	if err != nil {
		log.Errorf("failed to add hrv sample: %s", err)
		http.Error(w, "error, failed to add hrv sample", http.StatusInternalServerError)
		return
	}

	handler.countIngested("hrv")
	writeAdded(w, added.ID)
}

func (handler *Handler) HandleAddBodyMeasurement(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.events.body")
	defer span.End()

	var bm BodyMeasurement
	if !decodeEvent(w, r, &bm) {
		return
	}
	if bm.Metric == "" {
		http.Error(w, "error, metric empty", http.StatusBadRequest)
		return
	}
	if bm.OccurredAt.IsZero() {
		bm.OccurredAt = time.Now().UTC()
	}

	added, err := handler.repo.AddBodyMeasurement(ctx, bm)
	if err != nil {
		log.Errorf("failed to add body measurement: %s", err)
		http.Error(w, "error, failed to add body measurement", http.StatusInternalServerError)
		return
	}

	handler.countIngested("body")
	writeAdded(w, added.ID)
}

func (handler *Handler) HandleAddPersonalRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.events.pr")
	defer span.End()

	var pr PersonalRecord
	if !decodeEvent(w, r, &pr) {
		return
	}
	if pr.Exercise == "" {
		http.Error(w, "error, exercise empty", http.StatusBadRequest)
		return
	}
	if pr.OccurredAt.IsZero() {
		pr.OccurredAt = time.Now().UTC()
	}

	added, err := handler.repo.AddPersonalRecord(ctx, pr)
	if err != nil {
		log.Errorf("failed to add personal record: %s", err)
		http.Error(w, "error, failed to add personal record", http.StatusInternalServerError)
		return
	}

	handler.countIngested("pr")
	writeAdded(w, added.ID)
}

func (handler *Handler) HandleAddGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.events.goal")
	defer span.End()

	var ge GoalEvent
	if !decodeEvent(w, r, &ge) {
		return
	}
	if ge.OccurredAt.IsZero() {
		ge.OccurredAt = time.Now().UTC()
	}

	added, err := handler.repo.AddGoal(ctx, ge)
	if err != nil {
		log.Errorf("failed to add goal event: %s", err)
		http.Error(w, "error, failed to add goal event", http.StatusInternalServerError)
		return
	}

	handler.countIngested("goal")
	writeAdded(w, added.ID)
}

func (handler *Handler) countIngested(eventType string) {
	if handler.metricsManager == nil {
		return
	}
	handler.metricsManager.CounterEventsIngested.With(
		prometheus.Labels{"type": eventType},
	).Inc()
}

func decodeEvent(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Errorf("new event, unmarshal json params: %s", err)
		http.Error(w, "add event failed", http.StatusBadRequest)
		return false
	}
	return true
}

func writeAdded(w http.ResponseWriter, id int) {
	respJson, err := json.Marshal(AddedEventResponse{AddedID: id})
	if err != nil {
		log.Errorf("failed to marshal added event response: %s", err)
		http.Error(w, "error, failed to add event", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}
