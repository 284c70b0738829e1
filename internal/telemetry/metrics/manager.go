package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterEventsIngested      *prometheus.CounterVec
	CounterSnapshotsComputed   prometheus.Counter
	CounterPredictionsComputed prometheus.Counter
	CounterRecoveryAnalyses    prometheus.Counter
	CounterAdjustments         prometheus.Counter
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistSnapshotAggregationDuration prometheus.Histogram
	HistogramRequestDuration        *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("backend", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("backend", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterEventsIngested := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "events_ingested",
		Help:      "The total number of ingested fitness events, per event type",
	}, []string{"type"})
	counterSnapshotsComputed := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "snapshots_computed",
		Help:      "The total number of computed analytics snapshots",
	})
	counterPredictionsComputed := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "predictions_computed",
		Help:      "The total number of computed predictions",
	})
	counterRecoveryAnalyses := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "recovery_analyses",
		Help:      "The total number of computed recovery analyses",
	})
	counterAdjustments := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workout_adjustments",
		Help:      "The total number of computed workout adjustments",
	})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histSnapshotAggregationDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			Name:      "snapshot_aggregation_duration_seconds",
			Help:      "Total duration of a single snapshot aggregation in seconds",
		},
	)

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"method", "status_code"})

	return &Manager{
		CounterRequests:                 counterRequests,
		CounterEventsIngested:           counterEventsIngested,
		CounterSnapshotsComputed:        counterSnapshotsComputed,
		CounterPredictionsComputed:      counterPredictionsComputed,
		CounterRecoveryAnalyses:         counterRecoveryAnalyses,
		CounterAdjustments:              counterAdjustments,
		CounterHandleRequestPanic:       counterHandleRequestPanic,
		CounterRateLimitedRequests:      counterRateLimitedRequests,
		GaugeRequests:                   gaugeRequests,
		GaugeLifeSignal:                 gaugeLifeSignal,
		HistSnapshotAggregationDuration: histSnapshotAggregationDuration,
		HistogramRequestDuration:        histogramRequestDuration,
	}
}
