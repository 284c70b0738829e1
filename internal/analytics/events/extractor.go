package events

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/peakform/backend/internal/telemetry/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=extractor.go -destination=extractor_mocks_test.go -package=events_test

type eventsSource interface {
	SleepInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]SleepLog, error)
	HRVInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]HRVSample, error)
	BodyMeasurementsInRange(ctx context.Context, userID uuid.UUID, metric string, from, to time.Time) ([]BodyMeasurement, error)
}

// snapshotSeriesSource serves series of snapshot-derived metrics
// (workout volume, fitness score, ...) per stored period.
type snapshotSeriesSource interface {
	MetricSeries(ctx context.Context, userID uuid.UUID, metric string, from, to time.Time) ([]Sample, error)
}

// Extractor pulls a bounded, ordered (timestamp, value) series for a named
// metric, normalizing away samples that would poison downstream arithmetic.
type Extractor struct {
	repo      eventsSource
	snapshots snapshotSeriesSource
}

func NewExtractor(repo eventsSource, snapshots snapshotSeriesSource) *Extractor {
	return &Extractor{
		repo:      repo,
		snapshots: snapshots,
	}
}

func (e *Extractor) MetricSeries(
	ctx context.Context,
	userID uuid.UUID,
	metric string,
	from, to time.Time,
) (_ []Sample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.extractor.metricseries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("metric", metric))
	span.SetAttributes(attribute.String("user.id", userID.String()))

	if to.Before(from) {
		return nil, fmt.Errorf("inverted range for metric %s", metric)
	}

	var samples []Sample
	switch metric {
	case MetricSleepHours:
		sleepLogs, err := e.repo.SleepInRange(ctx, userID, from, to)
		if err != nil {
			return nil, fmt.Errorf("sleep in range: %w", err)
		}
		for _, sl := range sleepLogs {
			samples = append(samples, Sample{At: sl.OccurredAt, Value: sl.Hours()})
		}
	case MetricSleepEfficiency:
		sleepLogs, err := e.repo.SleepInRange(ctx, userID, from, to)
		if err != nil {
			return nil, fmt.Errorf("sleep in range: %w", err)
		}
		for _, sl := range sleepLogs {
			samples = append(samples, Sample{At: sl.OccurredAt, Value: sl.Efficiency})
		}
	case MetricRecovery:
		hrvSamples, err := e.repo.HRVInRange(ctx, userID, from, to)
		if err != nil {
			return nil, fmt.Errorf("hrv in range: %w", err)
		}
		for _, hs := range hrvSamples {
			samples = append(samples, Sample{At: hs.OccurredAt, Value: hs.Recovery})
		}
	case MetricRestingHR:
		hrvSamples, err := e.repo.HRVInRange(ctx, userID, from, to)
		if err != nil {
			return nil, fmt.Errorf("hrv in range: %w", err)
		}
		for _, hs := range hrvSamples {
			samples = append(samples, Sample{At: hs.OccurredAt, Value: hs.RestingHeartRate})
		}
	case MetricBodyWeight, MetricBodyFat:
		measurements, err := e.repo.BodyMeasurementsInRange(ctx, userID, metric, from, to)
		if err != nil {
			return nil, fmt.Errorf("body measurements in range: %w", err)
		}
		for _, bm := range measurements {
			samples = append(samples, Sample{At: bm.OccurredAt, Value: bm.Value})
		}
	case MetricWorkoutVolume, MetricWorkoutMinutes, MetricFitnessScore, MetricConsistency:
		snapshotSamples, err := e.snapshots.MetricSeries(ctx, userID, metric, from, to)
		if err != nil {
			return nil, fmt.Errorf("snapshot series: %w", err)
		}
		samples = snapshotSamples
	default:
		return nil, fmt.Errorf("unknown metric: %s", metric)
	}

	normalized := normalize(samples)
	span.SetAttributes(attribute.Int("samples", len(normalized)))
	return normalized, nil
}

// normalize drops samples a broken client or store row could sneak in:
// non-finite values and zero timestamps. Missing values stay missing,
// they are never backfilled with zeros.
func normalize(samples []Sample) []Sample {
	normalized := make([]Sample, 0, len(samples))
	for _, s := range samples {
		if math.IsNaN(s.Value) || math.IsInf(s.Value, 0) {
			continue
		}
		if s.At.IsZero() {
			continue
		}
		normalized = append(normalized, s)
	}
	return normalized
}
