package predictions

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/peakform/backend/internal/analytics/events"
	"github.com/peakform/backend/internal/analytics/trends"
	"github.com/peakform/backend/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=projector.go -destination=projector_mocks_test.go -package=predictions_test

// ModelVersion tags every prediction with the scoring function that
// produced it, so offline accuracy audits stay attributable after the
// function changes.
const ModelVersion = "linear-v1"

const (
	// minimum observed periods before a projection is worth returning
	minSamples = 3

	confidenceBase       = 50
	confidenceCap        = 95
	confidencePerSample  = 5
	confidenceFitQuality = 20
	lookbackDays         = 180
)

var (
	ErrInsufficientData = errors.New("insufficient data for prediction")
	// ErrNoImprovementTrend marks a skipped projection: the metric only
	// makes sense to predict while it trends upward.
	ErrNoImprovementTrend = errors.New("no improvement trend to project")
)

// Prediction is one forward projection of a metric, persisted keyed by
// (user, metric, target date) so recomputation overwrites.
type Prediction struct {
	UserID         uuid.UUID `json:"userId"`
	Metric         string    `json:"metric"`
	TargetDate     time.Time `json:"targetDate"`
	PredictedValue float64   `json:"predictedValue"`
	Confidence     float64   `json:"confidence"`
	ModelVersion   string    `json:"modelVersion"`
	SampleCount    int       `json:"sampleCount"`
	HorizonPeriods int       `json:"horizonPeriods"`
	CreatedAt      time.Time `json:"createdAt"`

	// filled in once the horizon passes
	RealizedValue *float64 `json:"realizedValue,omitempty"`
	Accuracy      *float64 `json:"accuracy,omitempty"`
}

type seriesSource interface {
	MetricSeries(ctx context.Context, userID uuid.UUID, metric string, from, to time.Time) ([]events.Sample, error)
}

type predictionsStore interface {
	Upsert(ctx context.Context, p Prediction) error
}

// Projector extrapolates a fitted trend forward a given horizon.
type Projector struct {
	series  seriesSource
	store   predictionsStore
	nowFunc func() time.Time
}

func NewProjector(series seriesSource, store predictionsStore) *Projector {
	return &Projector{
		series:  series,
		store:   store,
		nowFunc: time.Now,
	}
}

// Predict projects the metric horizonPeriods ahead of the latest sample.
// Returns ErrInsufficientData under 3 samples and ErrNoImprovementTrend
// for improvement-only metrics with a non-positive slope.
func (p *Projector) Predict(
	ctx context.Context,
	userID uuid.UUID,
	metric string,
	horizonPeriods int,
) (_ *Prediction, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.predictions.predict")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("metric", metric))
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.Int("horizon", horizonPeriods))

	if horizonPeriods <= 0 {
		return nil, fmt.Errorf("invalid horizon: %d", horizonPeriods)
	}

	now := p.nowFunc().UTC()
	samples, err := p.series.MetricSeries(ctx, userID, metric, now.AddDate(0, 0, -lookbackDays), now)
	if err != nil {
		return nil, fmt.Errorf("metric series: %w", err)
	}
	if len(samples) < minSamples {
		return nil, ErrInsufficientData
	}

	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = s.Value
	}

	fit := trends.FitLinear(values)
	if fit.Slope <= 0 && improvementOnly(metric) {
		return nil, ErrNoImprovementTrend
	}

	current := values[len(values)-1]
	projected := current + fit.Slope*float64(horizonPeriods)
	projected = clampToMetricRange(metric, projected)
	if math.IsNaN(projected) || math.IsInf(projected, 0) {
		return nil, fmt.Errorf("non-finite projection for metric %s", metric)
	}

	prediction := &Prediction{
		UserID:         userID,
		Metric:         metric,
		TargetDate:     targetDate(samples[len(samples)-1].At, metric, horizonPeriods),
		PredictedValue: math.Round(projected*100) / 100,
		Confidence:     confidence(fit.N, fit.R2),
		ModelVersion:   ModelVersion,
		SampleCount:    fit.N,
		HorizonPeriods: horizonPeriods,
		CreatedAt:      now,
	}

	span.SetAttributes(attribute.Float64("prediction.value", prediction.PredictedValue))

	// persisted for the later accuracy audit; prediction itself stands
	// without the write
	if p.store != nil {
		if err := p.store.Upsert(ctx, *prediction); err != nil {
			log.Warnf("predict [user %s, metric %s]: store prediction: %s", userID, metric, err)
		}
	}

	return prediction, nil
}

// confidence grows with sample count and fit quality, floored at the
// base and never above the cap.
func confidence(n int, r2 float64) float64 {
	c := float64(confidenceBase) + float64(n-minSamples)*confidencePerSample + r2*confidenceFitQuality
	c = math.Max(confidenceBase, math.Min(confidenceCap, c))
	return math.Round(c)
}

// improvementOnly metrics are skipped rather than projected downward.
func improvementOnly(metric string) bool {
	switch metric {
	case events.MetricWorkoutVolume, events.MetricFitnessScore, events.MetricConsistency:
		return true
	}
	return false
}

// clampToMetricRange bounds score-like projections to [0,100] and keeps
// count-like ones non-negative. Body metrics stay unclamped.
func clampToMetricRange(metric string, v float64) float64 {
	switch metric {
	case events.MetricFitnessScore, events.MetricConsistency, events.MetricRecovery, events.MetricSleepEfficiency:
		return math.Max(0, math.Min(100, v))
	case events.MetricWorkoutVolume, events.MetricWorkoutMinutes, events.MetricSleepHours:
		return math.Max(0, v)
	}
	return v
}

// targetDate lands one period-length per horizon unit after the latest
// sample: weeks for snapshot-derived metrics, days for daily biometrics.
func targetDate(latest time.Time, metric string, horizonPeriods int) time.Time {
	switch metric {
	case events.MetricWorkoutVolume, events.MetricWorkoutMinutes, events.MetricFitnessScore, events.MetricConsistency:
		return latest.AddDate(0, 0, 7*horizonPeriods)
	}
	return latest.AddDate(0, 0, horizonPeriods)
}
