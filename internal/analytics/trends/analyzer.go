package trends

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/peakform/backend/internal/analytics/events"
	"github.com/peakform/backend/internal/telemetry/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=analyzer.go -destination=analyzer_mocks_test.go -package=trends_test

type Direction string

const (
	DirectionImproving  Direction = "improving"
	DirectionDeclining  Direction = "declining"
	DirectionPlateauing Direction = "plateauing"
	DirectionVolatile   Direction = "volatile"
)

// significantChangePct is the percent-change magnitude above which a
// trend counts as significant.
const significantChangePct = 5.0

// Recommendation tokens, structured reasons for the caller to render.
const (
	TokenInsufficientData  = "insufficient_data"
	TokenMaintainProgress  = "maintain_progression"
	TokenReviewProgram     = "review_program"
	TokenAddRecovery       = "add_recovery"
	TokenIncreaseStimulus  = "increase_stimulus"
	TokenStabilizeSchedule = "stabilize_schedule"
)

// Result is the fitted trend readout for one metric. Derived per
// request, never persisted directly.
type Result struct {
	Metric          string    `json:"metric"`
	Direction       Direction `json:"direction"`
	Slope           float64   `json:"slope"`
	Confidence      float64   `json:"confidence"`
	Significant     bool      `json:"significant"`
	PercentChange   float64   `json:"percentChange"`
	ProjectedValue  float64   `json:"projectedValue"`
	SampleCount     int       `json:"sampleCount"`
	Recommendations []string  `json:"recommendations"`
	WindowDays      int       `json:"windowDays"`
	AnalyzedAt      time.Time `json:"analyzedAt"`
}

type seriesSource interface {
	MetricSeries(ctx context.Context, userID uuid.UUID, metric string, from, to time.Time) ([]events.Sample, error)
}

// Analyzer fits a linear trend to a metric's recent series and
// classifies its direction. Under 2 samples it returns a defined zero
// result (slope 0, confidence 0), not an error.
type Analyzer struct {
	series  seriesSource
	nowFunc func() time.Time
}

func NewAnalyzer(series seriesSource) *Analyzer {
	return &Analyzer{
		series:  series,
		nowFunc: time.Now,
	}
}

func (a *Analyzer) AnalyzeTrend(
	ctx context.Context,
	userID uuid.UUID,
	metric string,
	windowDays int,
) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.trends.analyze")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("metric", metric))
	span.SetAttributes(attribute.String("user.id", userID.String()))

	if windowDays <= 0 {
		return nil, fmt.Errorf("invalid window days: %d", windowDays)
	}

	now := a.nowFunc().UTC()
	samples, err := a.series.MetricSeries(ctx, userID, metric, now.AddDate(0, 0, -windowDays), now)
	if err != nil {
		return nil, fmt.Errorf("metric series: %w", err)
	}

	result := a.analyze(metric, samples)
	result.WindowDays = windowDays
	result.AnalyzedAt = now

	span.SetAttributes(attribute.String("trend.direction", string(result.Direction)))
	span.SetAttributes(attribute.Int("samples", result.SampleCount))
	return result, nil
}

func (a *Analyzer) analyze(metric string, samples []events.Sample) *Result {
	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = s.Value
	}

	fit := FitLinear(values)
	result := &Result{
		Metric:      metric,
		Slope:       round2(fit.Slope),
		Confidence:  ConfidenceScore(fit),
		SampleCount: fit.N,
	}

	if fit.N < 2 {
		result.Direction = DirectionPlateauing
		result.Recommendations = []string{TokenInsufficientData}
		return result
	}

	result.PercentChange = round2(PercentChange(values[0], values[len(values)-1]))
	result.Significant = math.Abs(result.PercentChange) > significantChangePct
	// next period at the current pace
	result.ProjectedValue = round2(values[len(values)-1] + fit.Slope)
	result.Direction = classify(values, fit, result.PercentChange)
	result.Recommendations = recommendationTokens(result.Direction)

	return result
}

// classify maps the fit onto a direction. A significant overall change
// whose half-window slopes disagree in sign reads as volatile, not as a
// trend.
func classify(values []float64, fit Fit, percentChange float64) Direction {
	if fit.Degenerate {
		return DirectionPlateauing
	}
	if math.Abs(percentChange) <= significantChangePct {
		return DirectionPlateauing
	}
	if halfSlopesDisagree(values) {
		return DirectionVolatile
	}
	if percentChange > 0 {
		return DirectionImproving
	}
	return DirectionDeclining
}

func halfSlopesDisagree(values []float64) bool {
	if len(values) < 4 {
		return false
	}
	mid := len(values) / 2
	first := FitLinear(values[:mid])
	second := FitLinear(values[mid:])
	if first.Degenerate || second.Degenerate {
		return false
	}
	return first.Slope*second.Slope < 0
}

func recommendationTokens(direction Direction) []string {
	switch direction {
	case DirectionImproving:
		return []string{TokenMaintainProgress}
	case DirectionDeclining:
		return []string{TokenReviewProgram, TokenAddRecovery}
	case DirectionVolatile:
		return []string{TokenStabilizeSchedule}
	default:
		return []string{TokenIncreaseStimulus}
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
