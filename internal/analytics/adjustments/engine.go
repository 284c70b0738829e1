package adjustments

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/peakform/backend/internal/analytics/events"
	"github.com/peakform/backend/internal/analytics/recovery"
	"github.com/peakform/backend/internal/telemetry/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=engine.go -destination=engine_mocks_test.go -package=adjustments_test

var ErrInsufficientData = errors.New("insufficient data for workout adjustment")

// Recovery score bands and their workout parameter multipliers.
const (
	scoreBandLow      = 40
	scoreBandModerate = 60
	scoreBandHigh     = 80

	// hard skip thresholds, they override the band multipliers
	skipScoreThreshold = 30
	skipSleepHours     = 5.0

	// secondary-signal discounts on intensity, compounding
	poorSleepEfficiency         = 70
	poorSleepEfficiencyDiscount = 0.8
	shortSleepHours             = 6.0
	shortSleepDiscount          = 0.7
	highStress                  = 70
	highStressDiscount          = 0.8

	confidenceBase      = 40
	confidencePerSignal = 20
)

// Adjustment scales the next workout's parameters from current recovery
// state. Pure function output, never persisted.
type Adjustment struct {
	UserID              uuid.UUID `json:"userId"`
	RecoveryScore       int       `json:"recoveryScore"`
	IntensityMultiplier float64   `json:"intensityMultiplier"`
	DurationMultiplier  float64   `json:"durationMultiplier"`
	RestMultiplier      float64   `json:"restMultiplier"`

	RecommendedActivities []string `json:"recommendedActivities"`
	AvoidActivities       []string `json:"avoidActivities,omitempty"`
	Warnings              []string `json:"warnings,omitempty"`

	// ShouldSkip overrides the multipliers: skip training, pick from
	// Alternatives instead.
	ShouldSkip   bool     `json:"shouldSkip"`
	Alternatives []string `json:"alternatives,omitempty"`

	Confidence float64 `json:"confidence"`
}

type recoveryAnalyzer interface {
	Analyze(ctx context.Context, userID uuid.UUID) (*recovery.Analysis, error)
}

type latestSignalsSource interface {
	LatestSleep(ctx context.Context, userID uuid.UUID, n int) ([]events.SleepLog, error)
	LatestHRV(ctx context.Context, userID uuid.UUID, n int) ([]events.HRVSample, error)
}

// Engine maps recovery state to workout adjustments. Stateless, every
// call works from freshly fetched signals.
type Engine struct {
	recovery recoveryAnalyzer
	signals  latestSignalsSource
}

func NewEngine(recovery recoveryAnalyzer, signals latestSignalsSource) *Engine {
	return &Engine{
		recovery: recovery,
		signals:  signals,
	}
}

func (e *Engine) Recommend(ctx context.Context, userID uuid.UUID) (_ *Adjustment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.adjustments.recommend")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	analysis, err := e.recovery.Analyze(ctx, userID)
	if err != nil {
		if errors.Is(err, recovery.ErrInsufficientData) {
			return nil, ErrInsufficientData
		}
		return nil, fmt.Errorf("recovery analysis: %w", err)
	}

	latestSleep, err := e.signals.LatestSleep(ctx, userID, 1)
	if err != nil {
		return nil, fmt.Errorf("latest sleep: %w", err)
	}
	latestHRV, err := e.signals.LatestHRV(ctx, userID, 1)
	if err != nil {
		return nil, fmt.Errorf("latest hrv: %w", err)
	}

	adjustment := buildAdjustment(userID, analysis, latestSleep, latestHRV)

	span.SetAttributes(attribute.Int("recovery.score", adjustment.RecoveryScore))
	span.SetAttributes(attribute.Bool("should.skip", adjustment.ShouldSkip))
	return adjustment, nil
}

func buildAdjustment(
	userID uuid.UUID,
	analysis *recovery.Analysis,
	latestSleep []events.SleepLog,
	latestHRV []events.HRVSample,
) *Adjustment {
	a := &Adjustment{
		UserID:        userID,
		RecoveryScore: analysis.Score,
	}

	switch score := analysis.Score; {
	case score < scoreBandLow:
		a.IntensityMultiplier = 0.6
		a.DurationMultiplier = 0.7
		a.RestMultiplier = 1.5
		a.RecommendedActivities = []string{"walking", "yoga", "swimming", "mobility_work"}
		a.AvoidActivities = []string{"hiit", "heavy_lifting", "sprints"}
		a.Warnings = append(a.Warnings, "recovery is low, keep the load light and prioritize rest")
	case score < scoreBandModerate:
		a.IntensityMultiplier = 0.8
		a.DurationMultiplier = 0.9
		a.RestMultiplier = 1.2
		a.RecommendedActivities = []string{"steady_state_cardio", "light_strength", "cycling"}
	case score > scoreBandHigh:
		a.IntensityMultiplier = 1.1
		a.DurationMultiplier = 1.1
		a.RestMultiplier = 0.9
		a.RecommendedActivities = []string{"hiit", "heavy_lifting", "intervals"}
	default:
		a.IntensityMultiplier = 1.0
		a.DurationMultiplier = 1.0
		a.RestMultiplier = 1.0
		a.RecommendedActivities = []string{"regular_training"}
	}

	var sleepHours float64
	sleepPresent := len(latestSleep) > 0
	if sleepPresent {
		sl := latestSleep[0]
		sleepHours = sl.Hours()
		if sl.Efficiency < poorSleepEfficiency {
			a.IntensityMultiplier *= poorSleepEfficiencyDiscount
			a.Warnings = append(a.Warnings, "sleep efficiency was poor last night")
		}
		if sleepHours < shortSleepHours {
			a.IntensityMultiplier *= shortSleepDiscount
			a.Warnings = append(a.Warnings, "short sleep last night, intensity reduced")
		}
	}

	hrvPresent := len(latestHRV) > 0
	if hrvPresent && latestHRV[0].Stress > highStress {
		a.IntensityMultiplier *= highStressDiscount
		a.Warnings = append(a.Warnings, "stress level is elevated")
	}
	a.IntensityMultiplier = round2(a.IntensityMultiplier)

	if analysis.Score < skipScoreThreshold || (sleepPresent && sleepHours < skipSleepHours) {
		a.ShouldSkip = true
		a.Alternatives = []string{"walking", "stretching", "breathwork", "light_yoga"}
		a.Warnings = append(a.Warnings, "skip today's planned workout, recovery comes first")
	}

	// factors only count as a signal when the analysis actually leaned
	// on one, an all-neutral set carries no information
	factorsInformative := analysis.Factors.Sleep != recovery.FactorNeutral ||
		analysis.Factors.HRV != recovery.FactorNeutral
	a.Confidence = adjustmentConfidence(sleepPresent, hrvPresent, factorsInformative)

	return a
}

// adjustmentConfidence grows with each signal source actually available,
// capped at 100.
func adjustmentConfidence(sleepPresent, hrvPresent, factorsPresent bool) float64 {
	confidence := float64(confidenceBase)
	for _, present := range []bool{sleepPresent, hrvPresent, factorsPresent} {
		if present {
			confidence += confidencePerSignal
		}
	}
	return math.Min(100, confidence)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
