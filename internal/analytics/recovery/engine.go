package recovery

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/peakform/backend/internal/analytics/events"
	"github.com/peakform/backend/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=engine.go -destination=engine_mocks_test.go -package=recovery_test

var ErrInsufficientData = errors.New("insufficient data for recovery analysis")

const (
	signalWindow = 7 * 24 * time.Hour

	baseScore = 50
	// HRV carries 40% weight around the 50-point midline
	hrvWeight = 0.4

	sleepEfficiencyGood = 85
	sleepEfficiencyPoor = 70
	sleepGoodBonus      = 10
	sleepPoorPenalty    = 15

	// mean of 3 newest vs 3 oldest HRV samples
	trendSampleCount = 3
	trendThreshold   = 5.0
)

type signalsSource interface {
	HRVInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]events.HRVSample, error)
	SleepInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]events.SleepLog, error)
}

type analysesStore interface {
	UpsertDaily(ctx context.Context, a Analysis) error
}

// Engine blends the last week of HRV and sleep signals into a bounded
// 0-100 recovery score with a trend label and readiness band.
type Engine struct {
	signals signalsSource
	store   analysesStore
	nowFunc func() time.Time
}

func NewEngine(signals signalsSource, store analysesStore) *Engine {
	return &Engine{
		signals: signals,
		store:   store,
		nowFunc: time.Now,
	}
}

// Analyze computes the recovery analysis for the user. Returns
// ErrInsufficientData when neither HRV nor sleep samples exist in the
// 7-day window.
func (e *Engine) Analyze(ctx context.Context, userID uuid.UUID) (_ *Analysis, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.recovery.analyze")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	now := e.nowFunc().UTC()
	from := now.Add(-signalWindow)

	hrvSamples, err := e.signals.HRVInRange(ctx, userID, from, now)
	if err != nil {
		return nil, fmt.Errorf("hrv in range: %w", err)
	}
	sleepLogs, err := e.signals.SleepInRange(ctx, userID, from, now)
	if err != nil {
		return nil, fmt.Errorf("sleep in range: %w", err)
	}

	if len(hrvSamples) == 0 && len(sleepLogs) == 0 {
		return nil, ErrInsufficientData
	}

	score := float64(baseScore)

	var avgHRVRecovery float64
	if len(hrvSamples) > 0 {
		for _, hs := range hrvSamples {
			avgHRVRecovery += hs.Recovery
		}
		avgHRVRecovery /= float64(len(hrvSamples))
		score += (avgHRVRecovery - 50) * hrvWeight
	}

	var avgSleepEfficiency float64
	if len(sleepLogs) > 0 {
		for _, sl := range sleepLogs {
			avgSleepEfficiency += sl.Efficiency
		}
		avgSleepEfficiency /= float64(len(sleepLogs))
		switch {
		case avgSleepEfficiency > sleepEfficiencyGood:
			score += sleepGoodBonus
		case avgSleepEfficiency < sleepEfficiencyPoor:
			score -= sleepPoorPenalty
		}
	}

	analysis := &Analysis{
		UserID:     userID,
		Score:      int(math.Round(clamp(score, 0, 100))),
		Trend:      hrvTrend(hrvSamples),
		AnalyzedAt: now,
		NextCheck:  now.Add(24 * time.Hour),
	}
	analysis.Readiness = readiness(analysis.Score)
	analysis.Factors = Factors{
		Sleep:           sleepFactor(len(sleepLogs) > 0, avgSleepEfficiency),
		HRV:             hrvFactor(hrvSamples),
		WorkloadBalance: FactorNeutral,
		Consistency:     FactorNeutral,
	}
	analysis.Recommendations = recommendations(analysis)

	span.SetAttributes(attribute.Int("recovery.score", analysis.Score))
	span.SetAttributes(attribute.String("recovery.readiness", string(analysis.Readiness)))

	// audit write, best effort; the analysis is valid without it
	if e.store != nil {
		if err := e.store.UpsertDaily(ctx, *analysis); err != nil {
			log.Warnf("recovery analyze [user %s]: store daily analysis: %s", userID, err)
		}
	}

	return analysis, nil
}

// hrvTrend compares the mean of the newest samples against the mean of
// the oldest. Samples arrive ordered oldest first.
func hrvTrend(samples []events.HRVSample) Trend {
	if len(samples) < trendSampleCount {
		return TrendStable
	}

	oldest := meanRecovery(samples[:trendSampleCount])
	newest := meanRecovery(samples[len(samples)-trendSampleCount:])

	switch diff := newest - oldest; {
	case diff > trendThreshold:
		return TrendImproving
	case diff < -trendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func meanRecovery(samples []events.HRVSample) float64 {
	var sum float64
	for _, s := range samples {
		sum += s.Recovery
	}
	return sum / float64(len(samples))
}

func sleepFactor(present bool, avgEfficiency float64) FactorInfluence {
	if !present {
		return FactorNeutral
	}
	switch {
	case avgEfficiency > sleepEfficiencyGood:
		return FactorPositive
	case avgEfficiency < sleepEfficiencyPoor:
		return FactorNegative
	default:
		return FactorNeutral
	}
}

func hrvFactor(samples []events.HRVSample) FactorInfluence {
	switch hrvTrend(samples) {
	case TrendImproving:
		return FactorPositive
	case TrendDeclining:
		return FactorNegative
	default:
		return FactorNeutral
	}
}

func readiness(score int) Readiness {
	switch {
	case score >= 80:
		return ReadinessHigh
	case score >= 60:
		return ReadinessModerate
	case score >= 40:
		return ReadinessLow
	default:
		return ReadinessRest
	}
}

// recommendations ranks rule-matched advice, most pressing first.
func recommendations(a *Analysis) []string {
	var recs []string
	if a.Readiness == ReadinessRest {
		recs = append(recs, "Take a rest day, keep movement light: walking, stretching, mobility work")
	}
	if a.Factors.Sleep == FactorNegative {
		recs = append(recs, "Prioritize sleep: keep a consistent bedtime and aim for 8 hours in bed")
	}
	if a.Factors.HRV == FactorNegative {
		recs = append(recs, "Reduce training load until HRV recovery climbs back up")
	}
	if len(recs) == 0 {
		if a.Readiness == ReadinessHigh {
			recs = append(recs, "Recovery signals support a hard session today")
		} else {
			recs = append(recs, "Maintain current training load")
		}
	}
	return recs
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
