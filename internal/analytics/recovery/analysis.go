package recovery

import (
	"time"

	"github.com/google/uuid"
)

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

type Readiness string

const (
	ReadinessHigh     Readiness = "high"
	ReadinessModerate Readiness = "moderate"
	ReadinessLow      Readiness = "low"
	ReadinessRest     Readiness = "rest"
)

type FactorInfluence string

const (
	FactorPositive FactorInfluence = "positive"
	FactorNegative FactorInfluence = "negative"
	FactorNeutral  FactorInfluence = "neutral"
)

// Factors names each signal's pull on the score. WorkloadBalance and
// Consistency are extension points, currently always neutral; adding a
// real computation later only touches their derivation.
type Factors struct {
	Sleep           FactorInfluence `json:"sleep"`
	HRV             FactorInfluence `json:"hrv"`
	WorkloadBalance FactorInfluence `json:"workloadBalance"`
	Consistency     FactorInfluence `json:"consistency"`
}

// Analysis is the per-request recovery readout. Computed fresh on every
// call; a copy is written through for the current day as an audit record.
type Analysis struct {
	UserID          uuid.UUID `json:"userId"`
	Score           int       `json:"score"`
	Trend           Trend     `json:"trend"`
	Readiness       Readiness `json:"readiness"`
	Factors         Factors   `json:"factors"`
	Recommendations []string  `json:"recommendations"`
	AnalyzedAt      time.Time `json:"analyzedAt"`
	NextCheck       time.Time `json:"nextCheck"`
}
