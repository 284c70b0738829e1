package snapshots

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidPeriod = errors.New("invalid period")
var ErrSnapshotNotFound = errors.New("snapshot not found")

type PeriodType string

const (
	PeriodWeekly    PeriodType = "weekly"
	PeriodMonthly   PeriodType = "monthly"
	PeriodQuarterly PeriodType = "quarterly"
	PeriodYearly    PeriodType = "yearly"
)

func ParsePeriodType(s string) (PeriodType, error) {
	switch PeriodType(strings.ToLower(s)) {
	case PeriodWeekly:
		return PeriodWeekly, nil
	case PeriodMonthly:
		return PeriodMonthly, nil
	case PeriodQuarterly:
		return PeriodQuarterly, nil
	case PeriodYearly:
		return PeriodYearly, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidPeriod, s)
	}
}

// PeriodRange returns the calendar-aligned [start, end) window for the
// period that lies periodsBack periods before the one containing now.
// Weeks start on Monday, quarters on Jan/Apr/Jul/Oct. All in UTC.
func PeriodRange(now time.Time, periodType PeriodType, periodsBack int) (start, end time.Time, err error) {
	if periodsBack < 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: negative periods back", ErrInvalidPeriod)
	}

	now = now.UTC()
	switch periodType {
	case PeriodWeekly:
		daysSinceMonday := (int(now.Weekday()) + 6) % 7
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
			AddDate(0, 0, -daysSinceMonday-7*periodsBack)
		end = start.AddDate(0, 0, 7)
	case PeriodMonthly:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
			AddDate(0, -periodsBack, 0)
		end = start.AddDate(0, 1, 0)
	case PeriodQuarterly:
		quarterStartMonth := time.Month((int(now.Month())-1)/3*3 + 1)
		start = time.Date(now.Year(), quarterStartMonth, 1, 0, 0, 0, 0, time.UTC).
			AddDate(0, -3*periodsBack, 0)
		end = start.AddDate(0, 3, 0)
	case PeriodYearly:
		start = time.Date(now.Year()-periodsBack, time.January, 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(1, 0, 0)
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s", ErrInvalidPeriod, periodType)
	}

	return start, end, nil
}

// Snapshot is one period's analytics rollup for a user. Keyed by
// (user, period type, period start); recomputation with identical source
// events produces an identical row.
type Snapshot struct {
	UserID      uuid.UUID  `json:"userId"`
	PeriodType  PeriodType `json:"periodType"`
	PeriodStart time.Time  `json:"periodStart"`
	PeriodEnd   time.Time  `json:"periodEnd"`

	// workout metrics
	WorkoutCount   int     `json:"workoutCount"`
	WorkoutMinutes int     `json:"workoutMinutes"`
	TotalVolume    float64 `json:"totalVolume"`
	AvgIntensity   float64 `json:"avgIntensity"`
	Calories       float64 `json:"calories"`
	DistanceKm     float64 `json:"distanceKm"`

	// performance metrics
	PersonalRecords  int     `json:"personalRecords"`
	ConsistencyScore float64 `json:"consistencyScore"`

	// health metrics, 0 when no samples in-window
	AvgRecovery        float64 `json:"avgRecovery"`
	AvgSleepHours      float64 `json:"avgSleepHours"`
	AvgSleepEfficiency float64 `json:"avgSleepEfficiency"`
	AvgStress          float64 `json:"avgStress"`
	AvgRestingHR       float64 `json:"avgRestingHr"`

	// body composition deltas: last minus first sample in-window
	BodyWeightDelta float64 `json:"bodyWeightDelta"`
	BodyFatDelta    float64 `json:"bodyFatDelta"`

	// goal counters
	GoalsCompleted int `json:"goalsCompleted"`
	GoalsTotal     int `json:"goalsTotal"`

	// composite scores
	FitnessScore     float64 `json:"fitnessScore"`
	ProgressVelocity float64 `json:"progressVelocity"`
	AdherenceScore   float64 `json:"adherenceScore"`
}
