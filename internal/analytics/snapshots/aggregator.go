package snapshots

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
	"go.uber.org/multierr"
)

//go:generate mockgen -source=aggregator.go -destination=aggregator_mocks_test.go -package=snapshots_test

// Composite score weights. Stable across recomputations so a snapshot
// rebuilt from the same events lands on the same values.
const (
	fitnessConsistencyWeight = 0.35
	fitnessRecoveryWeight    = 0.35
	fitnessIntensityWeight   = 0.30

	adherenceConsistencyWeight = 0.60
	adherenceGoalWeight        = 0.40

	// perceived effort 1-10 scaled to the 0-100 score range
	intensityScale = 10
)

type eventsSource interface {
	WorkoutsInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]events.WorkoutSession, error)
	SleepInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]events.SleepLog, error)
	HRVInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]events.HRVSample, error)
	BodyMeasurementsInRange(ctx context.Context, userID uuid.UUID, metric string, from, to time.Time) ([]events.BodyMeasurement, error)
	GoalsInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]events.GoalEvent, error)
	PersonalRecordCountInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error)
}

type snapshotsStore interface {
	Upsert(ctx context.Context, s Snapshot) error
	Get(ctx context.Context, userID uuid.UUID, periodType PeriodType, periodStart time.Time) (*Snapshot, error)
	Previous(ctx context.Context, userID uuid.UUID, periodType PeriodType, before time.Time) (*Snapshot, error)
}

// Aggregator computes per-period analytics snapshots from raw events.
// A failure in one metric group does not sink the snapshot: that group
// keeps zero values and the rest still aggregates.
type Aggregator struct {
	events        eventsSource
	store         snapshotsStore
	targetPerWeek int
	nowFunc       func() time.Time
}

func NewAggregator(events eventsSource, store snapshotsStore, targetPerWeek int) *Aggregator {
	if targetPerWeek <= 0 {
		targetPerWeek = 3
	}
	return &Aggregator{
		events:        events,
		store:         store,
		targetPerWeek: targetPerWeek,
		nowFunc:       time.Now,
	}
}

// Aggregate computes and stores the snapshot for the period periodsBack
// periods before the current one. Returns the stored snapshot.
func (a *Aggregator) Aggregate(
	ctx context.Context,
	userID uuid.UUID,
	periodType PeriodType,
	periodsBack int,
) (_ *Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.snapshots.aggregate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.String("period.type", string(periodType)))

	start, end, err := PeriodRange(a.nowFunc(), periodType, periodsBack)
	if err != nil {
		return nil, err
	}

	s := Snapshot{
		UserID:      userID,
		PeriodType:  periodType,
		PeriodStart: start,
		PeriodEnd:   end,
	}

	// each group independently; a failing source degrades to zeros
	var groupErrs error
	groupErrs = multierr.Append(groupErrs, a.fillWorkoutMetrics(ctx, &s))
	groupErrs = multierr.Append(groupErrs, a.fillHealthMetrics(ctx, &s))
	groupErrs = multierr.Append(groupErrs, a.fillBodyMetrics(ctx, &s))
	groupErrs = multierr.Append(groupErrs, a.fillGoalMetrics(ctx, &s))
	if groupErrs != nil {
		log.Warnf(
			"snapshot aggregate [user %s, %s %s]: partial metric groups: %s",
			userID, periodType, start.Format(time.DateOnly), groupErrs,
		)
		span.SetAttributes(attribute.Int("group.errors", len(multierr.Errors(groupErrs))))
	}

	s.FitnessScore = round2(fitnessConsistencyWeight*s.ConsistencyScore +
		fitnessRecoveryWeight*s.AvgRecovery +
		fitnessIntensityWeight*math.Min(100, s.AvgIntensity*intensityScale))

	goalRate := 0.0
	if s.GoalsTotal > 0 {
		goalRate = float64(s.GoalsCompleted) / float64(s.GoalsTotal) * 100
	}
	s.AdherenceScore = round2(adherenceConsistencyWeight*s.ConsistencyScore + adherenceGoalWeight*goalRate)

	s.ProgressVelocity = a.progressVelocity(ctx, s)

	if err := a.store.Upsert(ctx, s); err != nil {
		return nil, fmt.Errorf("store snapshot: %w", err)
	}

	return &s, nil
}

func (a *Aggregator) fillWorkoutMetrics(ctx context.Context, s *Snapshot) error {
	workouts, err := a.events.WorkoutsInRange(ctx, s.UserID, s.PeriodStart, s.PeriodEnd)
	if err != nil {
		return fmt.Errorf("workouts in range: %w", err)
	}

	var intensitySum float64
	var intensityCount int
	for _, ws := range workouts {
		s.WorkoutCount++
		s.WorkoutMinutes += ws.DurationMinutes
		// volume counts completed sessions only, an abandoned session
		// must not inflate it
		if ws.Completed {
			s.TotalVolume += ws.Volume()
		}
		s.Calories += ws.Calories
		s.DistanceKm += ws.DistanceKm
		if ws.Intensity > 0 {
			intensitySum += ws.Intensity
			intensityCount++
		}
	}
	if intensityCount > 0 {
		s.AvgIntensity = round2(intensitySum / float64(intensityCount))
	}

	s.ConsistencyScore = a.consistency(s.WorkoutCount, s.PeriodStart, s.PeriodEnd)

	prCount, err := a.events.PersonalRecordCountInRange(ctx, s.UserID, s.PeriodStart, s.PeriodEnd)
	if err != nil {
		return fmt.Errorf("personal record count: %w", err)
	}
	s.PersonalRecords = prCount

	return nil
}

func (a *Aggregator) fillHealthMetrics(ctx context.Context, s *Snapshot) error {
	var errs error

	sleepLogs, err := a.events.SleepInRange(ctx, s.UserID, s.PeriodStart, s.PeriodEnd)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("sleep in range: %w", err))
	} else if len(sleepLogs) > 0 {
		var hoursSum, effSum float64
		for _, sl := range sleepLogs {
			hoursSum += sl.Hours()
			effSum += sl.Efficiency
		}
		s.AvgSleepHours = round2(hoursSum / float64(len(sleepLogs)))
		s.AvgSleepEfficiency = round2(effSum / float64(len(sleepLogs)))
	}

	hrvSamples, err := a.events.HRVInRange(ctx, s.UserID, s.PeriodStart, s.PeriodEnd)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("hrv in range: %w", err))
	} else if len(hrvSamples) > 0 {
		var recoverySum, stressSum, restingSum float64
		for _, hs := range hrvSamples {
			recoverySum += hs.Recovery
			stressSum += hs.Stress
			restingSum += hs.RestingHeartRate
		}
		n := float64(len(hrvSamples))
		s.AvgRecovery = round2(recoverySum / n)
		s.AvgStress = round2(stressSum / n)
		s.AvgRestingHR = round2(restingSum / n)
	}

	return errs
}

func (a *Aggregator) fillBodyMetrics(ctx context.Context, s *Snapshot) error {
	var errs error

	weight, err := a.events.BodyMeasurementsInRange(ctx, s.UserID, events.MetricBodyWeight, s.PeriodStart, s.PeriodEnd)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("body weight in range: %w", err))
	} else if len(weight) > 1 {
		s.BodyWeightDelta = round2(weight[len(weight)-1].Value - weight[0].Value)
	}

	fat, err := a.events.BodyMeasurementsInRange(ctx, s.UserID, events.MetricBodyFat, s.PeriodStart, s.PeriodEnd)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("body fat in range: %w", err))
	} else if len(fat) > 1 {
		s.BodyFatDelta = round2(fat[len(fat)-1].Value - fat[0].Value)
	}

	return errs
}

func (a *Aggregator) fillGoalMetrics(ctx context.Context, s *Snapshot) error {
	goals, err := a.events.GoalsInRange(ctx, s.UserID, s.PeriodStart, s.PeriodEnd)
	if err != nil {
		return fmt.Errorf("goals in range: %w", err)
	}

	s.GoalsTotal = len(goals)
	for _, g := range goals {
		if g.Completed {
			s.GoalsCompleted++
		}
	}
	return nil
}

// consistency scores logged workouts against the weekly target, capped
// at 100. A degenerate window (zero or negative width) scores 0 instead
// of dividing by a non-positive weeks denominator.
func (a *Aggregator) consistency(workoutCount int, start, end time.Time) float64 {
	weeks := end.Sub(start).Hours() / (24 * 7)
	if weeks <= 0 {
		return 0
	}
	target := float64(a.targetPerWeek) * weeks
	return round2(math.Min(100, float64(workoutCount)/target*100))
}

// progressVelocity is the percent change of total volume against the
// previous stored snapshot of the same period type. Zero when there is
// no usable baseline.
func (a *Aggregator) progressVelocity(ctx context.Context, s Snapshot) float64 {
	prev, err := a.store.Previous(ctx, s.UserID, s.PeriodType, s.PeriodStart)
	if err != nil {
		if !errors.Is(err, ErrSnapshotNotFound) {
			log.Warnf("snapshot aggregate [user %s]: previous snapshot: %s", s.UserID, err)
		}
		return 0
	}
	if prev.TotalVolume <= 0 {
		return 0
	}
	return round2((s.TotalVolume - prev.TotalVolume) / prev.TotalVolume * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
