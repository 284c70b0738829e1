package events

import (
	"time"

	"github.com/google/uuid"
)

// Metric names for time series extraction. Workout and fitness score
// series are derived from stored snapshots, the rest come from raw
// biometric events.
const (
	MetricWorkoutVolume   = "workout_volume"
	MetricWorkoutMinutes  = "workout_minutes"
	MetricFitnessScore    = "fitness_score"
	MetricConsistency     = "consistency"
	MetricRecovery        = "recovery"
	MetricSleepHours      = "sleep_hours"
	MetricSleepEfficiency = "sleep_efficiency"
	MetricRestingHR       = "resting_hr"
	MetricBodyWeight      = "body_weight"
	MetricBodyFat         = "body_fat"
)

// WorkoutSession is one logged training session.
type WorkoutSession struct {
	ID              int       `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	WorkoutType     string    `json:"workoutType"`
	Sets            int       `json:"sets"`
	Reps            int       `json:"reps"`
	WeightKilos     float64   `json:"weightKilos"`
	DurationMinutes int       `json:"durationMinutes"`
	// Intensity is the perceived effort 1-10, 0 when not reported
	Intensity  float64   `json:"intensity"`
	Calories   float64   `json:"calories"`
	DistanceKm float64   `json:"distanceKm"`
	Completed  bool      `json:"completed"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Volume is sets x reps x weight for the session.
func (ws WorkoutSession) Volume() float64 {
	return float64(ws.Sets) * float64(ws.Reps) * ws.WeightKilos
}

// SleepLog is one night of sleep as reported by a wearable.
type SleepLog struct {
	ID            int       `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	MinutesAsleep float64   `json:"minutesAsleep"`
	// Efficiency is time asleep over time in bed, 0-100
	Efficiency float64   `json:"efficiency"`
	OccurredAt time.Time `json:"occurredAt"`
}

func (sl SleepLog) Hours() float64 {
	return sl.MinutesAsleep / 60
}

// HRVSample is one heart rate variability reading with the
// wearable-derived recovery and stress scores.
type HRVSample struct {
	ID     int       `json:"id"`
	UserID uuid.UUID `json:"userId"`
	// Recovery is the HRV-derived recovery score 0-100
	Recovery float64 `json:"recovery"`
	// Stress is the HRV-derived stress score 0-100
	Stress           float64   `json:"stress"`
	RestingHeartRate float64   `json:"restingHeartRate"`
	OccurredAt       time.Time `json:"occurredAt"`
}

// BodyMeasurement is one body composition sample (weight, body fat, ...).
type BodyMeasurement struct {
	ID         int       `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	Metric     string    `json:"metric"`
	Value      float64   `json:"value"`
	OccurredAt time.Time `json:"occurredAt"`
}

// PersonalRecord marks a new personal best for an exercise.
type PersonalRecord struct {
	ID         int       `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	Exercise   string    `json:"exercise"`
	ValueKilos float64   `json:"valueKilos"`
	OccurredAt time.Time `json:"occurredAt"`
}

// GoalEvent tracks progress against a user goal.
type GoalEvent struct {
	ID         int       `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	GoalType   string    `json:"goalType"`
	Target     float64   `json:"target"`
	Achieved   float64   `json:"achieved"`
	Completed  bool      `json:"completed"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Sample is one (timestamp, value) point of a metric time series.
type Sample struct {
	At    time.Time `json:"at"`
	Value float64   `json:"value"`
}
