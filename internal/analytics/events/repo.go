package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/peakform/backend/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrEventNotFound = errors.New("event not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddWorkout(ctx context.Context, ws WorkoutSession) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.events.addworkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_session
				(user_id, workout_type, sets, reps, weight_kilos, duration_minutes, intensity, calories, distance_km, completed, occurred_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id;`,
		ws.UserID, ws.WorkoutType, ws.Sets, ws.Reps, ws.WeightKilos, ws.DurationMinutes,
		ws.Intensity, ws.Calories, ws.DistanceKm, ws.Completed, ws.OccurredAt,
	).Scan(&ws.ID)
	if err != nil {
		return nil, fmt.Errorf("insert workout session: %w", err)
	}

	span.SetAttributes(attribute.Int("workout.id", ws.ID))
	return &ws, nil
}

func (r *Repo) AddSleep(ctx context.Context, sl SleepLog) (_ *SleepLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.events.addsleep")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO sleep_log (user_id, minutes_asleep, efficiency, occurred_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id;`,
		sl.UserID, sl.MinutesAsleep, sl.Efficiency, sl.OccurredAt,
	).Scan(&sl.ID)
	if err != nil {
		return nil, fmt.Errorf("insert sleep log: %w", err)
	}
	return &sl, nil
}

func (r *Repo) AddHRV(ctx context.Context, hs HRVSample) (_ *HRVSample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.events.addhrv")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO hrv_sample (user_id, recovery, stress, resting_heart_rate, occurred_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		hs.UserID, hs.Recovery, hs.Stress, hs.RestingHeartRate, hs.OccurredAt,
	).Scan(&hs.ID)
	if err != nil {
		return nil, fmt.Errorf("insert hrv sample: %w", err)
	}
	return &hs, nil
}

func (r *Repo) AddBodyMeasurement(ctx context.Context, bm BodyMeasurement) (_ *BodyMeasurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.events.addbody")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO body_measurement (user_id, metric, value, occurred_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id;`,
		bm.UserID, bm.Metric, bm.Value, bm.OccurredAt,
	).Scan(&bm.ID)
	if err != nil {
		return nil, fmt.Errorf("insert body measurement: %w", err)
	}
	return &bm, nil
}

func (r *Repo) AddPersonalRecord(ctx context.Context, pr PersonalRecord) (_ *PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.events.addpr")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO personal_record (user_id, exercise, value_kilos, occurred_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id;`,
		pr.UserID, pr.Exercise, pr.ValueKilos, pr.OccurredAt,
	).Scan(&pr.ID)
	if err != nil {
		return nil, fmt.Errorf("insert personal record: %w", err)
	}
	return &pr, nil
}

func (r *Repo) AddGoal(ctx context.Context, ge GoalEvent) (_ *GoalEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.events.addgoal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO goal_event (user_id, goal_type, target, achieved, completed, occurred_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		ge.UserID, ge.GoalType, ge.Target, ge.Achieved, ge.Completed, ge.OccurredAt,
	).Scan(&ge.ID)
	if err != nil {
		return nil, fmt.Errorf("insert goal event: %w", err)
	}
	return &ge, nil
}

// WorkoutsInRange returns all workout sessions for the user in the given
// window, ordered by occurrence time ascending.
func (r *Repo) WorkoutsInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (_ []WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.events.workoutsinrange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.String("from", from.String()))
	span.SetAttributes(attribute.String("to", to.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, workout_type, sets, reps, weight_kilos, duration_minutes, intensity, calories, distance_km, completed, occurred_at
			FROM workout_session
			WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at < $3
			ORDER BY occurred_at ASC;`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return rows2workouts(rows)
}

func (r *Repo) SleepInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (_ []SleepLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.events.sleepinrange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, minutes_asleep, efficiency, occurred_at
			FROM sleep_log
			WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at < $3
			ORDER BY occurred_at ASC;`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return rows2sleepLogs(rows)
}

func (r *Repo) HRVInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (_ []HRVSample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.events.hrvinrange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, recovery, stress, resting_heart_rate, occurred_at
			FROM hrv_sample
			WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at < $3
			ORDER BY occurred_at ASC;`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return rows2hrvSamples(rows)
}

func (r *Repo) BodyMeasurementsInRange(ctx context.Context, userID uuid.UUID, metric string, from, to time.Time) (_ []BodyMeasurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.events.bodyinrange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.String("metric", metric))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, metric, value, occurred_at
			FROM body_measurement
			WHERE user_id = $1 AND metric = $2 AND occurred_at >= $3 AND occurred_at < $4
			ORDER BY occurred_at ASC;`,
		userID, metric, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	var measurements []BodyMeasurement
	for rows.Next() {
		var bm BodyMeasurement
		if err := rows.Scan(&bm.ID, &bm.UserID, &bm.Metric, &bm.Value, &bm.OccurredAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		measurements = append(measurements, bm)
	}
	return measurements, nil
}

func (r *Repo) GoalsInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (_ []GoalEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.events.goalsinrange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, goal_type, target, achieved, completed, occurred_at
			FROM goal_event
			WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at < $3
			ORDER BY occurred_at ASC;`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	var goals []GoalEvent
	for rows.Next() {
		var ge GoalEvent
		if err := rows.Scan(&ge.ID, &ge.UserID, &ge.GoalType, &ge.Target, &ge.Achieved, &ge.Completed, &ge.OccurredAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		goals = append(goals, ge)
	}
	return goals, nil
}

func (r *Repo) PersonalRecordCountInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.events.prcount")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	var count int
	err = r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM personal_record
			WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at < $3;`,
		userID, from, to,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("query: %w", err)
	}

	return count, nil
}

// LatestHRV returns the last n HRV samples for the user, newest first.
func (r *Repo) LatestHRV(ctx context.Context, userID uuid.UUID, n int) (_ []HRVSample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.events.latesthrv")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.Int("n", n))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, recovery, stress, resting_heart_rate, occurred_at
			FROM hrv_sample
			WHERE user_id = $1
			ORDER BY occurred_at DESC
			LIMIT $2;`,
		userID, n,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return rows2hrvSamples(rows)
}

// LatestSleep returns the last n sleep logs for the user, newest first.
func (r *Repo) LatestSleep(ctx context.Context, userID uuid.UUID, n int) (_ []SleepLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.events.latestsleep")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.Int("n", n))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, minutes_asleep, efficiency, occurred_at
			FROM sleep_log
			WHERE user_id = $1
			ORDER BY occurred_at DESC
			LIMIT $2;`,
		userID, n,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return rows2sleepLogs(rows)
}

func rows2workouts(rows pgx.Rows) ([]WorkoutSession, error) {
	var workouts []WorkoutSession
	for rows.Next() {
		var ws WorkoutSession
		if err := rows.Scan(
			&ws.ID, &ws.UserID, &ws.WorkoutType, &ws.Sets, &ws.Reps, &ws.WeightKilos,
			&ws.DurationMinutes, &ws.Intensity, &ws.Calories, &ws.DistanceKm, &ws.Completed, &ws.OccurredAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		workouts = append(workouts, ws)
	}
	return workouts, nil
}

func rows2sleepLogs(rows pgx.Rows) ([]SleepLog, error) {
	var logs []SleepLog
	for rows.Next() {
		var sl SleepLog
		if err := rows.Scan(&sl.ID, &sl.UserID, &sl.MinutesAsleep, &sl.Efficiency, &sl.OccurredAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		logs = append(logs, sl)
	}
	return logs, nil
}

func rows2hrvSamples(rows pgx.Rows) ([]HRVSample, error) {
	var samples []HRVSample
	for rows.Next() {
		var hs HRVSample
		if err := rows.Scan(&hs.ID, &hs.UserID, &hs.Recovery, &hs.Stress, &hs.RestingHeartRate, &hs.OccurredAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		samples = append(samples, hs)
	}
	return samples, nil
}
