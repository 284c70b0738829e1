package snapshots

import (
	"context"
	"fmt"
	"time"

	"github.com/peakform/backend/internal/analytics/events"
	"github.com/peakform/backend/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const snapshotColumns = `
	user_id, period_type, period_start, period_end,
	workout_count, workout_minutes, total_volume, avg_intensity, calories, distance_km,
	personal_records, consistency_score,
	avg_recovery, avg_sleep_hours, avg_sleep_efficiency, avg_stress, avg_resting_hr,
	body_weight_delta, body_fat_delta,
	goals_completed, goals_total,
	fitness_score, progress_velocity, adherence_score`

// Upsert stores the snapshot, replacing a previously computed row for the
// same (user, period type, period start).
func (r *Repo) Upsert(ctx context.Context, s Snapshot) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.snapshots.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("period.type", string(s.PeriodType)))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO analytics_snapshot (`+snapshotColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
			ON CONFLICT (user_id, period_type, period_start) DO UPDATE SET
				period_end = EXCLUDED.period_end,
				workout_count = EXCLUDED.workout_count,
				workout_minutes = EXCLUDED.workout_minutes,
				total_volume = EXCLUDED.total_volume,
				avg_intensity = EXCLUDED.avg_intensity,
				calories = EXCLUDED.calories,
				distance_km = EXCLUDED.distance_km,
				personal_records = EXCLUDED.personal_records,
				consistency_score = EXCLUDED.consistency_score,
				avg_recovery = EXCLUDED.avg_recovery,
				avg_sleep_hours = EXCLUDED.avg_sleep_hours,
				avg_sleep_efficiency = EXCLUDED.avg_sleep_efficiency,
				avg_stress = EXCLUDED.avg_stress,
				avg_resting_hr = EXCLUDED.avg_resting_hr,
				body_weight_delta = EXCLUDED.body_weight_delta,
				body_fat_delta = EXCLUDED.body_fat_delta,
				goals_completed = EXCLUDED.goals_completed,
				goals_total = EXCLUDED.goals_total,
				fitness_score = EXCLUDED.fitness_score,
				progress_velocity = EXCLUDED.progress_velocity,
				adherence_score = EXCLUDED.adherence_score;`,
		s.UserID, s.PeriodType, s.PeriodStart, s.PeriodEnd,
		s.WorkoutCount, s.WorkoutMinutes, s.TotalVolume, s.AvgIntensity, s.Calories, s.DistanceKm,
		s.PersonalRecords, s.ConsistencyScore,
		s.AvgRecovery, s.AvgSleepHours, s.AvgSleepEfficiency, s.AvgStress, s.AvgRestingHR,
		s.BodyWeightDelta, s.BodyFatDelta,
		s.GoalsCompleted, s.GoalsTotal,
		s.FitnessScore, s.ProgressVelocity, s.AdherenceScore,
	)
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, userID uuid.UUID, periodType PeriodType, periodStart time.Time) (_ *Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.snapshots.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+snapshotColumns+`
			FROM analytics_snapshot
			WHERE user_id = $1 AND period_type = $2 AND period_start = $3;`,
		userID, periodType, periodStart,
	)
	if err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}

	snapshots, err := rows2snapshots(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2snapshots: %w", err)
	}
	if len(snapshots) == 0 {
		return nil, ErrSnapshotNotFound
	}

	return &snapshots[0], nil
}

// Previous returns the most recent stored snapshot of the same period type
// strictly before the given period start.
func (r *Repo) Previous(ctx context.Context, userID uuid.UUID, periodType PeriodType, before time.Time) (_ *Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.snapshots.previous")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+snapshotColumns+`
			FROM analytics_snapshot
			WHERE user_id = $1 AND period_type = $2 AND period_start < $3
			ORDER BY period_start DESC
			LIMIT 1;`,
		userID, periodType, before,
	)
	if err != nil {
		return nil, fmt.Errorf("query previous snapshot: %w", err)
	}

	snapshots, err := rows2snapshots(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2snapshots: %w", err)
	}
	if len(snapshots) == 0 {
		return nil, ErrSnapshotNotFound
	}

	return &snapshots[0], nil
}

func (r *Repo) ListRange(ctx context.Context, userID uuid.UUID, periodType PeriodType, from, to time.Time) (_ []Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.snapshots.listrange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+snapshotColumns+`
			FROM analytics_snapshot
			WHERE user_id = $1 AND period_type = $2
				AND period_start >= $3 AND period_start < $4
			ORDER BY period_start ASC;`,
		userID, periodType, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query snapshots range: %w", err)
	}

	snapshots, err := rows2snapshots(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2snapshots: %w", err)
	}

	span.SetAttributes(attribute.Int("snapshots", len(snapshots)))
	return snapshots, nil
}

// MetricSeries serves snapshot-derived metrics as a time series, one point
// per stored weekly snapshot, timestamped at the period start.
func (r *Repo) MetricSeries(ctx context.Context, userID uuid.UUID, metric string, from, to time.Time) (_ []events.Sample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.snapshots.metricseries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("metric", metric))

	var column string
	switch metric {
	case events.MetricWorkoutVolume:
		column = "total_volume"
	case events.MetricWorkoutMinutes:
		column = "workout_minutes"
	case events.MetricFitnessScore:
		column = "fitness_score"
	case events.MetricConsistency:
		column = "consistency_score"
	default:
		return nil, fmt.Errorf("no snapshot column for metric: %s", metric)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT period_start, `+column+`
			FROM analytics_snapshot
			WHERE user_id = $1 AND period_type = $2
				AND period_start >= $3 AND period_start < $4
			ORDER BY period_start ASC;`,
		userID, PeriodWeekly, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query snapshot series: %w", err)
	}
	defer rows.Close()

	var samples []events.Sample
	for rows.Next() {
		var s events.Sample
		if err := rows.Scan(&s.At, &s.Value); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}

	span.SetAttributes(attribute.Int("samples", len(samples)))
	return samples, nil
}

func rows2snapshots(rows pgx.Rows) ([]Snapshot, error) {
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		var s Snapshot
		if err := rows.Scan(
			&s.UserID, &s.PeriodType, &s.PeriodStart, &s.PeriodEnd,
			&s.WorkoutCount, &s.WorkoutMinutes, &s.TotalVolume, &s.AvgIntensity, &s.Calories, &s.DistanceKm,
			&s.PersonalRecords, &s.ConsistencyScore,
			&s.AvgRecovery, &s.AvgSleepHours, &s.AvgSleepEfficiency, &s.AvgStress, &s.AvgRestingHR,
			&s.BodyWeightDelta, &s.BodyFatDelta,
			&s.GoalsCompleted, &s.GoalsTotal,
			&s.FitnessScore, &s.ProgressVelocity, &s.AdherenceScore,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}

	return snapshots, nil
}
