package predictions

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/peakform/backend/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrPredictionNotFound = errors.New("prediction not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert stores the prediction, overwriting a previous row for the same
// (user, metric, target date). Realized value and accuracy survive the
// overwrite only through RecordOutcome, a fresh projection resets them.
func (r *Repo) Upsert(ctx context.Context, p Prediction) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.predictions.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("metric", p.Metric))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO prediction
				(user_id, metric, target_date, predicted_value, confidence,
				 model_version, sample_count, horizon_periods, created_at,
				 realized_value, accuracy)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULL, NULL)
			ON CONFLICT (user_id, metric, target_date) DO UPDATE SET
				predicted_value = EXCLUDED.predicted_value,
				confidence = EXCLUDED.confidence,
				model_version = EXCLUDED.model_version,
				sample_count = EXCLUDED.sample_count,
				horizon_periods = EXCLUDED.horizon_periods,
				created_at = EXCLUDED.created_at,
				realized_value = NULL,
				accuracy = NULL;`,
		p.UserID, p.Metric, p.TargetDate, p.PredictedValue, p.Confidence,
		p.ModelVersion, p.SampleCount, p.HorizonPeriods, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert prediction: %w", err)
	}
	return nil
}

// RecordOutcome fills in the realized value once the horizon has passed
// and scores the prediction against it.
func (r *Repo) RecordOutcome(
	ctx context.Context,
	userID uuid.UUID,
	metric string,
	targetDate time.Time,
	realizedValue float64,
) (_ *Prediction, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.predictions.recordoutcome")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("metric", metric))

	rows, err := r.db.Query(
		ctx,
		`SELECT user_id, metric, target_date, predicted_value, confidence,
				model_version, sample_count, horizon_periods, created_at,
				realized_value, accuracy
			FROM prediction
			WHERE user_id = $1 AND metric = $2 AND target_date = $3;`,
		userID, metric, targetDate,
	)
	if err != nil {
		return nil, fmt.Errorf("query prediction: %w", err)
	}

	predictions, err := rows2predictions(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2predictions: %w", err)
	}
	if len(predictions) == 0 {
		return nil, ErrPredictionNotFound
	}

	p := predictions[0]
	accuracy := outcomeAccuracy(p.PredictedValue, realizedValue)
	p.RealizedValue = &realizedValue
	p.Accuracy = &accuracy

	_, err = r.db.Exec(
		ctx,
		`UPDATE prediction
			SET realized_value = $4, accuracy = $5
			WHERE user_id = $1 AND metric = $2 AND target_date = $3;`,
		userID, metric, targetDate, realizedValue, accuracy,
	)
	if err != nil {
		return nil, fmt.Errorf("update prediction outcome: %w", err)
	}

	return &p, nil
}

// outcomeAccuracy is 100 minus the absolute percent error, floored at 0.
// A zero predicted value scores 0, there is no meaningful error base.
func outcomeAccuracy(predicted, realized float64) float64 {
	if predicted == 0 {
		return 0
	}
	errPct := math.Abs(realized-predicted) / math.Abs(predicted) * 100
	return math.Round(math.Max(0, 100-errPct)*100) / 100
}

func rows2predictions(rows pgx.Rows) ([]Prediction, error) {
	defer rows.Close()

	var predictions []Prediction
	for rows.Next() {
		var p Prediction
		if err := rows.Scan(
			&p.UserID, &p.Metric, &p.TargetDate, &p.PredictedValue, &p.Confidence,
			&p.ModelVersion, &p.SampleCount, &p.HorizonPeriods, &p.CreatedAt,
			&p.RealizedValue, &p.Accuracy,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		predictions = append(predictions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}

	return predictions, nil
}
