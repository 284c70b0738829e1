package recovery

import (
	"context"
	"fmt"

	"github.com/peakform/backend/internal/telemetry/tracing"

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

// UpsertDaily writes the analysis as the audit record for the current
// calendar day. One row per user per day; recomputation overwrites.
func (r *Repo) UpsertDaily(ctx context.Context, a Analysis) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.recovery.upsertdaily")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("recovery.score", a.Score))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO recovery_analysis
				(user_id, day, score, trend, readiness,
				 factor_sleep, factor_hrv, factor_workload_balance, factor_consistency,
				 recommendations, next_check)
			VALUES ($1, ($2 AT TIME ZONE 'UTC')::date, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (user_id, day) DO UPDATE SET
				score = EXCLUDED.score,
				trend = EXCLUDED.trend,
				readiness = EXCLUDED.readiness,
				factor_sleep = EXCLUDED.factor_sleep,
				factor_hrv = EXCLUDED.factor_hrv,
				factor_workload_balance = EXCLUDED.factor_workload_balance,
				factor_consistency = EXCLUDED.factor_consistency,
				recommendations = EXCLUDED.recommendations,
				next_check = EXCLUDED.next_check;`,
		a.UserID, a.AnalyzedAt, a.Score, a.Trend, a.Readiness,
		a.Factors.Sleep, a.Factors.HRV, a.Factors.WorkloadBalance, a.Factors.Consistency,
		a.Recommendations, a.NextCheck,
	)
	if err != nil {
		return fmt.Errorf("upsert recovery analysis: %w", err)
	}
	return nil
}
