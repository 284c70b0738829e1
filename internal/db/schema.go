package db

// InitSQL creates the analytics schema from scratch. Used by the dbsetup
// tool and by the dockertest suite; production migrations run the same
// statements split per release.
const InitSQL = `
CREATE TABLE public.workout_session
(
    id               SERIAL PRIMARY KEY,
    user_id          UUID             NOT NULL,
    workout_type     VARCHAR          NOT NULL,
    sets             INTEGER          NOT NULL DEFAULT 0,
    reps             INTEGER          NOT NULL DEFAULT 0,
    weight_kilos     DOUBLE PRECISION NOT NULL DEFAULT 0,
    duration_minutes INTEGER          NOT NULL DEFAULT 0,
    intensity        DOUBLE PRECISION NOT NULL DEFAULT 0,
    calories         DOUBLE PRECISION NOT NULL DEFAULT 0,
    distance_km      DOUBLE PRECISION NOT NULL DEFAULT 0,
    completed        BOOLEAN          NOT NULL DEFAULT TRUE,
    occurred_at      TIMESTAMPTZ      NOT NULL
);

ALTER TABLE public.workout_session OWNER TO postgres;
CREATE INDEX ix_workout_session_user_occurred ON public.workout_session (user_id, occurred_at);

CREATE TABLE public.sleep_log
(
    id             SERIAL PRIMARY KEY,
    user_id        UUID             NOT NULL,
    minutes_asleep DOUBLE PRECISION NOT NULL,
    efficiency     DOUBLE PRECISION NOT NULL,
    occurred_at    TIMESTAMPTZ      NOT NULL
);

ALTER TABLE public.sleep_log OWNER TO postgres;
CREATE INDEX ix_sleep_log_user_occurred ON public.sleep_log (user_id, occurred_at);

CREATE TABLE public.hrv_sample
(
    id                 SERIAL PRIMARY KEY,
    user_id            UUID             NOT NULL,
    recovery           DOUBLE PRECISION NOT NULL,
    stress             DOUBLE PRECISION NOT NULL,
    resting_heart_rate DOUBLE PRECISION NOT NULL,
    occurred_at        TIMESTAMPTZ      NOT NULL
);

ALTER TABLE public.hrv_sample OWNER TO postgres;
CREATE INDEX ix_hrv_sample_user_occurred ON public.hrv_sample (user_id, occurred_at);

CREATE TABLE public.body_measurement
(
    id          SERIAL PRIMARY KEY,
    user_id     UUID             NOT NULL,
    metric      VARCHAR          NOT NULL,
    value       DOUBLE PRECISION NOT NULL,
    occurred_at TIMESTAMPTZ      NOT NULL
);

ALTER TABLE public.body_measurement OWNER TO postgres;
CREATE INDEX ix_body_measurement_user_metric ON public.body_measurement (user_id, metric, occurred_at);

CREATE TABLE public.personal_record
(
    id          SERIAL PRIMARY KEY,
    user_id     UUID             NOT NULL,
    exercise    VARCHAR          NOT NULL,
    value_kilos DOUBLE PRECISION NOT NULL,
    occurred_at TIMESTAMPTZ      NOT NULL
);

ALTER TABLE public.personal_record OWNER TO postgres;
CREATE INDEX ix_personal_record_user_occurred ON public.personal_record (user_id, occurred_at);

CREATE TABLE public.goal_event
(
    id          SERIAL PRIMARY KEY,
    user_id     UUID             NOT NULL,
    goal_type   VARCHAR          NOT NULL,
    target      DOUBLE PRECISION NOT NULL DEFAULT 0,
    achieved    DOUBLE PRECISION NOT NULL DEFAULT 0,
    completed   BOOLEAN          NOT NULL DEFAULT FALSE,
    occurred_at TIMESTAMPTZ      NOT NULL
);

ALTER TABLE public.goal_event OWNER TO postgres;
CREATE INDEX ix_goal_event_user_occurred ON public.goal_event (user_id, occurred_at);

CREATE TABLE public.analytics_snapshot
(
    user_id              UUID             NOT NULL,
    period_type          VARCHAR          NOT NULL,
    period_start         TIMESTAMPTZ      NOT NULL,
    period_end           TIMESTAMPTZ      NOT NULL,
    workout_count        INTEGER          NOT NULL DEFAULT 0,
    workout_minutes      INTEGER          NOT NULL DEFAULT 0,
    total_volume         DOUBLE PRECISION NOT NULL DEFAULT 0,
    avg_intensity        DOUBLE PRECISION NOT NULL DEFAULT 0,
    calories             DOUBLE PRECISION NOT NULL DEFAULT 0,
    distance_km          DOUBLE PRECISION NOT NULL DEFAULT 0,
    personal_records     INTEGER          NOT NULL DEFAULT 0,
    consistency_score    DOUBLE PRECISION NOT NULL DEFAULT 0,
    avg_recovery         DOUBLE PRECISION NOT NULL DEFAULT 0,
    avg_sleep_hours      DOUBLE PRECISION NOT NULL DEFAULT 0,
    avg_sleep_efficiency DOUBLE PRECISION NOT NULL DEFAULT 0,
    avg_stress           DOUBLE PRECISION NOT NULL DEFAULT 0,
    avg_resting_hr       DOUBLE PRECISION NOT NULL DEFAULT 0,
    body_weight_delta    DOUBLE PRECISION NOT NULL DEFAULT 0,
    body_fat_delta       DOUBLE PRECISION NOT NULL DEFAULT 0,
    goals_completed      INTEGER          NOT NULL DEFAULT 0,
    goals_total          INTEGER          NOT NULL DEFAULT 0,
    fitness_score        DOUBLE PRECISION NOT NULL DEFAULT 0,
    progress_velocity    DOUBLE PRECISION NOT NULL DEFAULT 0,
    adherence_score      DOUBLE PRECISION NOT NULL DEFAULT 0,
    PRIMARY KEY (user_id, period_type, period_start)
);

ALTER TABLE public.analytics_snapshot OWNER TO postgres;

CREATE TABLE public.recovery_analysis
(
    user_id                 UUID        NOT NULL,
    day                     DATE        NOT NULL,
    score                   INTEGER     NOT NULL,
    trend                   VARCHAR     NOT NULL,
    readiness               VARCHAR     NOT NULL,
    factor_sleep            VARCHAR     NOT NULL,
    factor_hrv              VARCHAR     NOT NULL,
    factor_workload_balance VARCHAR     NOT NULL,
    factor_consistency      VARCHAR     NOT NULL,
    recommendations         TEXT[]      NOT NULL DEFAULT '{}',
    next_check              TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (user_id, day)
);

ALTER TABLE public.recovery_analysis OWNER TO postgres;

CREATE TABLE public.prediction
(
    user_id         UUID             NOT NULL,
    metric          VARCHAR          NOT NULL,
    target_date     TIMESTAMPTZ      NOT NULL,
    predicted_value DOUBLE PRECISION NOT NULL,
    confidence      DOUBLE PRECISION NOT NULL,
    model_version   VARCHAR          NOT NULL,
    sample_count    INTEGER          NOT NULL,
    horizon_periods INTEGER          NOT NULL,
    created_at      TIMESTAMPTZ      NOT NULL,
    realized_value  DOUBLE PRECISION,
    accuracy        DOUBLE PRECISION,
    PRIMARY KEY (user_id, metric, target_date)
);

ALTER TABLE public.prediction OWNER TO postgres;
`
