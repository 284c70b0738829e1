package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/peakform/backend/internal/analytics/adjustments"
	"github.com/peakform/backend/internal/analytics/events"
	"github.com/peakform/backend/internal/analytics/recovery"
	"github.com/peakform/backend/internal/analytics/snapshots"
	"github.com/peakform/backend/internal/analytics/trends"
)

func (s *IntegrationTestSuite) postEvent(ctx context.Context, path string, payload any) *http.Response {
	reqJson, err := json.Marshal(payload)
	require.NoError(s.T(), err)

	req, err := http.NewRequestWithContext(ctx, "POST", serverEndpoint+path, bytes.NewReader(reqJson))
	require.NoError(s.T(), err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-PEAKFORM-TOKEN", testAppSecret)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(s.T(), err)
	return resp
}

func (s *IntegrationTestSuite) get(ctx context.Context, path string) *http.Response {
	req, err := http.NewRequestWithContext(ctx, "GET", serverEndpoint+path, nil)
	require.NoError(s.T(), err)
	req.Header.Set("X-PEAKFORM-TOKEN", testAppSecret)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(s.T(), err)
	return resp
}

func (s *IntegrationTestSuite) decodeBody(resp *http.Response, dst any) {
	defer resp.Body.Close()
	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	require.NoError(s.T(), json.Unmarshal(respBytes, dst))
}

func (s *IntegrationTestSuite) TestHealthAndVersion() {
	ctx := context.Background()

	resp, err := http.Get(serverEndpoint + "/health")
	require.NoError(s.T(), err)
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "ok", string(body))

	versionResp := s.get(ctx, "/version")
	defer versionResp.Body.Close()
	require.Equal(s.T(), http.StatusOK, versionResp.StatusCode)
	versionBytes, err := io.ReadAll(versionResp.Body)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "test-version-info", string(versionBytes))
}

func (s *IntegrationTestSuite) TestAuthRequired() {
	userID := uuid.New()
	resp, err := http.Get(fmt.Sprintf("%s/analytics/users/%s/snapshot/weekly", serverEndpoint, userID))
	require.NoError(s.T(), err)
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusUnauthorized, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestIngestAndSnapshot() {
	ctx := context.Background()
	userID := uuid.New()
	now := time.Now().UTC()

	for i := 0; i < 2; i++ {
		resp := s.postEvent(ctx, "/analytics/events/workout", events.WorkoutSession{
			UserID:          userID,
			WorkoutType:     "strength",
			Sets:            3,
			Reps:            10,
			WeightKilos:     60,
			DurationMinutes: 45,
			Intensity:       7,
			Completed:       true,
			OccurredAt:      now.Add(-time.Duration(i) * time.Hour),
		})
		var added events.AddedEventResponse
		s.decodeBody(resp, &added)
		require.Equal(s.T(), http.StatusCreated, resp.StatusCode)
		require.Greater(s.T(), added.AddedID, 0)
	}

	sleepResp := s.postEvent(ctx, "/analytics/events/sleep", events.SleepLog{
		UserID:        userID,
		MinutesAsleep: 450,
		Efficiency:    88,
		OccurredAt:    now.Add(-8 * time.Hour),
	})
	sleepResp.Body.Close()
	require.Equal(s.T(), http.StatusCreated, sleepResp.StatusCode)

	hrvResp := s.postEvent(ctx, "/analytics/events/hrv", events.HRVSample{
		UserID:           userID,
		Recovery:         72,
		Stress:           30,
		RestingHeartRate: 52,
		OccurredAt:       now.Add(-9 * time.Hour),
	})
	hrvResp.Body.Close()
	require.Equal(s.T(), http.StatusCreated, hrvResp.StatusCode)

	goalResp := s.postEvent(ctx, "/analytics/events/goal", events.GoalEvent{
		UserID:     userID,
		GoalType:   "weekly_workouts",
		Target:     3,
		Achieved:   2,
		Completed:  false,
		OccurredAt: now,
	})
	goalResp.Body.Close()
	require.Equal(s.T(), http.StatusCreated, goalResp.StatusCode)

	snapshotResp := s.get(ctx, fmt.Sprintf("/analytics/users/%s/snapshot/weekly", userID))
	require.Equal(s.T(), http.StatusOK, snapshotResp.StatusCode)

	var snapshot snapshots.Snapshot
	s.decodeBody(snapshotResp, &snapshot)
	require.Equal(s.T(), userID, snapshot.UserID)
	require.Equal(s.T(), 2, snapshot.WorkoutCount)
	require.Equal(s.T(), 90, snapshot.WorkoutMinutes)
	require.InDelta(s.T(), 3600, snapshot.TotalVolume, 0.001)
	require.Greater(s.T(), snapshot.FitnessScore, 0.0)
	require.Equal(s.T(), 1, snapshot.GoalsTotal)
}

func (s *IntegrationTestSuite) TestRecoveryAndAdjustment() {
	ctx := context.Background()
	userID := uuid.New()
	now := time.Now().UTC()

	for i := 0; i < 3; i++ {
		resp := s.postEvent(ctx, "/analytics/events/hrv", events.HRVSample{
			UserID:     userID,
			Recovery:   float64(60 + 5*i),
			Stress:     35,
			OccurredAt: now.AddDate(0, 0, -i),
		})
		resp.Body.Close()
		require.Equal(s.T(), http.StatusCreated, resp.StatusCode)
	}
	sleepResp := s.postEvent(ctx, "/analytics/events/sleep", events.SleepLog{
		UserID:        userID,
		MinutesAsleep: 460,
		Efficiency:    90,
		OccurredAt:    now.Add(-10 * time.Hour),
	})
	sleepResp.Body.Close()
	require.Equal(s.T(), http.StatusCreated, sleepResp.StatusCode)

	recoveryResp := s.get(ctx, fmt.Sprintf("/analytics/users/%s/recovery", userID))
	require.Equal(s.T(), http.StatusOK, recoveryResp.StatusCode)

	var analysis recovery.Analysis
	s.decodeBody(recoveryResp, &analysis)
	require.GreaterOrEqual(s.T(), analysis.Score, 0)
	require.LessOrEqual(s.T(), analysis.Score, 100)
	require.NotEmpty(s.T(), analysis.Readiness)

	adjustmentResp := s.get(ctx, fmt.Sprintf("/analytics/users/%s/adjustment", userID))
	require.Equal(s.T(), http.StatusOK, adjustmentResp.StatusCode)

	var adjustment adjustments.Adjustment
	s.decodeBody(adjustmentResp, &adjustment)
	require.Greater(s.T(), adjustment.IntensityMultiplier, 0.0)
	require.Greater(s.T(), adjustment.Confidence, 0.0)
}

func (s *IntegrationTestSuite) TestRecoveryInsufficientData() {
	ctx := context.Background()

	resp := s.get(ctx, fmt.Sprintf("/analytics/users/%s/recovery", uuid.New()))
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusUnprocessableEntity, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestSleepTrend() {
	ctx := context.Background()
	userID := uuid.New()
	now := time.Now().UTC()

	for i, minutes := range []float64{420, 435, 450, 465} {
		resp := s.postEvent(ctx, "/analytics/events/sleep", events.SleepLog{
			UserID:        userID,
			MinutesAsleep: minutes,
			Efficiency:    85,
			OccurredAt:    now.AddDate(0, 0, i-4),
		})
		resp.Body.Close()
		require.Equal(s.T(), http.StatusCreated, resp.StatusCode)
	}

	trendResp := s.get(ctx, fmt.Sprintf("/analytics/users/%s/trends/sleep_hours?days=30", userID))
	require.Equal(s.T(), http.StatusOK, trendResp.StatusCode)

	var result trends.Result
	s.decodeBody(trendResp, &result)
	require.Equal(s.T(), 4, result.SampleCount)
	require.Greater(s.T(), result.Slope, 0.0)
}

func (s *IntegrationTestSuite) TestPredictionInsufficientData() {
	ctx := context.Background()

	// a fresh user has no stored weekly snapshots to project from
	resp := s.get(ctx, fmt.Sprintf("/analytics/users/%s/predictions/workout_volume", uuid.New()))
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusUnprocessableEntity, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestRecordOutcomeNotFound() {
	ctx := context.Background()

	resp := s.postEvent(
		ctx,
		fmt.Sprintf("/analytics/users/%s/predictions/workout_volume/outcome", uuid.New()),
		map[string]any{
			"targetDate":    time.Now().UTC().AddDate(0, 0, 7),
			"realizedValue": 2500,
		},
	)
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusNotFound, resp.StatusCode)
}
