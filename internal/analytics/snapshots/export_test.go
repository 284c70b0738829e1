package snapshots

import "time"

// Consistency exposes the consistency helper to package tests.
func (a *Aggregator) Consistency(workoutCount int, start, end time.Time) float64 {
	return a.consistency(workoutCount, start, end)
}
