package trends

import "math"

// Fit is an ordinary least-squares line fitted over sample index.
// Degenerate inputs (constant x, zero variance in y, too few points)
// yield zero slope and zero R2 instead of NaN.
type Fit struct {
	Slope     float64
	Intercept float64
	R2        float64
	N         int
	// Degenerate marks a series the line says nothing about:
	// under 2 points, constant x, or zero variance in y.
	Degenerate bool
}

// FitLinear fits y = intercept + slope*x with x = 0..n-1.
func FitLinear(values []float64) Fit {
	n := len(values)
	if n < 2 {
		return Fit{N: n, Degenerate: true}
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	nf := float64(n)
	denominator := nf*sumXX - sumX*sumX
	if denominator == 0 {
		return Fit{N: n, Degenerate: true}
	}

	slope := (nf*sumXY - sumX*sumY) / denominator
	intercept := (sumY - slope*sumX) / nf

	fit := Fit{
		Slope:     slope,
		Intercept: intercept,
		N:         n,
	}
	fit.R2, fit.Degenerate = rSquared(values, slope, intercept)
	return fit
}

// rSquared is 1 - SSres/SStot clamped to [0,1]. Under 3 points there is
// no meaningful fit quality, R2 is 0. Zero variance in y marks the
// series degenerate.
func rSquared(values []float64, slope, intercept float64) (r2 float64, degenerate bool) {
	n := len(values)

	var mean float64
	for _, y := range values {
		mean += y
	}
	mean /= float64(n)

	var ssTot, ssRes float64
	for i, y := range values {
		predicted := intercept + slope*float64(i)
		ssTot += (y - mean) * (y - mean)
		ssRes += (y - predicted) * (y - predicted)
	}

	if ssTot == 0 {
		return 0, true
	}
	if n < 3 {
		return 0, false
	}

	r2 = 1 - ssRes/ssTot
	return math.Max(0, math.Min(1, r2)), false
}

// ConfidenceScore rates how trustworthy the fit is, 0-100. Fit quality
// carries most of the weight, sample count tops it up. Degenerate fits
// score 0.
func ConfidenceScore(fit Fit) float64 {
	if fit.Degenerate || fit.N < 2 {
		return 0
	}
	confidence := fit.R2*70 + math.Min(30, float64(fit.N)*3)
	return math.Round(math.Max(0, math.Min(100, confidence)))
}

// PercentChange is (latest - earliest) / |earliest| * 100, 0 when the
// earliest value is 0.
func PercentChange(earliest, latest float64) float64 {
	if earliest == 0 {
		return 0
	}
	return (latest - earliest) / math.Abs(earliest) * 100
}
