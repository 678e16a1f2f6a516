package testutil

import (
	"fmt"
	"math"
	"testing"
)

// octave band labels used in failure messages.
var bandLabels = [8]string{"63 Hz", "125 Hz", "250 Hz", "500 Hz", "1 kHz", "2 kHz", "4 kHz", "8 kHz"}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireBandsNearlyEqual fails t if any octave band of got and want
// differs by more than eps. Spectrum types convert implicitly.
func RequireBandsNearlyEqual(t *testing.T, got, want [8]float64, eps float64) {
	t.Helper()
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("band %s: got %v, want %v (diff %v > eps %v)", bandLabels[i], got[i], want[i], diff, eps)
		}
	}
}

// RequireBandsEqual fails t unless got and want are bit-for-bit identical.
func RequireBandsEqual(t *testing.T, got, want [8]float64) {
	t.Helper()
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("band %s: got %v, want exactly %v", bandLabels[i], got[i], want[i])
		}
	}
}

// RequireNonNegative fails t if any band is negative or non-finite.
func RequireNonNegative(t *testing.T, bands [8]float64) {
	t.Helper()
	RequireFinite(t, bands[:])
	for i, v := range bands {
		if v < 0 {
			t.Fatalf("band %s: negative level %v", bandLabels[i], v)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
