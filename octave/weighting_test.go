package octave

import (
	"math"
	"testing"
)

// IEC 61672 Table 3 values at the octave centres.
var octaveWeightingRef = []struct {
	freq float64
	a    float64
	c    float64
}{
	{63, -26.2, -0.8},
	{125, -16.1, -0.2},
	{250, -8.6, 0.0},
	{500, -3.2, 0.0},
	{1000, 0.0, 0.0},
	{2000, 1.2, -0.2},
	{4000, 1.0, -0.8},
	{8000, -1.1, -3.0},
}

func TestCorrectionMatchesIEC61672(t *testing.T) {
	for _, ref := range octaveWeightingRef {
		if got := Correction(WeightingA, ref.freq); math.Abs(got-ref.a) > 0.1 {
			t.Errorf("A(%v Hz) = %.2f dB, want %.1f dB", ref.freq, got, ref.a)
		}

		if got := Correction(WeightingC, ref.freq); math.Abs(got-ref.c) > 0.1 {
			t.Errorf("C(%v Hz) = %.2f dB, want %.1f dB", ref.freq, got, ref.c)
		}
	}
}

func TestCorrectionZ(t *testing.T) {
	for _, fc := range CenterFrequencies {
		if got := Correction(WeightingZ, fc); got != 0 {
			t.Fatalf("Z(%v Hz) = %v, want 0", fc, got)
		}
	}

	if got := Correction(WeightingA, 0); got != 0 {
		t.Fatalf("A(0 Hz) = %v, want 0", got)
	}
}

func TestWeightedKeepsSilentBands(t *testing.T) {
	s := Spectrum{0, 20, 0, 60, 60, 60, 60, 0}

	got := s.Weighted(WeightingA)
	if got[0] != 0 || got[2] != 0 || got[7] != 0 {
		t.Fatalf("silent bands changed: %v", got)
	}

	if got[1] != 20+Corrections(WeightingA)[1] {
		t.Fatalf("band 1 = %v, want %v", got[1], 20+Corrections(WeightingA)[1])
	}

	low := Spectrum{10}.Weighted(WeightingA)
	if low[0] != 0 {
		t.Fatalf("weighted 10 dB at 63 Hz = %v, want floor 0", low[0])
	}
}

func TestWeightedTotal(t *testing.T) {
	// A single 1 kHz tone is unaffected by A-weighting.
	s := Spectrum{0, 0, 0, 0, 70, 0, 0, 0}
	if got := s.WeightedTotal(WeightingA); math.Abs(got-70) > 1e-9 {
		t.Fatalf("WeightedTotal(A) = %v, want 70", got)
	}

	if got := (Spectrum{}).WeightedTotal(WeightingA); got != 0 {
		t.Fatalf("WeightedTotal(A) of zero spectrum = %v, want 0", got)
	}

	flat := Flat(60)
	if got, want := flat.WeightedTotal(WeightingZ), flat.Total(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("WeightedTotal(Z) = %v, want %v", got, want)
	}

	if flat.WeightedTotal(WeightingA) >= flat.Total() {
		t.Fatal("A-weighting a flat spectrum should lower its total")
	}
}

func TestWeightingString(t *testing.T) {
	if WeightingA.String() != "A" || WeightingC.String() != "C" || WeightingZ.String() != "Z" {
		t.Fatal("unexpected weighting names")
	}

	if Weighting(42).String() != "Unknown" {
		t.Fatal("unexpected name for unknown weighting")
	}
}
