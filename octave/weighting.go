package octave

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// IEC 61672 analog prototype pole frequencies (Hz).
const (
	f1 = 20.598997 // double pole for A and C
	f2 = 107.65265 // single pole for A
	f4 = 737.86223 // single pole for A
	f5 = 12194.217 // double pole for A and C
)

// Weighting identifies a frequency weighting curve.
type Weighting int

const (
	// WeightingA is the A-weighting curve per IEC 61672, the usual
	// single-number rating for occupant noise exposure.
	WeightingA Weighting = iota

	// WeightingC is the C-weighting curve per IEC 61672.
	WeightingC

	// WeightingZ applies no weighting.
	WeightingZ
)

// String returns a human-readable name for the weighting.
func (w Weighting) String() string {
	switch w {
	case WeightingA:
		return "A"
	case WeightingC:
		return "C"
	case WeightingZ:
		return "Z"
	default:
		return "Unknown"
	}
}

var (
	aCorrections = corrections(WeightingA)
	cCorrections = corrections(WeightingC)
)

// Correction returns the weighting correction in dB at freqHz, normalised
// to 0 dB at 1 kHz. Unknown weightings and non-positive frequencies yield 0.
func Correction(w Weighting, freqHz float64) float64 {
	if freqHz <= 0 {
		return 0
	}

	switch w {
	case WeightingA:
		return 20 * math.Log10(responseA(freqHz)/responseA(1000))
	case WeightingC:
		return 20 * math.Log10(responseC(freqHz)/responseC(1000))
	default:
		return 0
	}
}

// Corrections returns the weighting corrections at the octave centre frequencies.
func Corrections(w Weighting) Spectrum {
	switch w {
	case WeightingA:
		return aCorrections
	case WeightingC:
		return cCorrections
	default:
		return Spectrum{}
	}
}

// Weighted applies the weighting band by band. Bands at the 0 dB "no signal"
// level stay at 0 and weighted results are floored at 0.
func (s Spectrum) Weighted(w Weighting) Spectrum {
	corr := Corrections(w)
	for i, v := range s {
		if v == 0 {
			continue
		}

		s[i] = math.Max(v+corr[i], 0)
	}

	return s
}

// WeightedTotal returns the weighted single-number level, e.g. dB(A).
// The summation runs in the linear power domain, so bands weighted below
// 0 dB still contribute their true energy.
func (s Spectrum) WeightedTotal(w Weighting) float64 {
	corr := Corrections(w)

	power := make([]float64, NumBands)
	gain := make([]float64, NumBands)
	for i := range s {
		power[i] = LevelToPower(s[i])
		gain[i] = math.Pow(10, 0.1*corr[i])
	}

	weighted := make([]float64, NumBands)
	vecmath.MulBlock(weighted, power, gain)

	return math.Max(PowerToLevel(floats.Sum(weighted)), 0)
}

func corrections(w Weighting) Spectrum {
	var s Spectrum
	for i, fc := range CenterFrequencies {
		s[i] = Correction(w, fc)
	}

	return s
}

// responseA is the unnormalised A-weighting magnitude
//
//	R_A(f) = f5² f⁴ / ((f²+f1²) √((f²+f2²)(f²+f4²)) (f²+f5²))
func responseA(f float64) float64 {
	ff := f * f

	return f5 * f5 * ff * ff /
		((ff + f1*f1) * math.Sqrt((ff+f2*f2)*(ff+f4*f4)) * (ff + f5*f5))
}

// responseC is the unnormalised C-weighting magnitude
//
//	R_C(f) = f5² f² / ((f²+f1²)(f²+f5²))
func responseC(f float64) float64 {
	ff := f * f

	return f5 * f5 * ff / ((ff + f1*f1) * (ff + f5*f5))
}
