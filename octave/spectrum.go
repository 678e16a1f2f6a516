package octave

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// NumBands is the number of octave bands in a [Spectrum].
const NumBands = 8

// ErrInvalidSpectrum is returned for spectra that are missing, have the
// wrong band count or contain negative or non-finite levels.
var ErrInvalidSpectrum = errors.New("octave: invalid spectrum")

// CenterFrequencies holds the nominal octave band centre frequencies in Hz.
var CenterFrequencies = [NumBands]float64{63, 125, 250, 500, 1000, 2000, 4000, 8000}

// Bandwidths holds the octave bandwidths Δf in Hz, matching CenterFrequencies.
var Bandwidths = [NumBands]float64{45, 88, 177, 354, 707, 1414, 2828, 5657}

// Spectrum is an eight-band octave spectrum, ordered low to high frequency.
// Being an array, it is copied on assignment.
type Spectrum [NumBands]float64

// Flat returns a spectrum with every band set to level.
func Flat(level float64) Spectrum {
	var s Spectrum
	for i := range s {
		s[i] = level
	}

	return s
}

// FromSlice converts externally supplied band values into a Spectrum.
// It fails for nil input, a band count other than [NumBands], and any
// negative or non-finite entry.
func FromSlice(values []float64) (Spectrum, error) {
	if values == nil {
		return Spectrum{}, fmt.Errorf("%w: nil band values", ErrInvalidSpectrum)
	}

	if len(values) != NumBands {
		return Spectrum{}, fmt.Errorf("%w: got %d bands, want %d", ErrInvalidSpectrum, len(values), NumBands)
	}

	var s Spectrum
	copy(s[:], values)

	err := s.Validate()
	if err != nil {
		return Spectrum{}, err
	}

	return s, nil
}

// BandIndex returns the index of the band centred at freqHz.
func BandIndex(freqHz float64) (int, bool) {
	for i, fc := range CenterFrequencies {
		if fc == freqHz {
			return i, true
		}
	}

	return -1, false
}

// Validate reports whether every band holds a finite, non-negative value.
func (s Spectrum) Validate() error {
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: band %d (%g Hz) is not finite: %v", ErrInvalidSpectrum, i, CenterFrequencies[i], v)
		}

		if v < 0 {
			return fmt.Errorf("%w: band %d (%g Hz) is negative: %g", ErrInvalidSpectrum, i, CenterFrequencies[i], v)
		}
	}

	return nil
}

// Slice returns the band values as a newly allocated slice.
func (s Spectrum) Slice() []float64 {
	out := make([]float64, NumBands)
	copy(out, s[:])

	return out
}

// Clamp limits every band to the inclusive range [lo, hi].
func (s Spectrum) Clamp(lo, hi float64) Spectrum {
	for i, v := range s {
		s[i] = math.Min(math.Max(v, lo), hi)
	}

	return s
}

// Add returns the band-wise arithmetic sum of s and other. Use it for
// non-decibel band data only; decibel levels combine with [Spectrum.LogAdd].
func (s Spectrum) Add(other Spectrum) Spectrum {
	for i := range s {
		s[i] += other[i]
	}

	return s
}

// LogAdd returns the band-wise energy sum of s and other.
func (s Spectrum) LogAdd(other Spectrum) Spectrum {
	for i := range s {
		s[i] = LogAdd(s[i], other[i])
	}

	return s
}

// Total returns the single-number energy sum over all bands.
func (s Spectrum) Total() float64 {
	return LogSum(s[:]...)
}

// IsZero reports whether every band is exactly 0.
func (s Spectrum) IsZero() bool {
	return s == Spectrum{}
}

// String formats the spectrum with one decimal per band.
func (s Spectrum) String() string {
	return s.Format(1)
}

// Format renders the bands as "[b0  b1  ...]" with the given precision.
func (s Spectrum) Format(precision int) string {
	if precision < 0 {
		precision = 0
	}

	parts := make([]string, NumBands)
	for i, v := range s {
		parts[i] = fmt.Sprintf("%.*f", precision, v)
	}

	return "[" + strings.Join(parts, "  ") + "]"
}
