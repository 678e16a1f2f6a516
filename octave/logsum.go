package octave

import "math"

// LogAdd returns the energy sum of two decibel levels.
//
// A zero operand is treated as "no signal" and passes the other level
// through unchanged, so LogAdd(0, 0) is exactly 0.
func LogAdd(a, b float64) float64 {
	switch {
	case a == 0 && b == 0:
		return 0
	case b == 0:
		return a
	case a == 0:
		return b
	}

	return 10 * math.Log10(math.Pow(10, 0.1*a)+math.Pow(10, 0.1*b))
}

// LogSum folds values with [LogAdd], starting from 0.
// It returns 0 for no values or when every value is 0.
func LogSum(values ...float64) float64 {
	var sum float64
	for _, v := range values {
		sum = LogAdd(sum, v)
	}

	return sum
}

// LogSumSpectra returns the band-wise energy sum of all spectra.
func LogSumSpectra(spectra ...Spectrum) Spectrum {
	var out Spectrum
	for _, s := range spectra {
		out = out.LogAdd(s)
	}

	return out
}

// PowerToLevel converts a linear power ratio to dB (10*log10 convention).
// Non-positive power maps to the 0 dB "no signal" level.
func PowerToLevel(power float64) float64 {
	if power <= 0 {
		return 0
	}

	return 10 * math.Log10(power)
}

// LevelToPower converts a dB level to a linear power ratio.
// The 0 dB "no signal" level maps to zero power.
func LevelToPower(level float64) float64 {
	if level == 0 {
		return 0
	}

	return math.Pow(10, 0.1*level)
}
