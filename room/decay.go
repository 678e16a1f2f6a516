package room

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pjazdzyk/sound-dampening-analyzer/octave"
)

// ErrNoDecay is returned when an impulse response does not decay far
// enough to estimate a reverberation time.
var ErrNoDecay = errors.New("room: insufficient decay for reverberation time")

// decayFloor is the level assigned to a fully decayed Schroeder curve.
const decayFloor = -200.0

// DecayTime estimates the reverberation time T60 in s from one octave
// band of a measured impulse response. The backward-integrated energy
// decay is fitted from -5 dB to -35 dB (T30) or, if the response is too
// short, to -25 dB (T20) and extrapolated to 60 dB of decay.
func DecayTime(ir []float64, sampleRate float64) (float64, error) {
	if len(ir) == 0 {
		return 0, fmt.Errorf("%w: empty impulse response", ErrInvalidParameter)
	}

	err := checkPositive("sample rate", sampleRate)
	if err != nil {
		return 0, err
	}

	curve := energyDecay(ir[peakIndex(ir):])

	for _, end := range []float64{-35, -25} {
		t, ok := fitDecay(curve, -5, end, sampleRate)
		if ok {
			return t, nil
		}
	}

	return 0, ErrNoDecay
}

// MeasuredReverberation builds a [Reverberation] absorber from one
// band-filtered impulse response per octave band. Bands without a
// response keep a zero time and contribute no absorption.
func MeasuredReverberation(volume float64, bands [octave.NumBands][]float64, sampleRate float64) (Reverberation, error) {
	var times octave.Spectrum

	for i, ir := range bands {
		if len(ir) == 0 {
			continue
		}

		t, err := DecayTime(ir, sampleRate)
		if err != nil {
			return Reverberation{}, fmt.Errorf("room: %g Hz band: %w", octave.CenterFrequencies[i], err)
		}

		times[i] = t
	}

	return NewReverberation(volume, times)
}

func peakIndex(ir []float64) int {
	abs := make([]float64, len(ir))
	for i, v := range ir {
		abs[i] = math.Abs(v)
	}

	return floats.MaxIdx(abs)
}

// energyDecay returns the Schroeder backward integral of ir² in dB
// relative to the total energy.
func energyDecay(ir []float64) []float64 {
	n := len(ir)
	curve := make([]float64, n)

	var sum float64
	for i := n - 1; i >= 0; i-- {
		sum += ir[i] * ir[i]
		curve[i] = sum
	}

	total := curve[0]
	for i, e := range curve {
		switch {
		case total <= 0:
			curve[i] = 0
		case e <= 0:
			curve[i] = decayFloor
		default:
			curve[i] = 10 * math.Log10(e/total)
		}
	}

	return curve
}

// fitDecay regresses the curve between the first samples at or below
// startDB and endDB and extrapolates the slope to -60 dB.
func fitDecay(curve []float64, startDB, endDB, sampleRate float64) (float64, bool) {
	start, end := -1, -1

	for i, v := range curve {
		if start < 0 && v <= startDB {
			start = i
		}

		if start >= 0 && v <= endDB {
			end = i
			break
		}
	}

	if start < 0 || end-start < 1 {
		return 0, false
	}

	y := curve[start : end+1]
	x := make([]float64, len(y))

	for i := range x {
		x[i] = float64(start+i) / sampleRate
	}

	_, slope := stat.LinearRegression(x, y, nil, false)
	if !(slope < 0) {
		return 0, false
	}

	return -60 / slope, true
}
