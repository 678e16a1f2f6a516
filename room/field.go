package room

import (
	"fmt"
	"math"

	"github.com/pjazdzyk/sound-dampening-analyzer/octave"
)

// DefaultMinAbsorption is the absorption area in m² below which terminal
// contributions are left at their sound power level.
const DefaultMinAbsorption = 1.0

// TerminalPressure returns the pressure level a terminal produces at
// distance d in m, for one octave band centred at freq Hz in a room of
// absorption area A in m².
//
// At d == 0, when A is below [DefaultMinAbsorption], or when the formula
// would exceed the terminal's power level, the power level is returned.
func TerminalPressure(t Terminal, absorption, distance, freq float64) (float64, error) {
	return terminalPressure(t, absorption, distance, freq, DefaultMinAbsorption)
}

func terminalPressure(t Terminal, absorption, distance, freq, minAbsorption float64) (float64, error) {
	if t == nil {
		return 0, fmt.Errorf("%w: nil terminal", ErrInvalidParameter)
	}

	band, ok := octave.BandIndex(freq)
	if !ok {
		return 0, fmt.Errorf("%w: %g Hz is not an octave band centre", ErrInvalidParameter, freq)
	}

	err := checkNonNegative("absorption area", absorption)
	if err != nil {
		return 0, err
	}

	err = checkNonNegative("distance", distance)
	if err != nil {
		return 0, err
	}

	q, err := DirectivityIndex(t.Location(), t.MountAngle(), t.GrossDischargeArea(), freq)
	if err != nil {
		return 0, err
	}

	lw := t.Outgoing()[band]

	if distance == 0 || absorption < minAbsorption {
		return lw, nil
	}

	lp := lw + 10*math.Log10(q/(4*math.Pi*distance*distance)+4/absorption)
	if lp > lw {
		return lw, nil
	}

	return lp, nil
}

// DiffuseFieldPressure converts a sound power level into the reverberant
// pressure level lw + 10*log10(4/A). A zero power stays 0 and a zero
// absorption returns lw.
func DiffuseFieldPressure(lw, absorption float64) (float64, error) {
	err := checkNonNegative("sound power level", lw)
	if err != nil {
		return 0, err
	}

	err = checkNonNegative("absorption area", absorption)
	if err != nil {
		return 0, err
	}

	switch {
	case lw == 0:
		return 0, nil
	case absorption == 0:
		return lw, nil
	}

	return lw + 10*math.Log10(4/absorption), nil
}

// PressureSpectrum sums, per band, the pressure of every terminal at the
// given distance, the diffuse field of the ambient power and the ambient
// pressure. Without terminals it returns the zero spectrum.
func PressureSpectrum(terminals []Terminal, absorption, ambientPower, ambientPressure octave.Spectrum, distance float64) (octave.Spectrum, error) {
	return pressureSpectrum(terminals, absorption, ambientPower, ambientPressure, distance, DefaultMinAbsorption)
}

func pressureSpectrum(terminals []Terminal, absorption, ambientPower, ambientPressure octave.Spectrum, distance, minAbsorption float64) (octave.Spectrum, error) {
	var out octave.Spectrum
	if len(terminals) == 0 {
		return out, nil
	}

	for i, freq := range octave.CenterFrequencies {
		var direct float64

		for j, t := range terminals {
			lp, err := terminalPressure(t, absorption[i], distance, freq, minAbsorption)
			if err != nil {
				return octave.Spectrum{}, fmt.Errorf("room: terminal %d: %w", j, err)
			}

			direct = octave.LogAdd(direct, lp)
		}

		diffuse, err := DiffuseFieldPressure(ambientPower[i], absorption[i])
		if err != nil {
			return octave.Spectrum{}, fmt.Errorf("room: ambient power at %g Hz: %w", freq, err)
		}

		out[i] = octave.LogSum(direct, ambientPressure[i], diffuse)
	}

	return out, nil
}

// ReverberantRadius returns the distance in m at which the direct and
// reverberant fields are equal, 0.2*sqrt(A).
func ReverberantRadius(absorption float64) (float64, error) {
	err := checkNonNegative("absorption area", absorption)
	if err != nil {
		return 0, err
	}

	return 0.2 * math.Sqrt(absorption), nil
}

// ReverberantRadiusFromTime returns the reverberant radius from room
// volume V in m³ and reverberation time T in s, 0.08*sqrt(V/T).
func ReverberantRadiusFromTime(volume, time float64) (float64, error) {
	err := checkNonNegative("room volume", volume)
	if err != nil {
		return 0, err
	}

	err = checkPositive("reverberation time", time)
	if err != nil {
		return 0, err
	}

	return 0.08 * math.Sqrt(volume/time), nil
}

// ReverberantFieldPressure returns the far-field pressure level of a
// source of power lw in a room of volume V and reverberation time T,
// lw - 10*log10(V) + 10*log10(T) + 14.
func ReverberantFieldPressure(lw, volume, time float64) (float64, error) {
	err := checkNonNegative("sound power level", lw)
	if err != nil {
		return 0, err
	}

	err = checkPositive("room volume", volume)
	if err != nil {
		return 0, err
	}

	err = checkPositive("reverberation time", time)
	if err != nil {
		return 0, err
	}

	return lw - 10*math.Log10(volume) + 10*math.Log10(time) + 14, nil
}
