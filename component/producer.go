package component

import (
	"errors"
	"fmt"

	"github.com/pjazdzyk/sound-dampening-analyzer/catalog"
	"github.com/pjazdzyk/sound-dampening-analyzer/hydraulics"
	"github.com/pjazdzyk/sound-dampening-analyzer/octave"
)

// ErrUnsupportedState is returned when a producer needs state the
// component's hydraulics do not carry.
var ErrUnsupportedState = errors.New("component: unsupported hydraulic state")

// BendAttenuationAngle is the bend angle in degrees above which the
// natural bend attenuation tables apply.
const BendAttenuationAngle = 60.0

// GenerationFunc produces the self-generated noise spectrum of a
// component from its hydraulic state.
type GenerationFunc func(state hydraulics.State) (octave.Spectrum, error)

// AttenuationFunc produces the attenuation spectrum of a component from
// its hydraulic state and bound material.
type AttenuationFunc func(state hydraulics.State, material catalog.Material) (octave.Spectrum, error)

// Fixed returns a producer that always yields s.
func Fixed(s octave.Spectrum) GenerationFunc {
	return func(hydraulics.State) (octave.Spectrum, error) {
		return s, nil
	}
}

// FixedAttenuation returns a producer that always yields s.
func FixedAttenuation(s octave.Spectrum) AttenuationFunc {
	return func(hydraulics.State, catalog.Material) (octave.Spectrum, error) {
		return s, nil
	}
}

// Silent generates no noise.
func Silent(hydraulics.State) (octave.Spectrum, error) {
	return octave.Spectrum{}, nil
}

// NoAttenuation attenuates nothing.
func NoAttenuation(hydraulics.State, catalog.Material) (octave.Spectrum, error) {
	return octave.Spectrum{}, nil
}

// MaterialAttenuation yields the coefficients of the bound material,
// for materials whose table is already an attenuation in dB.
func MaterialAttenuation(_ hydraulics.State, material catalog.Material) (octave.Spectrum, error) {
	return material.Coefficients, nil
}

type angled interface {
	Angle() float64
}

// BendNaturalAttenuation returns a producer for the natural attenuation
// of bends and branches. Above [BendAttenuationAngle] it looks up the
// table key in repo, bracketed by the upstream primary dimension; at or
// below it the attenuation is zero.
func BendNaturalAttenuation(repo *catalog.Repository, key string) AttenuationFunc {
	return func(state hydraulics.State, _ catalog.Material) (octave.Spectrum, error) {
		a, ok := state.(angled)
		if !ok {
			return octave.Spectrum{}, fmt.Errorf("%w: %s has no angle", ErrUnsupportedState, state.Kind())
		}

		if a.Angle() <= BendAttenuationAngle {
			return octave.Spectrum{}, nil
		}

		m, err := repo.LookupBySize(key, state.Upstream().Dim1)
		if err != nil {
			return octave.Spectrum{}, err
		}

		return m.Coefficients, nil
	}
}
