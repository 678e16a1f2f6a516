package room

import (
	"fmt"

	"github.com/pjazdzyk/sound-dampening-analyzer/octave"
)

// Source is anything with an outgoing octave spectrum, such as a
// signal.Item or a component.Component.
type Source interface {
	Outgoing() octave.Spectrum
}

// Terminal is a sound source discharging into the room.
type Terminal interface {
	Source
	Location() Location
	MountAngle() float64
	GrossDischargeArea() float64
}

// Placement describes where and how a terminal is mounted.
type Placement struct {
	Location   Location
	MountAngle float64 // degrees, [0, 90]
	GrossArea  float64 // m²
}

// Validate checks the location, angle and area.
func (p Placement) Validate() error {
	if !p.Location.valid() {
		return fmt.Errorf("%w: location %v", ErrInvalidParameter, p.Location)
	}

	err := checkAngle(p.MountAngle)
	if err != nil {
		return err
	}

	return checkNonNegative("gross discharge area", p.GrossArea)
}

// Adapter turns any [Source] into a [Terminal]. It holds a reference to
// the source, so later changes to the source show up in the room after
// [Model.Recalculate].
type Adapter struct {
	src       Source
	placement Placement
}

// NewAdapter wraps src with a validated placement.
func NewAdapter(src Source, p Placement) (*Adapter, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil terminal source", ErrInvalidParameter)
	}

	err := p.Validate()
	if err != nil {
		return nil, err
	}

	return &Adapter{src: src, placement: p}, nil
}

// Source returns the wrapped source.
func (a *Adapter) Source() Source { return a.src }

// Placement returns the mounting data.
func (a *Adapter) Placement() Placement { return a.placement }

// SetPlacement replaces the mounting data.
func (a *Adapter) SetPlacement(p Placement) error {
	err := p.Validate()
	if err != nil {
		return err
	}

	a.placement = p

	return nil
}

// Outgoing returns the source's current outgoing spectrum.
func (a *Adapter) Outgoing() octave.Spectrum { return a.src.Outgoing() }

// Location implements [Terminal].
func (a *Adapter) Location() Location { return a.placement.Location }

// MountAngle implements [Terminal].
func (a *Adapter) MountAngle() float64 { return a.placement.MountAngle }

// GrossDischargeArea implements [Terminal].
func (a *Adapter) GrossDischargeArea() float64 { return a.placement.GrossArea }

func (a *Adapter) String() string {
	name := "terminal"
	if n, ok := a.src.(interface{ Name() string }); ok {
		name = n.Name()
	}

	return fmt.Sprintf("%s (%v, %g°, %g m²): %s", name, a.placement.Location, a.placement.MountAngle, a.placement.GrossArea, a.Outgoing())
}
