package room

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/pjazdzyk/sound-dampening-analyzer/catalog"
	"github.com/pjazdzyk/sound-dampening-analyzer/octave"
)

// SpeedOfSound is the speed of sound in air in m/s used by the
// reverberation formulas.
const SpeedOfSound = 340.0

var (
	// ErrInvalidParameter is returned for negative, non-finite or out of
	// range physical inputs.
	ErrInvalidParameter = errors.New("room: invalid parameter")

	// ErrUnknownPart is returned when an item has no part of a given name.
	ErrUnknownPart = errors.New("room: unknown part")
)

// Absorber is anything that contributes equivalent absorption area in m²
// per octave band.
type Absorber interface {
	Absorption() octave.Spectrum
}

// EquivalentAbsorptionArea returns coef*area in m².
func EquivalentAbsorptionArea(coef, area float64) (float64, error) {
	err := checkNonNegative("absorption coefficient", coef)
	if err != nil {
		return 0, err
	}

	err = checkNonNegative("area", area)
	if err != nil {
		return 0, err
	}

	return coef * area, nil
}

// Part is a surface or object finished with one material.
// Its absorption is coefficients * area * quantity.
type Part struct {
	name     string
	material catalog.Material
	area     float64
	quantity int
}

// NewPart creates a part of quantity 1. An empty name falls back to the
// material name.
func NewPart(name string, m catalog.Material, area float64) (*Part, error) {
	return NewParts(name, m, area, 1)
}

// NewParts creates a part repeated quantity times.
func NewParts(name string, m catalog.Material, area float64, quantity int) (*Part, error) {
	err := m.Coefficients.Validate()
	if err != nil {
		return nil, fmt.Errorf("room: part %q: %w", name, err)
	}

	err = checkNonNegative("area", area)
	if err != nil {
		return nil, err
	}

	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity %d", ErrInvalidParameter, quantity)
	}

	if name == "" {
		name = m.Name
	}

	return &Part{name: name, material: m, area: area, quantity: quantity}, nil
}

// Name returns the part name.
func (p *Part) Name() string { return p.name }

// Material returns the bound material.
func (p *Part) Material() catalog.Material { return p.material }

// Area returns the area of one piece in m².
func (p *Part) Area() float64 { return p.area }

// Quantity returns the number of pieces.
func (p *Part) Quantity() int { return p.quantity }

// SetArea changes the area of one piece.
func (p *Part) SetArea(area float64) error {
	err := checkNonNegative("area", area)
	if err != nil {
		return err
	}

	p.area = area

	return nil
}

// SetQuantity changes the number of pieces.
func (p *Part) SetQuantity(quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: quantity %d", ErrInvalidParameter, quantity)
	}

	p.quantity = quantity

	return nil
}

// SetMaterial rebinds the part to another material.
func (p *Part) SetMaterial(m catalog.Material) error {
	err := m.Coefficients.Validate()
	if err != nil {
		return fmt.Errorf("room: part %q: %w", p.name, err)
	}

	p.material = m

	return nil
}

// Absorption returns the equivalent absorption area of all pieces.
func (p *Part) Absorption() octave.Spectrum {
	var out octave.Spectrum
	floats.ScaleTo(out[:], p.area*float64(p.quantity), p.material.Coefficients[:])

	return out
}

func (p *Part) String() string {
	return fmt.Sprintf("%s (%s, %g m² x %d): %s", p.name, p.material.Name, p.area, p.quantity, p.Absorption().Format(2))
}

// Item groups the parts of one room finish, for example all floor
// surfaces. Its absorption is the sum over its parts.
type Item struct {
	name  string
	parts []*Part
}

// NewItem creates an item from parts. Nil parts are rejected.
func NewItem(name string, parts ...*Part) (*Item, error) {
	it := &Item{name: name}

	for _, p := range parts {
		err := it.AddPart(p)
		if err != nil {
			return nil, err
		}
	}

	return it, nil
}

// Name returns the item name.
func (it *Item) Name() string { return it.name }

// Len returns the number of parts.
func (it *Item) Len() int { return len(it.parts) }

// Parts returns the parts in insertion order. The slice is a copy.
func (it *Item) Parts() []*Part { return slices.Clone(it.parts) }

// AddPart appends a part.
func (it *Item) AddPart(p *Part) error {
	if p == nil {
		return fmt.Errorf("%w: nil part", ErrInvalidParameter)
	}

	it.parts = append(it.parts, p)

	return nil
}

// Part returns the part at position i.
func (it *Item) Part(i int) (*Part, error) {
	if i < 0 || i >= len(it.parts) {
		return nil, fmt.Errorf("%w: part index %d of %d", ErrInvalidParameter, i, len(it.parts))
	}

	return it.parts[i], nil
}

// PartByName returns the first part with the given name.
func (it *Item) PartByName(name string) (*Part, error) {
	i := it.index(name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPart, name)
	}

	return it.parts[i], nil
}

// RemovePart removes and returns the part at position i.
func (it *Item) RemovePart(i int) (*Part, error) {
	p, err := it.Part(i)
	if err != nil {
		return nil, err
	}

	it.parts = slices.Delete(it.parts, i, i+1)

	return p, nil
}

// RemovePartByName removes and returns the first part with the given name.
func (it *Item) RemovePartByName(name string) (*Part, error) {
	i := it.index(name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPart, name)
	}

	return it.RemovePart(i)
}

func (it *Item) index(name string) int {
	return slices.IndexFunc(it.parts, func(p *Part) bool { return p.name == name })
}

// Absorption returns the summed equivalent absorption area of all parts.
func (it *Item) Absorption() octave.Spectrum {
	acc := make([]float64, octave.NumBands)
	for _, p := range it.parts {
		a := p.Absorption()
		floats.Add(acc, a[:])
	}

	var out octave.Spectrum
	copy(out[:], acc)

	return out
}

func (it *Item) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %s\n", it.name, it.Absorption().Format(2))

	for _, p := range it.parts {
		fmt.Fprintf(&b, "  %s\n", p)
	}

	return b.String()
}

// FixedAbsorber is an object with a known equivalent absorption area per
// piece, such as furniture or occupants.
type FixedAbsorber struct {
	Name     string
	Area     octave.Spectrum
	Quantity int
}

// NewFixedAbsorber validates and returns a fixed absorber.
func NewFixedAbsorber(name string, area octave.Spectrum, quantity int) (FixedAbsorber, error) {
	err := area.Validate()
	if err != nil {
		return FixedAbsorber{}, fmt.Errorf("room: absorber %q: %w", name, err)
	}

	if quantity < 0 {
		return FixedAbsorber{}, fmt.Errorf("%w: quantity %d", ErrInvalidParameter, quantity)
	}

	return FixedAbsorber{Name: name, Area: area, Quantity: quantity}, nil
}

// Absorption returns Area * Quantity.
func (f FixedAbsorber) Absorption() octave.Spectrum {
	var out octave.Spectrum
	floats.ScaleTo(out[:], float64(f.Quantity), f.Area[:])

	return out
}

// Reverberation derives the absorption of a whole room from its volume
// and a measured reverberation time per band (Sabine).
type Reverberation struct {
	Volume float64
	Times  octave.Spectrum
}

// NewReverberation validates volume > 0 and non-negative times.
// Bands with a zero time contribute no absorption.
func NewReverberation(volume float64, times octave.Spectrum) (Reverberation, error) {
	err := checkPositive("room volume", volume)
	if err != nil {
		return Reverberation{}, err
	}

	err = times.Validate()
	if err != nil {
		return Reverberation{}, fmt.Errorf("room: reverberation time: %w", err)
	}

	return Reverberation{Volume: volume, Times: times}, nil
}

// Absorption returns the per-band absorption from [AbsorptionFromReverberation].
func (r Reverberation) Absorption() octave.Spectrum {
	var out octave.Spectrum
	for i, t := range r.Times {
		if t > 0 {
			out[i], _ = AbsorptionFromReverberation(r.Volume, t)
		}
	}

	return out
}

// AbsorptionFromReverberation returns A = 24*ln(10)/c * V/T in m².
func AbsorptionFromReverberation(volume, time float64) (float64, error) {
	err := checkPositive("room volume", volume)
	if err != nil {
		return 0, err
	}

	err = checkPositive("reverberation time", time)
	if err != nil {
		return 0, err
	}

	return 24 * math.Ln10 / SpeedOfSound * volume / time, nil
}

func checkNonNegative(label string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %s %g", ErrInvalidParameter, label, v)
	}

	return nil
}

func checkPositive(label string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s %g", ErrInvalidParameter, label, v)
	}

	return nil
}
