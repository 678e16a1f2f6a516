package room

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/pjazdzyk/sound-dampening-analyzer/octave"
)

const (
	// DefaultName is used for models created without [WithName].
	DefaultName = "unnamed room"

	// DefaultExposureDistance is the listener distance from each terminal in m.
	DefaultExposureDistance = 3.0
)

var (
	// ErrEmpty is returned when removing from an empty inventory.
	ErrEmpty = errors.New("room: nothing to remove")

	// ErrIndexOutOfRange is returned for positions outside an inventory.
	ErrIndexOutOfRange = errors.New("room: index out of range")
)

// Model is a room with its absorber inventory, terminals and ambient
// sources. Derived values are recomputed by every mutator, so readers
// always see a consistent state.
type Model struct {
	name            string
	distance        float64
	minAbsorption   float64
	ambientPower    octave.Spectrum
	ambientPressure octave.Spectrum
	absorbers       []Absorber
	terminals       []Terminal

	absorption octave.Spectrum
	pressure   octave.Spectrum
	total      float64
}

type config struct {
	name            string
	distance        float64
	minAbsorption   float64
	ambientPower    octave.Spectrum
	ambientPressure octave.Spectrum
	absorbers       []Absorber
	terminals       []Terminal
}

// Option configures a [Model] at construction.
type Option func(*config)

func defaultConfig() config {
	return config{
		name:          DefaultName,
		distance:      DefaultExposureDistance,
		minAbsorption: DefaultMinAbsorption,
	}
}

// WithName sets the room name.
func WithName(name string) Option {
	return func(cfg *config) {
		cfg.name = name
	}
}

// WithExposureDistance sets the listener distance in m.
func WithExposureDistance(d float64) Option {
	return func(cfg *config) {
		cfg.distance = d
	}
}

// WithMinAbsorption sets the absorption area below which terminals keep
// their power level. The default is [DefaultMinAbsorption].
func WithMinAbsorption(a float64) Option {
	return func(cfg *config) {
		cfg.minAbsorption = a
	}
}

// WithAmbientPower sets the sound power spectrum of sources already in
// the room.
func WithAmbientPower(s octave.Spectrum) Option {
	return func(cfg *config) {
		cfg.ambientPower = s
	}
}

// WithAmbientPressure sets a background pressure spectrum added as is.
func WithAmbientPressure(s octave.Spectrum) Option {
	return func(cfg *config) {
		cfg.ambientPressure = s
	}
}

// WithAbsorbers adds absorbers to the initial inventory.
func WithAbsorbers(a ...Absorber) Option {
	return func(cfg *config) {
		cfg.absorbers = append(cfg.absorbers, a...)
	}
}

// WithTerminals adds terminals to the initial inventory.
func WithTerminals(t ...Terminal) Option {
	return func(cfg *config) {
		cfg.terminals = append(cfg.terminals, t...)
	}
}

// NewModel creates a room. Without options it is empty, with the default
// exposure distance.
func NewModel(opts ...Option) (*Model, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	err := checkNonNegative("minimum absorption area", cfg.minAbsorption)
	if err != nil {
		return nil, err
	}

	m := &Model{name: cfg.name, minAbsorption: cfg.minAbsorption}

	next := m.snapshot()
	next.distance = cfg.distance
	next.ambientPower = cfg.ambientPower
	next.ambientPressure = cfg.ambientPressure
	next.absorbers = cfg.absorbers
	next.terminals = cfg.terminals

	err = m.commit(next)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// MustNewModel is like [NewModel] but panics on error.
func MustNewModel(opts ...Option) *Model {
	m, err := NewModel(opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// Name returns the room name.
func (m *Model) Name() string { return m.name }

// SetName renames the room.
func (m *Model) SetName(name string) { m.name = name }

// ExposureDistance returns the listener distance in m.
func (m *Model) ExposureDistance() float64 { return m.distance }

// MinAbsorption returns the low-absorption threshold in m².
func (m *Model) MinAbsorption() float64 { return m.minAbsorption }

// AmbientPower returns the ambient sound power spectrum.
func (m *Model) AmbientPower() octave.Spectrum { return m.ambientPower }

// AmbientPressure returns the ambient pressure spectrum.
func (m *Model) AmbientPressure() octave.Spectrum { return m.ambientPressure }

// Absorbers returns the absorber inventory. The slice is a copy.
func (m *Model) Absorbers() []Absorber { return slices.Clone(m.absorbers) }

// Terminals returns the terminals. The slice is a copy.
func (m *Model) Terminals() []Terminal { return slices.Clone(m.terminals) }

// Absorption returns the room's equivalent absorption area per band in m².
func (m *Model) Absorption() octave.Spectrum { return m.absorption }

// Pressure returns the predicted pressure spectrum at the exposure distance.
func (m *Model) Pressure() octave.Spectrum { return m.pressure }

// Total returns the energy sum of [Model.Pressure] over all bands.
func (m *Model) Total() float64 { return m.total }

// TotalA returns the A-weighted total of [Model.Pressure] in dB(A).
func (m *Model) TotalA() float64 {
	return m.pressure.WeightedTotal(octave.WeightingA)
}

// AddAbsorber appends an absorber.
func (m *Model) AddAbsorber(a Absorber) error {
	if a == nil {
		return fmt.Errorf("%w: nil absorber", ErrInvalidParameter)
	}

	next := m.snapshot()
	next.absorbers = append(slices.Clone(m.absorbers), a)

	return m.commit(next)
}

// RemoveAbsorber removes and returns the absorber at position i.
func (m *Model) RemoveAbsorber(i int) (Absorber, error) {
	err := checkIndex(i, len(m.absorbers))
	if err != nil {
		return nil, err
	}

	a := m.absorbers[i]
	next := m.snapshot()
	next.absorbers = slices.Delete(slices.Clone(m.absorbers), i, i+1)

	return a, m.commit(next)
}

// RemoveLastAbsorber removes and returns the most recently added absorber.
func (m *Model) RemoveLastAbsorber() (Absorber, error) {
	return m.RemoveAbsorber(len(m.absorbers) - 1)
}

// AddTerminal appends a terminal.
func (m *Model) AddTerminal(t Terminal) error {
	if t == nil {
		return fmt.Errorf("%w: nil terminal", ErrInvalidParameter)
	}

	next := m.snapshot()
	next.terminals = append(slices.Clone(m.terminals), t)

	return m.commit(next)
}

// RemoveTerminal removes and returns the terminal at position i.
func (m *Model) RemoveTerminal(i int) (Terminal, error) {
	err := checkIndex(i, len(m.terminals))
	if err != nil {
		return nil, err
	}

	t := m.terminals[i]
	next := m.snapshot()
	next.terminals = slices.Delete(slices.Clone(m.terminals), i, i+1)

	return t, m.commit(next)
}

// RemoveLastTerminal removes and returns the most recently added terminal.
func (m *Model) RemoveLastTerminal() (Terminal, error) {
	return m.RemoveTerminal(len(m.terminals) - 1)
}

// SetExposureDistance changes the listener distance. Zero places the
// listener at the terminals, where pressure equals sound power.
func (m *Model) SetExposureDistance(d float64) error {
	next := m.snapshot()
	next.distance = d

	return m.commit(next)
}

// SetAmbientPower replaces the ambient sound power spectrum.
func (m *Model) SetAmbientPower(s octave.Spectrum) error {
	next := m.snapshot()
	next.ambientPower = s

	return m.commit(next)
}

// SetAmbientPressure replaces the ambient pressure spectrum.
func (m *Model) SetAmbientPressure(s octave.Spectrum) error {
	next := m.snapshot()
	next.ambientPressure = s

	return m.commit(next)
}

// Recalculate recomputes the derived values. Call it after changing a
// referenced absorber or terminal source from outside the model.
func (m *Model) Recalculate() error {
	return m.commit(m.snapshot())
}

type inputs struct {
	distance        float64
	ambientPower    octave.Spectrum
	ambientPressure octave.Spectrum
	absorbers       []Absorber
	terminals       []Terminal
}

func (m *Model) snapshot() inputs {
	return inputs{
		distance:        m.distance,
		ambientPower:    m.ambientPower,
		ambientPressure: m.ambientPressure,
		absorbers:       m.absorbers,
		terminals:       m.terminals,
	}
}

// commit evaluates in and installs it only if every input is valid.
func (m *Model) commit(in inputs) error {
	err := checkNonNegative("exposure distance", in.distance)
	if err != nil {
		return err
	}

	err = in.ambientPower.Validate()
	if err != nil {
		return fmt.Errorf("room: ambient power: %w", err)
	}

	err = in.ambientPressure.Validate()
	if err != nil {
		return fmt.Errorf("room: ambient pressure: %w", err)
	}

	absorption, err := totalAbsorption(in.absorbers)
	if err != nil {
		return err
	}

	pressure, err := pressureSpectrum(in.terminals, absorption, in.ambientPower, in.ambientPressure, in.distance, m.minAbsorption)
	if err != nil {
		return err
	}

	m.distance = in.distance
	m.ambientPower = in.ambientPower
	m.ambientPressure = in.ambientPressure
	m.absorbers = in.absorbers
	m.terminals = in.terminals
	m.absorption = absorption
	m.pressure = pressure
	m.total = pressure.Total()

	return nil
}

func totalAbsorption(absorbers []Absorber) (octave.Spectrum, error) {
	acc := make([]float64, octave.NumBands)

	for i, a := range absorbers {
		if a == nil {
			return octave.Spectrum{}, fmt.Errorf("%w: nil absorber %d", ErrInvalidParameter, i)
		}

		s := a.Absorption()

		err := s.Validate()
		if err != nil {
			return octave.Spectrum{}, fmt.Errorf("room: absorber %d: %w", i, err)
		}

		floats.Add(acc, s[:])
	}

	var out octave.Spectrum
	copy(out[:], acc)

	return out, nil
}

func checkIndex(i, n int) error {
	if n == 0 {
		return ErrEmpty
	}

	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, n)
	}

	return nil
}

// String renders the room inventory and its predicted spectrum.
func (m *Model) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (d = %g m):\n", m.name, m.distance)
	fmt.Fprintf(&b, "Absorption  %s\n", m.absorption.Format(2))
	fmt.Fprintf(&b, "Pressure    %s\n", m.pressure.Format(1))
	fmt.Fprintf(&b, "Total       %.1f dB\n", m.total)

	return b.String()
}
