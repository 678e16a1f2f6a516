package signal

import (
	"fmt"
	"math"
	"strings"

	"github.com/pjazdzyk/sound-dampening-analyzer/octave"
)

// DefaultName is used for items created without [WithName].
const DefaultName = "unnamed item"

// Item is the octave-band acoustic state of one component.
// The zero value is not usable; create items with [New].
type Item struct {
	name        string
	levels      Levels
	incoming    octave.Spectrum
	generated   octave.Spectrum
	attenuation octave.Spectrum
	outgoing    octave.Spectrum
}

type config struct {
	name        string
	levels      Levels
	incoming    *octave.Spectrum
	generated   *octave.Spectrum
	attenuation *octave.Spectrum
}

// Option configures an [Item] at construction.
type Option func(*config)

func defaultConfig() config {
	return config{
		name:   DefaultName,
		levels: DefaultLevels(),
	}
}

// WithName sets the item name.
func WithName(name string) Option {
	return func(cfg *config) {
		cfg.name = name
	}
}

// WithIncoming sets the initial incoming spectrum. It is clamped into
// [Levels.Background, Levels.Max].
func WithIncoming(s octave.Spectrum) Option {
	return func(cfg *config) {
		cfg.incoming = &s
	}
}

// WithGenerated sets the initial self-generated noise spectrum.
func WithGenerated(s octave.Spectrum) Option {
	return func(cfg *config) {
		cfg.generated = &s
	}
}

// WithAttenuation sets the initial attenuation spectrum.
func WithAttenuation(s octave.Spectrum) Option {
	return func(cfg *config) {
		cfg.attenuation = &s
	}
}

// WithLevels replaces the default level limits.
func WithLevels(l Levels) Option {
	return func(cfg *config) {
		cfg.levels = l
	}
}

// New creates an item. Without options the incoming spectrum is the
// reference level on every band and the generated and attenuation
// spectra sit at the minimum level, so outgoing equals incoming.
func New(opts ...Option) (*Item, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	err := cfg.levels.Validate()
	if err != nil {
		return nil, err
	}

	incoming := octave.Flat(cfg.levels.Reference)
	if cfg.incoming != nil {
		incoming = *cfg.incoming
	}

	generated := octave.Flat(cfg.levels.Min)
	if cfg.generated != nil {
		generated = *cfg.generated
	}

	attenuation := octave.Flat(cfg.levels.Min)
	if cfg.attenuation != nil {
		attenuation = *cfg.attenuation
	}

	it := &Item{name: cfg.name, levels: cfg.levels}

	err = it.SetSpectra(incoming, generated, attenuation)
	if err != nil {
		return nil, err
	}

	return it, nil
}

// MustNew is like [New] but panics on error.
func MustNew(opts ...Option) *Item {
	it, err := New(opts...)
	if err != nil {
		panic(err)
	}

	return it
}

// Name returns the item name.
func (it *Item) Name() string { return it.name }

// SetName renames the item.
func (it *Item) SetName(name string) { it.name = name }

// Levels returns the level limits in effect.
func (it *Item) Levels() Levels { return it.levels }

// Incoming returns the clamped incoming spectrum.
func (it *Item) Incoming() octave.Spectrum { return it.incoming }

// Generated returns the self-generated noise spectrum.
func (it *Item) Generated() octave.Spectrum { return it.generated }

// Attenuation returns the attenuation spectrum.
func (it *Item) Attenuation() octave.Spectrum { return it.attenuation }

// Outgoing returns the derived outgoing spectrum.
func (it *Item) Outgoing() octave.Spectrum { return it.outgoing }

// SetIncoming validates s, clamps it into [Levels.Background, Levels.Max]
// and recomputes the outgoing spectrum.
func (it *Item) SetIncoming(s octave.Spectrum) error {
	err := validate("incoming", s)
	if err != nil {
		return err
	}

	it.incoming = s.Clamp(it.levels.Background, it.levels.Max)
	it.recompute()

	return nil
}

// SetGenerated validates s and recomputes the outgoing spectrum.
func (it *Item) SetGenerated(s octave.Spectrum) error {
	err := validate("generated", s)
	if err != nil {
		return err
	}

	it.generated = s
	it.recompute()

	return nil
}

// SetAttenuation validates s and recomputes the outgoing spectrum.
func (it *Item) SetAttenuation(s octave.Spectrum) error {
	err := validate("attenuation", s)
	if err != nil {
		return err
	}

	it.attenuation = s
	it.recompute()

	return nil
}

// SetSpectra replaces all three input spectra at once. Nothing changes
// unless all three are valid.
func (it *Item) SetSpectra(incoming, generated, attenuation octave.Spectrum) error {
	for _, in := range []struct {
		label string
		s     octave.Spectrum
	}{
		{"incoming", incoming},
		{"generated", generated},
		{"attenuation", attenuation},
	} {
		err := validate(in.label, in.s)
		if err != nil {
			return err
		}
	}

	it.incoming = incoming.Clamp(it.levels.Background, it.levels.Max)
	it.generated = generated
	it.attenuation = attenuation
	it.recompute()

	return nil
}

func (it *Item) recompute() {
	for i := range it.outgoing {
		residual := math.Max(it.incoming[i]-it.attenuation[i], it.levels.Min)
		it.outgoing[i] = octave.LogAdd(residual, it.generated[i])
	}
}

func validate(label string, s octave.Spectrum) error {
	err := s.Validate()
	if err != nil {
		return fmt.Errorf("signal: %s: %w", label, err)
	}

	return nil
}

// String renders the item with one decimal per band.
func (it *Item) String() string {
	return it.Format(1)
}

// Format renders the name and the four spectra with the given precision.
func (it *Item) Format(precision int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s:\n", it.name)
	fmt.Fprintf(&b, "Incoming    %s\n", it.incoming.Format(precision))
	fmt.Fprintf(&b, "Generated   %s\n", it.generated.Format(precision))
	fmt.Fprintf(&b, "Attenuation %s\n", it.attenuation.Format(precision))
	fmt.Fprintf(&b, "Outgoing    %s\n", it.outgoing.Format(precision))

	return b.String()
}
