package component

import (
	"errors"
	"fmt"

	"github.com/pjazdzyk/sound-dampening-analyzer/catalog"
	"github.com/pjazdzyk/sound-dampening-analyzer/hydraulics"
	"github.com/pjazdzyk/sound-dampening-analyzer/octave"
	"github.com/pjazdzyk/sound-dampening-analyzer/signal"
)

var (
	// ErrNilState is returned when a component is created without state.
	ErrNilState = errors.New("component: nil hydraulic state")

	// ErrNilProducer is returned when a nil producer is installed.
	ErrNilProducer = errors.New("component: nil spectrum producer")
)

// Component couples a hydraulic state with its acoustic item.
type Component struct {
	state     hydraulics.State
	material  catalog.Material
	generate  GenerationFunc
	attenuate AttenuationFunc
	item      *signal.Item
}

type config struct {
	signalOpts []signal.Option
	material   *catalog.Material
	generate   GenerationFunc
	attenuate  AttenuationFunc
}

// Option configures a [Component] at construction.
type Option func(*config)

func defaultConfig() config {
	return config{
		generate:  Silent,
		attenuate: NoAttenuation,
	}
}

// WithName names the component's item.
func WithName(name string) Option {
	return func(cfg *config) {
		cfg.signalOpts = append(cfg.signalOpts, signal.WithName(name))
	}
}

// WithSignalOptions forwards options to the underlying [signal.New],
// for example an initial incoming spectrum or custom level limits.
func WithSignalOptions(opts ...signal.Option) Option {
	return func(cfg *config) {
		cfg.signalOpts = append(cfg.signalOpts, opts...)
	}
}

// WithMaterial binds a material. Without it the component uses the
// catalog's default duct material.
func WithMaterial(m catalog.Material) Option {
	return func(cfg *config) {
		cfg.material = &m
	}
}

// WithGeneration installs the noise producer. The default is [Silent].
func WithGeneration(f GenerationFunc) Option {
	return func(cfg *config) {
		if f != nil {
			cfg.generate = f
		}
	}
}

// WithAttenuation installs the attenuation producer. The default is
// [NoAttenuation].
func WithAttenuation(f AttenuationFunc) Option {
	return func(cfg *config) {
		if f != nil {
			cfg.attenuate = f
		}
	}
}

// New creates a component and runs both producers once.
func New(state hydraulics.State, opts ...Option) (*Component, error) {
	if state == nil {
		return nil, ErrNilState
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var material catalog.Material
	if cfg.material != nil {
		material = *cfg.material
	} else {
		m, err := catalog.Materials().Lookup(catalog.DefaultDuctMaterial)
		if err != nil {
			return nil, err
		}

		material = m
	}

	item, err := signal.New(cfg.signalOpts...)
	if err != nil {
		return nil, err
	}

	c := &Component{
		state:     state,
		material:  material,
		generate:  cfg.generate,
		attenuate: cfg.attenuate,
		item:      item,
	}

	err = c.Update()
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Item returns the acoustic item, suitable for a propagation chain.
func (c *Component) Item() *signal.Item { return c.item }

// State returns the hydraulic state.
func (c *Component) State() hydraulics.State { return c.state }

// Material returns the bound material.
func (c *Component) Material() catalog.Material { return c.material }

// Name returns the item name.
func (c *Component) Name() string { return c.item.Name() }

// Outgoing returns the item's outgoing spectrum.
func (c *Component) Outgoing() octave.Spectrum { return c.item.Outgoing() }

// Update runs both producers against the current state and material
// and replaces the item's generated and attenuation spectra. On error
// the item is unchanged.
func (c *Component) Update() error {
	gen, att, err := c.produce(c.generate, c.attenuate, c.material)
	if err != nil {
		return err
	}

	return c.item.SetSpectra(c.item.Incoming(), gen, att)
}

func (c *Component) produce(generate GenerationFunc, attenuate AttenuationFunc, material catalog.Material) (octave.Spectrum, octave.Spectrum, error) {
	gen, err := generate(c.state)
	if err != nil {
		return octave.Spectrum{}, octave.Spectrum{}, fmt.Errorf("component %s: generation: %w", c.item.Name(), err)
	}

	err = gen.Validate()
	if err != nil {
		return octave.Spectrum{}, octave.Spectrum{}, fmt.Errorf("component %s: generation: %w", c.item.Name(), err)
	}

	att, err := attenuate(c.state, material)
	if err != nil {
		return octave.Spectrum{}, octave.Spectrum{}, fmt.Errorf("component %s: attenuation: %w", c.item.Name(), err)
	}

	err = att.Validate()
	if err != nil {
		return octave.Spectrum{}, octave.Spectrum{}, fmt.Errorf("component %s: attenuation: %w", c.item.Name(), err)
	}

	return gen, att, nil
}

// Mutate applies fn to the hydraulic state and updates the spectra.
// When fn fails nothing else happens. When the producers reject the new
// state, the state change stays in place, the item keeps its previous
// spectra and the producer error is returned.
func (c *Component) Mutate(fn func(hydraulics.State) error) error {
	err := fn(c.state)
	if err != nil {
		return err
	}

	return c.Update()
}

// SetUpstreamFlow changes the upstream flow and updates the spectra.
func (c *Component) SetUpstreamFlow(flow float64) error {
	return c.Mutate(func(s hydraulics.State) error { return s.SetUpstreamFlow(flow) })
}

// SetUpstreamGeometry changes the upstream section and updates the spectra.
func (c *Component) SetUpstreamGeometry(d hydraulics.Dims) error {
	return c.Mutate(func(s hydraulics.State) error { return s.SetUpstreamGeometry(d) })
}

// SetMaterial binds a new material and updates the spectra. On error
// the previous material stays bound.
func (c *Component) SetMaterial(m catalog.Material) error {
	gen, att, err := c.produce(c.generate, c.attenuate, m)
	if err != nil {
		return err
	}

	err = c.item.SetSpectra(c.item.Incoming(), gen, att)
	if err != nil {
		return err
	}

	c.material = m

	return nil
}

// SetGeneration replaces the noise producer and updates the spectra.
func (c *Component) SetGeneration(f GenerationFunc) error {
	if f == nil {
		return ErrNilProducer
	}

	gen, att, err := c.produce(f, c.attenuate, c.material)
	if err != nil {
		return err
	}

	err = c.item.SetSpectra(c.item.Incoming(), gen, att)
	if err != nil {
		return err
	}

	c.generate = f

	return nil
}

// SetAttenuation replaces the attenuation producer and updates the spectra.
func (c *Component) SetAttenuation(f AttenuationFunc) error {
	if f == nil {
		return ErrNilProducer
	}

	gen, att, err := c.produce(c.generate, f, c.material)
	if err != nil {
		return err
	}

	err = c.item.SetSpectra(c.item.Incoming(), gen, att)
	if err != nil {
		return err
	}

	c.attenuate = f

	return nil
}

// String renders the hydraulic state followed by the acoustic item.
func (c *Component) String() string {
	return fmt.Sprintf("%s\nmaterial: %s\n%s", c.state, c.material.Name, c.item)
}
