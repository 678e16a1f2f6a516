package hydraulics

import (
	"errors"
	"fmt"
	"math"

	"github.com/pjazdzyk/sound-dampening-analyzer/geometry"
)

var (
	// ErrInvalidGeometry is returned for rejected section dimensions.
	ErrInvalidGeometry = geometry.ErrInvalidGeometry

	// ErrInvalidFlow is returned for negative or non-finite volume flows.
	ErrInvalidFlow = geometry.ErrInvalidFlow

	// ErrFlowBalance is returned when a branch would carry more flow
	// than arrives upstream.
	ErrFlowBalance = errors.New("hydraulics: branch flow exceeds upstream flow")

	// ErrInvalidParameter is returned for out-of-range component
	// parameters such as angles, lengths or pressures.
	ErrInvalidParameter = errors.New("hydraulics: invalid parameter")
)

// Defaults for component parameters.
const (
	DefaultFlow             = 0.1   // m³/s
	DefaultBranchFlow       = 0.05  // m³/s
	DefaultDimension        = 0.5   // m
	DefaultLength           = 1.5   // m
	DefaultFilletRadius     = 0.01  // m
	DefaultDamperDischarge  = 10.0  // -
	DefaultBladeHeight      = 0.08  // m
	DefaultTerminalPressure = 25.0  // Pa
	DefaultFanPressure      = 10000 // Pa
	DefaultFanRPM           = 1500  // 1/min
	MaxAngle                = 90.0  // degrees
)

// DefaultDims is the default 0.5 × 0.5 m rectangular section.
var DefaultDims = Rect(DefaultDimension, DefaultDimension)

// Kind identifies the concrete state type behind a [State].
type Kind int

const (
	KindSimple Kind = iota
	KindDuct
	KindFan
	KindDamper
	KindTerminal
	KindBend
	KindBranch
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindSimple:
		return "simple"
	case KindDuct:
		return "duct"
	case KindFan:
		return "fan"
	case KindDamper:
		return "damper"
	case KindTerminal:
		return "terminal"
	case KindBend:
		return "bend"
	case KindBranch:
		return "branch"
	default:
		return "unknown"
	}
}

// State is the geometry and flow record shared by all component kinds.
type State interface {
	Kind() Kind
	Upstream() Section
	UpstreamFlow() float64
	UpstreamVelocity() float64
	SetUpstreamGeometry(d Dims) error
	SetUpstreamFlow(flow float64) error
	String() string
}

type config struct {
	limits geometry.Limits
}

// Option configures a state at construction.
type Option func(*config)

func defaultConfig() config {
	return config{limits: geometry.DefaultLimits()}
}

// WithLimits replaces the default dimension limits.
func WithLimits(l geometry.Limits) Option {
	return func(cfg *config) {
		if l.MaxDimension > 0 {
			cfg.limits = l
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

func checkFlow(flow float64) error {
	if !(flow >= 0) || math.IsInf(flow, 0) {
		return fmt.Errorf("%w: flow=%g must be >= 0", ErrInvalidFlow, flow)
	}

	return nil
}

func checkNonNegative(name string, v float64) error {
	if !(v >= 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s=%g must be >= 0", ErrInvalidParameter, name, v)
	}

	return nil
}

func checkPositive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s=%g must be > 0", ErrInvalidParameter, name, v)
	}

	return nil
}

func checkAngle(angle float64) error {
	if !(angle >= 0 && angle <= MaxAngle) {
		return fmt.Errorf("%w: angle=%g must be in [0, %g]", ErrInvalidParameter, angle, MaxAngle)
	}

	return nil
}
