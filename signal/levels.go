package signal

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidLevels is returned for inconsistent level limits.
var ErrInvalidLevels = errors.New("signal: invalid level limits")

// Default level limits in dB.
const (
	DefaultMinLevel        = 0.0
	DefaultBackgroundLevel = 10.0
	DefaultMaxLevel        = 220.0
	DefaultReferenceLevel  = 90.0
)

// Levels bounds the levels an [Item] works with.
type Levels struct {
	// Min is the floor applied after attenuation, the "no signal" level.
	Min float64
	// Background is the lowest incoming level, standing for ambient noise.
	Background float64
	// Max is the saturation ceiling for incoming levels.
	Max float64
	// Reference is the default incoming level on every band.
	Reference float64
}

// DefaultLevels returns 0 / 10 / 220 dB limits with a 90 dB reference.
func DefaultLevels() Levels {
	return Levels{
		Min:        DefaultMinLevel,
		Background: DefaultBackgroundLevel,
		Max:        DefaultMaxLevel,
		Reference:  DefaultReferenceLevel,
	}
}

// Validate requires 0 <= Min <= Background <= Reference <= Max, all finite.
func (l Levels) Validate() error {
	for _, v := range []float64{l.Min, l.Background, l.Max, l.Reference} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite limit in %+v", ErrInvalidLevels, l)
		}
	}

	if l.Min < 0 || l.Min > l.Background || l.Background > l.Reference || l.Reference > l.Max {
		return fmt.Errorf("%w: want 0 <= min <= background <= reference <= max, got %+v", ErrInvalidLevels, l)
	}

	return nil
}
