package catalog

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// FanType classifies fans by impeller and casing.
type FanType int

const (
	CentrifugalSpiralCasing FanType = iota
	CentrifugalFreeWheeling
	DrumImpeller
	AxialWithoutGuideVanes
	AxialWithGuideVanes
)

var fanTypeNames = []string{
	CentrifugalSpiralCasing: "centrifugalSpiralCasing",
	CentrifugalFreeWheeling: "centrifugalFreeWheeling",
	DrumImpeller:            "drumImpeller",
	AxialWithoutGuideVanes:  "axialWithoutGuideVanes",
	AxialWithGuideVanes:     "axialWithGuideVanes",
}

// String returns the catalog key of the fan type.
func (t FanType) String() string {
	if t < 0 || int(t) >= len(fanTypeNames) {
		return "Unknown"
	}

	return fanTypeNames[t]
}

// UnmarshalYAML decodes a fan type from its catalog key.
func (t *FanType) UnmarshalYAML(value *yaml.Node) error {
	var name string

	err := value.Decode(&name)
	if err != nil {
		return err
	}

	i := slices.Index(fanTypeNames, name)
	if i < 0 {
		return fmt.Errorf("%w: fan type %q (line %d)", ErrUnknownKey, name, value.Line)
	}

	*t = FanType(i)

	return nil
}

// Fan holds typical acoustic data of a fan assembly.
type Fan struct {
	Key         string  `yaml:"key"`
	Description string  `yaml:"description"`
	Type        FanType `yaml:"type"`
	// SpecificPower is the specific sound power level Lws in dB.
	SpecificPower float64 `yaml:"specific_power"`
	// Factor shapes the octave spectrum derived from SpecificPower.
	Factor float64 `yaml:"factor"`
}

// FanRepository maps fan keys to their data.
type FanRepository struct {
	fans []Fan
}

// NewFanRepository returns a repository holding copies of fans.
func NewFanRepository(fans ...Fan) *FanRepository {
	return &FanRepository{fans: slices.Clone(fans)}
}

// Lookup returns the fan with the given key.
func (r *FanRepository) Lookup(key string) (Fan, error) {
	for _, f := range r.fans {
		if f.Key == key {
			return f, nil
		}
	}

	return Fan{}, fmt.Errorf("%w: fan %q", ErrUnknownKey, key)
}

// Keys returns all fan keys in catalog order.
func (r *FanRepository) Keys() []string {
	keys := make([]string, len(r.fans))
	for i, f := range r.fans {
		keys[i] = f.Key
	}

	return keys
}

// Add registers a fan. The key must be unused.
func (r *FanRepository) Add(f Fan) error {
	if f.Key == "" {
		return fmt.Errorf("%w: empty fan key", ErrInvalidEntry)
	}

	if _, err := r.Lookup(f.Key); err == nil {
		return fmt.Errorf("%w: fan %q already registered", ErrInvalidEntry, f.Key)
	}

	r.fans = append(r.fans, f)

	return nil
}
