package hydraulics

import (
	"fmt"

	"github.com/pjazdzyk/sound-dampening-analyzer/catalog"
)

// Duct is a straight duct run of a given length.
type Duct struct {
	Simple

	length float64
}

// NewDuct validates the section, flow and a positive length in metres.
func NewDuct(flow, length float64, upstream Dims, opts ...Option) (*Duct, error) {
	err := checkPositive("length", length)
	if err != nil {
		return nil, err
	}

	s, err := newSimple(flow, upstream, applyOptions(opts))
	if err != nil {
		return nil, err
	}

	return &Duct{Simple: s, length: length}, nil
}

// Kind returns [KindDuct].
func (d *Duct) Kind() Kind { return KindDuct }

// Length returns the duct length in metres.
func (d *Duct) Length() float64 { return d.length }

// SetLength replaces the duct length.
func (d *Duct) SetLength(length float64) error {
	err := checkPositive("length", length)
	if err != nil {
		return err
	}

	d.length = length

	return nil
}

func (d *Duct) String() string {
	return fmt.Sprintf("duct %s length=%.2f m", d.upstreamString(), d.length)
}

// Fan is a fan assembly with its operating point and catalog model.
type Fan struct {
	Simple

	totalPressure float64
	rpm           float64
	model         catalog.Fan
}

// NewFan validates the section, flow, total pressure in Pa and speed in
// revolutions per minute.
func NewFan(flow, totalPressure, rpm float64, model catalog.Fan, upstream Dims, opts ...Option) (*Fan, error) {
	err := checkNonNegative("total pressure", totalPressure)
	if err != nil {
		return nil, err
	}

	err = checkNonNegative("rpm", rpm)
	if err != nil {
		return nil, err
	}

	s, err := newSimple(flow, upstream, applyOptions(opts))
	if err != nil {
		return nil, err
	}

	return &Fan{Simple: s, totalPressure: totalPressure, rpm: rpm, model: model}, nil
}

// Kind returns [KindFan].
func (f *Fan) Kind() Kind { return KindFan }

// TotalPressure returns the fan total pressure increase in Pa.
func (f *Fan) TotalPressure() float64 { return f.totalPressure }

// RPM returns the fan speed in revolutions per minute.
func (f *Fan) RPM() float64 { return f.rpm }

// Model returns the catalog data of the fan type.
func (f *Fan) Model() catalog.Fan { return f.model }

// SetTotalPressure replaces the total pressure.
func (f *Fan) SetTotalPressure(pa float64) error {
	err := checkNonNegative("total pressure", pa)
	if err != nil {
		return err
	}

	f.totalPressure = pa

	return nil
}

// SetRPM replaces the fan speed.
func (f *Fan) SetRPM(rpm float64) error {
	err := checkNonNegative("rpm", rpm)
	if err != nil {
		return err
	}

	f.rpm = rpm

	return nil
}

// SetModel replaces the fan catalog data.
func (f *Fan) SetModel(model catalog.Fan) { f.model = model }

func (f *Fan) String() string {
	return fmt.Sprintf("fan %s Δpt=%.1f Pa n=%.0f rpm model=%s",
		f.upstreamString(), f.totalPressure, f.rpm, f.model.Key)
}

// BladeType selects the damper blade arrangement.
type BladeType int

const (
	BladesOpposed BladeType = iota
	BladesParallel
)

// String returns a human-readable name for the blade arrangement.
func (b BladeType) String() string {
	switch b {
	case BladesOpposed:
		return "opposed"
	case BladesParallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// Damper is a multi-blade volume control damper.
type Damper struct {
	Simple

	discharge   float64
	bladeHeight float64
	blades      BladeType
}

// NewDamper validates the section, flow, a positive discharge
// coefficient ζ and a positive blade height in metres.
func NewDamper(flow, discharge, bladeHeight float64, blades BladeType, upstream Dims, opts ...Option) (*Damper, error) {
	err := checkPositive("discharge coefficient", discharge)
	if err != nil {
		return nil, err
	}

	err = checkPositive("blade height", bladeHeight)
	if err != nil {
		return nil, err
	}

	err = checkBlades(blades)
	if err != nil {
		return nil, err
	}

	s, err := newSimple(flow, upstream, applyOptions(opts))
	if err != nil {
		return nil, err
	}

	return &Damper{Simple: s, discharge: discharge, bladeHeight: bladeHeight, blades: blades}, nil
}

func checkBlades(b BladeType) error {
	if b != BladesOpposed && b != BladesParallel {
		return fmt.Errorf("%w: blade type %d", ErrInvalidParameter, b)
	}

	return nil
}

// Kind returns [KindDamper].
func (d *Damper) Kind() Kind { return KindDamper }

// DischargeCoefficient returns ζ.
func (d *Damper) DischargeCoefficient() float64 { return d.discharge }

// BladeHeight returns the blade height in metres.
func (d *Damper) BladeHeight() float64 { return d.bladeHeight }

// Blades returns the blade arrangement.
func (d *Damper) Blades() BladeType { return d.blades }

// SetDischargeCoefficient replaces ζ.
func (d *Damper) SetDischargeCoefficient(zeta float64) error {
	err := checkPositive("discharge coefficient", zeta)
	if err != nil {
		return err
	}

	d.discharge = zeta

	return nil
}

// SetBladeHeight replaces the blade height.
func (d *Damper) SetBladeHeight(h float64) error {
	err := checkPositive("blade height", h)
	if err != nil {
		return err
	}

	d.bladeHeight = h

	return nil
}

// SetBlades replaces the blade arrangement.
func (d *Damper) SetBlades(b BladeType) error {
	err := checkBlades(b)
	if err != nil {
		return err
	}

	d.blades = b

	return nil
}

func (d *Damper) String() string {
	return fmt.Sprintf("damper %s ζ=%.2f blade=%.3f m blades=%s",
		d.upstreamString(), d.discharge, d.bladeHeight, d.blades)
}

// Terminal is an air terminal device such as a diffuser or grille.
type Terminal struct {
	Simple

	discharge    float64
	pressureDrop float64
}

// NewTerminal validates the section, flow, a non-negative discharge
// coefficient and a non-negative pressure drop in Pa.
func NewTerminal(flow, discharge, pressureDrop float64, upstream Dims, opts ...Option) (*Terminal, error) {
	err := checkNonNegative("discharge coefficient", discharge)
	if err != nil {
		return nil, err
	}

	err = checkNonNegative("pressure drop", pressureDrop)
	if err != nil {
		return nil, err
	}

	s, err := newSimple(flow, upstream, applyOptions(opts))
	if err != nil {
		return nil, err
	}

	return &Terminal{Simple: s, discharge: discharge, pressureDrop: pressureDrop}, nil
}

// Kind returns [KindTerminal].
func (t *Terminal) Kind() Kind { return KindTerminal }

// DischargeCoefficient returns the terminal discharge coefficient.
func (t *Terminal) DischargeCoefficient() float64 { return t.discharge }

// PressureDrop returns the pressure drop across the terminal in Pa.
func (t *Terminal) PressureDrop() float64 { return t.pressureDrop }

// SetDischargeCoefficient replaces the discharge coefficient.
func (t *Terminal) SetDischargeCoefficient(c float64) error {
	err := checkNonNegative("discharge coefficient", c)
	if err != nil {
		return err
	}

	t.discharge = c

	return nil
}

// SetPressureDrop replaces the pressure drop.
func (t *Terminal) SetPressureDrop(pa float64) error {
	err := checkNonNegative("pressure drop", pa)
	if err != nil {
		return err
	}

	t.pressureDrop = pa

	return nil
}

func (t *Terminal) String() string {
	return fmt.Sprintf("terminal %s ζ=%.2f Δp=%.1f Pa", t.upstreamString(), t.discharge, t.pressureDrop)
}
