package hydraulics

import (
	"fmt"

	"github.com/pjazdzyk/sound-dampening-analyzer/geometry"
)

// Dims are the two dimensions of a cross section in metres. A zero Dim2
// describes a circle of diameter Dim1.
type Dims struct {
	Dim1 float64
	Dim2 float64
}

// Rect returns the dimensions of an a × b rectangular section.
func Rect(a, b float64) Dims { return Dims{Dim1: a, Dim2: b} }

// Round returns the dimensions of a circular section of diameter d.
func Round(d float64) Dims { return Dims{Dim1: d} }

// Section is a validated cross section with its derived properties.
type Section struct {
	Dims

	Area               float64 // m²
	Perimeter          float64 // m
	EquivalentDiameter float64 // m
	HydraulicDiameter  float64 // m
	HydraulicRadius    float64 // m
}

// NewSection validates d against limits and derives the section properties.
func NewSection(limits geometry.Limits, d Dims) (Section, error) {
	err := limits.Check(d.Dim1, d.Dim2)
	if err != nil {
		return Section{}, err
	}

	s := Section{Dims: d}
	s.Area, _ = limits.SectionArea(d.Dim1, d.Dim2)
	s.Perimeter, _ = limits.SectionPerimeter(d.Dim1, d.Dim2)
	s.EquivalentDiameter, _ = limits.EquivalentDiameter(d.Dim1, d.Dim2)
	s.HydraulicDiameter, _ = limits.HydraulicDiameter(d.Dim1, d.Dim2)
	s.HydraulicRadius, _ = limits.HydraulicRadius(d.Dim1, d.Dim2)

	return s, nil
}

// IsCircular reports whether the section is round.
func (s Section) IsCircular() bool { return s.Dim2 == 0 }

// Velocity returns the mean air velocity for flow in m³/s.
func (s Section) Velocity(flow float64) (float64, error) {
	return geometry.AirVelocity(s.Area, flow)
}

// String formats the section dimensions and derived properties.
func (s Section) String() string {
	shape := fmt.Sprintf("%.2fx%.2f m", s.Dim1, s.Dim2)
	if s.IsCircular() {
		shape = fmt.Sprintf("ø%.2f m", s.Dim1)
	}

	return fmt.Sprintf("%s area=%.3f m² deq=%.2f m dh=%.2f m rh=%.3f m",
		shape, s.Area, s.EquivalentDiameter, s.HydraulicDiameter, s.HydraulicRadius)
}
