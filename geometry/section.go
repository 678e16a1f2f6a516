package geometry

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidGeometry is returned for non-positive, negative or
	// oversized section dimensions.
	ErrInvalidGeometry = errors.New("geometry: invalid dimensions")

	// ErrInvalidFlow is returned for negative volume flows and for
	// velocity requests against a non-positive area.
	ErrInvalidFlow = errors.New("geometry: invalid flow")
)

// DefaultMaxDimension is the largest accepted section dimension in metres.
const DefaultMaxDimension = 20.0

// Limits bounds the accepted section dimensions.
type Limits struct {
	// MaxDimension is the upper bound for both dimensions in metres.
	// Non-positive values fall back to DefaultMaxDimension.
	MaxDimension float64
}

// DefaultLimits returns the limits used by the package-level functions.
func DefaultLimits() Limits {
	return Limits{MaxDimension: DefaultMaxDimension}
}

func (l Limits) maxDimension() float64 {
	if l.MaxDimension <= 0 {
		return DefaultMaxDimension
	}

	return l.MaxDimension
}

// Check validates a pair of section dimensions: dim1 must be in
// (0, MaxDimension] and dim2 in [0, MaxDimension].
func (l Limits) Check(dim1, dim2 float64) error {
	maxDim := l.maxDimension()

	switch {
	case math.IsNaN(dim1) || math.IsNaN(dim2):
		return fmt.Errorf("%w: dim1=%v dim2=%v", ErrInvalidGeometry, dim1, dim2)
	case dim1 <= 0:
		return fmt.Errorf("%w: dim1=%g must be > 0", ErrInvalidGeometry, dim1)
	case dim2 < 0:
		return fmt.Errorf("%w: dim2=%g must be >= 0", ErrInvalidGeometry, dim2)
	case dim1 > maxDim || dim2 > maxDim:
		return fmt.Errorf("%w: dim1=%g dim2=%g exceed %g m", ErrInvalidGeometry, dim1, dim2, maxDim)
	}

	return nil
}

// SectionArea returns the cross-section area in m².
func (l Limits) SectionArea(dim1, dim2 float64) (float64, error) {
	err := l.Check(dim1, dim2)
	if err != nil {
		return 0, err
	}

	return area(dim1, dim2), nil
}

// SectionPerimeter returns the cross-section perimeter in m.
func (l Limits) SectionPerimeter(dim1, dim2 float64) (float64, error) {
	err := l.Check(dim1, dim2)
	if err != nil {
		return 0, err
	}

	return perimeter(dim1, dim2), nil
}

// EquivalentDiameter returns the diameter of the circle with the same
// area. For a circular section this is dim1 itself.
func (l Limits) EquivalentDiameter(dim1, dim2 float64) (float64, error) {
	err := l.Check(dim1, dim2)
	if err != nil {
		return 0, err
	}

	return equivalentDiameter(dim1, dim2), nil
}

// HydraulicDiameter returns 4·area/perimeter.
func (l Limits) HydraulicDiameter(dim1, dim2 float64) (float64, error) {
	err := l.Check(dim1, dim2)
	if err != nil {
		return 0, err
	}

	return 4 * area(dim1, dim2) / perimeter(dim1, dim2), nil
}

// HydraulicRadius returns area/perimeter.
func (l Limits) HydraulicRadius(dim1, dim2 float64) (float64, error) {
	err := l.Check(dim1, dim2)
	if err != nil {
		return 0, err
	}

	return area(dim1, dim2) / perimeter(dim1, dim2), nil
}

// SectionArea returns the cross-section area using [DefaultLimits].
func SectionArea(dim1, dim2 float64) (float64, error) {
	return DefaultLimits().SectionArea(dim1, dim2)
}

// SectionPerimeter returns the cross-section perimeter using [DefaultLimits].
func SectionPerimeter(dim1, dim2 float64) (float64, error) {
	return DefaultLimits().SectionPerimeter(dim1, dim2)
}

// EquivalentDiameter returns the equivalent diameter using [DefaultLimits].
func EquivalentDiameter(dim1, dim2 float64) (float64, error) {
	return DefaultLimits().EquivalentDiameter(dim1, dim2)
}

// HydraulicDiameter returns the hydraulic diameter using [DefaultLimits].
func HydraulicDiameter(dim1, dim2 float64) (float64, error) {
	return DefaultLimits().HydraulicDiameter(dim1, dim2)
}

// HydraulicRadius returns the hydraulic radius using [DefaultLimits].
func HydraulicRadius(dim1, dim2 float64) (float64, error) {
	return DefaultLimits().HydraulicRadius(dim1, dim2)
}

// AirVelocity returns the mean velocity in m/s of flow m³/s through area m².
func AirVelocity(area, flow float64) (float64, error) {
	if !(area > 0) || math.IsInf(area, 0) {
		return 0, fmt.Errorf("%w: area=%g must be > 0", ErrInvalidFlow, area)
	}

	if !(flow >= 0) || math.IsInf(flow, 0) {
		return 0, fmt.Errorf("%w: flow=%g must be >= 0", ErrInvalidFlow, flow)
	}

	return flow / area, nil
}

func area(dim1, dim2 float64) float64 {
	if dim2 == 0 {
		return math.Pi * dim1 * dim1 / 4
	}

	return dim1 * dim2
}

func perimeter(dim1, dim2 float64) float64 {
	if dim2 == 0 {
		return math.Pi * dim1
	}

	return 2 * (dim1 + dim2)
}

func equivalentDiameter(dim1, dim2 float64) float64 {
	if dim2 == 0 {
		return dim1
	}

	return math.Sqrt(4 / math.Pi * area(dim1, dim2))
}
