// Package geometry derives the cross-section properties of ventilation
// ducts: area, perimeter, equivalent and hydraulic diameter, hydraulic
// radius and mean air velocity.
//
// A section is described by two dimensions in metres. A positive second
// dimension describes a rectangle dim1 × dim2; a zero second dimension
// describes a circle of diameter dim1. Both dimensions are bounded by
// [Limits.MaxDimension], 20 m unless configured otherwise.
package geometry
