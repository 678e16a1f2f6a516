package room

import (
	"fmt"
	"math"
)

// MaxMountAngle is the largest terminal mounting angle in degrees.
const MaxMountAngle = 90.0

// Location is where a terminal sits relative to the room boundaries.
type Location int

// Terminal locations, from free field to a three-surface corner.
const (
	RoomCenter Location = iota
	WallOrCeilingCenter
	WallOrCeilingEdgeCenter
	Corner
)

func (l Location) String() string {
	switch l {
	case RoomCenter:
		return "room center"
	case WallOrCeilingCenter:
		return "wall or ceiling center"
	case WallOrCeilingEdgeCenter:
		return "wall or ceiling edge center"
	case Corner:
		return "corner"
	default:
		return fmt.Sprintf("Location(%d)", int(l))
	}
}

func (l Location) valid() bool {
	return l >= RoomCenter && l <= Corner
}

// Coefficients parameterise the directivity curve
//
//	Q(f) = B2 + (B1 - B2) / (1 + (f*sqrt(S)/X0)^P)
//
// which moves from B1 at low frequency to B2 once the terminal is large
// relative to the wavelength.
type Coefficients struct {
	B1, B2, X0, P float64
}

// [location][0: angle < 45°, 1: angle >= 45°]
var directivityTable = [...][2]Coefficients{
	RoomCenter: {
		{B1: 0.73, B2: 7.62, X0: 158.51, P: 1.29},
		{B1: 0.84, B2: 4.01, X0: 213.89, P: 1.10},
	},
	WallOrCeilingCenter: {
		{B1: 1.70, B2: 7.88, X0: 121.19, P: 1.28},
		{B1: 1.90, B2: 4.16, X0: 221.72, P: 1.25},
	},
	WallOrCeilingEdgeCenter: {
		{B1: 3.90, B2: 8.28, X0: 133.97, P: 1.27},
		{B1: 3.78, B2: 5.23, X0: 395.71, P: 1.28},
	},
	Corner: {
		{B1: 7.28, B2: 9.42, X0: 298.46, P: 0.37},
		{B1: 8.35, B2: 4.42, X0: 42.28, P: 1.75},
	},
}

// DirectivityCoefficients returns the curve for a location and mounting
// angle in degrees. The angle must lie in [0, MaxMountAngle].
func DirectivityCoefficients(loc Location, angle float64) (Coefficients, error) {
	if !loc.valid() {
		return Coefficients{}, fmt.Errorf("%w: location %v", ErrInvalidParameter, loc)
	}

	err := checkAngle(angle)
	if err != nil {
		return Coefficients{}, err
	}

	col := 0
	if angle >= 45 {
		col = 1
	}

	return directivityTable[loc][col], nil
}

// DirectivityIndex returns the directivity factor Q of a terminal with
// gross discharge area grossArea in m² at frequency freq in Hz.
func DirectivityIndex(loc Location, angle, grossArea, freq float64) (float64, error) {
	c, err := DirectivityCoefficients(loc, angle)
	if err != nil {
		return 0, err
	}

	err = checkNonNegative("gross discharge area", grossArea)
	if err != nil {
		return 0, err
	}

	err = checkNonNegative("frequency", freq)
	if err != nil {
		return 0, err
	}

	return c.factor(grossArea, freq), nil
}

func (c Coefficients) factor(area, freq float64) float64 {
	x := freq * math.Sqrt(area) / c.X0

	return c.B2 + (c.B1-c.B2)/(1+math.Pow(x, c.P))
}

func checkAngle(angle float64) error {
	if math.IsNaN(angle) || angle < 0 || angle > MaxMountAngle {
		return fmt.Errorf("%w: mounting angle %g outside [0, %g]", ErrInvalidParameter, angle, MaxMountAngle)
	}

	return nil
}
