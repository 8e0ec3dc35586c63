// Package rotation builds rotation matrices about the coordinate axes.
package rotation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Axis names a coordinate axis.
type Axis byte

// Coordinate axes.
const (
	X Axis = 'x'
	Y Axis = 'y'
	Z Axis = 'z'
)

func (a Axis) String() string {
	switch a {
	case X, Y, Z:
		return string(rune(a))
	default:
		return fmt.Sprintf("Invalid<%d>", int(a))
	}
}

// ParseAxis parses "x", "y" or "z".
func ParseAxis(s string) (Axis, error) {
	if len(s) == 1 {
		switch a := Axis(s[0]); a {
		case X, Y, Z:
			return a, nil
		}
	}
	return 0, fmt.Errorf("invalid rotation axis %q", s)
}

// Matrix returns the right-handed rotation by the given angle, in radians,
// about an axis; it panics on an invalid axis.
func Matrix(axis Axis, radians float64) *r3.Mat {
	s, c := math.Sincos(radians)
	switch axis {
	case X:
		return r3.NewMat([]float64{
			1, 0, 0,
			0, c, -s,
			0, s, c,
		})
	case Y:
		return r3.NewMat([]float64{
			c, 0, s,
			0, 1, 0,
			-s, 0, c,
		})
	case Z:
		return r3.NewMat([]float64{
			c, -s, 0,
			s, c, 0,
			0, 0, 1,
		})
	default:
		panic(fmt.Sprintf("invalid rotation axis %v", axis))
	}
}

// Apply writes m·p + offset for every point into dst, which is grown as
// needed and returned.
func Apply(dst []r3.Vec, m *r3.Mat, points []r3.Vec, offset r3.Vec) []r3.Vec {
	if cap(dst) < len(points) {
		dst = make([]r3.Vec, len(points))
	}
	dst = dst[:len(points)]
	for i, p := range points {
		dst[i] = r3.Add(m.MulVec(p), offset)
	}
	return dst
}
