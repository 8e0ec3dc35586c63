// Package render projects and shades the points of a soccer ball into a grid
// of text cells.
//
// The camera sits at (0, 0, -FocalLength) looking along +z; the ball is
// translated to Center in front of it. A pinhole projection maps every point
// onto a ScreenSize square of cells, and white points are shaded by picking a
// character from a luminance ramp, darkest first.
package render

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/borkshop/kickball/internal/rotation"
)

// ErrInvalidConfig is wrapped by every Config validation error.
var ErrInvalidConfig = errors.New("invalid render config")

// DefaultRamp is the standard luminance ramp, darkest first.
const DefaultRamp = ".,-~:;=!*#$@"

// Config holds the fixed geometry and shading parameters of a render. It is a
// value type; every component copies it at construction.
type Config struct {
	// ScreenSize is the width and height of the frame in cells.
	ScreenSize int

	// Ramp lists shading characters from darkest to brightest.
	Ramp []rune

	// Background fills empty cells and erases black points.
	Background rune

	// FocalLength (K) places the camera at (0, 0, -K).
	FocalLength float64

	// Center is where the ball's origin is translated to.
	Center r3.Vec

	// Axis is the axis the ball spins about.
	Axis rotation.Axis

	// Light is the direction towards the light source.
	Light r3.Vec

	// RawNormals skips normalizing surface normals before shading, so the
	// luminance scales with the ball's radius; ramp indices are still clamped.
	RawNormals bool

	// Scuff is the amplitude of a fixed surface texture added to the
	// luminance of white points; zero disables it.
	Scuff float64

	// ScuffSeed seeds the surface texture noise.
	ScuffSeed int64
}

// DefaultConfig returns the classic configuration: a 72 cell screen, the
// default ramp, camera at z = -190, ball centered at z = -184, and light
// coming from above and in front, spinning about the y axis.
func DefaultConfig() Config {
	return Config{
		ScreenSize:  72,
		Ramp:        []rune(DefaultRamp),
		Background:  ' ',
		FocalLength: 190,
		Center:      r3.Vec{Z: -184},
		Axis:        rotation.Y,
		Light:       r3.Vec{Y: -math.Sqrt2 / 2, Z: -math.Sqrt2 / 2},
	}
}

// Camera returns the camera position.
func (cfg Config) Camera() r3.Vec { return r3.Vec{Z: -cfg.FocalLength} }

// Validate reports the first problem that would make rendering meaningless.
func (cfg Config) Validate() error {
	switch {
	case cfg.ScreenSize <= 0:
		return fmt.Errorf("%w: screen size %d", ErrInvalidConfig, cfg.ScreenSize)
	case len(cfg.Ramp) == 0:
		return fmt.Errorf("%w: empty luminance ramp", ErrInvalidConfig)
	case cfg.FocalLength <= 0:
		return fmt.Errorf("%w: focal length %v", ErrInvalidConfig, cfg.FocalLength)
	case r3.Norm(cfg.Light) == 0:
		return fmt.Errorf("%w: zero light direction", ErrInvalidConfig)
	case cfg.Axis != rotation.X && cfg.Axis != rotation.Y && cfg.Axis != rotation.Z:
		return fmt.Errorf("%w: rotation axis %v", ErrInvalidConfig, cfg.Axis)
	case cfg.Scuff < 0:
		return fmt.Errorf("%w: negative scuff %v", ErrInvalidConfig, cfg.Scuff)
	}
	return nil
}
