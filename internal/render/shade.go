package render

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Shader maps surface normals to luminance ramp characters.
type Shader struct {
	ramp  []rune
	light r3.Vec
	raw   bool
}

// NewShader returns a shader for the given configuration.
func NewShader(cfg Config) *Shader {
	sh := &Shader{
		ramp:  append([]rune(nil), cfg.Ramp...),
		light: r3.Unit(cfg.Light),
		raw:   cfg.RawNormals,
	}
	if sh.raw {
		sh.light = cfg.Light
	}
	return sh
}

// Luminance returns the light falling on a surface with the given normal,
// offset by bias and floored at zero so the unlit side stays dimly visible.
func (sh *Shader) Luminance(normal r3.Vec, bias float64) float64 {
	if !sh.raw {
		if r3.Norm(normal) == 0 {
			return 0
		}
		normal = r3.Unit(normal)
	}
	l := r3.Dot(normal, sh.light) + bias
	if l < 0 {
		l = 0
	}
	return l
}

// Index returns the ramp index for a luminance, truncated toward zero and
// clamped to the ramp.
func (sh *Shader) Index(l float64) int {
	if l <= 0 {
		return 0
	}
	i := int(l * float64(len(sh.ramp)-1))
	if i >= len(sh.ramp) {
		i = len(sh.ramp) - 1
	}
	return i
}

// Shade returns the ramp character for a surface normal.
func (sh *Shader) Shade(normal r3.Vec, bias float64) rune {
	return sh.ramp[sh.Index(sh.Luminance(normal, bias))]
}
