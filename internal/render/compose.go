package render

import (
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/borkshop/kickball/internal/rotation"
)

// scuffScale is the spatial frequency of the surface texture on a unit ball.
const scuffScale = 6

// Compositor draws the ball's black and white point sets into frames. The
// point sets are fixed at construction and shared by every frame; Compose is
// safe for concurrent use.
type Compositor struct {
	cfg    Config
	proj   *Projector
	shader *Shader
	black  []r3.Vec
	white  []r3.Vec
	scuff  []float64
}

// NewCompositor returns a compositor for model space point sets. The points
// must fit on screen at every rotation.
func NewCompositor(cfg Config, black, white []r3.Vec) (*Compositor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var radius float64
	for _, pts := range [][]r3.Vec{black, white} {
		for _, p := range pts {
			radius = math.Max(radius, r3.Norm(p))
		}
	}
	proj := NewProjector(cfg)
	if len(black)+len(white) > 0 && !proj.Holds(radius) {
		return nil, fmt.Errorf("%w: a ball of radius %g at %v does not fit a %dx%d screen with focal length %g",
			ErrInvalidConfig, radius, cfg.Center, cfg.ScreenSize, cfg.ScreenSize, cfg.FocalLength)
	}
	c := &Compositor{
		cfg:    cfg,
		proj:   proj,
		shader: NewShader(cfg),
		black:  black,
		white:  white,
	}
	if cfg.Scuff > 0 {
		noise := opensimplex.New(cfg.ScuffSeed)
		c.scuff = make([]float64, len(white))
		for i, p := range white {
			p = r3.Scale(scuffScale, p)
			c.scuff[i] = cfg.Scuff * noise.Eval3(p.X, p.Y, p.Z)
		}
	}
	return c, nil
}

// Config returns the compositor's configuration.
func (c *Compositor) Config() Config { return c.cfg }

// Points returns how many black and white points the compositor draws.
func (c *Compositor) Points() (black, white int) { return len(c.black), len(c.white) }

// NewFrame returns an empty frame sized for this compositor.
func (c *Compositor) NewFrame() *Frame {
	return NewFrame(c.cfg.ScreenSize, c.cfg.Background)
}

// Compose renders the ball rotated by angle radians into a new frame.
func (c *Compositor) Compose(angle float64) *Frame {
	f := c.NewFrame()
	c.ComposeInto(f, angle)
	return f
}

// ComposeInto clears the frame and renders the ball rotated by angle
// radians into it.
//
// White points are shaded first; black points are drawn afterwards as
// background, so seams win any cell they share with a white point.
func (c *Compositor) ComposeInto(f *Frame, angle float64) {
	f.Fill(c.cfg.Background)
	f.Angle = angle
	m := rotation.Matrix(c.cfg.Axis, angle)

	for i, p := range c.white {
		p = r3.Add(m.MulVec(p), c.cfg.Center)
		pt, ok := c.proj.Project(p)
		if !ok {
			continue
		}
		var bias float64
		if c.scuff != nil {
			bias = c.scuff[i]
		}
		f.Set(pt.X, pt.Y, c.shader.Shade(c.proj.Normal(p), bias))
	}

	for _, p := range c.black {
		p = r3.Add(m.MulVec(p), c.cfg.Center)
		if pt, ok := c.proj.Project(p); ok {
			f.Set(pt.X, pt.Y, c.cfg.Background)
		}
	}
}
