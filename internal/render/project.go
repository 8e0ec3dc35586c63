package render

import (
	"fmt"
	"image"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Projector culls back facing points and projects the rest onto the screen.
type Projector struct {
	camera r3.Vec
	center r3.Vec
	k      float64
	size   int
	half   float64
}

// NewProjector returns a projector for the given configuration.
func NewProjector(cfg Config) *Projector {
	return &Projector{
		camera: cfg.Camera(),
		center: cfg.Center,
		k:      cfg.FocalLength,
		size:   cfg.ScreenSize,
		half:   float64(cfg.ScreenSize) / 2,
	}
}

// Normal returns the outward surface normal at a point on the ball, in camera
// space. It is not normalized.
func (pr *Projector) Normal(p r3.Vec) r3.Vec { return r3.Sub(p, pr.center) }

// Visible returns whether the surface at p faces the camera. Points exactly
// on the silhouette count as visible.
func (pr *Projector) Visible(p r3.Vec) bool {
	return r3.Dot(pr.Normal(p), r3.Sub(pr.camera, p)) >= 0
}

// Project returns the screen cell of a camera space point, or false if the
// point faces away from the camera. Coordinates are truncated toward zero.
//
// A visible point outside the screen means the configuration cannot hold the
// ball; Project panics rather than clip it.
func (pr *Projector) Project(p r3.Vec) (image.Point, bool) {
	if !pr.Visible(p) {
		return image.Point{}, false
	}
	pt, ok := pr.cell(p)
	if !ok {
		panic(fmt.Sprintf("render: point %v projects to %v, outside the %[3]dx%[3]d screen", p, pt, pr.size))
	}
	return pt, true
}

// cell projects p and reports whether it lands on the screen in front of the
// camera.
func (pr *Projector) cell(p r3.Vec) (image.Point, bool) {
	z := pr.k + p.Z
	if z <= 0 {
		return image.Point{}, false
	}
	s := pr.k / z
	pt := image.Pt(
		int(p.X*s+pr.half),
		int(p.Y*s+pr.half),
	)
	return pt, pt.X >= 0 && pt.X < pr.size && pt.Y >= 0 && pt.Y < pr.size
}

const silhouetteSamples = 1024

// Holds reports whether every point of a ball of the given radius around the
// center projects onto the screen, however the ball is turned. The ball's
// image is bounded by the image of its silhouette, the circle of points
// whose tangent passes through the camera.
func (pr *Projector) Holds(radius float64) bool {
	d := r3.Sub(pr.center, pr.camera)
	dist := r3.Norm(d)
	if dist <= radius {
		return false
	}
	a := r3.Scale(1/dist, d)
	h := r3.Vec{X: 1}
	if math.Abs(a.X) > 0.9 {
		h = r3.Vec{Y: 1}
	}
	e1 := r3.Unit(r3.Cross(a, h))
	e2 := r3.Cross(a, e1)

	base := r3.Sub(pr.center, r3.Scale(radius*radius/dist, a))
	rs := radius * math.Sqrt(1-(radius*radius)/(dist*dist))
	for i := 0; i < silhouetteSamples; i++ {
		s, c := math.Sincos(2 * math.Pi * float64(i) / silhouetteSamples)
		p := r3.Add(base, r3.Add(r3.Scale(rs*c, e1), r3.Scale(rs*s, e2)))
		if _, ok := pr.cell(p); !ok {
			return false
		}
	}
	return true
}
