// Package scatter lays out a ball's classified points as flat markers for a
// point-cloud viewer.
package scatter

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/borkshop/kickball/internal/rotation"
)

// Marker is a point placed on the view plane. Depth grows away from the
// viewer.
type Marker struct {
	X, Y  float64
	Depth float64
	Black bool
}

// View orients the ball: Yaw turns it about the vertical axis, then Pitch tips
// it about the horizontal one. Scale maps the unit ball onto the view plane
// around Center.
type View struct {
	Yaw, Pitch float64
	Scale      float64
	CenterX    float64
	CenterY    float64
}

// Scene holds the ball's point sets.
type Scene struct {
	Black, White []r3.Vec
	buf          []r3.Vec
	markers      []Marker
}

// Markers returns every point as a marker, farthest first so that nearer
// markers are painted over farther ones. The result is reused by the next
// call.
func (sc *Scene) Markers(v View) []Marker {
	yaw := rotation.Matrix(rotation.Y, v.Yaw)
	pitch := rotation.Matrix(rotation.X, v.Pitch)

	sc.markers = sc.markers[:0]
	add := func(pts []r3.Vec, black bool) {
		sc.buf = rotation.Apply(sc.buf[:0], yaw, pts, r3.Vec{})
		for _, p := range sc.buf {
			p = pitch.MulVec(p)
			sc.markers = append(sc.markers, Marker{
				X:     v.CenterX + v.Scale*p.X,
				Y:     v.CenterY + v.Scale*p.Y,
				Depth: p.Z,
				Black: black,
			})
		}
	}
	add(sc.White, false)
	add(sc.Black, true)

	sort.SliceStable(sc.markers, func(i, j int) bool {
		return sc.markers[i].Depth > sc.markers[j].Depth
	})
	return sc.markers
}
