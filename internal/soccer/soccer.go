// Package soccer partitions the vertices of an icosphere into the black and
// white panels of a classic soccer ball.
//
// Every corner of the original icosahedron ("seed") grows a black cap whose
// radius is a third of the hop distance to a neighboring seed, and every pair
// of neighboring seeds is joined by a black seam along the shortest mesh path
// between them. Everything else is white.
package soccer

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/borkshop/kickball/internal/bitmap"
	"github.com/borkshop/kickball/internal/logging"
	"github.com/borkshop/kickball/internal/mesh"
)

// Graph is the read-only view of a mesh's vertex adjacency needed to classify
// it.
type Graph interface {
	Len() int
	Neighbors(u int) []int
	Within(start, depth int) []int
	ShortestPath(start, end, maxDepth int) ([]int, bool)
}

// Labels holds a black or white label for every vertex of a mesh.
type Labels struct {
	black *bitmap.Bitmap
}

// KeyPointDistance returns the hop distance between two neighboring seeds on
// an icosphere of the given subdivision level.
func KeyPointDistance(subdivisions int) int { return 1 << uint(subdivisions) }

// CapDepth returns how many hops a seed's black cap extends.
func CapDepth(subdivisions int) int { return KeyPointDistance(subdivisions) / 3 }

// Classify labels the vertices of an icosphere graph whose first
// mesh.SeedCount vertices are the seeds.
//
// Labeling only ever adds black vertices, so the result does not depend on
// the order in which caps and seams are processed. A seed that cannot reach
// its neighbors simply contributes no seams.
func Classify(g Graph, subdivisions int) *Labels {
	keyPointDistance := KeyPointDistance(subdivisions)
	depth := CapDepth(subdivisions)
	seeds := mesh.SeedCount
	if n := g.Len(); n < seeds {
		seeds = n
	}

	black := bitmap.New(g.Len())
	for u := 0; u < seeds; u++ {
		for _, v := range g.Within(u, depth) {
			black.Set(v, true)
		}
	}
	caps := black.Count()

	seams := 0
	for u := 0; u < seeds; u++ {
		for v := u + 1; v < seeds; v++ {
			path, ok := g.ShortestPath(u, v, keyPointDistance)
			if !ok {
				continue
			}
			seams++
			for _, w := range path {
				black.Set(w, true)
			}
		}
	}

	labels := &Labels{black: black}
	nb, nw := labels.Counts()
	logging.Logger().Debug("classified soccer ball",
		"subdivisions", subdivisions,
		"capDepth", depth,
		"capVertices", caps,
		"seams", seams,
		"black", nb,
		"white", nw)
	return labels
}

// Len returns the number of labeled vertices.
func (l *Labels) Len() int { return l.black.Len }

// Black returns whether vertex i is black.
func (l *Labels) Black(i int) bool { return l.black.At(i) }

// BlackIndices returns the black vertices in increasing order.
func (l *Labels) BlackIndices() []int { return l.black.Indices(true) }

// WhiteIndices returns the white vertices in increasing order.
func (l *Labels) WhiteIndices() []int { return l.black.Indices(false) }

// Counts returns how many vertices are black and white.
func (l *Labels) Counts() (black, white int) {
	black = l.black.Count()
	return black, l.black.Len - black
}

// Equal returns true if both label sets are identical.
func (l *Labels) Equal(other *Labels) bool { return l.black.Equal(other.black) }

// Split partitions vertex positions by label, preserving vertex order.
func (l *Labels) Split(vertices []r3.Vec) (black, white []r3.Vec) {
	nb, nw := l.Counts()
	black = make([]r3.Vec, 0, nb)
	white = make([]r3.Vec, 0, nw)
	for i, v := range vertices {
		if l.Black(i) {
			black = append(black, v)
		} else {
			white = append(white, v)
		}
	}
	return black, white
}

// Points generates an icosphere and returns its black and white vertex
// positions.
func Points(subdivisions int) (black, white []r3.Vec, err error) {
	m, err := mesh.Icosphere(subdivisions)
	if err != nil {
		return nil, nil, err
	}
	black, white = Classify(m.Graph, subdivisions).Split(m.Vertices)
	return black, white, nil
}
