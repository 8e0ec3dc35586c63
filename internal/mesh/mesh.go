// Package mesh generates triangulated sphere meshes.
//
// An icosphere starts as a regular icosahedron inscribed in the unit sphere;
// every subdivision splits each triangle into four through its edge midpoints,
// which are then pushed back out onto the sphere. Vertices are only ever
// appended, so the first SeedCount vertices of any icosphere are the corners
// of the original icosahedron.
package mesh

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/borkshop/kickball/internal/graph"
	"github.com/borkshop/kickball/internal/logging"
)

// SeedCount is the number of icosahedron corners leading every icosphere's
// vertex list.
const SeedCount = 12

// Mesh is a triangulated surface with its vertex adjacency graph.
type Mesh struct {
	Vertices []r3.Vec
	Faces    [][3]int
	Graph    *graph.Graph
}

var phi = (1 + math.Sqrt(5)) / 2

var (
	icosahedronVertices = []r3.Vec{
		{X: -1, Y: phi}, {X: 1, Y: phi}, {X: -1, Y: -phi}, {X: 1, Y: -phi},
		{Y: -1, Z: phi}, {Y: 1, Z: phi}, {Y: -1, Z: -phi}, {Y: 1, Z: -phi},
		{X: phi, Z: -1}, {X: phi, Z: 1}, {X: -phi, Z: -1}, {X: -phi, Z: 1},
	}

	icosahedronFaces = [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
)

// Icosahedron returns the unit icosahedron.
func Icosahedron() *Mesh {
	m := &Mesh{
		Vertices: make([]r3.Vec, len(icosahedronVertices)),
		Faces:    make([][3]int, len(icosahedronFaces)),
	}
	for i, v := range icosahedronVertices {
		m.Vertices[i] = r3.Unit(v)
	}
	copy(m.Faces, icosahedronFaces)
	m.Graph = buildGraph(len(m.Vertices), m.Faces)
	return m
}

// Icosphere returns the unit icosahedron subdivided the given number of
// times; it has 10*4^subdivisions + 2 vertices.
func Icosphere(subdivisions int) (*Mesh, error) {
	if subdivisions < 0 {
		return nil, fmt.Errorf("invalid subdivision level %d", subdivisions)
	}
	if subdivisions > 10 {
		return nil, fmt.Errorf("subdivision level %d is too large", subdivisions)
	}
	m := Icosahedron()
	if subdivisions > 0 {
		for i := 0; i < subdivisions; i++ {
			m.subdivide()
		}
		m.Graph = buildGraph(len(m.Vertices), m.Faces)
	}
	logging.Logger().Debug("generated icosphere",
		"subdivisions", subdivisions,
		"vertices", len(m.Vertices),
		"faces", len(m.Faces),
		"edges", m.Graph.Edges())
	return m, nil
}

// subdivide splits every face into four, leaving the graph stale.
func (m *Mesh) subdivide() {
	mids := make(map[[2]int]int, len(m.Faces)*3/2)
	midpoint := func(a, b int) int {
		key := [2]int{a, b}
		if b < a {
			key = [2]int{b, a}
		}
		if i, ok := mids[key]; ok {
			return i
		}
		i := len(m.Vertices)
		m.Vertices = append(m.Vertices, r3.Unit(r3.Add(m.Vertices[a], m.Vertices[b])))
		mids[key] = i
		return i
	}

	faces := make([][3]int, 0, len(m.Faces)*4)
	for _, f := range m.Faces {
		a, b, c := f[0], f[1], f[2]
		ab, bc, ca := midpoint(a, b), midpoint(b, c), midpoint(c, a)
		faces = append(faces,
			[3]int{a, ab, ca},
			[3]int{b, bc, ab},
			[3]int{c, ca, bc},
			[3]int{ab, bc, ca},
		)
	}
	m.Faces = faces
}

func buildGraph(n int, faces [][3]int) *graph.Graph {
	g := graph.New(n)
	for _, f := range faces {
		g.AddEdge(f[0], f[1])
		g.AddEdge(f[1], f[2])
		g.AddEdge(f[2], f[0])
	}
	return g
}
