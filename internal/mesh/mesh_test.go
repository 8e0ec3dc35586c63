package mesh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/borkshop/kickball/internal/mesh"
)

func TestIcosahedron(t *testing.T) {
	m := mesh.Icosahedron()
	require.Len(t, m.Vertices, mesh.SeedCount)
	assert.Len(t, m.Faces, 20)
	assert.Equal(t, 30, m.Graph.Edges())

	edge := r3.Norm(r3.Sub(m.Vertices[0], m.Vertices[m.Graph.Neighbors(0)[0]]))
	for u := 0; u < mesh.SeedCount; u++ {
		assert.Len(t, m.Graph.Neighbors(u), 5, "degree of %d", u)
		assert.InDelta(t, 1, r3.Norm(m.Vertices[u]), 1e-12)
		for _, v := range m.Graph.Neighbors(u) {
			assert.InDelta(t, edge, r3.Norm(r3.Sub(m.Vertices[u], m.Vertices[v])), 1e-12)
		}
	}
}

func TestIcosphere(t *testing.T) {
	for s := 0; s <= 4; s++ {
		m, err := mesh.Icosphere(s)
		require.NoError(t, err)

		n := 10*int(math.Pow(4, float64(s))) + 2
		assert.Len(t, m.Vertices, n, "vertices at level %d", s)
		assert.Len(t, m.Faces, 20<<(2*s), "faces at level %d", s)
		assert.Equal(t, 3*len(m.Faces)/2, m.Graph.Edges(), "edges at level %d", s)

		ico := mesh.Icosahedron()
		for u := 0; u < mesh.SeedCount; u++ {
			assert.Equal(t, ico.Vertices[u], m.Vertices[u], "seed %d moved", u)
			assert.Len(t, m.Graph.Neighbors(u), 5, "seed %d degree", u)
			for _, v := range ico.Graph.Neighbors(u) {
				path, ok := m.Graph.ShortestPath(u, v, 1<<s)
				if assert.True(t, ok, "seeds %d and %d at level %d", u, v, s) {
					assert.Len(t, path, 1<<s+1)
				}
			}
		}
		for i, v := range m.Vertices {
			assert.InDelta(t, 1, r3.Norm(v), 1e-9, "vertex %d off the sphere", i)
		}
	}
}

func TestIcosphere_invalid(t *testing.T) {
	_, err := mesh.Icosphere(-1)
	assert.Error(t, err)
	_, err = mesh.Icosphere(11)
	assert.Error(t, err)
}
