package soccer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borkshop/kickball/internal/graph"
	"github.com/borkshop/kickball/internal/mesh"
	"github.com/borkshop/kickball/internal/soccer"
)

// icosahedronGraph builds the base icosahedron adjacency by hand, without the
// mesh generator.
func icosahedronGraph() *graph.Graph {
	g := graph.New(12)
	for _, f := range [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	} {
		g.AddEdge(f[0], f[1])
		g.AddEdge(f[1], f[2])
		g.AddEdge(f[2], f[0])
	}
	return g
}

func TestClassify_icosahedron(t *testing.T) {
	labels := soccer.Classify(icosahedronGraph(), 0)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, labels.BlackIndices())
	assert.Empty(t, labels.WhiteIndices())
}

// seamGraph has seeds 0-11, a two hop seam 0-12-1, a pendant vertex 13 off
// seed 2, and a three hop path 3-14-15-4.
func seamGraph() *graph.Graph {
	g := graph.New(16)
	for _, e := range [][2]int{
		{0, 12}, {12, 1},
		{2, 13},
		{3, 14}, {14, 15}, {15, 4},
	} {
		g.AddEdge(e[0], e[1])
	}
	return g
}

func TestClassify_seams(t *testing.T) {
	for _, tc := range []struct {
		name         string
		subdivisions int
		black        []int
		white        []int
	}{
		{
			name:         "seams only within key point distance",
			subdivisions: 1,
			black:        []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
			white:        []int{13, 14, 15},
		},
		{
			name:         "caps reach one hop",
			subdivisions: 2,
			black:        []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			labels := soccer.Classify(seamGraph(), tc.subdivisions)
			assert.Equal(t, tc.black, labels.BlackIndices())
			assert.Equal(t, tc.white, labels.WhiteIndices())
		})
	}
}

func TestClassify_icosphere(t *testing.T) {
	for _, tc := range []struct {
		subdivisions int
		black, white int
	}{
		{0, 12, 0},
		{1, 42, 0},
		{2, 102, 60},
		{3, 282, 360},
	} {
		m, err := mesh.Icosphere(tc.subdivisions)
		require.NoError(t, err)
		labels := soccer.Classify(m.Graph, tc.subdivisions)
		nb, nw := labels.Counts()
		assert.Equal(t, tc.black, nb, "black at level %d", tc.subdivisions)
		assert.Equal(t, tc.white, nw, "white at level %d", tc.subdivisions)
	}
}

func TestClassify_partitionAndDeterminism(t *testing.T) {
	for s := 0; s <= 4; s++ {
		m, err := mesh.Icosphere(s)
		require.NoError(t, err)

		a := soccer.Classify(m.Graph, s)
		b := soccer.Classify(m.Graph, s)
		assert.True(t, a.Equal(b), "classification at level %d differs between runs", s)

		seen := make(map[int]int, len(m.Vertices))
		for _, i := range a.BlackIndices() {
			seen[i]++
		}
		for _, i := range a.WhiteIndices() {
			seen[i]++
		}
		require.Len(t, seen, len(m.Vertices))
		for i, n := range seen {
			assert.Equal(t, 1, n, "vertex %d labeled %d times", i, n)
		}
		for u := 0; u < mesh.SeedCount; u++ {
			assert.True(t, a.Black(u), "seed %d is white", u)
		}
	}
}

func TestClassify_disconnectedSeed(t *testing.T) {
	g := graph.New(13)
	g.AddEdge(0, 12)
	labels := soccer.Classify(g, 3)
	assert.Equal(t, 13, labels.Len())
	nb, nw := labels.Counts()
	assert.Equal(t, 13, nb)
	assert.Equal(t, 0, nw)

	labels = soccer.Classify(graph.New(5), 0)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, labels.BlackIndices())
}

func TestPoints(t *testing.T) {
	black, white, err := soccer.Points(2)
	require.NoError(t, err)
	assert.Len(t, black, 102)
	assert.Len(t, white, 60)

	m := mesh.Icosahedron()
	assert.Equal(t, m.Vertices, black[:mesh.SeedCount])

	_, _, err = soccer.Points(-1)
	assert.Error(t, err)
}

func TestCapDepth(t *testing.T) {
	for s, want := range []int{0, 0, 1, 2, 5, 10, 21} {
		assert.Equal(t, want, soccer.CapDepth(s), "level %d", s)
	}
	assert.Equal(t, 64, soccer.KeyPointDistance(6))
}
