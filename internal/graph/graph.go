// Package graph provides a small undirected adjacency-list graph over integer
// vertex indices, with the breadth-first queries needed to reason about
// distances on a mesh.
package graph

import "sort"

// Graph is an undirected graph over the vertices 0..Len()-1. Neighbor lists
// are kept sorted, so every traversal visits vertices in a deterministic
// order.
type Graph struct {
	adj [][]int
}

// New returns a graph with n vertices and no edges.
func New(n int) *Graph {
	return &Graph{adj: make([][]int, n)}
}

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.adj) }

// Edges returns the number of undirected edges.
func (g *Graph) Edges() int {
	n := 0
	for _, ns := range g.adj {
		n += len(ns)
	}
	return n / 2
}

// AddEdge connects u and v; adding an existing edge, or a self loop, does
// nothing.
func (g *Graph) AddEdge(u, v int) {
	if u == v {
		return
	}
	g.adj[u] = insert(g.adj[u], v)
	g.adj[v] = insert(g.adj[v], u)
}

func insert(ns []int, v int) []int {
	i := sort.SearchInts(ns, v)
	if i < len(ns) && ns[i] == v {
		return ns
	}
	ns = append(ns, 0)
	copy(ns[i+1:], ns[i:])
	ns[i] = v
	return ns
}

// Neighbors returns the sorted neighbors of u. The returned slice is shared
// with the graph and must not be modified.
func (g *Graph) Neighbors(u int) []int { return g.adj[u] }

// Within returns start and every vertex reachable from it in at most depth
// hops, in breadth-first order.
func (g *Graph) Within(start, depth int) []int {
	var res []int
	tr := g.Traverse(start)
	for tr.Traverse() {
		if tr.Depth() > depth {
			break
		}
		res = append(res, tr.Node())
	}
	return res
}

// ShortestPath returns a hop-count shortest path from start to end, both
// included. No path is returned if end is not reachable in at most maxDepth
// hops.
func (g *Graph) ShortestPath(start, end, maxDepth int) ([]int, bool) {
	tr := g.Traverse(start)
	for tr.Traverse() {
		if tr.Depth() > maxDepth {
			break
		}
		if tr.Node() == end {
			return tr.Path(), true
		}
	}
	return nil, false
}
