package graph

// Traverser walks a graph breadth first from one or more seed vertices. Each
// vertex is visited once, at its hop distance from the nearest seed.
type Traverser struct {
	g      *Graph
	parent []int
	depth  []int
	q      []int
	head   int
	node   int
}

const unseen = -2

// Traverse returns a breadth-first traverser seeded with the given vertices.
func (g *Graph) Traverse(seed ...int) *Traverser {
	tr := &Traverser{g: g}
	tr.Init(seed...)
	return tr
}

// Init resets the traverser to start over from the given seeds, re-using its
// allocations.
func (tr *Traverser) Init(seed ...int) {
	n := tr.g.Len()
	if cap(tr.parent) < n {
		tr.parent = make([]int, n)
		tr.depth = make([]int, n)
	}
	tr.parent = tr.parent[:n]
	tr.depth = tr.depth[:n]
	for i := range tr.parent {
		tr.parent[i] = unseen
		tr.depth[i] = -1
	}
	tr.q = tr.q[:0]
	tr.head = 0
	tr.node = -1
	for _, id := range seed {
		if tr.parent[id] != unseen {
			continue
		}
		tr.parent[id] = -1
		tr.depth[id] = 0
		tr.q = append(tr.q, id)
	}
}

// Traverse advances to the next vertex, returning false once every reachable
// vertex has been visited.
func (tr *Traverser) Traverse() bool {
	if tr.head >= len(tr.q) {
		tr.node = -1
		return false
	}
	u := tr.q[tr.head]
	tr.head++
	for _, v := range tr.g.adj[u] {
		if tr.parent[v] == unseen {
			tr.parent[v] = u
			tr.depth[v] = tr.depth[u] + 1
			tr.q = append(tr.q, v)
		}
	}
	tr.node = u
	return true
}

// Node returns the current vertex.
func (tr *Traverser) Node() int { return tr.node }

// Depth returns the hop distance of the current vertex from its seed.
func (tr *Traverser) Depth() int { return tr.depth[tr.node] }

// Path returns the discovery path from a seed to the current vertex.
func (tr *Traverser) Path() []int {
	path := make([]int, tr.depth[tr.node]+1)
	for i, u := len(path)-1, tr.node; i >= 0; i, u = i-1, tr.parent[u] {
		path[i] = u
	}
	return path
}
