package digraph

import (
	"errors"
	"fmt"
	"slices"

	errs "github.com/matzehuels/wordnet/pkg/errors"
)

var (
	// ErrInvalidVertexCount is returned by [New] when the vertex count is negative.
	ErrInvalidVertexCount = errors.New("vertex count must not be negative")

	// ErrInvalidEdge is returned by [Builder.AddEdge] and [New] when an edge
	// endpoint lies outside [0, V). The error is wrapped with both endpoints.
	ErrInvalidEdge = errors.New("invalid edge endpoint")

	// ErrOutOfRange is returned by [Digraph.Neighbors] for a vertex outside [0, V).
	ErrOutOfRange = errors.New("vertex out of range")
)

// Edge is a directed edge From -> To. In a taxonomy, To is a hypernym of From.
type Edge struct {
	From int
	To   int
}

// Digraph is an immutable directed graph over the vertices 0..V-1.
//
// The zero value is an empty graph. Build one with [NewBuilder] or [New];
// once built it is never modified, so it is safe for concurrent reads.
type Digraph struct {
	adj   [][]int // vertex -> successor ids, in insertion order
	indeg []int
	edges int
}

// Builder accumulates edges for a [Digraph] with a fixed vertex count.
// A Builder is not safe for concurrent use and must not be reused after Build.
type Builder struct {
	n     int
	adj   [][]int
	indeg []int
	edges int
}

// NewBuilder returns a builder for a graph with n vertices.
// A negative n is treated as zero.
func NewBuilder(n int) *Builder {
	if n < 0 {
		n = 0
	}
	return &Builder{
		n:     n,
		adj:   make([][]int, n),
		indeg: make([]int, n),
	}
}

// AddEdge adds the edge from -> to. Returns ErrInvalidEdge (coded
// INVALID_EDGE) if either endpoint is outside [0, n). Parallel edges are
// kept; they never change traversal distances.
func (b *Builder) AddEdge(from, to int) error {
	if from < 0 || from >= b.n || to < 0 || to >= b.n {
		return errs.Wrap(errs.ErrCodeInvalidEdge, ErrInvalidEdge,
			"edge %d->%d with %d vertices", from, to, b.n)
	}
	b.adj[from] = append(b.adj[from], to)
	b.indeg[to]++
	b.edges++
	return nil
}

// Build freezes the accumulated edges into a Digraph.
func (b *Builder) Build() *Digraph {
	g := &Digraph{adj: b.adj, indeg: b.indeg, edges: b.edges}
	b.adj, b.indeg = nil, nil
	return g
}

// New builds a graph with n vertices from an edge list.
// Returns ErrInvalidVertexCount for negative n and ErrInvalidEdge for the
// first edge with an endpoint outside [0, n).
func New(n int, edges []Edge) (*Digraph, error) {
	if n < 0 {
		return nil, errs.Wrap(errs.ErrCodeInvalidArgument, ErrInvalidVertexCount, "n = %d", n)
	}
	b := NewBuilder(n)
	for _, e := range edges {
		if err := b.AddEdge(e.From, e.To); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// V returns the number of vertices.
func (g *Digraph) V() int { return len(g.adj) }

// E returns the number of edges.
func (g *Digraph) E() int { return g.edges }

// Out returns the successors of v without bounds checking beyond the
// runtime's own. Traversals call it after validating their inputs.
// The returned slice must not be modified.
func (g *Digraph) Out(v int) []int { return g.adj[v] }

// Neighbors returns the successors of v (its hypernyms in a taxonomy).
// Returns ErrOutOfRange (coded OUT_OF_RANGE) if v is not a vertex.
// The returned slice is a read-only view.
func (g *Digraph) Neighbors(v int) ([]int, error) {
	if !g.Has(v) {
		return nil, errs.Wrap(errs.ErrCodeOutOfRange, ErrOutOfRange,
			"vertex %d not in [0, %d)", v, g.V())
	}
	return g.adj[v], nil
}

// Has reports whether v is a vertex of g.
func (g *Digraph) Has(v int) bool { return v >= 0 && v < len(g.adj) }

// OutDegree returns the number of outgoing edges from v, or 0 if v is not a vertex.
func (g *Digraph) OutDegree(v int) int {
	if !g.Has(v) {
		return 0
	}
	return len(g.adj[v])
}

// InDegree returns the number of incoming edges to v, or 0 if v is not a vertex.
func (g *Digraph) InDegree(v int) int {
	if !g.Has(v) {
		return 0
	}
	return g.indeg[v]
}

// Sinks returns the vertices with no outgoing edges in ascending order.
// In a taxonomy these are the roots.
func (g *Digraph) Sinks() []int {
	var sinks []int
	for v, out := range g.adj {
		if len(out) == 0 {
			sinks = append(sinks, v)
		}
	}
	return sinks
}

// Sources returns the vertices with no incoming edges in ascending order.
func (g *Digraph) Sources() []int {
	var sources []int
	for v, d := range g.indeg {
		if d == 0 {
			sources = append(sources, v)
		}
	}
	return sources
}

// Edges returns a copy of all edges ordered by source vertex, then by
// insertion order.
func (g *Digraph) Edges() []Edge {
	edges := make([]Edge, 0, g.edges)
	for v, out := range g.adj {
		for _, w := range out {
			edges = append(edges, Edge{From: v, To: w})
		}
	}
	return edges
}

// String returns a short summary such as "digraph(V=4, E=3)".
func (g *Digraph) String() string {
	return fmt.Sprintf("digraph(V=%d, E=%d)", g.V(), g.E())
}

// HasEdge reports whether the edge v -> w exists.
func (g *Digraph) HasEdge(v, w int) bool {
	if !g.Has(v) {
		return false
	}
	return slices.Contains(g.adj[v], w)
}
