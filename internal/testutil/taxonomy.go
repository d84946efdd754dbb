// Package testutil provides random taxonomy generators and reference
// implementations shared by package tests.
//
// The reference side is built on gonum's graph packages so the hand-written
// traversals in digraph and sap are checked against an independent
// implementation.
package testutil

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"
)

// Unreachable marks a vertex with no path from any source.
const Unreachable = math.MaxInt

// Taxonomy is a randomly generated single-rooted DAG.
type Taxonomy struct {
	N     int
	Root  int
	Edges [][2]int // from, to
}

// RandomTaxonomy generates a single-rooted DAG with n vertices (n >= 1).
// Every non-root vertex gets one hypernym among the vertices created before
// it, plus up to extra further hypernyms, which keeps the graph acyclic and
// makes the root reachable from everything. Vertex ids are shuffled so the
// root is not always 0.
func RandomTaxonomy(seed uint64, n, extra int) Taxonomy {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	perm := rng.Perm(n)

	seen := make(map[[2]int]bool)
	var edges [][2]int
	add := func(from, to int) {
		e := [2]int{perm[from], perm[to]}
		if !seen[e] {
			seen[e] = true
			edges = append(edges, e)
		}
	}
	for v := 1; v < n; v++ {
		add(v, rng.IntN(v))
		for range rng.IntN(extra + 1) {
			add(v, rng.IntN(v))
		}
	}
	return Taxonomy{N: n, Root: perm[0], Edges: edges}
}

// Gonum builds a gonum directed graph from an edge list.
func Gonum(n int, edges [][2]int) *simple.DirectedGraph {
	g := simple.NewDirectedGraph()
	for v := range n {
		g.AddNode(simple.Node(v))
	}
	for _, e := range edges {
		g.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
	}
	return g
}

// IsAcyclic reports whether gonum can topologically sort the graph.
func IsAcyclic(n int, edges [][2]int) bool {
	_, err := topo.Sort(Gonum(n, edges))
	return err == nil
}

// Distances returns the hop distance from the nearest of sources to every
// vertex, or Unreachable. Each source is walked separately and the minimum
// is kept.
func Distances(g *simple.DirectedGraph, n int, sources []int) []int {
	dist := make([]int, n)
	for i := range dist {
		dist[i] = Unreachable
	}
	for _, s := range sources {
		var bf traverse.BreadthFirst
		bf.Walk(g, simple.Node(s), func(u graph.Node, d int) bool {
			if id := int(u.ID()); d < dist[id] {
				dist[id] = d
			}
			return false
		})
	}
	return dist
}

// Nearest returns the lowest-id vertex minimising the summed distance from
// both source sets, and that sum. It returns (-1, -1) if no vertex is
// reachable from both.
func Nearest(g *simple.DirectedGraph, n int, vs, ws []int) (ancestor, length int) {
	dv := Distances(g, n, vs)
	dw := Distances(g, n, ws)
	ancestor, length = -1, -1
	for x := range n {
		if dv[x] == Unreachable || dw[x] == Unreachable {
			continue
		}
		if sum := dv[x] + dw[x]; length < 0 || sum < length {
			ancestor, length = x, sum
		}
	}
	return ancestor, length
}
