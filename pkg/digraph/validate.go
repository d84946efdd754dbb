package digraph

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	errs "github.com/matzehuels/wordnet/pkg/errors"
)

var (
	// ErrNotAcyclic is returned by [TopologicalOrder] and [Validate] when the
	// graph contains a directed cycle. The wrapping error names the cycle.
	ErrNotAcyclic = errors.New("graph contains a cycle")

	// ErrNotSingleRooted is returned by [Validate] when the graph does not
	// have exactly one vertex of out-degree zero.
	ErrNotSingleRooted = errors.New("graph must have exactly one root")
)

// DAG is a [Digraph] that has been proven acyclic and single-rooted.
// The only way to obtain one is [Validate], so holding a *DAG means the
// invariant holds; it is never rechecked.
type DAG struct {
	*Digraph
	root  int
	order []int
}

// Root returns the unique vertex with out-degree zero. Every vertex of the
// DAG reaches it.
func (d *DAG) Root() int { return d.root }

// Order returns a copy of a topological order: every edge goes from an
// earlier vertex to a later one, so the root is last.
func (d *DAG) Order() []int { return slices.Clone(d.order) }

// Validate checks that g is a rooted DAG and returns it wrapped as a [DAG].
// It verifies two constraints, in order:
//
//  1. The graph is acyclic (ErrNotAcyclic, coded INVALID_TAXONOMY)
//  2. Exactly one vertex has out-degree zero (ErrNotSingleRooted, coded
//     INVALID_TAXONOMY). An empty graph has zero such vertices.
//
// Validation runs in O(V+E). A nil g is treated as the empty graph.
func Validate(g *Digraph) (*DAG, error) {
	if g == nil {
		g = &Digraph{}
	}
	order, err := TopologicalOrder(g)
	if err != nil {
		return nil, err
	}
	sinks := g.Sinks()
	if len(sinks) != 1 {
		return nil, errs.Wrap(errs.ErrCodeInvalidTaxonomy, ErrNotSingleRooted,
			"found %d roots%s", len(sinks), sampleIDs(sinks))
	}
	return &DAG{Digraph: g, root: sinks[0], order: order}, nil
}

// frame is one level of the iterative depth-first search.
type frame struct {
	v    int
	next int // index of the next successor to explore
}

// TopologicalOrder returns the vertices of g ordered so that every edge
// goes from an earlier vertex to a later one. It fails fast with
// ErrNotAcyclic on the first back edge found, reporting the cycle.
// The depth-first search keeps an explicit stack.
func TopologicalOrder(g *Digraph) ([]int, error) {
	const (
		white = iota
		gray
		black
	)

	n := g.V()
	color := make([]uint8, n)
	post := make([]int, 0, n)
	var stack []frame

	for start := range n {
		if color[start] != white {
			continue
		}
		stack = append(stack[:0], frame{v: start})
		color[start] = gray

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			out := g.adj[top.v]
			if top.next == len(out) {
				color[top.v] = black
				post = append(post, top.v)
				stack = stack[:len(stack)-1]
				continue
			}
			w := out[top.next]
			top.next++
			switch color[w] {
			case white:
				color[w] = gray
				stack = append(stack, frame{v: w})
			case gray:
				return nil, errs.Wrap(errs.ErrCodeInvalidTaxonomy, ErrNotAcyclic,
					"cycle: %s", formatCycle(stack, w))
			}
		}
	}

	slices.Reverse(post)
	return post, nil
}

// formatCycle renders the gray path from w back to w, e.g. "3 -> 5 -> 3".
func formatCycle(stack []frame, w int) string {
	var parts []string
	found := false
	for _, f := range stack {
		if f.v == w {
			found = true
		}
		if found {
			parts = append(parts, strconv.Itoa(f.v))
		}
	}
	parts = append(parts, strconv.Itoa(w))
	return strings.Join(parts, " -> ")
}

// sampleIDs formats up to five ids for error messages.
func sampleIDs(ids []int) string {
	if len(ids) == 0 {
		return ""
	}
	const limit = 5
	var b strings.Builder
	b.WriteString(" (")
	for i, id := range ids {
		if i == limit {
			fmt.Fprintf(&b, ", ... %d more", len(ids)-limit)
			break
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(id))
	}
	b.WriteString(")")
	return b.String()
}
