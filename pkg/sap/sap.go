package sap

import (
	"errors"
	"slices"
	"time"

	errs "github.com/matzehuels/wordnet/pkg/errors"
	"github.com/matzehuels/wordnet/pkg/observability"
)

// NoPath is the length and ancestor reported when the two vertex sets share
// no common ancestor. It cannot occur on a validated single-rooted DAG.
const NoPath = -1

var (
	// ErrInvalidVertex is returned when a query names a vertex outside [0, V).
	ErrInvalidVertex = errors.New("invalid vertex")

	// ErrInvalidArgument is returned when a query vertex set is nil or empty.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Graph is the read-only view of a directed graph the engine traverses.
// Vertices are 0..V()-1 and Out(v) lists the successors (hypernyms) of v.
// Both *digraph.Digraph and *digraph.DAG satisfy it.
type Graph interface {
	V() int
	Out(v int) []int
}

// Result is the outcome of a shortest ancestral path query.
type Result struct {
	Ancestor int // nearest common ancestor, or NoPath
	Length   int // summed hop count through Ancestor, or NoPath
}

// Found reports whether a common ancestor exists.
func (r Result) Found() bool { return r.Ancestor != NoPath }

// Path is a shortest ancestral path with both legs spelled out.
//
// Source starts at the source vertex closest to Ancestor and ends at
// Ancestor; Target does the same for the target set. Both legs include the
// ancestor, so len(Source)+len(Target)-2 == Length.
type Path struct {
	Ancestor int
	Length   int
	Source   []int
	Target   []int
}

// Found reports whether a common ancestor exists.
func (p Path) Found() bool { return p.Ancestor != NoPath }

// Vertices returns the path as one walk from the source side, up to the
// ancestor and down to the target side.
func (p Path) Vertices() []int {
	if !p.Found() {
		return nil
	}
	walk := slices.Clone(p.Source)
	for i := len(p.Target) - 2; i >= 0; i-- {
		walk = append(walk, p.Target[i])
	}
	return walk
}

// Engine answers shortest ancestral path queries over a fixed graph.
//
// The engine keeps no per-query state: every call allocates its own
// distance records, so one Engine may serve concurrent queries as long as
// the graph is not modified.
type Engine struct {
	g Graph
}

// New creates an engine over g. The graph is held by reference and never
// modified.
func New(g Graph) *Engine {
	return &Engine{g: g}
}

// Length returns the length of the shortest ancestral path between v and w,
// or NoPath if they have no common ancestor.
func (e *Engine) Length(v, w int) (int, error) {
	r, err := e.Query([]int{v}, []int{w})
	if err != nil {
		return NoPath, err
	}
	return r.Length, nil
}

// Ancestor returns the nearest common ancestor of v and w, or NoPath.
func (e *Engine) Ancestor(v, w int) (int, error) {
	r, err := e.Query([]int{v}, []int{w})
	if err != nil {
		return NoPath, err
	}
	return r.Ancestor, nil
}

// LengthSets returns the length of the shortest ancestral path between any
// vertex of vs and any vertex of ws, or NoPath.
func (e *Engine) LengthSets(vs, ws []int) (int, error) {
	r, err := e.Query(vs, ws)
	if err != nil {
		return NoPath, err
	}
	return r.Length, nil
}

// AncestorSets returns the common ancestor on a shortest ancestral path
// between any vertex of vs and any vertex of ws, or NoPath.
func (e *Engine) AncestorSets(vs, ws []int) (int, error) {
	r, err := e.Query(vs, ws)
	if err != nil {
		return NoPath, err
	}
	return r.Ancestor, nil
}

// Query computes the nearest common ancestor and path length between the
// vertex sets vs and ws in a single pass.
//
// Each set is expanded with one multi-source breadth-first search along
// Out edges, every member starting at distance 0. A vertex reached by both
// searches is a candidate and costs the sum of its two distances. Among
// the cheapest candidates the lowest vertex id wins.
//
// Returns ErrInvalidArgument for a nil or empty set and ErrInvalidVertex for
// an id outside [0, V), before any traversal. A missing ancestor is not an
// error: the result is {NoPath, NoPath}.
func (e *Engine) Query(vs, ws []int) (Result, error) {
	if err := e.check(vs, ws); err != nil {
		return Result{NoPath, NoPath}, err
	}
	start := time.Now()
	fromV := e.bfs(vs, false)
	fromW := e.bfs(ws, false)
	r := nearest(fromV.dist, fromW.dist)
	observability.Query().OnQuery(len(vs), len(ws), time.Since(start), r.Found())
	return r, nil
}

// Path is like [Engine.Query] but also reconstructs both legs of the path.
func (e *Engine) Path(vs, ws []int) (Path, error) {
	if err := e.check(vs, ws); err != nil {
		return Path{Ancestor: NoPath, Length: NoPath}, err
	}
	start := time.Now()
	fromV := e.bfs(vs, true)
	fromW := e.bfs(ws, true)
	r := nearest(fromV.dist, fromW.dist)
	observability.Query().OnQuery(len(vs), len(ws), time.Since(start), r.Found())

	p := Path{Ancestor: r.Ancestor, Length: r.Length}
	if r.Found() {
		p.Source = fromV.walkTo(r.Ancestor)
		p.Target = fromW.walkTo(r.Ancestor)
	}
	return p, nil
}

func (e *Engine) check(vs, ws []int) error {
	if err := e.checkSet("source", vs); err != nil {
		return err
	}
	return e.checkSet("target", ws)
}

func (e *Engine) checkSet(side string, set []int) error {
	if len(set) == 0 {
		return errs.Wrap(errs.ErrCodeInvalidArgument, ErrInvalidArgument,
			"%s vertex set must not be empty", side)
	}
	n := e.g.V()
	for _, v := range set {
		if v < 0 || v >= n {
			return errs.Wrap(errs.ErrCodeInvalidVertex, ErrInvalidVertex,
				"%s vertex %d not in [0, %d)", side, v, n)
		}
	}
	return nil
}

// nearest folds over the vertex ids in ascending order carrying the best
// candidate so far. Only a strictly smaller cost replaces the incumbent.
func nearest(a, b []int) Result {
	best := Result{Ancestor: NoPath, Length: NoPath}
	for v := range a {
		if a[v] == unreached || b[v] == unreached {
			continue
		}
		if cost := a[v] + b[v]; !best.Found() || cost < best.Length {
			best = Result{Ancestor: v, Length: cost}
		}
	}
	return best
}
