package sap

import (
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/wordnet/internal/testutil"
	"github.com/matzehuels/wordnet/pkg/digraph"
	errs "github.com/matzehuels/wordnet/pkg/errors"
	"github.com/matzehuels/wordnet/pkg/observability"
)

func mustDAG(t testing.TB, n int, edges ...digraph.Edge) *digraph.DAG {
	t.Helper()
	g, err := digraph.New(n, edges)
	if err != nil {
		t.Fatalf("digraph.New() error = %v", err)
	}
	d, err := digraph.Validate(g)
	if err != nil {
		t.Fatalf("digraph.Validate() error = %v", err)
	}
	return d
}

// star: 0 animal <- 1 dog, 2 cat, 3 pet
func star(t testing.TB) *Engine {
	return New(mustDAG(t, 4, digraph.Edge{From: 1, To: 0}, digraph.Edge{From: 2, To: 0}, digraph.Edge{From: 3, To: 0}))
}

// chain: 2 -> 1 -> 0
func chain(t testing.TB) *Engine {
	return New(mustDAG(t, 3, digraph.Edge{From: 2, To: 1}, digraph.Edge{From: 1, To: 0}))
}

func TestEngine_Scenarios(t *testing.T) {
	tests := []struct {
		name         string
		engine       *Engine
		v, w         int
		wantAncestor int
		wantLength   int
	}{
		{"star siblings", star(t), 1, 2, 0, 2},
		{"star no direct edge", star(t), 1, 3, 0, 2},
		{"star leaf to root", star(t), 3, 0, 0, 1},
		{"chain bottom to root", chain(t), 2, 0, 0, 2},
		{"chain bottom to middle", chain(t), 2, 1, 1, 1},
		{"chain same vertex", chain(t), 2, 2, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := tt.engine.Ancestor(tt.v, tt.w)
			if err != nil {
				t.Fatalf("Ancestor() error = %v", err)
			}
			if a != tt.wantAncestor {
				t.Errorf("Ancestor(%d, %d) = %d, want %d", tt.v, tt.w, a, tt.wantAncestor)
			}
			l, err := tt.engine.Length(tt.v, tt.w)
			if err != nil {
				t.Fatalf("Length() error = %v", err)
			}
			if l != tt.wantLength {
				t.Errorf("Length(%d, %d) = %d, want %d", tt.v, tt.w, l, tt.wantLength)
			}
		})
	}
}

func TestEngine_TieBreakLowestID(t *testing.T) {
	// 3 and 4 both have hypernyms 1 and 2, which both lead to root 0.
	// Candidates 1 and 2 cost 2 each; the lower id wins regardless of
	// edge order.
	e := New(mustDAG(t, 5,
		digraph.Edge{From: 1, To: 0}, digraph.Edge{From: 2, To: 0},
		digraph.Edge{From: 3, To: 2}, digraph.Edge{From: 3, To: 1},
		digraph.Edge{From: 4, To: 2}, digraph.Edge{From: 4, To: 1},
	))

	r, err := e.Query([]int{3}, []int{4})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if r.Ancestor != 1 || r.Length != 2 {
		t.Errorf("Query() = %+v, want {Ancestor:1 Length:2}", r)
	}
}

func TestEngine_TieBreakIgnoresUnreachableZero(t *testing.T) {
	// Vertex 0 is a leaf, not an ancestor of anything; the root is 3.
	// 0 -> 1 -> 3, 2 -> 3
	e := New(mustDAG(t, 4,
		digraph.Edge{From: 0, To: 1}, digraph.Edge{From: 1, To: 3}, digraph.Edge{From: 2, To: 3},
	))

	r, err := e.Query([]int{1}, []int{2})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if r.Ancestor != 3 || r.Length != 2 {
		t.Errorf("Query() = %+v, want {Ancestor:3 Length:2}", r)
	}
}

func TestEngine_Sets(t *testing.T) {
	// 0 root; 1, 2 under 0; 3 under 1; 4 under 2; 5 under 4
	e := New(mustDAG(t, 6,
		digraph.Edge{From: 1, To: 0}, digraph.Edge{From: 2, To: 0},
		digraph.Edge{From: 3, To: 1}, digraph.Edge{From: 4, To: 2}, digraph.Edge{From: 5, To: 4},
	))

	tests := []struct {
		name         string
		vs, ws       []int
		wantAncestor int
		wantLength   int
	}{
		{"disjoint branches", []int{3}, []int{5}, 0, 5},
		{"multi-source picks closer member", []int{3, 4}, []int{5}, 4, 1},
		{"overlapping sets", []int{1, 2}, []int{2, 5}, 2, 0},
		{"duplicates allowed", []int{3, 3, 3}, []int{1, 1}, 1, 1},
		{"both sides multi", []int{3, 5}, []int{1, 4}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := e.AncestorSets(tt.vs, tt.ws)
			if err != nil {
				t.Fatalf("AncestorSets() error = %v", err)
			}
			l, err := e.LengthSets(tt.vs, tt.ws)
			if err != nil {
				t.Fatalf("LengthSets() error = %v", err)
			}
			if a != tt.wantAncestor || l != tt.wantLength {
				t.Errorf("sets(%v, %v) = (%d, %d), want (%d, %d)",
					tt.vs, tt.ws, a, l, tt.wantAncestor, tt.wantLength)
			}
		})
	}
}

func TestEngine_InvalidInput(t *testing.T) {
	e := star(t)

	tests := []struct {
		name     string
		vs, ws   []int
		wantErr  error
		wantCode errs.Code
	}{
		{"nil source", nil, []int{1}, ErrInvalidArgument, errs.ErrCodeInvalidArgument},
		{"empty target", []int{1}, []int{}, ErrInvalidArgument, errs.ErrCodeInvalidArgument},
		{"negative vertex", []int{-1}, []int{1}, ErrInvalidVertex, errs.ErrCodeInvalidVertex},
		{"vertex too large", []int{1}, []int{4}, ErrInvalidVertex, errs.ErrCodeInvalidVertex},
		{"bad member in set", []int{1, 2, 99}, []int{0}, ErrInvalidVertex, errs.ErrCodeInvalidVertex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := e.Query(tt.vs, tt.ws)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Query() error = %v, want %v", err, tt.wantErr)
			}
			if !errs.Is(err, tt.wantCode) {
				t.Errorf("Query() code = %v, want %v", errs.GetCode(err), tt.wantCode)
			}
			if r.Found() {
				t.Errorf("Query() = %+v alongside an error", r)
			}
			if _, err := e.Path(tt.vs, tt.ws); !errors.Is(err, tt.wantErr) {
				t.Errorf("Path() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if l, err := e.Length(7, 0); err == nil || l != NoPath {
		t.Errorf("Length(7, 0) = (%d, %v), want (NoPath, error)", l, err)
	}
	if a, err := e.Ancestor(0, -3); err == nil || a != NoPath {
		t.Errorf("Ancestor(0, -3) = (%d, %v), want (NoPath, error)", a, err)
	}
}

func TestEngine_NoPath(t *testing.T) {
	// Two separate components on an unvalidated graph.
	g, err := digraph.New(4, []digraph.Edge{{From: 1, To: 0}, {From: 3, To: 2}})
	if err != nil {
		t.Fatal(err)
	}
	e := New(g)

	r, err := e.Query([]int{1}, []int{3})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if r.Found() || r.Ancestor != NoPath || r.Length != NoPath {
		t.Errorf("Query() = %+v, want NoPath", r)
	}

	p, err := e.Path([]int{1}, []int{3})
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	if p.Found() || p.Vertices() != nil {
		t.Errorf("Path() = %+v, want NoPath", p)
	}
}

func TestEngine_Path(t *testing.T) {
	// 0 root; 1, 2 under 0; 3 under 1; 4 under 2; 5 under 4
	e := New(mustDAG(t, 6,
		digraph.Edge{From: 1, To: 0}, digraph.Edge{From: 2, To: 0},
		digraph.Edge{From: 3, To: 1}, digraph.Edge{From: 4, To: 2}, digraph.Edge{From: 5, To: 4},
	))

	p, err := e.Path([]int{3}, []int{5})
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	if p.Ancestor != 0 || p.Length != 5 {
		t.Fatalf("Path() = %+v, want ancestor 0 length 5", p)
	}
	if !slices.Equal(p.Source, []int{3, 1, 0}) {
		t.Errorf("Source = %v, want [3 1 0]", p.Source)
	}
	if !slices.Equal(p.Target, []int{5, 4, 2, 0}) {
		t.Errorf("Target = %v, want [5 4 2 0]", p.Target)
	}
	if got := p.Vertices(); !slices.Equal(got, []int{3, 1, 0, 2, 4, 5}) {
		t.Errorf("Vertices() = %v, want [3 1 0 2 4 5]", got)
	}

	p, err = e.Path([]int{4}, []int{4})
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	if p.Length != 0 || !slices.Equal(p.Vertices(), []int{4}) {
		t.Errorf("Path(4, 4) = %+v, want the single vertex 4", p)
	}
}

func TestEngine_Properties(t *testing.T) {
	for seed := range uint64(25) {
		tax := testutil.RandomTaxonomy(seed, 40, 2)
		edges := make([]digraph.Edge, len(tax.Edges))
		for i, e := range tax.Edges {
			edges[i] = digraph.Edge{From: e[0], To: e[1]}
		}
		e := New(mustDAG(t, tax.N, edges...))
		oracle := testutil.Gonum(tax.N, tax.Edges)

		for v := range tax.N {
			for w := range tax.N {
				r, err := e.Query([]int{v}, []int{w})
				if err != nil {
					t.Fatalf("seed %d: Query(%d, %d) error = %v", seed, v, w, err)
				}
				if !r.Found() {
					t.Fatalf("seed %d: Query(%d, %d) found no ancestor on a rooted DAG", seed, v, w)
				}

				if v == w && (r.Ancestor != v || r.Length != 0) {
					t.Errorf("seed %d: Query(%d, %d) = %+v, want itself at length 0", seed, v, w, r)
				}

				back, _ := e.Query([]int{w}, []int{v})
				if back != r {
					t.Errorf("seed %d: Query(%d, %d) = %+v but Query(%d, %d) = %+v", seed, v, w, r, w, v, back)
				}

				wantA, wantL := testutil.Nearest(oracle, tax.N, []int{v}, []int{w})
				if r.Ancestor != wantA || r.Length != wantL {
					t.Errorf("seed %d: Query(%d, %d) = %+v, gonum oracle = {%d %d}", seed, v, w, r, wantA, wantL)
				}

				single, _ := e.Length(v, w)
				sets, _ := e.LengthSets([]int{v}, []int{w})
				if single != sets {
					t.Errorf("seed %d: Length(%d, %d) = %d but LengthSets = %d", seed, v, w, single, sets)
				}
			}
		}
	}
}

func TestEngine_SetPropertiesMatchOracle(t *testing.T) {
	for seed := range uint64(15) {
		tax := testutil.RandomTaxonomy(seed+100, 60, 3)
		edges := make([]digraph.Edge, len(tax.Edges))
		for i, e := range tax.Edges {
			edges[i] = digraph.Edge{From: e[0], To: e[1]}
		}
		e := New(mustDAG(t, tax.N, edges...))
		oracle := testutil.Gonum(tax.N, tax.Edges)

		for i := 0; i+5 < tax.N; i += 3 {
			vs := []int{i, i + 2, i + 5}
			ws := []int{i + 1, (i * 7) % tax.N}

			p, err := e.Path(vs, ws)
			if err != nil {
				t.Fatalf("seed %d: Path() error = %v", seed, err)
			}
			wantA, wantL := testutil.Nearest(oracle, tax.N, vs, ws)
			if p.Ancestor != wantA || p.Length != wantL {
				t.Errorf("seed %d: Path(%v, %v) = {%d %d}, oracle = {%d %d}", seed, vs, ws, p.Ancestor, p.Length, wantA, wantL)
			}
			assertLeg(t, e, p.Source, vs, p.Ancestor)
			assertLeg(t, e, p.Target, ws, p.Ancestor)
			if len(p.Source)+len(p.Target)-2 != p.Length {
				t.Errorf("seed %d: legs %v and %v do not add up to %d", seed, p.Source, p.Target, p.Length)
			}
		}
	}
}

func assertLeg(t *testing.T, e *Engine, leg, set []int, ancestor int) {
	t.Helper()
	if len(leg) == 0 {
		t.Fatal("empty leg")
	}
	if !slices.Contains(set, leg[0]) {
		t.Errorf("leg %v does not start in %v", leg, set)
	}
	if leg[len(leg)-1] != ancestor {
		t.Errorf("leg %v does not end at %d", leg, ancestor)
	}
	for i := 0; i+1 < len(leg); i++ {
		if !slices.Contains(e.g.Out(leg[i]), leg[i+1]) {
			t.Errorf("leg %v uses missing edge %d->%d", leg, leg[i], leg[i+1])
		}
	}
}

func TestEngine_ConcurrentQueries(t *testing.T) {
	tax := testutil.RandomTaxonomy(7, 200, 2)
	edges := make([]digraph.Edge, len(tax.Edges))
	for i, e := range tax.Edges {
		edges[i] = digraph.Edge{From: e[0], To: e[1]}
	}
	e := New(mustDAG(t, tax.N, edges...))

	want := make([]Result, tax.N)
	for v := range tax.N {
		want[v], _ = e.Query([]int{v}, []int{(v * 31) % tax.N})
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for v := range tax.N {
				got, err := e.Query([]int{v}, []int{(v * 31) % tax.N})
				if err != nil || got != want[v] {
					t.Errorf("concurrent Query(%d) = %+v, %v; want %+v", v, got, err, want[v])
					return
				}
			}
		}()
	}
	wg.Wait()
}

type recordingQueryHooks struct {
	mu    sync.Mutex
	calls int
	found []bool
}

func (h *recordingQueryHooks) OnQuery(sources, targets int, _ time.Duration, found bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls++
	h.found = append(h.found, found)
}

func TestEngine_EmitsQueryHooks(t *testing.T) {
	h := &recordingQueryHooks{}
	observability.SetQueryHooks(h)
	defer observability.Reset()

	e := star(t)
	_, _ = e.Length(1, 2)
	_, _ = e.Path([]int{1}, []int{3})
	_, _ = e.Query(nil, []int{1}) // rejected before traversal, not reported

	if h.calls != 2 {
		t.Errorf("OnQuery calls = %d, want 2", h.calls)
	}
	for i, f := range h.found {
		if !f {
			t.Errorf("OnQuery call %d found = false, want true", i)
		}
	}
}

func BenchmarkEngine_Query(b *testing.B) {
	tax := testutil.RandomTaxonomy(1, 10_000, 2)
	edges := make([]digraph.Edge, len(tax.Edges))
	for i, e := range tax.Edges {
		edges[i] = digraph.Edge{From: e[0], To: e[1]}
	}
	e := New(mustDAG(b, tax.N, edges...))

	b.ResetTimer()
	for i := range b.N {
		v := i % tax.N
		_, _ = e.Query([]int{v}, []int{(v * 7919) % tax.N})
	}
}
