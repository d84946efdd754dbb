// Package digraph provides an immutable integer-indexed directed graph and
// the validation that turns it into a single-rooted DAG.
//
// # Overview
//
// Vertices are the integers 0..V-1; identity is positional. Each vertex has
// an ordered list of successors. In a lexical taxonomy a vertex is a synset
// and its successors are its hypernyms, so edges point from the specific to
// the general and the most general concept is the only vertex with no
// outgoing edge.
//
// # Basic Usage
//
// Build a graph with [NewBuilder] and [Builder.AddEdge], or in one step with
// [New]. Endpoints are range-checked as edges are added:
//
//	b := digraph.NewBuilder(3)
//	_ = b.AddEdge(2, 1)
//	_ = b.AddEdge(1, 0)
//	g := b.Build()
//
// # Validation
//
// [Validate] checks that the graph is acyclic and has exactly one sink, and
// returns a [DAG] that records the root and a topological order. The two
// checks run once; nothing downstream revalidates. A [DAG] embeds its
// [Digraph], so it can be handed to any traversal that takes the graph.
//
// # Concurrency
//
// A built [Digraph] is never mutated, so any number of goroutines may read
// it concurrently. A [Builder] is single-goroutine.
package digraph
