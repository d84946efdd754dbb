// Package sap computes shortest ancestral paths in a directed acyclic graph.
//
// # Overview
//
// An ancestral path between two vertices v and w is a directed path from v
// to a common ancestor x together with a directed path from w to the same x.
// A shortest ancestral path minimises the summed length of the two legs,
// and x is then called the nearest common ancestor. Both generalise to
// vertex sets: the path may start at any vertex of each set.
//
// # Algorithm
//
// Each query runs two breadth-first searches along outgoing edges, one per
// side, each seeded with every vertex of its set at distance 0. A single
// scan over the vertex ids then picks the candidate reachable from both
// sides with the smallest summed distance. Each query costs O(V+E).
//
// # Tie-break
//
// When several ancestors share the minimal length the one with the lowest
// vertex id is reported. This is an implementation-defined choice, not a
// statement that that ancestor is semantically closer; callers that need a
// different rule should use [Engine.Path] on the candidates they care about.
//
// # Missing ancestors
//
// Vertex sets with no common ancestor produce [NoPath] for both the length
// and the ancestor. On a graph validated by digraph.Validate every vertex
// reaches the single root, so NoPath there indicates a bug.
//
// # Concurrency
//
// [Engine] holds only the graph. Distance records are allocated per call, so
// concurrent queries on one Engine are safe.
package sap
