// Package pkg provides the libraries for shortest ancestral path queries
// over a lexical taxonomy.
//
// # Overview
//
// A taxonomy is a directed acyclic graph of synsets (sets of synonymous
// nouns) whose edges point from a synset to its hypernyms, the more general
// synsets it belongs to. The distance between two nouns is the length of
// the shortest ancestral path between any of their synsets. The pkg
// directory is organized into these areas:
//
//  1. [digraph] - Immutable integer digraph and rooted-DAG validation
//  2. [sap] - Shortest ancestral path engine (multi-source BFS)
//  3. [wordnet] - Record ingestion, sorted noun index, noun-level queries
//  4. [outcast] - Least related noun of a list
//  5. [render/dot] - Graphviz diagrams of an ancestral path
//
// Supporting packages: [errors] for coded errors, [observability] and its
// Prometheus backend for hooks, [config] for TOML settings and
// [buildinfo] for version stamping.
//
// # Architecture
//
// The data flow through the libraries:
//
//	Synset + hypernym records
//	         ↓
//	    [wordnet] (index nouns, build graph)
//	         ↓
//	    [digraph] (validate: acyclic, single root)
//	         ↓
//	    [sap] (answer vertex-set queries)
//	         ↓
//	    [outcast] (pairwise distances over a noun list)
//
// # Quick Start
//
//	wn, err := wordnet.New(synsets, hypernyms, wordnet.Options{})
//	if err != nil {
//	    return err
//	}
//	d, _ := wn.Distance("dog", "cat")
//	anc, _ := wn.SAP("dog", "cat")
//
//	f := outcast.New(wn, outcast.Options{Workers: 4})
//	odd, _ := f.Outcast([]string{"horse", "zebra", "cat", "bear", "table"})
//
// # Thread Safety
//
// Every type is immutable after construction. A *wordnet.WordNet, a
// *sap.Engine and an *outcast.Finder may be shared across goroutines.
package pkg
