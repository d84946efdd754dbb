// Package wordnet indexes a lexical taxonomy of synsets and answers
// noun-level ancestral path queries over it.
//
// # Records
//
// A taxonomy is built from two record streams. [Synset] records carry the
// nouns of one synset and must be numbered densely from 0 in stream order.
// [Hypernyms] records carry the outgoing edges of one synset, pointing at
// its more general synsets. A hypernym record that points a synset at
// itself is dropped.
//
// Reading and tokenizing WordNet files is left to the caller; any source
// that can be expressed as an [iter.Seq] of records will do.
//
// # Validation
//
// [New] builds the hypernym graph and validates it once. The graph must be
// acyclic with exactly one root (a synset without hypernyms). Any violation
// is reported as [ErrInvalidTaxonomy] and no index is returned, so a
// *WordNet value always describes a valid taxonomy.
//
// # Queries
//
// A noun may belong to several synsets. [WordNet.Distance] and
// [WordNet.SAP] resolve each noun to all of its synsets and run one
// multi-source query, so the answer is the shortest path over every
// meaning of both words.
//
//	wn, err := wordnet.New(synsets, hypernyms, wordnet.Options{})
//	if err != nil {
//	    return err
//	}
//	d, err := wn.Distance("dog", "cat")
//
// A *WordNet is immutable after construction and safe for concurrent use.
package wordnet
