package wordnet

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tidwall/btree"

	"github.com/matzehuels/wordnet/pkg/digraph"
	errs "github.com/matzehuels/wordnet/pkg/errors"
	"github.com/matzehuels/wordnet/pkg/observability"
	"github.com/matzehuels/wordnet/pkg/sap"
)

var (
	// ErrInvalidTaxonomy is returned by [New] when the records do not describe
	// a single-rooted DAG of synsets. The wrapped cause names the problem.
	ErrInvalidTaxonomy = errors.New("invalid taxonomy")

	// ErrUnknownNoun is returned by queries naming a noun that is not in any
	// synset.
	ErrUnknownNoun = errors.New("unknown noun")
)

// Synset is one set of synonymous nouns.
type Synset struct {
	ID    int
	Nouns []string
	Gloss string
}

// String returns the display form of the synset: its nouns separated by
// single spaces.
func (s Synset) String() string {
	return strings.Join(s.Nouns, " ")
}

// Hypernyms lists the more general synsets of synset ID.
type Hypernyms struct {
	ID        int
	Hypernyms []int
}

// Options configures taxonomy construction.
type Options struct {
	Logger *log.Logger // nil uses log.Default()
}

// WordNet is a validated taxonomy with a sorted noun index.
type WordNet struct {
	synsets []Synset
	nouns   *btree.Map[string, []int] // noun -> ascending synset ids
	dag     *digraph.DAG
	engine  *sap.Engine
}

// New ingests synset and hypernym records and validates the resulting
// graph. A nil sequence is treated as empty.
//
// Construction fails with [ErrInvalidTaxonomy] (code INVALID_TAXONOMY) when
//   - a synset ID does not equal its position in the stream
//   - a synset has no nouns, or a noun fails [errs.ValidateNoun]
//   - a hypernym record names a synset outside [0, N)
//   - the graph has a cycle or does not have exactly one root
func New(synsets iter.Seq[Synset], hypernyms iter.Seq[Hypernyms], opts Options) (*WordNet, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	start := time.Now()

	b := &builder{logger: logger, nouns: btree.NewMap[string, []int](0)}
	err := b.ingest(synsets, hypernyms)
	var wn *WordNet
	if err == nil {
		wn, err = b.finish()
	}

	elapsed := time.Since(start)
	observability.Taxonomy().OnBuild(len(b.synsets), b.edges, b.nouns.Len(), elapsed, err)
	if err != nil {
		logger.Debug("rejected taxonomy", "err", err)
		return nil, err
	}

	logger.Info("built taxonomy",
		"synsets", len(wn.synsets),
		"edges", wn.dag.E(),
		"nouns", wn.nouns.Len(),
		"root", wn.synsets[wn.dag.Root()].String(),
		"duration", elapsed)
	return wn, nil
}

// builder accumulates records until the graph can be frozen.
type builder struct {
	logger  *log.Logger
	synsets []Synset
	nouns   *btree.Map[string, []int]
	pending []digraph.Edge
	edges   int
}

func (b *builder) ingest(synsets iter.Seq[Synset], hypernyms iter.Seq[Hypernyms]) error {
	if synsets != nil {
		for s := range synsets {
			if err := b.addSynset(s); err != nil {
				return err
			}
		}
	}
	if hypernyms != nil {
		for h := range hypernyms {
			if err := b.addHypernyms(h); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *builder) addSynset(s Synset) error {
	id := len(b.synsets)
	if s.ID != id {
		return invalid(nil, "synset %d out of order, expected id %d", s.ID, id)
	}
	if len(s.Nouns) == 0 {
		return invalid(nil, "synset %d has no nouns", id)
	}
	for _, noun := range s.Nouns {
		if err := errs.ValidateNoun(noun); err != nil {
			return invalid(err, "synset %d", id)
		}
		ids, _ := b.nouns.Get(noun)
		if len(ids) > 0 && ids[len(ids)-1] == id {
			continue
		}
		b.nouns.Set(noun, append(ids, id))
	}
	b.synsets = append(b.synsets, Synset{ID: id, Nouns: slices.Clone(s.Nouns), Gloss: s.Gloss})
	return nil
}

func (b *builder) addHypernyms(h Hypernyms) error {
	n := len(b.synsets)
	if h.ID < 0 || h.ID >= n {
		return invalid(nil, "hypernym record for synset %d not in [0, %d)", h.ID, n)
	}
	for _, w := range h.Hypernyms {
		if w == h.ID {
			b.logger.Debug("dropped self-loop", "synset", h.ID)
			continue
		}
		if w < 0 || w >= n {
			return invalid(digraph.ErrInvalidEdge, "hypernym %d of synset %d not in [0, %d)", w, h.ID, n)
		}
		b.pending = append(b.pending, digraph.Edge{From: h.ID, To: w})
		b.edges++
	}
	return nil
}

func (b *builder) finish() (*WordNet, error) {
	g, err := digraph.New(len(b.synsets), b.pending)
	if err != nil {
		return nil, invalid(err, "hypernym graph")
	}
	dag, err := digraph.Validate(g)
	if err != nil {
		return nil, invalid(err, "hypernym graph")
	}
	return &WordNet{
		synsets: b.synsets,
		nouns:   b.nouns,
		dag:     dag,
		engine:  sap.New(dag),
	}, nil
}

// invalid wraps cause so that it matches both ErrInvalidTaxonomy and the
// cause itself.
func invalid(cause error, format string, args ...any) error {
	if cause == nil {
		cause = ErrInvalidTaxonomy
	} else {
		cause = fmt.Errorf("%w: %w", ErrInvalidTaxonomy, cause)
	}
	return errs.Wrap(errs.ErrCodeInvalidTaxonomy, cause, format, args...)
}
