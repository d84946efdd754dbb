package wordnet

import (
	"slices"
	"strings"

	"github.com/matzehuels/wordnet/pkg/digraph"
	errs "github.com/matzehuels/wordnet/pkg/errors"
	"github.com/matzehuels/wordnet/pkg/sap"
)

// Len returns the number of synsets.
func (wn *WordNet) Len() int { return len(wn.synsets) }

// NounCount returns the number of distinct nouns.
func (wn *WordNet) NounCount() int { return wn.nouns.Len() }

// Nouns returns every distinct noun in ascending order.
func (wn *WordNet) Nouns() []string {
	nouns := make([]string, 0, wn.nouns.Len())
	wn.nouns.Scan(func(noun string, _ []int) bool {
		nouns = append(nouns, noun)
		return true
	})
	return nouns
}

// IsNoun reports whether word belongs to at least one synset.
func (wn *WordNet) IsNoun(word string) bool {
	_, ok := wn.nouns.Get(word)
	return ok
}

// NounsWithPrefix returns the nouns starting with prefix in ascending order.
func (wn *WordNet) NounsWithPrefix(prefix string) []string {
	var nouns []string
	wn.nouns.Ascend(prefix, func(noun string, _ []int) bool {
		if !strings.HasPrefix(noun, prefix) {
			return false
		}
		nouns = append(nouns, noun)
		return true
	})
	return nouns
}

// SynsetIDs returns the ids of the synsets containing noun, ascending.
func (wn *WordNet) SynsetIDs(noun string) ([]int, error) {
	ids, err := wn.lookup(noun)
	if err != nil {
		return nil, err
	}
	return slices.Clone(ids), nil
}

// Synset returns the synset with the given id.
func (wn *WordNet) Synset(id int) (Synset, error) {
	if id < 0 || id >= len(wn.synsets) {
		return Synset{}, errs.Wrap(errs.ErrCodeOutOfRange, digraph.ErrOutOfRange,
			"synset %d not in [0, %d)", id, len(wn.synsets))
	}
	return wn.synset(id), nil
}

// Root returns the synset every other synset descends from.
func (wn *WordNet) Root() Synset {
	return wn.synset(wn.dag.Root())
}

// DAG returns the validated hypernym graph. It must not be modified.
func (wn *WordNet) DAG() *digraph.DAG { return wn.dag }

// Distance returns the length of the shortest ancestral path between any
// synset of a and any synset of b.
func (wn *WordNet) Distance(a, b string) (int, error) {
	r, err := wn.query(a, b)
	if err != nil {
		return sap.NoPath, err
	}
	return r.Length, nil
}

// SAP returns the display string of the nearest common ancestor synset of a
// and b, as given by [Synset.String].
func (wn *WordNet) SAP(a, b string) (string, error) {
	r, err := wn.query(a, b)
	if err != nil {
		return "", err
	}
	return wn.synsets[r.Ancestor].String(), nil
}

// Ancestor is like [WordNet.SAP] but returns the whole synset.
func (wn *WordNet) Ancestor(a, b string) (Synset, error) {
	r, err := wn.query(a, b)
	if err != nil {
		return Synset{}, err
	}
	return wn.synset(r.Ancestor), nil
}

// Path returns a shortest ancestral path between a and b with both legs
// spelled out as synset ids.
func (wn *WordNet) Path(a, b string) (sap.Path, error) {
	va, vb, err := wn.resolve(a, b)
	if err != nil {
		return sap.Path{Ancestor: sap.NoPath, Length: sap.NoPath}, err
	}
	p, err := wn.engine.Path(va, vb)
	if err != nil {
		return p, errs.Wrap(errs.ErrCodeInternal, err, "path %q %q", a, b)
	}
	if !p.Found() {
		return p, errs.New(errs.ErrCodeInternal, "no common ancestor for %q and %q", a, b)
	}
	return p, nil
}

func (wn *WordNet) query(a, b string) (sap.Result, error) {
	noPath := sap.Result{Ancestor: sap.NoPath, Length: sap.NoPath}
	va, vb, err := wn.resolve(a, b)
	if err != nil {
		return noPath, err
	}
	r, err := wn.engine.Query(va, vb)
	if err != nil {
		return noPath, errs.Wrap(errs.ErrCodeInternal, err, "query %q %q", a, b)
	}
	if !r.Found() {
		// Every synset reaches the root, so this means the index is corrupt.
		return noPath, errs.New(errs.ErrCodeInternal, "no common ancestor for %q and %q", a, b)
	}
	return r, nil
}

func (wn *WordNet) resolve(a, b string) ([]int, []int, error) {
	va, err := wn.lookup(a)
	if err != nil {
		return nil, nil, err
	}
	vb, err := wn.lookup(b)
	if err != nil {
		return nil, nil, err
	}
	return va, vb, nil
}

func (wn *WordNet) lookup(noun string) ([]int, error) {
	ids, ok := wn.nouns.Get(noun)
	if !ok {
		return nil, errs.Wrap(errs.ErrCodeUnknownNoun, ErrUnknownNoun, "%q", noun)
	}
	return ids, nil
}

func (wn *WordNet) synset(id int) Synset {
	s := wn.synsets[id]
	s.Nouns = slices.Clone(s.Nouns)
	return s
}
