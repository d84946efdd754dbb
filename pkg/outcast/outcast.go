// Package outcast finds the noun least related to the others in a list.
//
// The outcast of a list is the noun whose summed ancestral distance to
// every noun of the list is greatest. Ties go to the noun listed first.
package outcast

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	errs "github.com/matzehuels/wordnet/pkg/errors"
	"github.com/matzehuels/wordnet/pkg/observability"
)

// ErrInvalidArgument is returned for an empty noun list.
var ErrInvalidArgument = errors.New("invalid argument")

// Distancer measures the ancestral distance between two nouns.
// *wordnet.WordNet satisfies it.
type Distancer interface {
	Distance(a, b string) (int, error)
}

// Options configures a [Finder].
type Options struct {
	// Workers bounds how many rows of the distance matrix are computed at
	// once. Values <= 1 compute sequentially.
	Workers int
	Logger  *log.Logger // nil uses log.Default()
}

// Finder computes outcasts against a fixed [Distancer].
type Finder struct {
	d       Distancer
	workers int
	logger  *log.Logger
}

// New creates a Finder over d.
func New(d Distancer, opts Options) *Finder {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Finder{d: d, workers: opts.Workers, logger: opts.Logger}
}

// Outcast returns the noun with the strictly greatest distance score. The
// first noun reaching the maximum wins.
func (f *Finder) Outcast(nouns []string) (string, error) {
	scores, err := f.Scores(nouns)
	if err != nil {
		return "", err
	}
	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}
	return nouns[best], nil
}

// Scores returns, for every noun, the sum of its distances to all nouns of
// the list, itself included.
//
// Distance is symmetric, so each unordered pair is measured once. If any
// pair fails, the error of the first failing pair in row-major order is
// returned, independent of the worker count.
func (f *Finder) Scores(nouns []string) ([]int, error) {
	start := time.Now()
	scores, err := f.scores(nouns)
	elapsed := time.Since(start)
	observability.Outcast().OnOutcast(len(nouns), elapsed, err)
	if err != nil {
		return nil, err
	}
	f.logger.Debug("scored nouns", "nouns", len(nouns), "workers", f.workers, "duration", elapsed)
	return scores, nil
}

func (f *Finder) scores(nouns []string) ([]int, error) {
	n := len(nouns)
	if n == 0 {
		return nil, errs.Wrap(errs.ErrCodeInvalidArgument, ErrInvalidArgument, "noun list must not be empty")
	}
	if n == 1 {
		// No pairs to measure, but the noun must still be known.
		d, err := f.d.Distance(nouns[0], nouns[0])
		if err != nil {
			return nil, err
		}
		return []int{d}, nil
	}

	// dist[i][j-i-1] holds the distance of pair i < j.
	dist := make([][]int, n)
	rowErr := make([]error, n)
	row := func(i int) {
		dist[i] = make([]int, n-i-1)
		for j := i + 1; j < n; j++ {
			d, err := f.d.Distance(nouns[i], nouns[j])
			if err != nil {
				rowErr[i] = err
				return
			}
			dist[i][j-i-1] = d
		}
	}

	if f.workers > 1 && n > 2 {
		var g errgroup.Group
		g.SetLimit(f.workers)
		for i := range n - 1 {
			g.Go(func() error {
				row(i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range n - 1 {
			row(i)
		}
	}

	for _, err := range rowErr {
		if err != nil {
			return nil, err
		}
	}

	scores := make([]int, n)
	for i := range n {
		for j := i + 1; j < n; j++ {
			d := dist[i][j-i-1]
			scores[i] += d
			scores[j] += d
		}
	}
	return scores, nil
}
