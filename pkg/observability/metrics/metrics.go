// Package metrics implements the observability hooks on top of Prometheus.
//
//	reg := prometheus.NewRegistry()
//	metrics.New(reg, "wordnet").Install()
//
// All collectors are registered on the given registerer when the Hooks are
// created. A nil registerer creates unregistered collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/matzehuels/wordnet/pkg/buildinfo"
	"github.com/matzehuels/wordnet/pkg/observability"
)

// Result label values.
const (
	resultOK     = "ok"
	resultNoPath = "no_path"
	resultError  = "error"
)

// Hooks records taxonomy builds, ancestral path queries and outcast searches
// as Prometheus metrics. It implements every hook interface of the
// observability package.
type Hooks struct {
	builds        *prometheus.CounterVec
	buildDuration prometheus.Histogram
	synsets       prometheus.Gauge
	edges         prometheus.Gauge
	nouns         prometheus.Gauge

	queries       *prometheus.CounterVec
	queryDuration prometheus.Histogram
	querySetSize  prometheus.Histogram

	outcasts        *prometheus.CounterVec
	outcastDuration prometheus.Histogram
	outcastNouns    prometheus.Histogram
}

var (
	_ observability.TaxonomyHooks = (*Hooks)(nil)
	_ observability.QueryHooks    = (*Hooks)(nil)
	_ observability.OutcastHooks  = (*Hooks)(nil)
)

// New creates the collectors under namespace and registers them on reg.
// It panics if a collector with the same name is already registered.
func New(reg prometheus.Registerer, namespace string) *Hooks {
	f := promauto.With(reg)
	f.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "build_info",
		Help:      "Version and commit of the running build",
	}, []string{"version", "commit"}).WithLabelValues(buildinfo.Version, buildinfo.Commit).Set(1)

	return &Hooks{
		builds: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "taxonomy_builds_total",
			Help:      "Taxonomy constructions by result",
		}, []string{"result"}),
		buildDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "taxonomy_build_duration_seconds",
			Help:      "Time to ingest and validate a taxonomy",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
		synsets: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "taxonomy_synsets",
			Help:      "Synsets in the last successfully built taxonomy",
		}),
		edges: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "taxonomy_edges",
			Help:      "Hypernym edges in the last successfully built taxonomy",
		}),
		nouns: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "taxonomy_nouns",
			Help:      "Distinct nouns in the last successfully built taxonomy",
		}),
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sap_queries_total",
			Help:      "Shortest ancestral path queries by result",
		}, []string{"result"}),
		queryDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sap_query_duration_seconds",
			Help:      "Shortest ancestral path query duration",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 9),
		}),
		querySetSize: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sap_query_vertices",
			Help:      "Combined size of both vertex sets per query",
			Buckets:   []float64{2, 3, 4, 6, 10, 20, 50},
		}),
		outcasts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outcast_searches_total",
			Help:      "Outcast searches by result",
		}, []string{"result"}),
		outcastDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "outcast_duration_seconds",
			Help:      "Outcast search duration",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 9),
		}),
		outcastNouns: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "outcast_nouns",
			Help:      "Nouns per outcast search",
			Buckets:   []float64{2, 3, 5, 8, 12, 20, 50},
		}),
	}
}

// Install registers h for every hook category.
func (h *Hooks) Install() {
	observability.SetTaxonomyHooks(h)
	observability.SetQueryHooks(h)
	observability.SetOutcastHooks(h)
}

func (h *Hooks) OnBuild(synsets, edges, nouns int, d time.Duration, err error) {
	h.buildDuration.Observe(d.Seconds())
	if err != nil {
		h.builds.WithLabelValues(resultError).Inc()
		return
	}
	h.builds.WithLabelValues(resultOK).Inc()
	h.synsets.Set(float64(synsets))
	h.edges.Set(float64(edges))
	h.nouns.Set(float64(nouns))
}

func (h *Hooks) OnQuery(sources, targets int, d time.Duration, found bool) {
	result := resultOK
	if !found {
		result = resultNoPath
	}
	h.queries.WithLabelValues(result).Inc()
	h.queryDuration.Observe(d.Seconds())
	h.querySetSize.Observe(float64(sources + targets))
}

func (h *Hooks) OnOutcast(nouns int, d time.Duration, err error) {
	result := resultOK
	if err != nil {
		result = resultError
	}
	h.outcasts.WithLabelValues(result).Inc()
	h.outcastDuration.Observe(d.Seconds())
	h.outcastNouns.Observe(float64(nouns))
}
