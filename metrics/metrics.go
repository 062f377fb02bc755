// Package metrics exports search progress as Prometheus metrics. A Registry
// is an astar.Observer: pass it to astar.WithObserver and every step updates
// the counters. Each Registry owns a private prometheus.Registry so several
// runs can be measured side by side.
package metrics

import (
	"sort"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"

	"github.com/katalvlaran/stepstar/astar"
)

const namespace = "stepstar"

// Registry holds the search metrics.
type Registry struct {
	StepsTotal       *prometheus.CounterVec
	SearchesTotal    *prometheus.CounterVec
	SuccessorsPushed prometheus.Counter
	SuccessorsDedup  prometheus.Counter
	FrontierSize     prometheus.Gauge
	Expansions       prometheus.Gauge
	PathCost         prometheus.Histogram
	PathLength       prometheus.Histogram

	registry *prometheus.Registry
	mu       sync.Mutex
}

var _ astar.Observer = (*Registry)(nil)

// NewRegistry creates a Registry with all metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}
	f := promauto.With(reg)

	r.StepsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Search steps by event kind",
		},
		[]string{"kind"},
	)
	r.SearchesTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Searches by terminal outcome",
		},
		[]string{"outcome"},
	)
	r.SuccessorsPushed = f.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "successors_pushed_total",
		Help:      "Successors pushed onto the frontier",
	})
	r.SuccessorsDedup = f.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "successors_deduplicated_total",
		Help:      "Successors rejected because an equal or cheaper entry was queued",
	})
	r.FrontierSize = f.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "frontier_size",
		Help:      "Frontier entries after the last step, stale ones included",
	})
	r.Expansions = f.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "expansions",
		Help:      "Expansions of the current search",
	})
	r.PathCost = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "path_cost",
		Help:      "Cost of completed paths",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	})
	r.PathLength = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "path_length",
		Help:      "Positions on completed paths",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	})

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// Observe records one engine event.
func (r *Registry) Observe(ev astar.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.StepsTotal.WithLabelValues(ev.Kind.String()).Inc()
	r.FrontierSize.Set(float64(ev.FrontierLen))
	r.Expansions.Set(float64(ev.Expansions))
	r.SuccessorsPushed.Add(float64(ev.Pushed))
	r.SuccessorsDedup.Add(float64(ev.Deduped))

	switch ev.Kind {
	case astar.EventGoal:
		r.SearchesTotal.WithLabelValues("completed").Inc()
		r.PathCost.Observe(ev.Cost)
		r.PathLength.Observe(float64(ev.PathLen))
	case astar.EventExhausted:
		r.SearchesTotal.WithLabelValues("exhausted").Inc()
	case astar.EventLimit:
		r.SearchesTotal.WithLabelValues("limit").Inc()
	}
}

// Sample is one flattened metric value.
type Sample struct {
	Name   string
	Labels string // k=v pairs joined by ","; empty without labels
	Value  float64
}

// Summary gathers the registry into flat samples sorted by name then labels.
// Histograms report their sample count and sum as name_count and name_sum.
func (r *Registry) Summary() ([]Sample, error) {
	families, err := r.GetPrometheusRegistry().Gather()
	if err != nil {
		return nil, err
	}

	var out []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := labelString(m.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				out = append(out, Sample{mf.GetName(), labels, m.GetCounter().GetValue()})
			case dto.MetricType_GAUGE:
				out = append(out, Sample{mf.GetName(), labels, m.GetGauge().GetValue()})
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				out = append(out,
					Sample{mf.GetName() + "_count", labels, float64(h.GetSampleCount())},
					Sample{mf.GetName() + "_sum", labels, h.GetSampleSum()},
				)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Labels < out[j].Labels
	})

	return out, nil
}

func labelString(pairs []*dto.LabelPair) string {
	parts := make([]string, 0, len(pairs))
	for _, lp := range pairs {
		parts = append(parts, lp.GetName()+"="+lp.GetValue())
	}
	return strings.Join(parts, ",")
}
