// SPDX-License-Identifier: MIT

package metrics

import (
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/evidence/fusion"
)

const (
	namespace = "evidence"
	subsystem = "fusion"
)

// ErrRegister wraps registration failures, typically a second Collector on
// the same registry.
var ErrRegister = errors.New("metrics: cannot register collector")

// Collector counts fusion events. It is safe for concurrent use.
type Collector struct {
	fusions      prometheus.Counter
	combinations prometheus.Counter
	sources      prometheus.Histogram
	conflict     prometheus.Histogram
	prunes       prometheus.Counter
	pruned       prometheus.Counter
}

// Compile-time check.
var _ fusion.Observer = (*Collector)(nil)

// New creates a Collector and registers its series on reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		fusions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "fusions_total",
			Help:      "Number of successful fusions.",
		}),
		combinations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "combinations_total",
			Help:      "Number of tensor-product combinations handed to referees.",
		}),
		sources: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "sources",
			Help:      "Number of sources per fusion.",
			Buckets:   []float64{1, 2, 3, 4, 6, 8, 12, 16},
		}),
		conflict: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "conflict",
			Help:      "Conflict measured by each fusion.",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
		}),
		prunes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "prunes_total",
			Help:      "Number of prune passes that shrank a result.",
		}),
		pruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "pruned_elements_total",
			Help:      "Focal elements merged away by pruning.",
		}),
	}
	for _, m := range []prometheus.Collector{c.fusions, c.combinations, c.sources, c.conflict, c.prunes, c.pruned} {
		if err := reg.Register(m); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRegister, err)
		}
	}

	return c, nil
}

// ObserveFusion implements fusion.Observer.
func (c *Collector) ObserveFusion(sources, combinations int, conflict float64) {
	c.fusions.Inc()
	c.combinations.Add(float64(combinations))
	c.sources.Observe(float64(sources))
	c.conflict.Observe(conflict)
}

// ObservePrune implements fusion.Observer.
func (c *Collector) ObservePrune(before, after int) {
	if after >= before {
		return
	}
	c.prunes.Inc()
	c.pruned.Add(float64(before - after))
}

// WriteText writes every family g gathers in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
