// SPDX-License-Identifier: MIT

// Package metrics provides Prometheus instrumentation for matching runs:
// counters for computed matchings, committed pairs and oracle queries, and
// histograms for matching size and compute latency.
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/eyesclosed/matching"
)

const namespace = "eyesclosed"

// Collector groups the matching metrics registered on one registry.
type Collector struct {
	Matchings     prometheus.Counter
	MatchedPairs  prometheus.Counter
	OracleQueries prometheus.Counter
	MatchingSize  prometheus.Histogram
	ComputeTime   prometheus.Histogram
}

// NewCollector creates the metrics and registers them on reg.
// A nil reg registers on prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		Matchings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matchings_total",
			Help:      "Total number of matchings computed",
		}),
		MatchedPairs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matched_pairs_total",
			Help:      "Total number of pairs committed across all matchings",
		}),
		OracleQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "oracle_queries_total",
			Help:      "Total number of adjacency oracle queries",
		}),
		MatchingSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "matching_size",
			Help:      "Number of pairs per computed matching",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		ComputeTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "compute_duration_seconds",
			Help:      "Time spent computing one matching in seconds",
			Buckets:   []float64{.00001, .0001, .001, .01, .1, 1, 10},
		}),
	}
	for _, col := range []prometheus.Collector{
		c.Matchings, c.MatchedPairs, c.OracleQueries, c.MatchingSize, c.ComputeTime,
	} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// Observe records one matching computed with the given number of oracle
// queries in d. A nil m records only queries and time. Safe for concurrent use.
func (c *Collector) Observe(m *matching.Matching, queries uint64, d time.Duration) {
	c.OracleQueries.Add(float64(queries))
	c.ComputeTime.Observe(d.Seconds())
	if m == nil {
		return
	}
	c.Matchings.Inc()
	c.MatchedPairs.Add(float64(m.Len()))
	c.MatchingSize.Observe(float64(m.Len()))
}

// Handler returns the Prometheus HTTP handler for g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
