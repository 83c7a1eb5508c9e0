// Package metrics exports search engine counters to Prometheus.
//
// Metrics exposed (all namespaced with "bestfirst_"):
//
//  1. searches_total (counter): completed searches.
//     Labels: solver, outcome (found, no_path, error).
//  2. expanded_states_total (counter): states whose neighbours were generated.
//  3. stale_pops_total (counter): frontier entries skipped as outdated.
//  4. relaxed_edges_total (counter): edges examined.
//  5. pushed_states_total (counter): frontier insertions.
//  6. tied_predecessors_total (counter): equal-cost predecessors kept.
//     Labels (2-6): solver.
//  7. last_cost (gauge): optimal cost of the latest successful search.
//     Labels: solver.
//  8. search_duration_seconds (histogram): wall time per solver run.
//     Labels: solver.
//
// Usage:
//
//	registry := prometheus.NewRegistry()
//	rec := metrics.NewRecorder(registry)
//	res, err := search.Search(problem)
//	rec.Observe("maze", res.Stats, err)
//	rec.SetCost("maze", float64(res.Cost))
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/bestfirst/search"
)

const namespace = "bestfirst"

// Outcome label values.
const (
	OutcomeFound  = "found"
	OutcomeNoPath = "no_path"
	OutcomeError  = "error"
)

// Recorder collects per-solver search counters.
// Safe for concurrent use; the underlying collectors are.
type Recorder struct {
	searches *prometheus.CounterVec
	expanded *prometheus.CounterVec
	stale    *prometheus.CounterVec
	relaxed  *prometheus.CounterVec
	pushed   *prometheus.CounterVec
	ties     *prometheus.CounterVec
	lastCost *prometheus.GaugeVec
	duration *prometheus.HistogramVec
}

// NewRecorder creates and registers all collectors with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	solver := []string{"solver"}

	counter := func(name, help string) *prometheus.CounterVec {
		return factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, solver)
	}

	return &Recorder{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Completed searches by solver and outcome",
		}, []string{"solver", "outcome"}),
		expanded: counter("expanded_states_total", "States whose neighbours were generated"),
		stale:    counter("stale_pops_total", "Frontier entries skipped because a cheaper cost was known"),
		relaxed:  counter("relaxed_edges_total", "Edges examined during relaxation"),
		pushed:   counter("pushed_states_total", "Frontier insertions including the start state"),
		ties:     counter("tied_predecessors_total", "Equal-cost predecessors kept in all-paths mode"),
		lastCost: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_cost",
			Help:      "Optimal cost found by the latest successful search",
		}, solver),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of one solver run",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs to ~26s
		}, solver),
	}
}

// Outcome classifies a search error into an outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeFound
	case errors.Is(err, search.ErrNoPath):
		return OutcomeNoPath
	default:
		return OutcomeError
	}
}

// Observe records the counters of one search run.
func (r *Recorder) Observe(solver string, stats search.Stats, err error) {
	r.searches.WithLabelValues(solver, Outcome(err)).Inc()
	r.expanded.WithLabelValues(solver).Add(float64(stats.Expanded))
	r.stale.WithLabelValues(solver).Add(float64(stats.Stale))
	r.relaxed.WithLabelValues(solver).Add(float64(stats.Relaxed))
	r.pushed.WithLabelValues(solver).Add(float64(stats.Pushed))
	r.ties.WithLabelValues(solver).Add(float64(stats.Ties))
}

// SetCost records the optimal cost of a successful run.
func (r *Recorder) SetCost(solver string, cost float64) {
	r.lastCost.WithLabelValues(solver).Set(cost)
}

// ObserveDuration records the wall time of one solver run.
func (r *Recorder) ObserveDuration(solver string, d time.Duration) {
	r.duration.WithLabelValues(solver).Observe(d.Seconds())
}
