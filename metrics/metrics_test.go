package metrics_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bestfirst/metrics"
	"github.com/katalvlaran/bestfirst/search"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, metrics.OutcomeFound, metrics.Outcome(nil))
	assert.Equal(t, metrics.OutcomeNoPath, metrics.Outcome(fmt.Errorf("maze: %w", search.ErrNoPath)))
	assert.Equal(t, metrics.OutcomeError, metrics.Outcome(errors.New("boom")))
}

func TestRecorder_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	stats := search.Stats{Expanded: 10, Stale: 2, Relaxed: 30, Pushed: 12, Ties: 1}
	rec.Observe("maze", stats, nil)
	rec.SetCost("maze", 7036)
	rec.Observe("maze", stats, fmt.Errorf("wrapped: %w", search.ErrNoPath))
	rec.Observe("bytes", search.Stats{Expanded: 5}, nil)
	rec.SetCost("bytes", 22)
	rec.Observe("bytes-blocking", search.Stats{Expanded: 9}, nil)

	expected := `
# HELP bestfirst_searches_total Completed searches by solver and outcome
# TYPE bestfirst_searches_total counter
bestfirst_searches_total{outcome="found",solver="bytes"} 1
bestfirst_searches_total{outcome="found",solver="bytes-blocking"} 1
bestfirst_searches_total{outcome="found",solver="maze"} 1
bestfirst_searches_total{outcome="no_path",solver="maze"} 1
# HELP bestfirst_expanded_states_total States whose neighbours were generated
# TYPE bestfirst_expanded_states_total counter
bestfirst_expanded_states_total{solver="bytes"} 5
bestfirst_expanded_states_total{solver="bytes-blocking"} 9
bestfirst_expanded_states_total{solver="maze"} 20
# HELP bestfirst_last_cost Optimal cost found by the latest successful search
# TYPE bestfirst_last_cost gauge
bestfirst_last_cost{solver="bytes"} 22
bestfirst_last_cost{solver="maze"} 7036
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"bestfirst_searches_total", "bestfirst_expanded_states_total", "bestfirst_last_cost"))

	stale := `
# HELP bestfirst_stale_pops_total Frontier entries skipped because a cheaper cost was known
# TYPE bestfirst_stale_pops_total counter
bestfirst_stale_pops_total{solver="bytes"} 0
bestfirst_stale_pops_total{solver="bytes-blocking"} 0
bestfirst_stale_pops_total{solver="maze"} 4
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(stale), "bestfirst_stale_pops_total"))
}

func TestRecorder_Duration(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)
	rec.ObserveDuration("race", 3*time.Millisecond)
	rec.ObserveDuration("race", time.Second)

	n, err := testutil.GatherAndCount(reg, "bestfirst_search_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRecorder_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewRecorder(reg)
	assert.Panics(t, func() { metrics.NewRecorder(reg) })
}
