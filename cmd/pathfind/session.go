package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gonuts/flag"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/bestfirst/internal/input"
	"github.com/katalvlaran/bestfirst/metrics"
	"github.com/katalvlaran/bestfirst/search"
)

// stdout receives answers and the metrics dump.
var stdout io.Writer = os.Stdout

// common holds the flags every subcommand accepts.
type common struct {
	in      string
	verbose bool
	metrics bool
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.in, "in", "", "puzzle input file (default stdin)")
	fs.BoolVar(&c.verbose, "v", false, "log search statistics")
	fs.BoolVar(&c.metrics, "metrics", false, "print Prometheus metrics after solving")
}

// session is one subcommand run: its input, output and metrics registry.
type session struct {
	common
	lines []string
	out   io.Writer
	reg   *prometheus.Registry
	rec   *metrics.Recorder
}

func (c common) open() (*session, error) {
	if c.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	lines, err := input.Load(c.in, os.Stdin)
	if err != nil {
		return nil, err
	}
	reg := prometheus.NewRegistry()
	return &session{
		common: c,
		lines:  lines,
		out:    stdout,
		reg:    reg,
		rec:    metrics.NewRecorder(reg),
	}, nil
}

// observe logs and records the counters of one solver run. A failed search
// contributes the stats carried by its search.NoPathError.
func (s *session) observe(solver string, stats search.Stats, elapsed time.Duration, err error) {
	var np *search.NoPathError
	if errors.As(err, &np) {
		stats = np.Stats
	}
	s.rec.Observe(solver, stats, err)
	s.rec.ObserveDuration(solver, elapsed)

	entry := log.WithFields(logrus.Fields{
		"solver":   solver,
		"outcome":  metrics.Outcome(err),
		"expanded": stats.Expanded,
		"stale":    stats.Stale,
		"relaxed":  stats.Relaxed,
		"pushed":   stats.Pushed,
		"ties":     stats.Ties,
		"elapsed":  elapsed,
	})
	if err != nil {
		entry.WithError(err).Debug("search finished")
		return
	}
	entry.Debug("search finished")
}

// cost records the optimal cost of a successful run.
func (s *session) cost(solver string, c int) {
	s.rec.SetCost(solver, float64(c))
	log.WithFields(logrus.Fields{"solver": solver, "cost": c}).Debug("optimal cost")
}

func (s *session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

// close writes the metrics registry in the text exposition format when
// -metrics is set.
func (s *session) close() error {
	if !s.metrics {
		return nil
	}
	families, err := s.reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(s.out, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
