// SPDX-License-Identifier: MIT
// Package: covercheck/bench
//
// runner.go - the stateless sweep driver.
//
// Execution model (single-threaded, matching the reference behavior):
// each trial is generate -> compute -> record with no shared mutable
// state between trials beyond the accumulated slice. Failure isolation
// is per trial; context cancellation stops the remainder of the sweep,
// with every unrun trial still recorded (marked, not omitted).

package bench

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/covercheck/oracle"
)

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger replaces the default logger. Useful for silencing sweeps in
// tests or routing output through an application logger.
func WithLogger(log *logrus.Logger) RunnerOption {
	return func(r *Runner) {
		if log != nil {
			r.log = log
		}
	}
}

// Runner executes trial specs against one oracle adapter.
type Runner struct {
	adapter *oracle.Adapter
	log     *logrus.Logger
}

// NewRunner builds a Runner around ad.
func NewRunner(ad *oracle.Adapter, opts ...RunnerOption) *Runner {
	r := &Runner{adapter: ad, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run executes the specs in order and returns one Record per spec,
// in the same order. It never returns early: a canceled context marks
// the remaining trials as failed with the context error.
func (r *Runner) Run(ctx context.Context, specs []Spec) []Record {
	records := make([]Record, 0, len(specs))
	for _, spec := range specs {
		records = append(records, r.runOne(ctx, spec))
	}

	failed := 0
	for _, rec := range records {
		if rec.Failed() {
			failed++
		}
	}
	r.log.WithFields(logrus.Fields{
		"trials": len(records),
		"failed": failed,
	}).Info("sweep complete")

	return records
}

// runOne executes a single trial with full error isolation.
func (r *Runner) runOne(ctx context.Context, spec Spec) Record {
	rec := Record{Label: spec.Label, Family: spec.Family.String()}

	if err := ctx.Err(); err != nil {
		rec.Err = err.Error()
		r.log.WithField("trial", spec.Label).WithError(err).Warn("trial skipped")

		return rec
	}

	g, err := spec.Build()
	if err != nil {
		rec.Err = err.Error()
		r.log.WithField("trial", spec.Label).WithError(err).Warn("generation failed")

		return rec
	}
	rec.VertexCount = g.VertexCount()
	rec.EdgeCount = g.EdgeCount()

	res, err := r.adapter.Compute(ctx, g)
	if err != nil {
		rec.Err = err.Error()
		r.log.WithField("trial", spec.Label).WithError(err).Warn("oracle failed")

		return rec
	}
	rec.CoverSize = res.Cover.Len()
	rec.ElapsedMS = res.ElapsedMS()

	r.log.WithFields(logrus.Fields{
		"trial": spec.Label,
		"n":     rec.VertexCount,
		"m":     rec.EdgeCount,
		"cover": rec.CoverSize,
		"ms":    rec.ElapsedMS,
	}).Debug("trial complete")

	return rec
}
