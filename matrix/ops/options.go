// SPDX-License-Identifier: MIT

// Package ops: functional configuration for the reduction kernels.
//
// Safe by construction: constructors panic only on nonsensical values
// (programmer error); kernels never panic on user input.
package ops

import (
	"log/slog"
	"math"
)

// DefaultTolerance is the pivot admissibility threshold: a candidate pivot
// must exceed it in absolute value.
const DefaultTolerance = 1e-9

const (
	panicToleranceInvalid = "ops: WithTolerance: tol must be finite, non-negative"
	panicLoggerNil        = "ops: WithLogger: logger must not be nil"
)

// Option configures a Reducer.
type Option func(*Options)

// Options is the resolved Reducer configuration.
type Options struct {
	tol    float64
	logger *slog.Logger
}

// WithTolerance sets the pivot threshold.
// Panics if tol is NaN, ±Inf or negative.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithLogger routes kernel diagnostics (Debug level) to logger.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = logger }
}

func gatherOptions(user ...Option) Options {
	o := Options{tol: DefaultTolerance}
	for _, set := range user {
		set(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}
