// SPDX-License-Identifier: MIT
// Package: lbp
//
// options.go: functional options for Compute, ComputeHistogram and Trace.
//
// Option constructors validate and panic on meaningless inputs; the
// pipeline itself never panics on user data.

package lbp

// Option customizes a pipeline run by mutating its config before it starts.
type Option func(*config)

type config struct {
	workers int
}

func newConfig(opts ...Option) config {
	cfg := config{workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithWorkers rasterizes segments on up to n goroutines. Segment results are
// merged in segment order before pattern extraction begins, so the output is
// identical to a sequential run. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("lbp: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}
