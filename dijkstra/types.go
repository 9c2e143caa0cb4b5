// Package dijkstra defines the configuration options and sentinel errors of
// the shortest-path solver.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *latency.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrPathNotFound indicates that source and target both exist but no
	// directed path connects them (or none within the configured latency
	// cap). This is an ordinary outcome of a valid query, distinguishable
	// from latency.ErrNodeNotFound so callers can react differently.
	ErrPathNotFound = errors.New("dijkstra: path not found")

	// ErrBadMaxLatency indicates that WithMaxLatency was given a negative
	// cap, which is not a meaningful latency bound.
	ErrBadMaxLatency = errors.New("dijkstra: max latency must be non-negative")
)

// Options configures a single ShortestPath run.
//
// MaxLatencyMS caps exploration: once the frontier minimum exceeds it, the
// search stops and the query fails with ErrPathNotFound. Default is
// math.MaxInt64 (no cap).
type Options struct {
	MaxLatencyMS int64
}

// Option is a functional option for configuring ShortestPath.
type Option func(*Options)

// WithMaxLatency caps the total latency the search will explore. Paths
// costlier than ms are treated as nonexistent. Must be non-negative;
// a negative cap panics with ErrBadMaxLatency.
func WithMaxLatency(ms int64) Option {
	return func(o *Options) {
		if ms < 0 {
			panic(ErrBadMaxLatency.Error())
		}
		o.MaxLatencyMS = ms
	}
}

// DefaultOptions returns the zero-configuration defaults: no latency cap.
func DefaultOptions() Options {
	return Options{MaxLatencyMS: math.MaxInt64}
}
