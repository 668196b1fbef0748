// SPDX-License-Identifier: MIT

package apsp

// Options configures Solve.
//
// ReturnPaths – keep a next-hop matrix so DistanceMatrix.Path can rebuild
// vertex sequences. Costs an extra V² ints.
type Options struct {
	ReturnPaths bool
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithPaths enables path reconstruction on the returned DistanceMatrix.
func WithPaths() Option {
	return func(o *Options) {
		o.ReturnPaths = true
	}
}

// DefaultOptions returns the zero configuration: distances only.
func DefaultOptions() Options {
	return Options{ReturnPaths: false}
}
