// SPDX-License-Identifier: Apache-2.0

package arraylist

import (
	"log/slog"

	"github.com/prometheus/common/promslog"
)

type config struct {
	arena  Arena
	logger *slog.Logger
}

// Option configures a RawBuffer or an ArrayList.
type Option func(*config)

// WithArena draws every block from a instead of the Go heap.
// See Arena for the restrictions this places on the element type.
// Arenas are not safe for concurrent use: lists that share one across goroutines
// need it wrapped with NewConcurrentArena.
func WithArena(a Arena) Option {
	return func(c *config) {
		c.arena = a
	}
}

// WithLogger traces resizes and shifts at debug level. A nil logger disables tracing.
func WithLogger(lo *slog.Logger) Option {
	return func(c *config) {
		c.logger = lo
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = promslog.NewNopLogger()
	}
	return c
}
