package stratum

import "log/slog"

type config[S any] struct {
	preloaded *S
	enhancer  Enhancer[S]
	logger    *slog.Logger
}

// Option configures store construction.
type Option[S any] func(*config[S])

// WithPreloadedState seeds the store with state hydrated elsewhere (a server
// snapshot, a previous session). The reducer still sees the initialization
// action and must return the preloaded state unchanged for it.
func WithPreloadedState[S any](state S) Option[S] {
	return func(c *config[S]) {
		c.preloaded = &state
	}
}

// WithEnhancer hands store construction to e, which wraps the base
// constructor. Use ApplyMiddleware to build an enhancer from middleware, or
// Compose to stack several enhancers.
func WithEnhancer[S any](e Enhancer[S]) Option[S] {
	return func(c *config[S]) {
		c.enhancer = e
	}
}

// WithLogger sets a structured logger for transition tracing. The default
// discards everything.
func WithLogger[S any](logger *slog.Logger) Option[S] {
	return func(c *config[S]) {
		if logger != nil {
			c.logger = logger
		}
	}
}
