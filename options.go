package domcmp

import "log/slog"

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for diagnostics. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithTrace installs a trace hook that observes lifecycle transitions,
// event deliveries and action invocations. Multiple hooks are called in
// the order they were given.
func WithTrace(fn func(TraceEvent)) Option {
	return func(e *Engine) {
		if fn != nil {
			e.tracers = append(e.tracers, fn)
		}
	}
}

// WithStrictSelectors requires every root component to declare a selector.
// Activating a root without one aborts with ErrMissingSelector.
func WithStrictSelectors() Option {
	return func(e *Engine) {
		e.strict = true
	}
}
