package feature

import (
	"log/slog"

	"github.com/Saastronomical/flagkit/pkg/audit"
)

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets a custom logger. The default discards all logs.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithRecorder sets the audit recorder used for evaluation history.
// The default is a recorder with audit.DefaultCapacity.
func WithRecorder(recorder *audit.Recorder) Option {
	return func(r *Registry) {
		if recorder != nil {
			r.recorder = recorder
		}
	}
}

// WithMetrics enables evaluation counters on the given metrics set.
func WithMetrics(metrics *Metrics) Option {
	return func(r *Registry) {
		r.metrics = metrics
	}
}

// WithFlags replaces the built-in defaults with the given flag set.
func WithFlags(flags ...Flag) Option {
	return func(r *Registry) {
		r.mu.Lock()
		clear(r.flags)
		for _, flag := range flags {
			r.putLocked(flag)
		}
		r.mu.Unlock()
	}
}
