package appkit

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gogpu/appkit/backend"
)

// Option configures an Application during creation.
//
// Example:
//
//	// Default registry, backend chosen by name at Select time
//	app := appkit.New()
//
//	// Configured default and metrics
//	app := appkit.New(
//		appkit.WithDefaultBackend(cfg.DefaultBackend),
//		appkit.WithRegisterer(prometheus.DefaultRegisterer),
//	)
type Option func(*options)

// options holds optional configuration for Application creation.
type options struct {
	registry       *backend.Registry
	defaultBackend string
	registerer     prometheus.Registerer
}

// defaultOptions returns the default application options.
func defaultOptions() options {
	return options{
		registry: backend.Default,
	}
}

// WithDefaultBackend sets the backend used when Select is called without
// a name. This is the process-wide default_backend setting; loading it is
// the caller's concern (see package config).
func WithDefaultBackend(name string) Option {
	return func(o *options) {
		o.defaultBackend = name
	}
}

// WithRegistry resolves backends from r instead of backend.Default.
// Tests use this to register mock adapters in isolation.
func WithRegistry(r *backend.Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithRegisterer enables Prometheus metrics for selection, event
// processing and loop runs.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}
