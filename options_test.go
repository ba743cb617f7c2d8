package appkit

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gogpu/appkit/backend"
)

// TestNewDefaultOptions tests that New uses the Default registry by default.
func TestNewDefaultOptions(t *testing.T) {
	app := New()
	if app.registry != backend.Default {
		t.Error("registry is not backend.Default")
	}
	if app.defaultBackend != "" {
		t.Errorf("defaultBackend = %q, want empty", app.defaultBackend)
	}
	if app.metrics != nil {
		t.Error("metrics should be disabled without a registerer")
	}
}

// TestWithRegistry tests dependency injection of a custom registry.
func TestWithRegistry(t *testing.T) {
	r := backend.NewRegistry()
	app := New(WithRegistry(r))
	if app.registry != r {
		t.Error("registry is not the injected registry")
	}
}

// TestWithRegistryNil tests that a nil registry keeps the default.
func TestWithRegistryNil(t *testing.T) {
	app := New(WithRegistry(nil))
	if app.registry != backend.Default {
		t.Error("nil registry should keep backend.Default")
	}
}

// TestWithDefaultBackend tests the configured default name.
func TestWithDefaultBackend(t *testing.T) {
	app := New(WithDefaultBackend("headless"))
	if app.defaultBackend != "headless" {
		t.Errorf("defaultBackend = %q, want %q", app.defaultBackend, "headless")
	}
}

// TestWithRegisterer tests that metrics are enabled by a registerer.
func TestWithRegisterer(t *testing.T) {
	app := New(WithRegisterer(prometheus.NewRegistry()))
	if app.metrics == nil {
		t.Error("metrics should be enabled")
	}
}

// TestOptionsOrder tests that later options override earlier ones.
func TestOptionsOrder(t *testing.T) {
	app := New(WithDefaultBackend("a"), WithDefaultBackend("b"))
	if app.defaultBackend != "b" {
		t.Errorf("defaultBackend = %q, want %q", app.defaultBackend, "b")
	}
}
