package backend

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Backend name constants.
const (
	// BackendGoGPU is the Pure Go GPU windowing backend (gogpu).
	BackendGoGPU = "gogpu"
	// BackendFyne is the Fyne toolkit backend (build tag "fyne").
	BackendFyne = "fyne"
	// BackendGTK is the GTK 3 backend (build tag "gtk").
	BackendGTK = "gtk"
	// BackendTerminal is the terminal backend built on Bubble Tea.
	BackendTerminal = "terminal"
	// BackendHeadless is the in-process offscreen backend.
	BackendHeadless = "headless"

	// Auto selects the first usable backend in priority order.
	Auto = "auto"
)

// Factory creates a new backend instance. It returns an error (typically
// wrapping ErrUnavailable) when the native toolkit cannot be used.
type Factory func() (Backend, error)

// Module describes one compiled-in adapter.
type Module struct {
	// Name is the registry key, matched case-insensitively.
	Name string
	// Summary is a one-line description shown in listings.
	Summary string
	// New constructs the adapter.
	New Factory
}

// Registry maps backend names to modules. The zero value is not usable;
// create one with NewRegistry.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]*Module
	// Priority order for Auto (first available wins).
	priority []string
}

// DefaultPriority is the Auto resolution order used by NewRegistry.
// Native windowing toolkits first, headless last.
var DefaultPriority = []string{BackendGoGPU, BackendFyne, BackendGTK, BackendTerminal, BackendHeadless}

// NewRegistry returns an empty registry using DefaultPriority.
func NewRegistry() *Registry {
	return &Registry{
		modules:  make(map[string]*Module),
		priority: append([]string(nil), DefaultPriority...),
	}
}

// Default is the process-wide registry adapters add themselves to from init().
var Default = NewRegistry()

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds a module under its name.
// If a module with the same name is already registered, it will be replaced.
func (r *Registry) Register(m Module) {
	key := normalize(m.Name)
	if key == "" || m.New == nil {
		panic("backend: Register requires a name and a factory")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	m.Name = key
	r.modules[key] = &m
}

// Unregister removes a module from the registry.
// This is useful for testing.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.modules, normalize(name))
}

// SetPriority replaces the Auto resolution order.
func (r *Registry) SetPriority(names ...string) {
	keys := make([]string, 0, len(names))
	for _, name := range names {
		keys = append(keys, normalize(name))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.priority = keys
}

// Available returns the sorted list of registered backend names.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Modules returns the registered modules sorted by name.
func (r *Registry) Modules() []Module {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Module, 0, len(r.modules))
	for _, m := range r.modules {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// IsRegistered checks if a backend with the given name is registered.
func (r *Registry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.modules[normalize(name)]
	return ok
}

// Lookup returns the module registered under name.
func (r *Registry) Lookup(name string) (*Module, error) {
	key := normalize(name)
	if key == "" {
		return nil, fmt.Errorf("%w: no backend name given", ErrNotFound)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modules[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not registered", ErrNotFound, key)
	}
	return m, nil
}

// Open resolves name and constructs one backend instance from its module.
// The name Auto walks the priority list and returns the first module whose
// factory succeeds. An explicit name never falls back to another module.
func (r *Registry) Open(name string) (*Module, Backend, error) {
	if normalize(name) == Auto {
		return r.openAuto()
	}
	m, err := r.Lookup(name)
	if err != nil {
		return nil, nil, err
	}
	b, err := construct(m)
	if err != nil {
		return nil, nil, err
	}
	return m, b, nil
}

func (r *Registry) openAuto() (*Module, Backend, error) {
	r.mu.RLock()
	priority := r.priority
	candidates := make([]*Module, 0, len(priority))
	for _, name := range priority {
		if m, ok := r.modules[name]; ok {
			candidates = append(candidates, m)
		}
	}
	r.mu.RUnlock()

	for _, m := range candidates {
		b, err := construct(m)
		if err == nil {
			return m, b, nil
		}
	}
	return nil, nil, fmt.Errorf("%w: no usable backend among %v", ErrNotFound, priority)
}

// construct runs the factory outside the registry lock; factories may be
// slow (toolkit initialization) or register further modules.
func construct(m *Module) (Backend, error) {
	b, err := m.New()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, m.Name, err)
	}
	if b == nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, m.Name, ErrUnavailable)
	}
	return b, nil
}

// Register registers a module with the Default registry.
// This is typically called from init() functions in adapter packages.
func Register(m Module) { Default.Register(m) }

// Unregister removes a module from the Default registry.
func Unregister(name string) { Default.Unregister(name) }

// Available returns the backend names registered with the Default registry.
func Available() []string { return Default.Available() }

// IsRegistered reports whether name is registered with the Default registry.
func IsRegistered(name string) bool { return Default.IsRegistered(name) }

// Lookup returns a module from the Default registry.
func Lookup(name string) (*Module, error) { return Default.Lookup(name) }

// Open constructs a backend from the Default registry.
func Open(name string) (*Module, Backend, error) { return Default.Open(name) }
