package plugin

import "github.com/glint-dev/glint/internal/errors"

// Registry holds the ordered sequence of registered plugins. It is built
// once at application startup and read-only afterwards, so it needs no
// locking: concurrent requests only iterate it.
type Registry struct {
	plugins []*Plugin
	byName  map[string]*Plugin
}

// NewRegistry validates and registers plugins in the given order.
// Nil entries are skipped. Duplicate names fail fast.
func NewRegistry(plugins ...*Plugin) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]*Plugin, len(plugins)),
	}
	for _, p := range plugins {
		if p == nil {
			continue
		}
		if _, exists := r.byName[p.name]; exists {
			return nil, errors.New("E002").
				WithDetailf("plugin %q registered more than once", p.name).
				WithSuggestion("give every plugin a unique name")
		}
		r.byName[p.name] = p
		r.plugins = append(r.plugins, p)
	}
	return r, nil
}

// All returns the plugins in registration order.
func (r *Registry) All() []*Plugin {
	return append([]*Plugin(nil), r.plugins...)
}

// Get returns the plugin with the given name.
func (r *Registry) Get(name string) (*Plugin, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// Len returns the number of registered plugins.
func (r *Registry) Len() int { return len(r.plugins) }

// ResolveEntrypoint resolves an entrypoint name to a module path. The
// owner's entrypoints win; otherwise plugins are searched in registration
// order. owner may be nil (e.g., islands declared by the host).
func (r *Registry) ResolveEntrypoint(owner *Plugin, name string) (string, bool) {
	if owner != nil {
		if mod, ok := owner.Entrypoint(name); ok {
			return mod, true
		}
	}
	for _, p := range r.plugins {
		if mod, ok := p.Entrypoint(name); ok {
			return mod, true
		}
	}
	return "", false
}
