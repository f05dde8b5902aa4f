package compose

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	glinterrors "github.com/glint-dev/glint/internal/errors"
	"github.com/glint-dev/glint/pkg/plugin"
)

// HostOwner is the owner name used for routes and middleware registered
// by the application itself rather than by a plugin.
const HostOwner = "app"

// route is one registered path with its owner, kept for collision
// reporting.
type route struct {
	owner   string
	path    string
	handler http.Handler
}

// Composer collects routes and middleware from the host and its plugins
// and builds a single chi router from them. Registration happens at
// startup; the built router is immutable.
type Composer struct {
	routes      []route
	ownerByPath map[string]string

	hostMiddlewares   []plugin.Middleware
	pluginMiddlewares []plugin.Middleware
}

// New creates an empty Composer.
func New() *Composer {
	return &Composer{
		ownerByPath: make(map[string]string),
	}
}

// Handle registers a host route. Registering a path twice returns a
// route collision error.
func (c *Composer) Handle(path string, handler http.Handler) error {
	return c.HandleFor(HostOwner, path, handler)
}

// HandleFor registers a route on behalf of the named owner. The owner is
// only used for error reporting; it has no routing effect.
func (c *Composer) HandleFor(owner, path string, handler http.Handler) error {
	if existing, ok := c.ownerByPath[path]; ok {
		return glinterrors.New("E020").
			WithDetailf("route %q registered by both %q and %q", path, existing, owner).
			WithSuggestion("Rename one of the routes or remove the conflicting plugin.")
	}
	c.ownerByPath[path] = owner
	c.routes = append(c.routes, route{owner: owner, path: path, handler: handler})
	return nil
}

// Use appends host middleware. Host middleware runs outermost, before
// any plugin middleware.
func (c *Composer) Use(middlewares ...plugin.Middleware) {
	c.hostMiddlewares = append(c.hostMiddlewares, middlewares...)
}

// UseFromPlugins appends plugin middleware. Call order defines execution
// order, so callers pass plugins in registration order.
func (c *Composer) UseFromPlugins(middlewares ...plugin.Middleware) {
	c.pluginMiddlewares = append(c.pluginMiddlewares, middlewares...)
}

// Owner returns the registered owner for a path, or "" if the path is
// not registered.
func (c *Composer) Owner(path string) string {
	return c.ownerByPath[path]
}

// Paths returns all registered paths in sorted order.
func (c *Composer) Paths() []string {
	paths := make([]string, 0, len(c.ownerByPath))
	for path := range c.ownerByPath {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Router builds the chi router: host middleware, then plugin middleware,
// then all registered routes.
func (c *Composer) Router() chi.Router {
	r := chi.NewRouter()

	for _, mw := range c.hostMiddlewares {
		r.Use(mw)
	}
	for _, mw := range c.pluginMiddlewares {
		r.Use(mw)
	}

	for _, rt := range c.routes {
		r.Handle(rt.path, rt.handler)
	}

	return r
}
