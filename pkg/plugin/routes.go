package plugin

import (
	"net/http"
	"strings"

	"github.com/glint-dev/glint/internal/errors"
	"github.com/glint-dev/glint/pkg/markup"
)

// PageFunc produces the markup tree for a page route.
type PageFunc func(r *http.Request) *markup.Node

// Middleware wraps an http.Handler, standard library style. Plugin
// middleware composes after host middleware, in plugin registration order.
type Middleware func(http.Handler) http.Handler

// Route is a route contributed by a plugin.
//
// A route is keyed by its logical path and carries exactly one of:
//
//   - Handler: a plain HTTP handler, reachable for every method
//   - Component: a page rendered through the full hook pipeline (GET only)
type Route struct {
	// Path is the logical route path (e.g., "/handler" or "/docs/{slug}").
	Path string

	// Handler serves the route directly.
	Handler http.Handler

	// Component renders the route as a page.
	Component PageFunc
}

// validate checks the route shape; owner is the plugin name for messages.
func (rt Route) validate(owner string) error {
	if !strings.HasPrefix(rt.Path, "/") {
		return errors.New("E003").
			WithDetailf("plugin %q: route path %q must start with '/'", owner, rt.Path)
	}
	hasHandler := rt.Handler != nil
	hasComponent := rt.Component != nil
	if hasHandler == hasComponent {
		return errors.New("E003").
			WithDetailf("plugin %q: route %q must set exactly one of Handler or Component", owner, rt.Path)
	}
	return nil
}
