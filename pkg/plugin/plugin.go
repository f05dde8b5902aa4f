package plugin

import (
	"regexp"

	"github.com/glint-dev/glint/internal/errors"
)

// namePattern is the allowed character set for plugin and entrypoint names.
var namePattern = regexp.MustCompile(`^[a-z_]+$`)

// Plugin is a validated, immutable plugin record.
// Construct with New; the zero value is not usable.
type Plugin struct {
	name        string
	entrypoints map[string]string
	render      RenderHook
	renderAsync AsyncRenderHook
	routes      []Route
	middlewares []Middleware
}

// Option configures a plugin under construction.
type Option func(*Plugin)

// WithEntrypoints sets the plugin's named client modules. Keys are
// entrypoint names, values are module paths served to the browser.
func WithEntrypoints(entrypoints map[string]string) Option {
	return func(p *Plugin) {
		p.entrypoints = entrypoints
	}
}

// WithRender sets the synchronous render hook.
func WithRender(hook RenderHook) Option {
	return func(p *Plugin) {
		p.render = hook
	}
}

// WithRenderAsync sets the asynchronous render hook.
func WithRenderAsync(hook AsyncRenderHook) Option {
	return func(p *Plugin) {
		p.renderAsync = hook
	}
}

// WithRoutes adds routes contributed to the host routing table.
func WithRoutes(routes ...Route) Option {
	return func(p *Plugin) {
		p.routes = append(p.routes, routes...)
	}
}

// WithMiddlewares adds middleware composed after the host middleware chain.
func WithMiddlewares(mw ...Middleware) Option {
	return func(p *Plugin) {
		p.middlewares = append(p.middlewares, mw...)
	}
}

// New builds a validated plugin record.
//
// The name must match [a-z_]+. Entrypoint names follow the same rule and
// must map to non-empty module paths. Every contributed route must have a
// path starting with "/" and exactly one of Handler or Component set.
func New(name string, opts ...Option) (*Plugin, error) {
	if !namePattern.MatchString(name) {
		return nil, errors.New("E001").
			WithDetailf("plugin name %q contains characters outside [a-z_]", name).
			WithSuggestion("use only lowercase ASCII letters and underscores")
	}

	p := &Plugin{name: name}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	for ep, mod := range p.entrypoints {
		if !namePattern.MatchString(ep) || mod == "" {
			return nil, errors.New("E004").
				WithDetailf("plugin %q: entrypoint %q -> %q", name, ep, mod)
		}
	}

	for _, rt := range p.routes {
		if err := rt.validate(name); err != nil {
			return nil, err
		}
	}

	// Defensive copies: the record must stay immutable even if the caller
	// mutates the inputs after construction.
	if p.entrypoints != nil {
		eps := make(map[string]string, len(p.entrypoints))
		for k, v := range p.entrypoints {
			eps[k] = v
		}
		p.entrypoints = eps
	}
	p.routes = append([]Route(nil), p.routes...)
	p.middlewares = append([]Middleware(nil), p.middlewares...)

	return p, nil
}

// Name returns the plugin's unique name.
func (p *Plugin) Name() string { return p.name }

// Entrypoint looks up a named client module. The second return reports
// whether the plugin defines it.
func (p *Plugin) Entrypoint(name string) (string, bool) {
	mod, ok := p.entrypoints[name]
	return mod, ok
}

// RenderHook returns the synchronous render hook, or nil.
func (p *Plugin) RenderHook() RenderHook { return p.render }

// AsyncRenderHook returns the asynchronous render hook, or nil.
func (p *Plugin) AsyncRenderHook() AsyncRenderHook { return p.renderAsync }

// Routes returns a copy of the plugin's contributed routes.
func (p *Plugin) Routes() []Route {
	return append([]Route(nil), p.routes...)
}

// Middlewares returns a copy of the plugin's contributed middleware.
func (p *Plugin) Middlewares() []Middleware {
	return append([]Middleware(nil), p.middlewares...)
}
