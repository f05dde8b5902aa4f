package glint

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/glint-dev/glint/internal/dev"
	"github.com/glint-dev/glint/pkg/compose"
	"github.com/glint-dev/glint/pkg/deploy"
	"github.com/glint-dev/glint/pkg/dispatch"
	"github.com/glint-dev/glint/pkg/markup"
	"github.com/glint-dev/glint/pkg/plugin"
	"github.com/glint-dev/glint/pkg/render"
)

// =============================================================================
// App Type
// =============================================================================

// App is the main Glint application entry point. It composes the plugin
// registry, hook pipeline, router, and static file serving into a single
// http.Handler.
//
// Create an App with glint.New():
//
//	app, err := glint.New(glint.Config{
//	    Plugins: []*glint.Plugin{analytics, theme},
//	    Static:  glint.StaticConfig{Dir: "static"},
//	    DevMode: os.Getenv("ENV") != "production",
//	})
//
//	app.Page("/", HomePage)
//	app.Run(":3000")
type App struct {
	config Config
	logger *slog.Logger

	registry *plugin.Registry
	pipeline *dispatch.Pipeline
	composer *compose.Composer

	hostPages    []hostPage
	hostHandlers []hostHandler
	pagePaths    []string

	notFound  plugin.PageFunc
	errorPage func(r *http.Request, err error) *markup.Node

	// Static file serving
	staticFS http.FileSystem

	// Development mode
	reload *dev.ReloadServer

	buildOnce sync.Once
	buildErr  error
	router    chi.Router
}

type hostPage struct {
	path string
	page plugin.PageFunc
}

type hostHandler struct {
	path    string
	handler http.Handler
}

// New creates a new Glint application. Plugin validation happens here:
// a duplicate plugin name fails construction, before any route is served.
func New(cfg Config) (*App, error) {
	cfg.applyDefaults()

	registry, err := plugin.NewRegistry(cfg.Plugins...)
	if err != nil {
		return nil, err
	}

	app := &App{
		config:   cfg,
		logger:   cfg.Logger,
		registry: registry,
		pipeline: dispatch.New(registry),
		composer: compose.New(),
	}

	if cfg.Static.Dir != "" {
		app.staticFS = http.Dir(cfg.Static.Dir)
	}
	if cfg.DevMode {
		app.reload = dev.NewReloadServer()
	}

	return app, nil
}

// =============================================================================
// Route Registration
// =============================================================================

// Page registers a host page route rendered through the hook pipeline.
// Pages are served for GET and HEAD requests only.
func (a *App) Page(path string, page plugin.PageFunc) {
	a.hostPages = append(a.hostPages, hostPage{path: path, page: page})
}

// Handle registers a plain host route.
func (a *App) Handle(path string, handler http.Handler) {
	a.hostHandlers = append(a.hostHandlers, hostHandler{path: path, handler: handler})
}

// HandleFunc registers a plain host route with a handler function.
func (a *App) HandleFunc(path string, handler http.HandlerFunc) {
	a.Handle(path, handler)
}

// Use appends host middleware. Host middleware runs before all plugin
// middleware regardless of registration order.
func (a *App) Use(middlewares ...plugin.Middleware) {
	a.composer.Use(middlewares...)
}

// NotFound sets the page rendered for unmatched paths. Without it,
// unmatched paths get a plain 404.
func (a *App) NotFound(page plugin.PageFunc) {
	a.notFound = page
}

// ErrorPage sets the page rendered when a request fails. It receives the
// failing error and is rendered without the hook pipeline, so plugin
// failures cannot recurse. Without it, failures get a plain 500.
func (a *App) ErrorPage(fn func(r *http.Request, err error) *markup.Node) {
	a.errorPage = fn
}

// Registry returns the application's plugin registry.
func (a *App) Registry() *plugin.Registry {
	return a.registry
}

// =============================================================================
// Build
// =============================================================================

// Build composes the routing table. It is called automatically by Run and
// ServeHTTP; call it directly to surface configuration errors (such as
// route collisions) early. Build is idempotent.
func (a *App) Build() error {
	a.buildOnce.Do(func() {
		a.buildErr = a.build()
	})
	return a.buildErr
}

func (a *App) build() error {
	// Host routes first so collision errors report the host as the
	// earlier registration.
	for _, hp := range a.hostPages {
		if err := a.composer.Handle(hp.path, a.pageHandler(hp.page)); err != nil {
			return err
		}
		a.pagePaths = append(a.pagePaths, hp.path)
	}
	for _, hh := range a.hostHandlers {
		if err := a.composer.Handle(hh.path, hh.handler); err != nil {
			return err
		}
	}

	// Plugin contributions in registration order.
	for _, p := range a.registry.All() {
		a.composer.UseFromPlugins(p.Middlewares()...)
		for _, rt := range p.Routes() {
			var handler http.Handler
			if rt.Component != nil {
				handler = a.pageHandler(rt.Component)
				a.pagePaths = append(a.pagePaths, rt.Path)
			} else {
				handler = rt.Handler
			}
			if err := a.composer.HandleFor(p.Name(), rt.Path, handler); err != nil {
				return err
			}
		}
	}

	router := a.composer.Router()
	if a.notFound != nil {
		router.NotFound(func(w http.ResponseWriter, r *http.Request) {
			a.renderPage(w, r, a.notFound, http.StatusNotFound)
		})
	}
	a.router = router

	a.logger.Info("application built",
		"plugins", a.registry.Len(),
		"routes", len(a.composer.Paths()))
	return nil
}

// PagePaths returns the paths of all component routes (host and plugin),
// in registration order. Used for static export.
func (a *App) PagePaths() ([]string, error) {
	if err := a.Build(); err != nil {
		return nil, err
	}
	return append([]string(nil), a.pagePaths...), nil
}

// =============================================================================
// http.Handler Implementation
// =============================================================================

// ServeHTTP implements http.Handler. It routes requests to static files,
// the development reload endpoint, or the composed routing table.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := a.Build(); err != nil {
		a.logger.Error("application build failed", "error", err)
		http.Error(w, "configuration error", http.StatusInternalServerError)
		return
	}

	path := r.URL.Path

	if a.staticFS != nil && a.shouldServeStatic(path) {
		a.serveStatic(w, r)
		return
	}

	if a.reload != nil && path == dev.ReloadEndpoint {
		a.reload.ServeHTTP(w, r)
		return
	}

	a.router.ServeHTTP(w, r)
}

// pageHandler adapts a page function into an HTTP handler.
func (a *App) pageHandler(page plugin.PageFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		a.renderPage(w, r, page, http.StatusOK)
	})
}

// renderPage runs the hook pipeline around the page's core render and
// writes the assembled document.
func (a *App) renderPage(w http.ResponseWriter, r *http.Request, page plugin.PageFunc, status int) {
	renderer := render.NewRenderer(render.RendererConfig{Pretty: a.config.DevMode})

	var bodyHTML string
	outcome, err := a.pipeline.Run(r, func() (plugin.Content, error) {
		node := page(r)
		if node == nil {
			return plugin.Content{}, fmt.Errorf("page %s returned no markup", r.URL.Path)
		}
		html, err := renderer.RenderToString(node)
		if err != nil {
			return plugin.Content{}, err
		}
		bodyHTML = html
		return plugin.Content{RequiresHydration: renderer.RequiresHydration()}, nil
	})
	if err != nil {
		a.renderError(w, r, err)
		return
	}

	doc := render.Document{
		BodyHTML:    bodyHTML,
		Title:       a.config.Title,
		Lang:        a.config.Lang,
		StyleSheets: a.config.StyleSheets,
		Styles:      outcome.Styles,
	}

	// Island loaders in document order, then plugin scripts in
	// registration order.
	if outcome.Content.RequiresHydration {
		for _, island := range renderer.Islands() {
			src, ok := a.registry.ResolveEntrypoint(nil, island.Ref.Entrypoint)
			if !ok {
				a.renderError(w, r, fmt.Errorf("island %q: %w",
					island.Ref.Entrypoint, dispatch.ErrUnknownEntrypoint))
				return
			}
			doc.Scripts = append(doc.Scripts, render.ScriptInjection{
				Src:       src,
				State:     island.Ref.State,
				ElementID: island.ElementID,
			})
		}
	}
	for _, script := range outcome.Scripts {
		doc.Scripts = append(doc.Scripts, render.ScriptInjection{
			Src:   script.Src,
			State: script.State,
		})
	}

	if a.reload != nil {
		doc.ExtraBodyHTML = dev.ClientScript
	}

	var buf bytes.Buffer
	if err := renderer.RenderDocument(&buf, doc); err != nil {
		a.renderError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// renderError writes a failure response, using the configured error page
// when present.
func (a *App) renderError(w http.ResponseWriter, r *http.Request, err error) {
	a.logger.Error("render failed", "path", r.URL.Path, "error", err)

	if a.errorPage != nil {
		node := a.errorPage(r, err)
		if node != nil {
			renderer := render.NewRenderer(render.RendererConfig{Pretty: a.config.DevMode})
			html, renderErr := renderer.RenderToString(node)
			if renderErr == nil {
				var buf bytes.Buffer
				doc := render.Document{
					BodyHTML: html,
					Title:    a.config.Title,
					Lang:     a.config.Lang,
				}
				if docErr := renderer.RenderDocument(&buf, doc); docErr == nil {
					w.Header().Set("Content-Type", "text/html; charset=utf-8")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write(buf.Bytes())
					return
				}
			}
		}
	}

	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// =============================================================================
// Serving and Export
// =============================================================================

// Run builds the application and serves it on addr. In development mode
// it also starts the static file watcher feeding live reload.
func (a *App) Run(addr string) error {
	if err := a.Build(); err != nil {
		return err
	}

	if a.reload != nil && a.config.Static.Dir != "" {
		watcher := dev.NewWatcher(dev.WatcherConfig{
			Paths: []string{a.config.Static.Dir},
		})
		watcher.OnChange(func(change dev.Change) {
			if change.Type == dev.ChangeCSS {
				a.reload.NotifyCSS(change.Path)
				return
			}
			a.reload.NotifyReload()
		})
		go watcher.Start(context.Background())
	}

	a.logger.Info("listening", "addr", addr, "dev", a.config.DevMode)
	return http.ListenAndServe(addr, a)
}

// Export renders every component route to outDir as static files and
// copies the static directory alongside them. Routes with path
// parameters cannot be exported and fail the export.
func (a *App) Export(ctx context.Context, outDir string) error {
	paths, err := a.PagePaths()
	if err != nil {
		return err
	}
	for _, p := range paths {
		if strings.ContainsAny(p, "{*") {
			return fmt.Errorf("export: route %q has path parameters", p)
		}
	}
	return deploy.Export(ctx, a, deploy.ExportConfig{
		OutDir:    outDir,
		Paths:     paths,
		StaticDir: a.config.Static.Dir,
		Logger:    a.logger,
	})
}
