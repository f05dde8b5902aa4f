// Package glint provides the public API for the Glint web framework.
//
// Glint renders pages on the server from a lightweight markup tree and is
// extensible through plugins: a plugin can wrap every page render with
// sync and async hooks, contribute styles and client scripts, and add
// routes and middleware to the host application.
//
// This is the recommended import for most applications:
//
//	import "github.com/glint-dev/glint"
//
// Usage:
//
//	theme, _ := glint.NewPlugin("theme",
//	    glint.WithRender(func(ctx *glint.RenderContext) (glint.RenderResult, error) {
//	        if _, err := ctx.Render(); err != nil {
//	            return glint.RenderResult{}, err
//	        }
//	        return glint.RenderResult{
//	            Styles: []glint.Style{{CSSText: "body { margin: 0 }"}},
//	        }, nil
//	    }),
//	)
//
//	app, err := glint.New(glint.Config{Plugins: []*glint.Plugin{theme}})
//	app.Page("/", func(r *http.Request) *glint.Node {
//	    return glint.El("h1", nil, glint.Text("Hello"))
//	})
//	app.Run(":3000")
package glint

import (
	"github.com/glint-dev/glint/pkg/markup"
	"github.com/glint-dev/glint/pkg/plugin"
)

// =============================================================================
// Plugin API (re-export from pkg/plugin)
// =============================================================================

// Plugin is a validated, immutable plugin record.
type Plugin = plugin.Plugin

// PluginOption configures a plugin under construction.
type PluginOption = plugin.Option

// NewPlugin builds a validated plugin record. The name must match [a-z_]+.
var NewPlugin = plugin.New

// Plugin construction options.
var (
	WithEntrypoints = plugin.WithEntrypoints
	WithRender      = plugin.WithRender
	WithRenderAsync = plugin.WithRenderAsync
	WithRoutes      = plugin.WithRoutes
	WithMiddlewares = plugin.WithMiddlewares
)

// Route is a route contributed by a plugin.
type Route = plugin.Route

// PageFunc produces the markup tree for a page route.
type PageFunc = plugin.PageFunc

// Middleware wraps an http.Handler, standard library style.
type Middleware = plugin.Middleware

// =============================================================================
// Hook API (re-export from pkg/plugin)
// =============================================================================

// RenderHook is a synchronous hook wrapping the core page render.
type RenderHook = plugin.RenderHook

// AsyncRenderHook is an asynchronous hook wrapping the sync hook chain.
type AsyncRenderHook = plugin.AsyncRenderHook

// RenderContext carries the continuation for a sync hook.
type RenderContext = plugin.RenderContext

// AsyncRenderContext carries the continuation for an async hook.
type AsyncRenderContext = plugin.AsyncRenderContext

// Content is what the core render produces.
type Content = plugin.Content

// RenderResult is a hook's contribution to the rendered document.
type RenderResult = plugin.RenderResult

// Style is an inline stylesheet contribution.
type Style = plugin.Style

// ScriptEntry is a client script contribution referencing an entrypoint.
type ScriptEntry = plugin.ScriptEntry

// Continuation contract violations.
var (
	// ErrRenderNotCalled reports a hook that returned without invoking
	// its continuation.
	ErrRenderNotCalled = plugin.ErrRenderNotCalled

	// ErrRenderReused reports a hook that invoked its continuation more
	// than once.
	ErrRenderReused = plugin.ErrRenderReused
)

// =============================================================================
// Markup API (re-export from pkg/markup)
// =============================================================================

// Node is a node in the markup tree.
type Node = markup.Node

// Attrs holds element attributes.
type Attrs = markup.Attrs

// IslandRef names a client entrypoint with its serialized state.
type IslandRef = markup.IslandRef

// Markup constructors.
var (
	El       = markup.El
	Text     = markup.Text
	Textf    = markup.Textf
	Raw      = markup.Raw
	Fragment = markup.Fragment
	Island   = markup.Island
)
