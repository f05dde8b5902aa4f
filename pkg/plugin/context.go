package plugin

import (
	"context"
	"errors"
	"net/http"
)

// Continuation contract violations. Both are terminal for the request:
// the framework fails loudly rather than serving a partially rendered page.
var (
	// ErrRenderNotCalled is returned when a hook finishes without invoking
	// its render continuation.
	ErrRenderNotCalled = errors.New("render continuation was not invoked")

	// ErrRenderReused is returned when a hook invokes its render
	// continuation more than once.
	ErrRenderReused = errors.New("render continuation invoked more than once")
)

// Content reports what the wrapped render produced. It is threaded out
// unchanged through every wrapping hook.
type Content struct {
	// RequiresHydration is true when the page contains islands and needs
	// client-side JavaScript to become interactive.
	RequiresHydration bool
}

// RenderHook observes or augments synchronous page rendering. It must call
// ctx.Render() exactly once.
type RenderHook func(ctx *RenderContext) (RenderResult, error)

// AsyncRenderHook wraps the entire render, including all synchronous hooks.
// It must call rctx.RenderAsync exactly once and may do asynchronous work
// before and after. ctx is the request context; it is canceled when the
// client goes away.
type AsyncRenderHook func(ctx context.Context, rctx *AsyncRenderContext) (RenderResult, error)

// RenderContext is the per-request invocation context passed to a
// synchronous render hook. It is never shared between requests.
type RenderContext struct {
	request *http.Request
	render  func() (Content, error)
	calls   int
}

// NewRenderContext builds the invocation context for one hook call.
// The render function is the continuation to the next inner layer.
func NewRenderContext(r *http.Request, render func() (Content, error)) *RenderContext {
	return &RenderContext{request: r, render: render}
}

// Request returns the request being rendered.
func (c *RenderContext) Request() *http.Request { return c.request }

// Render invokes the continuation: the next inner hook, or the core render.
// It must be called exactly once per hook invocation.
func (c *RenderContext) Render() (Content, error) {
	c.calls++
	if c.calls > 1 {
		return Content{}, ErrRenderReused
	}
	return c.render()
}

// Calls reports how many times the continuation was invoked.
func (c *RenderContext) Calls() int { return c.calls }

// AsyncRenderContext is the per-request invocation context passed to an
// asynchronous render hook.
type AsyncRenderContext struct {
	request *http.Request
	render  func(ctx context.Context) (Content, error)
	calls   int
}

// NewAsyncRenderContext builds the invocation context for one async hook
// call. The render function is the continuation to the next inner layer.
func NewAsyncRenderContext(r *http.Request, render func(ctx context.Context) (Content, error)) *AsyncRenderContext {
	return &AsyncRenderContext{request: r, render: render}
}

// Request returns the request being rendered.
func (c *AsyncRenderContext) Request() *http.Request { return c.request }

// RenderAsync invokes the continuation. It does not return until the whole
// inner render, synchronous hooks included, has finished. It must be called
// exactly once per hook invocation.
func (c *AsyncRenderContext) RenderAsync(ctx context.Context) (Content, error) {
	c.calls++
	if c.calls > 1 {
		return Content{}, ErrRenderReused
	}
	return c.render(ctx)
}

// Calls reports how many times the continuation was invoked.
func (c *AsyncRenderContext) Calls() int { return c.calls }
