package dispatch

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/glint-dev/glint/pkg/plugin"
)

// ErrUnknownEntrypoint is returned when a script entry references an
// entrypoint no registered plugin defines.
var ErrUnknownEntrypoint = errors.New("unknown entrypoint")

// Script is a script injection with its entrypoint resolved to a module
// path servable to the browser.
type Script struct {
	Entrypoint string
	Src        string
	State      any
}

// Outcome is the merged result of one pipeline run.
type Outcome struct {
	// Content is what the core render produced, threaded out unchanged
	// through every wrapping hook.
	Content plugin.Content

	// Styles are the plugins' style contributions in registration order.
	Styles []plugin.Style

	// Scripts are the plugins' resolved script contributions in
	// registration order.
	Scripts []Script
}

type syncHook struct {
	owner *plugin.Plugin
	hook  plugin.RenderHook
	slot  int
}

type asyncHook struct {
	owner *plugin.Plugin
	hook  plugin.AsyncRenderHook
	slot  int
}

// Pipeline is the hook chain for an application. Built once at startup,
// immutable afterwards; Run may be called concurrently.
type Pipeline struct {
	registry *plugin.Registry
	syncs    []syncHook
	asyncs   []asyncHook
	slots    int
}

// New snapshots the registry's hooks into a pipeline.
func New(reg *plugin.Registry) *Pipeline {
	pl := &Pipeline{registry: reg}

	// A slot is reserved per (plugin, hook) pair so results can be merged
	// in registration order regardless of which layer finishes first.
	// For a plugin with both hooks, the async result precedes the sync one.
	slot := 0
	for _, p := range reg.All() {
		if hook := p.AsyncRenderHook(); hook != nil {
			pl.asyncs = append(pl.asyncs, asyncHook{owner: p, hook: hook, slot: slot})
			slot++
		}
		if hook := p.RenderHook(); hook != nil {
			pl.syncs = append(pl.syncs, syncHook{owner: p, hook: hook, slot: slot})
			slot++
		}
	}
	pl.slots = slot
	return pl
}

// runState is the request-scoped state of one pipeline run.
type runState struct {
	content  plugin.Content
	results  []plugin.RenderResult
	owners   []*plugin.Plugin
	innerErr error
}

// Run executes the hook chain around core for one request.
//
// core is invoked exactly once. A hook that fails, never invokes its
// continuation, or invokes it twice aborts the run with an error naming
// the offending plugin. An inner error is terminal even if an outer hook
// discards it.
func (pl *Pipeline) Run(r *http.Request, core func() (plugin.Content, error)) (Outcome, error) {
	state := &runState{
		results: make([]plugin.RenderResult, pl.slots),
		owners:  make([]*plugin.Plugin, pl.slots),
	}

	content, err := pl.runAsync(r.Context(), r, state, core)
	if err != nil {
		return Outcome{}, err
	}
	if state.innerErr != nil {
		// An inner layer failed but an outer hook swallowed the error.
		// Rendering is unsound at this point; fail loudly.
		return Outcome{}, state.innerErr
	}

	outcome := Outcome{Content: content}
	for slot, res := range state.results {
		outcome.Styles = append(outcome.Styles, res.Styles...)
		for _, entry := range res.Scripts {
			src, ok := pl.registry.ResolveEntrypoint(state.owners[slot], entry.Entrypoint)
			if !ok {
				return Outcome{}, fmt.Errorf("plugin %q: script entry %q: %w",
					state.owners[slot].Name(), entry.Entrypoint, ErrUnknownEntrypoint)
			}
			outcome.Scripts = append(outcome.Scripts, Script{
				Entrypoint: entry.Entrypoint,
				Src:        src,
				State:      entry.State,
			})
		}
	}
	return outcome, nil
}

// runAsync drives the asynchronous shell. The innermost continuation runs
// the whole synchronous round.
func (pl *Pipeline) runAsync(ctx context.Context, r *http.Request, state *runState, core func() (plugin.Content, error)) (plugin.Content, error) {
	index := 0
	var next func(ctx context.Context) (plugin.Content, error)
	next = func(ctx context.Context) (plugin.Content, error) {
		if err := ctx.Err(); err != nil {
			return plugin.Content{}, err
		}
		if index >= len(pl.asyncs) {
			return pl.runSync(r, state, core)
		}

		h := pl.asyncs[index]
		index++
		rctx := plugin.NewAsyncRenderContext(r, func(ctx context.Context) (plugin.Content, error) {
			content, err := next(ctx)
			if err != nil {
				state.innerErr = err
			}
			return content, err
		})

		res, err := h.hook(ctx, rctx)
		if err != nil {
			return plugin.Content{}, fmt.Errorf("plugin %q renderAsync: %w", h.owner.Name(), err)
		}
		if rctx.Calls() == 0 {
			return plugin.Content{}, fmt.Errorf("plugin %q renderAsync: %w", h.owner.Name(), plugin.ErrRenderNotCalled)
		}
		if rctx.Calls() > 1 {
			// The context refused the repeat call, but the contract is
			// violated even when the hook discards that error.
			return plugin.Content{}, fmt.Errorf("plugin %q renderAsync: %w", h.owner.Name(), plugin.ErrRenderReused)
		}
		state.results[h.slot] = res
		state.owners[h.slot] = h.owner
		return state.content, nil
	}
	return next(ctx)
}

// runSync drives the synchronous shell and the core render as one
// sequential pass.
func (pl *Pipeline) runSync(r *http.Request, state *runState, core func() (plugin.Content, error)) (plugin.Content, error) {
	index := 0
	var next func() (plugin.Content, error)
	next = func() (plugin.Content, error) {
		if index >= len(pl.syncs) {
			content, err := core()
			if err != nil {
				state.innerErr = err
				return plugin.Content{}, err
			}
			state.content = content
			return content, nil
		}

		h := pl.syncs[index]
		index++
		ctx := plugin.NewRenderContext(r, func() (plugin.Content, error) {
			content, err := next()
			if err != nil {
				state.innerErr = err
			}
			return content, err
		})

		res, err := h.hook(ctx)
		if err != nil {
			return plugin.Content{}, fmt.Errorf("plugin %q render: %w", h.owner.Name(), err)
		}
		if ctx.Calls() == 0 {
			return plugin.Content{}, fmt.Errorf("plugin %q render: %w", h.owner.Name(), plugin.ErrRenderNotCalled)
		}
		if ctx.Calls() > 1 {
			return plugin.Content{}, fmt.Errorf("plugin %q render: %w", h.owner.Name(), plugin.ErrRenderReused)
		}
		state.results[h.slot] = res
		state.owners[h.slot] = h.owner
		return state.content, nil
	}
	return next()
}
