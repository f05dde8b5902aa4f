// Package plugin defines the contract between Glint and its plugins.
//
// A plugin extends page generation and routing. It may implement any of
// four extension points:
//
//   - Render: a synchronous hook wrapped around page rendering
//   - RenderAsync: an asynchronous hook wrapped around the whole render,
//     including all synchronous hooks
//   - Routes: routes merged into the host routing table at startup
//   - Middlewares: middleware composed with the host middleware chain
//
// Plugins are built with New, which validates the record and returns it
// already well-typed; malformed plugins never reach the registry. Once
// registered a plugin is immutable and lives for the process lifetime.
//
// # Hook contract
//
// Both render hooks receive a continuation. The hook must invoke it exactly
// once; the continuation triggers the next inner hook (or the core render)
// and reports whether the page needs client-side hydration. A hook that
// never invokes its continuation fails the request with ErrRenderNotCalled.
// Invoking it twice fails with ErrRenderReused.
//
//	p, err := plugin.New("inline_styles",
//	    plugin.WithRender(func(ctx *plugin.RenderContext) (plugin.RenderResult, error) {
//	        if _, err := ctx.Render(); err != nil {
//	            return plugin.RenderResult{}, err
//	        }
//	        return plugin.RenderResult{
//	            Styles: []plugin.Style{{CSSText: "body { margin: 0 }"}},
//	        }, nil
//	    }),
//	)
//
// Hooks run per request. State shared across a hook's suspension points
// must live in the hook invocation itself or in the request context, never
// in process globals: async hooks of concurrent requests interleave.
package plugin
