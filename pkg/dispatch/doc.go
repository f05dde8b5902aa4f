// Package dispatch composes plugin render hooks around the core page render.
//
// A Pipeline is built once at startup from the plugin registry and applied
// per request. Hooks nest in registration order: the first registered
// plugin's hook is outermost. Asynchronous hooks form an outer shell around
// the synchronous hooks, which form an inner shell around the core render:
//
//	asyncHook[0]
//	  asyncHook[1]
//	    syncHook[0]
//	      syncHook[1]
//	        core render
//
// The synchronous shell and the core render execute as one sequential pass
// with no suspension points, so synchronous hooks may keep request-scoped
// state in their invocation context without synchronization. Asynchronous
// hooks of concurrent requests interleave; all per-request state lives in
// the run, never in the Pipeline, so concurrent runs cannot bleed into
// each other.
//
// Every hook must invoke its continuation exactly once. Zero invocations
// and repeated invocations both fail the request; rendering is never
// skipped silently.
package dispatch
