package plugin

// RenderResult is what a render hook contributes to the page. Results from
// all plugins are merged in registration order: the first registered
// plugin's styles and scripts appear first in the document.
type RenderResult struct {
	// Styles are inline stylesheets injected into the document head.
	Styles []Style

	// Scripts are client modules loaded after the page body, each invoked
	// with its serialized state.
	Scripts []ScriptEntry
}

// Style is an inline stylesheet contributed by a plugin.
type Style struct {
	// CSSText is the stylesheet body.
	CSSText string

	// ID becomes the style element's id attribute, if set.
	ID string

	// Media becomes the style element's media attribute, if set.
	Media string
}

// ScriptEntry references a named entrypoint to load client-side.
//
// The entrypoint name resolves against the contributing plugin's
// entrypoints first, then against all registered plugins in registration
// order. State must be JSON-serializable; it is passed to the module's
// default-exported init function at load time.
type ScriptEntry struct {
	Entrypoint string
	State      any
}
