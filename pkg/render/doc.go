// Package render converts markup trees into HTML and assembles complete
// documents.
//
// The renderer handles:
//
//   - HTML5 compliant element rendering
//   - Text and attribute escaping (XSS prevention)
//   - Void element handling (input, br, img, etc.)
//   - Boolean attribute handling (disabled, checked, etc.)
//   - Island markers and entrypoint loader scripts
//   - Full document rendering with DOCTYPE, head, body
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// A renderer collects the islands it encounters; after rendering the body,
// RequiresHydration reports whether the page needs client JavaScript and
// Islands returns the island instances for loader script emission.
//
// # Document Rendering
//
// RenderDocument writes a full HTML page: the head carries plugin styles in
// contribution order, the body carries the rendered markup followed by one
// module loader per injected script.
//
// # Security
//
// All text content is escaped by default. Raw nodes bypass escaping and
// must only carry trusted content. Script state is JSON-encoded with
// "</" broken up so state values cannot close the script element.
package render
