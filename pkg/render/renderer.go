package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/glint-dev/glint/pkg/markup"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables newline-separated HTML output.
	// Should only be used in development as it increases output size.
	Pretty bool
}

// Renderer converts markup trees to HTML. A renderer carries per-render
// state (island numbering); use one renderer per request and Reset it
// before reuse.
type Renderer struct {
	config  RendererConfig
	islands []IslandInstance
}

// IslandInstance is an island encountered during rendering, with the
// element id its loader script targets.
type IslandInstance struct {
	// ElementID is the id attribute of the island's wrapper element.
	ElementID string

	// Ref names the entrypoint and carries the serialized state.
	Ref markup.IslandRef
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	return &Renderer{config: config}
}

// RenderToString renders a markup tree to an HTML string.
func (r *Renderer) RenderToString(node *markup.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a markup tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *markup.Node) error {
	return r.renderNode(w, node)
}

// Islands returns the islands encountered since the last Reset, in
// document order.
func (r *Renderer) Islands() []IslandInstance {
	return r.islands
}

// RequiresHydration reports whether the rendered markup contains islands.
func (r *Renderer) RequiresHydration() bool {
	return len(r.islands) > 0
}

// Reset clears per-render state for reuse.
func (r *Renderer) Reset() {
	r.islands = nil
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *markup.Node) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case markup.KindElement:
		return r.renderElement(w, node)
	case markup.KindText:
		return r.renderText(w, node)
	case markup.KindFragment:
		return r.renderFragment(w, node)
	case markup.KindRaw:
		return r.renderRaw(w, node)
	case markup.KindIsland:
		return r.renderIsland(w, node)
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *markup.Node) error {
	tag := node.Tag

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node.Attrs); err != nil {
		return err
	}

	if isVoidElement(tag) {
		if _, err := w.Write([]byte{'>'}); err != nil {
			return err
		}
		return r.maybeNewline(w)
	}

	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	for _, child := range node.Children {
		if err := r.renderNode(w, child); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	return r.maybeNewline(w)
}

// renderText renders a text node with HTML escaping.
func (r *Renderer) renderText(w io.Writer, node *markup.Node) error {
	_, err := io.WriteString(w, escapeHTML(node.Text))
	return err
}

// renderFragment renders a fragment's children without a wrapper element.
func (r *Renderer) renderFragment(w io.Writer, node *markup.Node) error {
	for _, child := range node.Children {
		if err := r.renderNode(w, child); err != nil {
			return err
		}
	}
	return nil
}

// renderRaw renders raw HTML without escaping.
func (r *Renderer) renderRaw(w io.Writer, node *markup.Node) error {
	_, err := io.WriteString(w, node.Text)
	return err
}

// renderIsland renders the island's placeholder content inside a marker
// element and records the instance for loader script emission.
func (r *Renderer) renderIsland(w io.Writer, node *markup.Node) error {
	if node.Island == nil || node.Island.Entrypoint == "" {
		return fmt.Errorf("island node without entrypoint")
	}

	id := fmt.Sprintf("glint-island-%d", len(r.islands)+1)
	r.islands = append(r.islands, IslandInstance{ElementID: id, Ref: *node.Island})

	if _, err := fmt.Fprintf(w, `<div id="%s" data-glint-island="%s">`,
		escapeAttr(id), escapeAttr(node.Island.Entrypoint)); err != nil {
		return err
	}
	for _, child := range node.Children {
		if err := r.renderNode(w, child); err != nil {
			return err
		}
	}
	if _, err := w.Write([]byte("</div>")); err != nil {
		return err
	}
	return r.maybeNewline(w)
}

// renderAttributes renders all attributes, sorted for deterministic output.
func (r *Renderer) renderAttributes(w io.Writer, attrs markup.Attrs) error {
	if len(attrs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := attrs[key]

		if isBooleanAttr(key) {
			if boolValue, ok := value.(bool); ok {
				if boolValue {
					if _, err := fmt.Fprintf(w, " %s", key); err != nil {
						return err
					}
				}
				continue
			}
		}

		strValue := attrToString(value)
		if strValue != "" {
			if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(strValue)); err != nil {
				return err
			}
		}
	}

	return nil
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// maybeNewline writes a newline in pretty mode.
func (r *Renderer) maybeNewline(w io.Writer) error {
	if !r.config.Pretty {
		return nil
	}
	_, err := w.Write([]byte{'\n'})
	return err
}
