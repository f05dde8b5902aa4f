package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/glint-dev/glint/pkg/plugin"
)

// Document contains all data needed to render a complete HTML page.
type Document struct {
	// BodyHTML is the pre-rendered page body markup.
	BodyHTML string

	// Title is the page title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Meta contains meta tags for the page.
	Meta []MetaTag

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Styles are inline styles contributed by plugins, emitted into the
	// head in the order given.
	Styles []plugin.Style

	// Scripts are module loaders emitted at the end of the body, in the
	// order given.
	Scripts []ScriptInjection

	// ExtraBodyHTML is raw HTML appended at the end of the body, after
	// all scripts. Used for the development reload client.
	ExtraBodyHTML string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name      string // name attribute
	Content   string // content attribute
	Property  string // property attribute (for OpenGraph)
	HTTPEquiv string // http-equiv attribute
}

// ScriptInjection loads a client module and calls its default-exported
// init function with the JSON-decoded state.
type ScriptInjection struct {
	// Src is the module path served to the browser.
	Src string

	// State is passed to the module's init function. Must be
	// JSON-serializable.
	State any

	// ElementID, when set, is resolved to a DOM element passed to init
	// as the first argument. Used by islands.
	ElementID string
}

// RenderDocument renders a complete HTML document to the given writer.
func (r *Renderer) RenderDocument(w io.Writer, doc Document) error {
	lang := doc.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := w.Write([]byte("<!DOCTYPE html>\n")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, `<html lang="%s">`+"\n", escapeAttr(lang)); err != nil {
		return err
	}

	if err := r.renderHead(w, doc); err != nil {
		return err
	}

	if _, err := w.Write([]byte("<body>\n")); err != nil {
		return err
	}
	if _, err := io.WriteString(w, doc.BodyHTML); err != nil {
		return err
	}

	for _, script := range doc.Scripts {
		if err := renderScriptInjection(w, script); err != nil {
			return err
		}
	}

	if doc.ExtraBodyHTML != "" {
		if _, err := io.WriteString(w, doc.ExtraBodyHTML); err != nil {
			return err
		}
	}

	if _, err := w.Write([]byte("</body>\n</html>\n")); err != nil {
		return err
	}
	return nil
}

// renderHead renders the document head section.
func (r *Renderer) renderHead(w io.Writer, doc Document) error {
	if _, err := w.Write([]byte("<head>\n")); err != nil {
		return err
	}

	if _, err := w.Write([]byte(`  <meta charset="utf-8">` + "\n")); err != nil {
		return err
	}
	if _, err := w.Write([]byte(`  <meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")); err != nil {
		return err
	}

	if doc.Title != "" {
		if _, err := fmt.Fprintf(w, "  <title>%s</title>\n", escapeHTML(doc.Title)); err != nil {
			return err
		}
	}

	for _, meta := range doc.Meta {
		if err := renderMetaTag(w, meta); err != nil {
			return err
		}
	}

	for _, href := range doc.StyleSheets {
		if _, err := fmt.Fprintf(w, `  <link rel="stylesheet" href="%s">`+"\n", escapeAttr(href)); err != nil {
			return err
		}
	}

	for _, style := range doc.Styles {
		if err := renderStyleTag(w, style); err != nil {
			return err
		}
	}

	if _, err := w.Write([]byte("</head>\n")); err != nil {
		return err
	}
	return nil
}

// renderMetaTag renders a meta element.
func renderMetaTag(w io.Writer, meta MetaTag) error {
	if _, err := w.Write([]byte("  <meta")); err != nil {
		return err
	}
	if meta.Name != "" {
		if _, err := fmt.Fprintf(w, ` name="%s"`, escapeAttr(meta.Name)); err != nil {
			return err
		}
	}
	if meta.Property != "" {
		if _, err := fmt.Fprintf(w, ` property="%s"`, escapeAttr(meta.Property)); err != nil {
			return err
		}
	}
	if meta.HTTPEquiv != "" {
		if _, err := fmt.Fprintf(w, ` http-equiv="%s"`, escapeAttr(meta.HTTPEquiv)); err != nil {
			return err
		}
	}
	if meta.Content != "" {
		if _, err := fmt.Fprintf(w, ` content="%s"`, escapeAttr(meta.Content)); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte(">\n"))
	return err
}

// renderStyleTag renders an inline style element contributed by a plugin.
func renderStyleTag(w io.Writer, style plugin.Style) error {
	if _, err := w.Write([]byte("  <style")); err != nil {
		return err
	}
	if style.ID != "" {
		if _, err := fmt.Fprintf(w, ` id="%s"`, escapeAttr(style.ID)); err != nil {
			return err
		}
	}
	if style.Media != "" {
		if _, err := fmt.Fprintf(w, ` media="%s"`, escapeAttr(style.Media)); err != nil {
			return err
		}
	}
	// CSS text is emitted as-is: escaping would corrupt selectors, and
	// styles come from registered plugins, not request data.
	if _, err := fmt.Fprintf(w, ">%s</style>\n", style.CSSText); err != nil {
		return err
	}
	return nil
}

// renderScriptInjection renders one module loader script.
func renderScriptInjection(w io.Writer, script ScriptInjection) error {
	state, err := encodeScriptState(script.State)
	if err != nil {
		return fmt.Errorf("encode state for %s: %w", script.Src, err)
	}

	if script.ElementID != "" {
		_, err = fmt.Fprintf(w,
			`<script type="module">import init from "%s"; init(document.getElementById("%s"), %s);</script>`+"\n",
			escapeAttr(script.Src), escapeAttr(script.ElementID), state)
		return err
	}
	_, err = fmt.Fprintf(w,
		`<script type="module">import init from "%s"; init(%s);</script>`+"\n",
		escapeAttr(script.Src), state)
	return err
}

// encodeScriptState encodes state as JSON safe for inline script content.
func encodeScriptState(state any) (string, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return "", err
	}
	// "</" would let state close the script element early.
	return strings.ReplaceAll(string(data), "</", `<\/`), nil
}
