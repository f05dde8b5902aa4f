package markup

import "fmt"

// El creates an element node. Attrs may be nil.
func El(tag string, attrs Attrs, children ...*Node) *Node {
	return &Node{
		Kind:     KindElement,
		Tag:      tag,
		Attrs:    attrs,
		Children: children,
	}
}

// Text creates a text node. The text is escaped during rendering.
func Text(s string) *Node {
	return &Node{Kind: KindText, Text: s}
}

// Textf creates a text node from a format string.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates a raw HTML node. Content is written without escaping and
// must come from a trusted source.
func Raw(html string) *Node {
	return &Node{Kind: KindRaw, Text: html}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...*Node) *Node {
	return &Node{Kind: KindFragment, Children: children}
}

// Island creates an island node hydrated by the named client entrypoint.
// The children are the server-rendered placeholder content; state is
// serialized to JSON and passed to the entrypoint's init function on load.
func Island(entrypoint string, state any, children ...*Node) *Node {
	return &Node{
		Kind:     KindIsland,
		Children: children,
		Island:   &IslandRef{Entrypoint: entrypoint, State: state},
	}
}
