package markup

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
	KindFragment             // Grouping without wrapper
	KindRaw                  // Raw HTML (dangerous)
	KindIsland               // Client-hydrated interactive region
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	case KindIsland:
		return "Island"
	default:
		return "Unknown"
	}
}

// Node is a server-side markup node.
type Node struct {
	Kind     Kind    // Node type
	Tag      string  // Element tag name (e.g., "div")
	Attrs    Attrs   // Element attributes
	Children []*Node // Child nodes
	Text     string  // For KindText and KindRaw

	// Island holds the client module reference for KindIsland nodes.
	Island *IslandRef
}

// Attrs holds element attributes.
type Attrs map[string]any

// IslandRef names the client entrypoint that hydrates an island, along with
// the state value serialized into the page for it. State must be
// JSON-serializable.
type IslandRef struct {
	Entrypoint string
	State      any
}
