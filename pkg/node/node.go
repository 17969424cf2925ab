// Package node defines the abstract output tree produced by field renderers.
// Nodes are pure data; host renderers decide presentation.
package node

// Kind identifies the kind of node.
type Kind string

const (
	KindText      Kind = "text"
	KindEmpty     Kind = "empty"
	KindBadge     Kind = "badge"
	KindCount     Kind = "count"
	KindLink      Kind = "link"
	KindErrorChip Kind = "error-chip"
	KindWarning   Kind = "warning"
	KindInput     Kind = "input"
	KindAction    Kind = "action"
	KindDropzone  Kind = "dropzone"
	KindFormField Kind = "form-field"
	KindStack     Kind = "stack"
	KindGrid      Kind = "grid"
	KindItem      Kind = "item"
	KindSkeleton  Kind = "skeleton"
	KindHeading   Kind = "heading"
	KindDivider   Kind = "divider"
)

// Node is the interface all output nodes implement.
type Node interface {
	Kind() Kind
}

// Parent is implemented by nodes that hold child nodes.
type Parent interface {
	Node
	Nodes() []Node
}

// Walk visits n and its descendants depth-first in order. Returning false
// from fn skips the node's children.
func Walk(n Node, fn func(Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	if p, ok := n.(Parent); ok {
		for _, c := range p.Nodes() {
			Walk(c, fn)
		}
	}
}

// Find returns every node of type T under root, in document order.
func Find[T Node](root Node) []T {
	var out []T
	Walk(root, func(n Node) bool {
		if t, ok := n.(T); ok {
			out = append(out, t)
		}
		return true
	})
	return out
}

// Interactive reports whether any node under root can emit a change.
func Interactive(root Node) bool {
	found := false
	Walk(root, func(n Node) bool {
		switch v := n.(type) {
		case *Input:
			found = found || v.Set != nil
		case *Action:
			found = found || v.Do != nil
		case *Dropzone:
			found = found || v.Add != nil
		}
		return !found
	})
	return found
}
