// Package render provides output renderers for rendered field trees.
package render

import "github.com/dkoosis/fieldkit/pkg/node"

// Renderer converts a document to formatted output.
type Renderer interface {
	Render(doc Document) string
}

// Document is one rendered record: the node tree of every field.
type Document struct {
	Title    string
	Mode     string
	Sections []Section
}

// Section is one top-level field of a document.
type Section struct {
	Key      string
	Label    string
	Category string
	Node     node.Node
}
