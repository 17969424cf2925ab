// Package fieldrender implements the renderer for every field category.
//
// A renderer is a pure function of its Props: it returns a node tree and
// reports changes only through the callbacks it was handed. Every renderer
// is total over (mode, value): nil, wrong-shaped or adversarial values
// render as the empty state, and unknown modes render as display.
package fieldrender

import (
	"github.com/dkoosis/fieldkit/pkg/field"
	"github.com/dkoosis/fieldkit/pkg/node"
)

// Props is everything a renderer receives for one render pass.
type Props struct {
	Field field.Definition
	Value any

	// OnChange reports a whole-value replacement.
	OnChange func(value any)
	// OnChildChange reports a targeted mutation of one container child.
	OnChildChange func(index int, name string, value any)

	Mode     field.Mode
	Context  field.Context
	Disabled bool
	Required bool

	// Config is the effective config computed by the dispatcher.
	Config map[string]any
	// ViewConfig is the per-surface layer the dispatcher merges on top.
	ViewConfig map[string]any

	// Error is a validation message shown inline in form mode.
	Error string

	// Dispatch re-enters dispatch for container children.
	Dispatch Dispatcher
	// Depth is the container nesting depth of this field.
	Depth int
}

// Renderer renders one field category.
type Renderer interface {
	Category() field.Category
	Render(p Props) node.Node
}

// Dispatcher resolves and renders an arbitrary field. Containers call it
// once per child.
type Dispatcher interface {
	Dispatch(p Props) node.Node
}

// editable reports whether inputs produced for p may emit changes.
func (p Props) editable() bool {
	return p.Mode.Interactive() && !p.Disabled && p.OnChange != nil
}

// typeKey is the dispatch key, used by renderers that cover several
// variants (currency vs percent, email vs url).
func (p Props) typeKey() string {
	return p.Field.TypeKey()
}

// child builds the props of a container child. Mode, context and the
// disabled flag are inherited; config is recomputed by the dispatcher.
func (p Props) child(def field.Definition, value any, set func(any)) Props {
	return Props{
		Field:    def,
		Value:    value,
		OnChange: set,
		Mode:     p.Mode,
		Context:  p.Context,
		Disabled: p.Disabled,
		Required: def.Validation.Required,
		Dispatch: p.Dispatch,
		Depth:    p.Depth + 1,
	}
}

// renderChild dispatches a child, tolerating a missing dispatcher.
func (p Props) renderChild(c Props) node.Node {
	if p.Dispatch == nil {
		return &node.Warning{Message: "No dispatcher for " + c.Field.DisplayLabel()}
	}
	return p.Dispatch.Dispatch(c)
}
