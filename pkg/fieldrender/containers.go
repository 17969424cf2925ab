package fieldrender

import (
	"strconv"

	"github.com/dkoosis/fieldkit/pkg/container"
	"github.com/dkoosis/fieldkit/pkg/field"
	"github.com/dkoosis/fieldkit/pkg/node"
)

// Repeater renders an ordered list of item records. Each child of each
// item re-enters dispatch on its own; items share nothing but the list.
type Repeater struct{}

func (Repeater) Category() field.Category { return field.CategoryRepeater }

// Group renders one nested record in a fixed-column grid.
type Group struct{}

func (Group) Category() field.Category { return field.CategoryGroup }

// renderChildren dispatches every bound child. Child setters are only
// handed down when the container itself is editable.
func renderChildren(p Props, children []container.Child) []node.Node {
	out := make([]node.Node, 0, len(children))
	for _, c := range children {
		var set func(any)
		if p.editable() {
			set = c.Set
		}
		n := p.renderChild(p.child(c.Def, c.Value, set))
		// Form children label themselves.
		if p.Mode != field.ModeForm {
			n = &node.FormField{Label: c.Def.DisplayLabel(), Body: n}
		}
		out = append(out, n)
	}
	return out
}

// previewChildren renders the schema of a container without data.
func previewChildren(p Props, defs []field.Definition) []node.Node {
	out := make([]node.Node, 0, len(defs))
	for _, d := range defs {
		if d.Hidden {
			continue
		}
		out = append(out, p.renderChild(p.child(d, nil, nil)))
	}
	return out
}

func (Repeater) Render(p Props) node.Node {
	var onChange func(any)
	var onChildChange func(int, string, any)
	if p.editable() {
		onChange = p.OnChange
		onChildChange = p.OnChildChange
	}
	r := container.BindRepeater(p.Field, p.Value, p.Config, onChange, onChildChange)
	noun := field.ConfigString(p.Config, "item_noun", "item")

	items := func(withActions bool) []node.Node {
		out := make([]node.Node, 0, len(r.Items)+1)
		for i := range r.Items {
			idx := i
			it := &node.Item{
				Index: i,
				ID:    r.ItemID(i),
				Body:  node.Column(renderChildren(p, r.Children(i))...),
			}
			if withActions {
				it.Actions = []node.Node{
					action(p, "Move up", i > 0, func() { r.Move(idx, idx-1) }),
					action(p, "Move down", i < len(r.Items)-1, func() { r.Move(idx, idx+1) }),
					action(p, "Remove", r.CanRemove(), func() { r.Remove(idx) }),
				}
			}
			out = append(out, it)
		}
		return out
	}
	edit := func() node.Node {
		list := items(true)
		list = append(list, action(p, field.ConfigString(p.Config, "add_label", "Add "+noun), r.CanAdd(), func() { r.Add() }))
		return node.Column(list...)
	}

	return modes{
		display: func() node.Node {
			if len(r.Items) == 0 {
				return emptyFor(p)
			}
			return node.Column(items(false)...)
		},
		compact: func() node.Node {
			if len(r.Items) == 0 {
				return emptyFor(p)
			}
			return &node.Count{N: len(r.Items), Noun: plural(len(r.Items), noun)}
		},
		edit: edit,
		form: func() node.Node {
			n := formField(p, edit())
			if ff, ok := n.(*node.FormField); ok && ff.Hint == "" && (r.Min > 0 || r.Max > 0) {
				ff.Hint = limitsHint(r.Min, r.Max, noun)
			}
			return n
		},
		preview: func() node.Node {
			return formField(p, &node.Item{Body: node.Column(previewChildren(p, p.Field.Children)...)})
		},
	}.render(p, field.CategoryRepeater)
}

func limitsHint(minItems, maxItems int, noun string) string {
	switch {
	case minItems > 0 && maxItems > 0:
		return strconv.Itoa(minItems) + " to " + strconv.Itoa(maxItems) + " " + plural(maxItems, noun)
	case minItems > 0:
		return "At least " + strconv.Itoa(minItems) + " " + plural(minItems, noun)
	default:
		return "Up to " + strconv.Itoa(maxItems) + " " + plural(maxItems, noun)
	}
}

func (Group) Render(p Props) node.Node {
	var onChange func(any)
	if p.editable() {
		onChange = p.OnChange
	}
	g := container.BindGroup(p.Field, p.Value, onChange)
	columns := field.ConfigInt(p.Config, container.KeyColumns, 1)
	if columns < 1 {
		columns = 1
	}
	grid := func() node.Node {
		return &node.Grid{Columns: columns, Cells: renderChildren(p, g.Children())}
	}
	total := 0
	for _, c := range p.Field.Children {
		if !c.Hidden {
			total++
		}
	}

	return modes{
		display: func() node.Node {
			if g.Filled() == 0 {
				return emptyFor(p)
			}
			return grid()
		},
		compact: func() node.Node {
			if g.Filled() == 0 {
				return emptyFor(p)
			}
			return &node.Text{Text: strconv.Itoa(g.Filled()) + "/" + strconv.Itoa(total) + " filled", Tone: node.ToneMuted}
		},
		edit: grid,
		preview: func() node.Node {
			return formField(p, &node.Grid{Columns: columns, Cells: previewChildren(p, p.Field.Children)})
		},
	}.render(p, field.CategoryGroup)
}
