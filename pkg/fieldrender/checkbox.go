package fieldrender

import (
	"github.com/dkoosis/fieldkit/pkg/field"
	"github.com/dkoosis/fieldkit/pkg/node"
)

// Checkbox renders boolean fields. An unset value is empty, not false.
type Checkbox struct{}

func (Checkbox) Category() field.Category { return field.CategoryCheckbox }

func coerceBool(raw any) (any, bool) {
	b, ok := field.Bool(raw)
	return b, ok
}

func (Checkbox) Render(p Props) node.Node {
	b, ok := field.Bool(p.Value)
	return modes{
		display: func() node.Node {
			if !ok {
				return emptyFor(p)
			}
			if b {
				return &node.Text{Text: field.ConfigString(p.Config, "true_label", "Yes"), Tone: node.ToneSuccess}
			}
			return &node.Text{Text: field.ConfigString(p.Config, "false_label", "No"), Tone: node.ToneMuted}
		},
		compact: func() node.Node {
			if !ok {
				return emptyFor(p)
			}
			if b {
				return &node.Text{Text: "✓", Tone: node.ToneSuccess}
			}
			return &node.Text{Text: "✗", Tone: node.ToneMuted}
		},
		edit: func() node.Node {
			return &node.Input{
				Control:  "checkbox",
				Name:     p.Field.Key(),
				Value:    ok && b,
				Disabled: p.Disabled,
				Required: p.Required,
				Set:      setter(p, coerceBool),
			}
		},
	}.render(p, field.CategoryCheckbox)
}
