package fieldrender

import (
	"github.com/dkoosis/fieldkit/pkg/field"
	"github.com/dkoosis/fieldkit/pkg/node"
)

// Text renders single and multi-line text.
type Text struct{}

func (Text) Category() field.Category { return field.CategoryText }

func multiline(p Props) bool {
	return field.ConfigBool(p.Config, "multiline", false) ||
		field.TypeIs(p.typeKey(), "long_text", "textarea", "rich_text", "multi_line_text", "markdown", "paragraph")
}

func (Text) Render(p Props) node.Node {
	s, _ := field.String(p.Value)
	empty := field.IsEmpty(s)

	input := func() *node.Input {
		control := "text"
		if multiline(p) {
			control = "textarea"
		}
		return &node.Input{
			Control:     control,
			Name:        p.Field.Key(),
			Value:       s,
			Placeholder: field.ConfigString(p.Config, "placeholder", ""),
			Disabled:    p.Disabled,
			Required:    p.Required,
			Set:         setter(p, coerceString),
		}
	}

	return modes{
		display: func() node.Node {
			if empty {
				return emptyFor(p)
			}
			return &node.Text{Text: s}
		},
		compact: func() node.Node {
			if empty {
				return emptyFor(p)
			}
			return &node.Text{Text: truncate(singleLine(s), compactWidth(p))}
		},
		edit: func() node.Node { return input() },
		form: func() node.Node {
			in := input()
			tags := field.ConfigStrings(p.Config, "merge_tags")
			if len(tags) == 0 {
				return formField(p, in)
			}
			buttons := make([]node.Node, 0, len(tags))
			for _, tag := range tags {
				token := "{{" + tag + "}}"
				buttons = append(buttons, action(p, "Insert "+token, true, func() {
					p.OnChange(s + token)
				}))
			}
			return formField(p, node.Column(in, node.Row(buttons...)))
		},
	}.render(p, field.CategoryText)
}
