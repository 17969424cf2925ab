package fieldrender

import (
	"github.com/dkoosis/fieldkit/pkg/field"
	"github.com/dkoosis/fieldkit/pkg/node"
)

// Layout renders static schema elements. They carry no value, ignore mode
// except for dense layouts, and never emit changes.
type Layout struct{}

func (Layout) Category() field.Category { return field.CategoryLayout }

func (Layout) Render(p Props) node.Node {
	text := field.ConfigString(p.Config, "text", field.ConfigString(p.Config, "content", ""))
	key := p.typeKey()

	switch {
	case field.TypeIs(key, "divider", "page_break") || field.TypeContains(key, "divider"):
		return &node.Divider{}
	case field.TypeIs(key, "spacer"):
		return &node.Text{Text: ""}
	case field.TypeIs(key, "paragraph", "static_text") || field.TypeContains(key, "paragraph"):
		if text == "" {
			text = p.Field.Description
		}
		if p.Mode == field.ModeCompact {
			return &node.Text{Text: truncate(singleLine(text), compactWidth(p)), Tone: node.ToneMuted}
		}
		return &node.Text{Text: text, Tone: node.ToneMuted}
	default:
		if text == "" {
			text = p.Field.DisplayLabel()
		}
		if p.Mode == field.ModeCompact {
			return &node.Text{Text: text, Tone: node.TonePrimary}
		}
		return &node.Heading{Text: text, Level: field.ConfigInt(p.Config, "level", 2)}
	}
}
