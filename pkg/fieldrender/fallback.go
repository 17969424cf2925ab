package fieldrender

import (
	"github.com/dkoosis/fieldkit/pkg/field"
	"github.com/dkoosis/fieldkit/pkg/node"
)

// UnknownTypeMessage prefixes the warning shown for unresolved types.
const UnknownTypeMessage = "Unknown field type"

// Fallback renders fields whose type resolves to no category. Dense and
// display modes show the raw value; interactive and preview modes show a
// warning and never collect input.
type Fallback struct{}

func (Fallback) Category() field.Category { return field.CategoryUnknown }

func (Fallback) Render(p Props) node.Node {
	raw := func(width int) node.Node {
		if field.IsEmpty(p.Value) {
			return &node.Text{Text: emDash, Tone: node.ToneMuted}
		}
		if s, ok := field.String(p.Value); ok {
			return &node.Text{Text: truncate(s, width)}
		}
		return &node.Text{Text: jsonPreview(p.Value, width), Tone: node.ToneMuted}
	}
	warning := func() node.Node {
		msg := UnknownTypeMessage
		if key := p.typeKey(); key != "" {
			msg += ": " + key
		}
		return &node.Warning{Message: msg}
	}

	return modes{
		display: func() node.Node { return raw(defaultPreviewWidth) },
		compact: func() node.Node { return raw(compactWidth(p)) },
		edit:    warning,
		preview: warning,
	}.render(p, field.CategoryUnknown)
}
