package fieldrender

import (
	"strings"

	"github.com/dkoosis/fieldkit/pkg/field"
	"github.com/dkoosis/fieldkit/pkg/node"
)

// Number renders plain numbers, currency, percentages, ratings and
// durations. Autonumber fields are system-assigned and never editable.
type Number struct{}

func (Number) Category() field.Category { return field.CategoryNumber }

func coerceNumber(raw any) (any, bool) {
	if s, ok := raw.(string); ok {
		s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
		if s == "" {
			return nil, true
		}
		raw = s
	}
	if raw == nil {
		return nil, true
	}
	f, ok := field.Float(raw)
	return f, ok
}

func (Number) Render(p Props) node.Node {
	f, ok := field.Float(p.Value)
	kind := numberKindOf(p.typeKey(), p.Config)
	readOnly := field.TypeIs(p.typeKey(), "autonumber", "auto_number")

	display := func() node.Node {
		if !ok {
			return emptyFor(p)
		}
		return &node.Text{Text: formatNumber(f, kind, p.Config)}
	}
	input := func() node.Node {
		control := "number"
		if kind == numberRating {
			control = "rating"
		}
		in := &node.Input{
			Control:     control,
			Name:        p.Field.Key(),
			Placeholder: field.ConfigString(p.Config, "placeholder", ""),
			Disabled:    p.Disabled,
			Required:    p.Required,
			Set:         setter(p, coerceNumber),
		}
		if ok {
			in.Value = f
		}
		return in
	}

	m := modes{display: display}
	if !readOnly {
		m.edit = input
	}
	return m.render(p, field.CategoryNumber)
}
