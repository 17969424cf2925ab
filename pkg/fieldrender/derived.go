package fieldrender

import (
	"github.com/dkoosis/fieldkit/pkg/field"
	"github.com/dkoosis/fieldkit/pkg/node"
)

// Derived renders the read-only computed categories: lookup, rollup and
// formula. Values are produced elsewhere, so no mode ever emits a change;
// edit and form degrade to display. An {"error": msg} value renders as an
// error chip.
type Derived struct {
	Of field.Category
}

func (d Derived) Category() field.Category { return d.Of }

// scalarText formats one computed scalar, honouring a number format.
func scalarText(v any, p Props) (string, bool) {
	if _, isStr := v.(string); !isStr {
		if f, ok := field.Float(v); ok {
			return formatNumber(f, numberKindOf(field.ConfigString(p.Config, "result_type", ""), p.Config), p.Config), true
		}
	}
	if b, isBool := v.(bool); isBool {
		if b {
			return "Yes", true
		}
		return "No", true
	}
	s, ok := field.String(v)
	return s, ok && s != ""
}

// linkedLabel reads the display text of one linked record.
func linkedLabel(e any, displayField string) string {
	if rec := field.Record(e); rec != nil {
		keys := []string{"name", "title", "label", "display", "id"}
		if displayField != "" {
			keys = append([]string{displayField}, keys...)
		}
		return field.FirstString(rec, keys...)
	}
	s, _ := field.String(e)
	return s
}

func (d Derived) Render(p Props) node.Node {
	if p.Mode == field.ModePreview {
		return skeleton(p, d.Of)
	}
	if msg, isErr := field.ErrorOf(p.Value); isErr {
		chip := &node.ErrorChip{Message: msg}
		if p.Mode == field.ModeForm {
			return formField(p, chip)
		}
		return chip
	}

	var parts []node.Node
	list := field.List(p.Value)
	if list == nil && !field.IsEmpty(p.Value) {
		list = []any{p.Value}
	}
	displayField := field.ConfigString(p.Config, "display_field", "")
	for _, e := range list {
		if msg, isErr := field.ErrorOf(e); isErr {
			parts = append(parts, &node.ErrorChip{Message: msg})
			continue
		}
		if d.Of == field.CategoryLookup {
			if label := linkedLabel(e, displayField); label != "" {
				parts = append(parts, &node.Badge{Label: label, Value: label})
			}
			continue
		}
		if s, ok := scalarText(e, p); ok {
			parts = append(parts, &node.Text{Text: s})
		}
	}

	display := func() node.Node {
		switch len(parts) {
		case 0:
			return emptyFor(p)
		case 1:
			return parts[0]
		}
		return node.Row(parts...)
	}
	// Edit and form fall through to display; no input is ever produced.
	return modes{
		display: display,
		compact: func() node.Node {
			if len(parts) > 1 {
				noun := "values"
				if d.Of == field.CategoryLookup {
					noun = "records"
				}
				return &node.Count{N: len(parts), Noun: noun}
			}
			if len(parts) == 1 {
				if t, ok := parts[0].(*node.Text); ok {
					return &node.Text{Text: truncate(t.Text, compactWidth(p))}
				}
				return parts[0]
			}
			return emptyFor(p)
		},
	}.render(p, d.Of)
}
