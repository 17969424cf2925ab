package fieldrender

import (
	"strings"

	"github.com/dkoosis/fieldkit/pkg/container"
	"github.com/dkoosis/fieldkit/pkg/field"
	"github.com/dkoosis/fieldkit/pkg/node"
)

// Address renders a structured postal address record. A plain string value
// is shown as-is and replaced by a record on first edit.
type Address struct{}

func (Address) Category() field.Category { return field.CategoryAddress }

// AddressParts are the record keys of an address in display order.
var AddressParts = []string{"street", "street2", "city", "state", "postal_code", "country"}

func addressParts(cfg map[string]any) []string {
	if parts := field.ConfigStrings(cfg, "parts"); len(parts) > 0 {
		return parts
	}
	return AddressParts
}

// addressLines formats a record the way a mailing label reads.
func addressLines(rec map[string]any) []string {
	get := func(k string) string {
		s, _ := field.String(rec[k])
		return strings.TrimSpace(s)
	}
	var lines []string
	for _, k := range []string{"street", "street2"} {
		if s := get(k); s != "" {
			lines = append(lines, s)
		}
	}
	locality := get("city")
	if st := get("state"); st != "" {
		if locality != "" {
			locality += ", "
		}
		locality += st
	}
	if pc := get("postal_code"); pc != "" {
		if locality != "" {
			locality += " "
		}
		locality += pc
	}
	if locality != "" {
		lines = append(lines, locality)
	}
	if c := get("country"); c != "" {
		lines = append(lines, c)
	}
	return lines
}

func (Address) Render(p Props) node.Node {
	rec := field.Record(p.Value)
	var lines []string
	if rec != nil {
		lines = addressLines(rec)
	} else if s, ok := field.String(p.Value); ok && strings.TrimSpace(s) != "" {
		lines = []string{strings.TrimSpace(s)}
	}

	edit := func() node.Node {
		parts := addressParts(p.Config)
		current := rec
		if current == nil {
			current = map[string]any{}
		}
		cells := make([]node.Node, 0, len(parts))
		for _, part := range parts {
			var set func(any)
			if p.editable() {
				set = func(raw any) {
					v, ok := coerceString(raw)
					if !ok {
						return
					}
					// Parts accumulate so two edits in one pass keep both.
					current = container.UpdateChild(current, part, v)
					p.OnChange(current)
				}
			}
			s, _ := field.String(current[part])
			cells = append(cells, &node.Input{
				Control:     "text",
				Name:        part,
				Value:       s,
				Placeholder: field.Humanize(part),
				Disabled:    p.Disabled,
				Set:         set,
			})
		}
		return &node.Grid{Columns: 2, Cells: cells}
	}

	return modes{
		display: func() node.Node {
			if len(lines) == 0 {
				return emptyFor(p)
			}
			items := make([]node.Node, len(lines))
			for i, l := range lines {
				items[i] = &node.Text{Text: l}
			}
			return node.Column(items...)
		},
		compact: func() node.Node {
			if len(lines) == 0 {
				return emptyFor(p)
			}
			return &node.Text{Text: truncate(strings.Join(lines, ", "), compactWidth(p))}
		},
		edit: edit,
	}.render(p, field.CategoryAddress)
}
