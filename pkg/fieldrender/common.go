package fieldrender

import (
	"fmt"
	"strings"

	"github.com/dkoosis/fieldkit/pkg/field"
	"github.com/dkoosis/fieldkit/pkg/node"
)

// emptyLabel is the placeholder text of an unset value in display mode.
const emptyLabel = "Empty"

// modes holds one builder per mode. Nil builders fall back: compact to
// display, edit to display, form to edit wrapped in a form field, and
// preview to a skeleton. An unrecognized mode renders as display.
type modes struct {
	display func() node.Node
	compact func() node.Node
	edit    func() node.Node
	form    func() node.Node
	preview func() node.Node
}

func (m modes) render(p Props, cat field.Category) node.Node {
	display := m.display
	if display == nil {
		display = func() node.Node { return emptyFor(p) }
	}
	switch p.Mode {
	case field.ModeCompact:
		if m.compact != nil {
			return m.compact()
		}
		return display()
	case field.ModeEdit:
		if m.edit != nil {
			return m.edit()
		}
		return display()
	case field.ModeForm:
		if m.form != nil {
			return m.form()
		}
		if m.edit != nil {
			return formField(p, m.edit())
		}
		return formField(p, display())
	case field.ModePreview:
		if m.preview != nil {
			return m.preview()
		}
		return skeleton(p, cat)
	default:
		return display()
	}
}

// emptyFor is the empty state for p's mode: a labelled placeholder in
// display, an em-dash in dense layouts.
func emptyFor(p Props) node.Node {
	if p.Mode == field.ModeCompact {
		return &node.Text{Text: emDash, Tone: node.ToneMuted}
	}
	return &node.Empty{Label: field.ConfigString(p.Config, "empty_label", emptyLabel)}
}

// formField wraps body with the label, description, required marker and
// inline validation error.
func formField(p Props, body node.Node) node.Node {
	return &node.FormField{
		Label:       p.Field.DisplayLabel(),
		Description: p.Field.Description,
		Required:    p.Required || p.Field.Validation.Required,
		Error:       p.Error,
		Hint:        hint(p.Field.Validation),
		Body:        body,
	}
}

func hint(v field.Validation) string {
	var parts []string
	switch {
	case v.Min != nil && v.Max != nil:
		parts = append(parts, fmt.Sprintf("Between %g and %g", *v.Min, *v.Max))
	case v.Min != nil:
		parts = append(parts, fmt.Sprintf("At least %g", *v.Min))
	case v.Max != nil:
		parts = append(parts, fmt.Sprintf("At most %g", *v.Max))
	}
	if v.MaxLength > 0 {
		parts = append(parts, fmt.Sprintf("Up to %d characters", v.MaxLength))
	}
	return strings.Join(parts, ", ")
}

// skeleton is the preview placeholder. It never reads the value.
func skeleton(p Props, cat field.Category) node.Node {
	lines := 1
	if cat == field.CategoryText && multiline(p) {
		lines = 3
	}
	return &node.Skeleton{Label: p.Field.DisplayLabel(), Category: cat.String(), Lines: lines}
}

// setter returns the Set handler of an input: raw host input is coerced and
// reported through OnChange. Rejected input is dropped. It is nil whenever
// p is not editable.
func setter(p Props, coerce func(any) (any, bool)) func(any) {
	if !p.editable() {
		return nil
	}
	onChange := p.OnChange
	return func(raw any) {
		if v, ok := coerce(raw); ok {
			onChange(v)
		}
	}
}

// action returns a button whose Do is nil unless p is editable and enabled.
func action(p Props, label string, enabled bool, do func()) *node.Action {
	if !p.editable() || !enabled {
		return &node.Action{Label: label, Disabled: true}
	}
	return &node.Action{Label: label, Do: do}
}

func coerceString(raw any) (any, bool) {
	if raw == nil {
		return "", true
	}
	s, ok := field.String(raw)
	return s, ok
}

func compactWidth(p Props) int {
	return field.ConfigInt(p.Config, "compact_width", defaultCompactWidth)
}

// dedupe drops repeated values, keeping the first occurrence.
func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
