package fieldrender

import (
	"strings"
	"time"

	"github.com/dkoosis/fieldkit/pkg/field"
	"github.com/dkoosis/fieldkit/pkg/node"
)

// Date renders dates, datetimes, times and date ranges. System timestamps
// (created, last modified) are read-only in every mode.
type Date struct{}

func (Date) Category() field.Category { return field.CategoryDate }

type dateKind int

const (
	dateOnly dateKind = iota
	dateTime
	timeOnly
)

func dateKindOf(p Props) dateKind {
	switch {
	case field.TypeIs(p.typeKey(), "time"):
		return timeOnly
	case field.ConfigBool(p.Config, "include_time", false),
		field.TypeContains(p.typeKey(), "datetime", "date_time", "timestamp", "created", "modified", "updated"):
		return dateTime
	default:
		return dateOnly
	}
}

func systemDate(p Props) bool {
	return field.ConfigBool(p.Config, "read_only", false) ||
		field.TypeIs(p.typeKey(), "created_time", "last_modified_time", "created_at", "updated_at", "timestamp")
}

func (k dateKind) layouts(compact bool) (display, wire string) {
	switch k {
	case timeOnly:
		return "3:04 PM", "15:04"
	case dateTime:
		if compact {
			return "2006-01-02 15:04", time.RFC3339
		}
		return "Jan 2, 2006 3:04 PM", time.RFC3339
	default:
		if compact {
			return "2006-01-02", "2006-01-02"
		}
		return "Jan 2, 2006", "2006-01-02"
	}
}

func formatTime(t time.Time, hasClock bool, kind dateKind, cfg map[string]any, compact bool) string {
	layout, _ := kind.layouts(compact)
	if kind == dateTime && !hasClock {
		layout, _ = dateOnly.layouts(compact)
	}
	if custom := field.ConfigString(cfg, "date_format", ""); custom != "" && !compact {
		layout = custom
	}
	return t.Format(layout)
}

// dateRange reads {"start", "end"} records or two-element lists.
func dateRange(v any) (start, end any) {
	if rec := field.Record(v); rec != nil {
		return rec["start"], rec["end"]
	}
	if l := field.List(v); len(l) == 2 {
		return l[0], l[1]
	}
	return nil, nil
}

func (Date) Render(p Props) node.Node {
	kind := dateKindOf(p)
	isRange := field.TypeIs(p.typeKey(), "date_range")

	show := func(v any, compact bool) (string, bool) {
		t, hasClock, ok := parseTime(v)
		if !ok {
			return "", false
		}
		return formatTime(t, hasClock, kind, p.Config, compact), true
	}
	text := func(compact bool) node.Node {
		if isRange {
			start, end := dateRange(p.Value)
			a, okA := show(start, compact)
			b, okB := show(end, compact)
			if !okA && !okB {
				return emptyFor(p)
			}
			if !okA {
				a = "…"
			}
			if !okB {
				b = "…"
			}
			return &node.Text{Text: a + " – " + b}
		}
		s, ok := show(p.Value, compact)
		if !ok {
			return emptyFor(p)
		}
		return &node.Text{Text: s}
	}

	_, wire := kind.layouts(false)
	coerce := func(raw any) (any, bool) {
		if s, isStr := raw.(string); raw == nil || isStr && strings.TrimSpace(s) == "" {
			return nil, true
		}
		t, _, ok := parseTime(raw)
		if !ok {
			return nil, false
		}
		return t.Format(wire), true
	}
	control := map[dateKind]string{dateOnly: "date", dateTime: "datetime", timeOnly: "time"}[kind]
	input := func(name string, v any, set func(any)) *node.Input {
		in := &node.Input{Control: control, Name: name, Disabled: p.Disabled, Required: p.Required, Set: set}
		if t, _, ok := parseTime(v); ok {
			in.Value = t.Format(wire)
		}
		return in
	}

	m := modes{
		display: func() node.Node { return text(false) },
		compact: func() node.Node { return text(true) },
	}
	if !systemDate(p) {
		m.edit = func() node.Node {
			if !isRange {
				return input(p.Field.Key(), p.Value, setter(p, coerce))
			}
			start, end := dateRange(p.Value)
			rec := map[string]any{"start": start, "end": end}
			part := func(name string) func(any) {
				if !p.editable() {
					return nil
				}
				return func(raw any) {
					v, ok := coerce(raw)
					if !ok {
						return
					}
					rec[name] = v
					out := map[string]any{"start": rec["start"], "end": rec["end"]}
					p.OnChange(out)
				}
			}
			return node.Row(input("start", start, part("start")), input("end", end, part("end")))
		}
	}
	return m.render(p, field.CategoryDate)
}
