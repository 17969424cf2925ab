package fieldrender

import (
	"github.com/dkoosis/fieldkit/pkg/field"
	"github.com/dkoosis/fieldkit/pkg/node"
)

// Select renders single and multi-value option fields as badges.
type Select struct{}

func (Select) Category() field.Category { return field.CategorySelect }

func multiSelect(p Props) bool {
	return field.ConfigBool(p.Config, "multiple", false) ||
		field.TypeIs(p.typeKey(), "multi_select", "multiselect", "checkbox_group", "tags")
}

// badge renders one selected value, labelled from its option when known.
func badge(opts []field.Option, v string) *node.Badge {
	if o, ok := field.FindOption(opts, v); ok {
		return &node.Badge{Label: o.DisplayLabel(), Value: v, Color: o.Color}
	}
	return &node.Badge{Label: v, Value: v}
}

func (Select) Render(p Props) node.Node {
	opts := field.Options(p.Config)
	multi := multiSelect(p)
	// Display keeps every stored value; only input collapses to one.
	values := dedupe(field.Strings(p.Value))
	allowOther := field.ConfigBool(p.Config, "allow_other", false)

	// Values outside a non-empty option list are dropped unless the field
	// accepts free entries.
	known := func(vs []string) []string {
		if allowOther || len(opts) == 0 {
			return vs
		}
		out := vs[:0:0]
		for _, v := range vs {
			if _, ok := field.FindOption(opts, v); ok {
				out = append(out, v)
			}
		}
		return out
	}
	coerce := func(raw any) (any, bool) {
		vs := known(dedupe(field.Strings(raw)))
		if multi {
			return toAny(vs), true
		}
		if len(vs) == 0 {
			return nil, true
		}
		return vs[0], true
	}

	badges := func() []node.Node {
		out := make([]node.Node, len(values))
		for i, v := range values {
			out[i] = badge(opts, v)
		}
		return out
	}
	input := func() node.Node {
		control := "select"
		switch {
		case multi:
			control = "multiselect"
		case field.TypeIs(p.typeKey(), "radio"):
			control = "radio"
		}
		var current any
		if multi {
			current = toAny(values)
		} else if len(values) > 0 {
			current = values[0]
		}
		return &node.Input{
			Control:     control,
			Name:        p.Field.Key(),
			Value:       current,
			Placeholder: field.ConfigString(p.Config, "placeholder", ""),
			Options:     opts,
			Multiple:    multi,
			Disabled:    p.Disabled,
			Required:    p.Required,
			Set:         setter(p, coerce),
		}
	}

	return modes{
		display: func() node.Node {
			switch len(values) {
			case 0:
				return emptyFor(p)
			case 1:
				return badge(opts, values[0])
			}
			return node.Row(badges()...)
		},
		compact: func() node.Node {
			switch len(values) {
			case 0:
				return emptyFor(p)
			case 1:
				return badge(opts, values[0])
			}
			return &node.Count{N: len(values), Noun: "selected"}
		},
		edit: input,
	}.render(p, field.CategorySelect)
}
