package fieldrender

import (
	"github.com/dkoosis/fieldkit/pkg/field"
	"github.com/dkoosis/fieldkit/pkg/node"
)

// Recommendation renders a list of {title, url, reason} suggestions. In
// interactive modes each suggestion can be dismissed.
type Recommendation struct{}

func (Recommendation) Category() field.Category { return field.CategoryRecommendation }

// suggestion is one displayable entry and its index in the stored list.
type suggestion struct {
	rec    map[string]any
	source int
}

// recommendations normalizes the displayable entries of list to records;
// bare strings become titles. Entries with nothing to show are skipped
// but stay in the stored value.
func recommendations(list []any) []suggestion {
	out := make([]suggestion, 0, len(list))
	for i, e := range list {
		if rec := field.Record(e); rec != nil {
			if field.FirstString(rec, "title", "name", "url") != "" {
				out = append(out, suggestion{rec: rec, source: i})
			}
			continue
		}
		if s, ok := field.String(e); ok && s != "" {
			out = append(out, suggestion{rec: map[string]any{"title": s}, source: i})
		}
	}
	return out
}

// without returns a copy of list minus the element at i.
func without(list []any, i int) []any {
	out := make([]any, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}

func (Recommendation) Render(p Props) node.Node {
	raw := field.List(p.Value)
	recs := recommendations(raw)

	entry := func(rec map[string]any) node.Node {
		title := field.FirstString(rec, "title", "name", "url")
		var head node.Node = &node.Text{Text: title}
		if u := safeHref(field.FirstString(rec, "url", "href")); u != "" {
			head = &node.Link{Label: title, Href: u}
		}
		if reason := field.FirstString(rec, "reason", "description"); reason != "" {
			return node.Column(head, &node.Text{Text: reason, Tone: node.ToneMuted})
		}
		return head
	}
	list := func(dismissable bool) node.Node {
		if len(recs) == 0 {
			return emptyFor(p)
		}
		items := make([]node.Node, len(recs))
		for i, sg := range recs {
			it := &node.Item{Index: i, Body: entry(sg.rec)}
			if dismissable {
				source := sg.source
				it.Actions = []node.Node{action(p, "Dismiss", true, func() {
					p.OnChange(without(raw, source))
				})}
			}
			items[i] = it
		}
		return node.Column(items...)
	}

	return modes{
		display: func() node.Node { return list(false) },
		compact: func() node.Node {
			if len(recs) == 0 {
				return emptyFor(p)
			}
			return &node.Count{N: len(recs), Noun: plural(len(recs), "suggestion")}
		},
		edit: func() node.Node { return list(true) },
	}.render(p, field.CategoryRecommendation)
}
