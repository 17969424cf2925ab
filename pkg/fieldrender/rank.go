package fieldrender

import (
	"slices"
	"strconv"

	"github.com/dkoosis/fieldkit/pkg/container"
	"github.com/dkoosis/fieldkit/pkg/field"
	"github.com/dkoosis/fieldkit/pkg/node"
)

// Rank renders an ordered ranking of option values.
type Rank struct{}

func (Rank) Category() field.Category { return field.CategoryRank }

func (Rank) Render(p Props) node.Node {
	opts := field.Options(p.Config)
	ranked := dedupe(field.Strings(p.Value))

	label := func(v string) string {
		if o, ok := field.FindOption(opts, v); ok {
			return o.DisplayLabel()
		}
		return v
	}
	numbered := func(i int, v string) *node.Text {
		return &node.Text{Text: strconv.Itoa(i+1) + ". " + label(v)}
	}

	edit := func() node.Node {
		// An unranked field starts from the option order; unranked options
		// follow the ranked ones.
		order := append([]string(nil), ranked...)
		for _, o := range opts {
			if !slices.Contains(order, o.Value) {
				order = append(order, o.Value)
			}
		}
		move := func(from, to int) func() {
			return func() {
				if next, ok := container.MoveItem(order, from, to); ok {
					p.OnChange(toAny(next))
				}
			}
		}
		items := make([]node.Node, len(order))
		for i, v := range order {
			items[i] = &node.Item{
				Index: i,
				ID:    v,
				Body:  numbered(i, v),
				Actions: []node.Node{
					action(p, "Move up", i > 0, move(i, i-1)),
					action(p, "Move down", i < len(order)-1, move(i, i+1)),
				},
			}
		}
		if len(items) == 0 {
			return emptyFor(p)
		}
		return node.Column(items...)
	}

	return modes{
		display: func() node.Node {
			if len(ranked) == 0 {
				return emptyFor(p)
			}
			items := make([]node.Node, len(ranked))
			for i, v := range ranked {
				items[i] = numbered(i, v)
			}
			return node.Column(items...)
		},
		compact: func() node.Node {
			switch len(ranked) {
			case 0:
				return emptyFor(p)
			case 1:
				return numbered(0, ranked[0])
			}
			return node.Row(numbered(0, ranked[0]), &node.Count{N: len(ranked) - 1, Noun: "more"})
		},
		edit: edit,
	}.render(p, field.CategoryRank)
}
