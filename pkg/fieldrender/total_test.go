package fieldrender_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/fieldkit/pkg/dispatch"
	"github.com/dkoosis/fieldkit/pkg/field"
	"github.com/dkoosis/fieldkit/pkg/fieldrender"
	"github.com/dkoosis/fieldkit/pkg/node"
)

// nestedMap returns a map nested depth levels deep.
func nestedMap(depth int) map[string]any {
	m := map[string]any{"leaf": true}
	for range depth {
		m = map[string]any{"next": m}
	}
	return m
}

// hostileValues are values a host may hand any renderer.
func hostileValues() map[string]any {
	cyclic := map[string]any{"title": "loop"}
	cyclic["self"] = cyclic
	loop := []any{nil}
	loop[0] = loop
	type rec struct{ Name string }
	return map[string]any{
		"huge negative":   -1e10,
		"huge":            1e300,
		"nan":             math.NaN(),
		"negative inf":    math.Inf(-1),
		"deep map":        nestedMap(200),
		"func":            func() {},
		"typed nil":       (*rec)(nil),
		"cyclic map":      cyclic,
		"cyclic list":     loop,
		"list of cycles":  []any{cyclic, cyclic},
		"mixed list":      []any{1, "a", nil, map[string]any{}, []any{}},
		"struct":          rec{Name: "x"},
		"huge string num": "1e400",
	}
}

// categoryTypeIDs covers every category, plus number variants with their
// own formatting paths.
var categoryTypeIDs = []string{
	"address", "rank", "heading", "text", "long_text",
	"number", "currency", "percent", "rating", "duration",
	"select", "multi_select", "date", "datetime", "checkbox", "file",
	"url", "email", "phone", "lookup", "rollup", "formula",
	"repeater", "group", "recommendation", "widget",
}

func TestTypeIDsCoverEveryCategory(t *testing.T) {
	seen := map[field.Category]bool{}
	for _, id := range categoryTypeIDs {
		seen[field.Classify(id)] = true
	}
	for _, c := range field.Categories {
		assert.True(t, seen[c], "no type id for %s", c)
	}
	assert.True(t, seen[field.CategoryUnknown])
}

// Renderers are called directly, outside the engine's recover, so a panic
// fails the test instead of becoming an error chip.
func TestRenderersAreTotal(t *testing.T) {
	e := engine()
	modes := append([]field.Mode{field.Mode("mystery")}, field.Modes...)
	for _, typeID := range categoryTypeIDs {
		def := field.Definition{
			Name:        "f",
			FieldTypeID: typeID,
			Config:      map[string]any{"options": []any{"a", "b"}, "max_items": 1e300, "precision": math.NaN()},
			Children: []field.Definition{
				{Name: "self", FieldTypeID: "widget"},
				{Name: "title", FieldTypeID: "duration"},
			},
		}
		r := dispatch.Resolve(typeID)
		for name, value := range hostileValues() {
			for _, mode := range modes {
				t.Run(fmt.Sprintf("%s/%s/%s", typeID, name, mode), func(t *testing.T) {
					p := fieldrender.Props{
						Field:    def,
						Value:    value,
						Mode:     mode,
						OnChange: func(any) {},
						Config:   e.Config(def, nil),
						Dispatch: e,
					}
					var out node.Node
					require.NotPanics(t, func() { out = r.Render(p) })
					assert.NotNil(t, out)
				})
			}
		}
	}
}
