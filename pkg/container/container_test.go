package container

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/fieldkit/pkg/field"
)

func counter() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestItems_DropsNonRecords(t *testing.T) {
	src := []any{map[string]any{"a": 1}, "junk", map[string]any{"a": 2}}
	items := Items(src)
	require.Len(t, items, 2)
	items[0]["a"] = 99
	assert.Equal(t, 1, src[0].(map[string]any)["a"])
	assert.Empty(t, Items("nope"))
}

func TestLimits(t *testing.T) {
	lo, hi := Limits(map[string]any{KeyMinItems: -2.0, KeyMaxItems: 3.0})
	assert.Equal(t, 0, lo)
	assert.Equal(t, 3, hi)

	_, hi = Limits(map[string]any{KeyMaxItems: 1e300})
	assert.Positive(t, hi, "an enormous max stays bounded")
}

func TestAddItem(t *testing.T) {
	items := []map[string]any{{IDKey: "a"}}
	out, ok := AddItem(items, 2, counter())
	require.True(t, ok)
	assert.Len(t, items, 1)
	assert.Equal(t, []map[string]any{{IDKey: "a"}, {IDKey: "id-1"}}, out)

	same, ok := AddItem(out, 2, counter())
	assert.False(t, ok)
	assert.Len(t, same, 2)

	out, ok = AddItem(nil, 0, nil)
	require.True(t, ok)
	assert.NotEmpty(t, out[0][IDKey])
}

func TestRemoveItem(t *testing.T) {
	items := []map[string]any{{IDKey: "a"}, {IDKey: "b"}}
	out, ok := RemoveItem(items, 0, 1)
	require.True(t, ok)
	assert.Equal(t, []map[string]any{{IDKey: "b"}}, out)
	assert.Len(t, items, 2)

	_, ok = RemoveItem(out, 0, 1)
	assert.False(t, ok, "min_items floor")
	_, ok = RemoveItem(items, 5, 0)
	assert.False(t, ok)
}

func TestUpdateItem_PreservesSiblings(t *testing.T) {
	items := []map[string]any{{IDKey: "a", "name": "x", "qty": 1}, {IDKey: "b"}}
	out, ok := UpdateItem(items, 0, "qty", 2)
	require.True(t, ok)
	assert.Equal(t, map[string]any{IDKey: "a", "name": "x", "qty": 2}, out[0])
	assert.Equal(t, 1, items[0]["qty"])
	_, ok = UpdateItem(items, -1, "qty", 2)
	assert.False(t, ok)
}

func TestMoveItem(t *testing.T) {
	in := []string{"a", "b", "c"}
	out, ok := MoveItem(in, 0, 2)
	require.True(t, ok)
	assert.Equal(t, []string{"b", "c", "a"}, out)

	out, ok = MoveItem(in, 2, 0)
	require.True(t, ok)
	assert.Equal(t, []string{"c", "a", "b"}, out)

	_, ok = MoveItem(in, 1, 1)
	assert.False(t, ok)
	_, ok = MoveItem(in, 0, 3)
	assert.False(t, ok)
}

func groupDef() field.Definition {
	return field.Definition{Name: "addr", Type: "group", Children: []field.Definition{
		{Name: "street", Type: "text"},
		{Name: "city", Type: "text"},
		{Name: "internal", Type: "text", Hidden: true},
	}}
}

func TestGroup_ChildChangesAccumulate(t *testing.T) {
	var reported []map[string]any
	g := BindGroup(groupDef(), nil, func(v any) {
		reported = append(reported, v.(map[string]any))
	})
	children := g.Children()
	require.Len(t, children, 2)
	assert.Equal(t, -1, children[0].Index)

	children[0].Set("Main St")
	children[1].Set("Springfield")

	require.Len(t, reported, 2)
	assert.Equal(t, map[string]any{"street": "Main St", "city": "Springfield"}, reported[1])
	assert.Equal(t, 2, g.Filled())
}

func TestRepeater_Operations(t *testing.T) {
	def := field.Definition{Name: "lines", Type: "repeater", Children: []field.Definition{{Name: "sku", Type: "text"}}}
	var last any
	r := BindRepeater(def, []any{map[string]any{IDKey: "a", "sku": "X"}},
		map[string]any{KeyMinItems: 1.0, KeyMaxItems: 2.0},
		func(v any) { last = v }, nil)
	r.NewID = counter()

	assert.False(t, r.CanRemove())
	assert.False(t, r.Remove(0))
	require.True(t, r.Add())
	assert.Equal(t, "id-1", r.ItemID(1))
	assert.False(t, r.CanAdd())
	assert.False(t, r.Add())
	assert.Len(t, last, 2)

	r.Children(1)[0].Set("Y")
	assert.Equal(t, "Y", last.([]any)[1].(map[string]any)["sku"])

	require.True(t, r.Move(1, 0))
	assert.Equal(t, "id-1", r.ItemID(0))
	assert.Equal(t, "", r.ItemID(7))
	assert.Nil(t, r.Children(7))
}

func TestRepeater_ChildChangeHandler(t *testing.T) {
	def := field.Definition{Name: "lines", Type: "repeater", Children: []field.Definition{{Name: "sku", Type: "text"}}}
	var got string
	emitted := false
	r := BindRepeater(def, []any{map[string]any{IDKey: "a"}}, nil,
		func(any) { emitted = true },
		func(i int, name string, v any) { got = fmt.Sprintf("%d:%s=%v", i, name, v) })

	require.True(t, r.Update(0, "sku", "Z"))
	assert.Equal(t, "0:sku=Z", got)
	assert.False(t, emitted)
	assert.Equal(t, "Z", r.Items[0]["sku"])
}

func TestWalk_Paths(t *testing.T) {
	defs := []field.Definition{
		{Name: "title", Type: "text"},
		groupDef(),
		{Name: "lines", Type: "repeater", Children: []field.Definition{{Name: "sku", Type: "text"}}},
	}
	record := map[string]any{
		"title": "t",
		"addr":  map[string]any{"city": "Paris"},
		"lines": []any{map[string]any{"sku": "A"}, map[string]any{"sku": "B"}},
	}
	var paths []string
	Walk(defs, record, 0, func(path string, _ field.Definition, _ any) bool {
		paths = append(paths, path)
		return true
	})
	assert.Equal(t, []string{
		"title",
		"addr", "addr.street", "addr.city", "addr.internal",
		"lines", "lines[0].sku", "lines[1].sku",
	}, paths)
}

func nested(depth int) []field.Definition {
	if depth == 0 {
		return []field.Definition{{Name: "leaf", Type: "text"}}
	}
	return []field.Definition{{Name: fmt.Sprintf("g%d", depth), Type: "group", Children: nested(depth - 1)}}
}

func TestWalk_MaxDepth(t *testing.T) {
	visited := 0
	Walk(nested(5), map[string]any{}, 2, func(string, field.Definition, any) bool {
		visited++
		return true
	})
	assert.Equal(t, 3, visited)
	assert.Equal(t, 5, Depth(nested(5)))
	assert.Equal(t, 0, Depth(nested(0)))
}

func TestValidate(t *testing.T) {
	defs := []field.Definition{
		{Name: "title", Label: "Title", Type: "text", Validation: field.Validation{Required: true}},
		{Name: "lines", Label: "Lines", Type: "repeater", Validation: field.Validation{Required: true},
			Children: []field.Definition{{Name: "sku", Label: "SKU", Type: "text", Validation: field.Validation{Required: true}}}},
	}
	problems := Validate(defs, map[string]any{
		"lines": []any{map[string]any{"sku": "A"}, map[string]any{}},
	}, 0)
	assert.Equal(t, map[string]string{
		"title":        "Title is required",
		"lines[1].sku": "SKU is required",
	}, problems)

	problems = Validate(defs, map[string]any{"title": "x"}, 0)
	assert.Equal(t, map[string]string{"lines": "Lines is required"}, problems)
}
