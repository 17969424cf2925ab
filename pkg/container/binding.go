package container

import "github.com/dkoosis/fieldkit/pkg/field"

// Child is one child slot produced by binding a container schema to a value.
type Child struct {
	Index int // repeater item index; -1 for group children
	Def   field.Definition
	Value any
	Set   func(any) // targeted mutation routed through the parent
}

// Group binds a group definition to its record value. Successive Set calls
// on its children accumulate, so two child changes within one render pass
// never overwrite each other.
type Group struct {
	Def      field.Definition
	Record   map[string]any
	OnChange func(any)
}

// BindGroup coerces value to a record and binds it to def's children.
func BindGroup(def field.Definition, value any, onChange func(any)) *Group {
	rec := field.Record(value)
	if rec == nil {
		rec = map[string]any{}
	}
	return &Group{Def: def, Record: rec, OnChange: onChange}
}

// Update merges one child value into the record and reports the whole
// record to OnChange.
func (g *Group) Update(name string, value any) {
	g.Record = UpdateChild(g.Record, name, value)
	if g.OnChange != nil {
		g.OnChange(g.Record)
	}
}

// Children returns the visible child slots in declaration order.
func (g *Group) Children() []Child {
	out := make([]Child, 0, len(g.Def.Children))
	for _, c := range g.Def.Children {
		if c.Hidden {
			continue
		}
		key := c.Key()
		out = append(out, Child{
			Index: -1,
			Def:   c,
			Value: g.Record[key],
			Set:   func(v any) { g.Update(key, v) },
		})
	}
	return out
}

// Filled counts children whose value is not empty.
func (g *Group) Filled() int {
	n := 0
	for _, c := range g.Def.Children {
		if !field.IsEmpty(g.Record[c.Key()]) {
			n++
		}
	}
	return n
}

// Repeater binds a repeater definition to its item list.
//
// Child mutations go to OnChildChange when the host supplied one, otherwise
// the whole updated list goes to OnChange. Add and Remove always report
// the whole list through OnChange.
type Repeater struct {
	Def           field.Definition
	Items         []map[string]any
	Min, Max      int
	NewID         func() string
	OnChange      func(any)
	OnChildChange func(index int, name string, value any)
}

// BindRepeater coerces value to item records and reads limits from cfg.
func BindRepeater(def field.Definition, value any, cfg map[string]any, onChange func(any), onChildChange func(int, string, any)) *Repeater {
	minItems, maxItems := Limits(cfg)
	return &Repeater{
		Def:           def,
		Items:         Items(value),
		Min:           minItems,
		Max:           maxItems,
		NewID:         NewID,
		OnChange:      onChange,
		OnChildChange: onChildChange,
	}
}

// CanAdd reports whether Add would change the list.
func (r *Repeater) CanAdd() bool {
	return r.Max <= 0 || len(r.Items) < r.Max
}

// CanRemove reports whether Remove would change the list.
func (r *Repeater) CanRemove() bool {
	return len(r.Items) > r.Min
}

// Add appends an item; a no-op at max_items.
func (r *Repeater) Add() bool {
	items, ok := AddItem(r.Items, r.Max, r.NewID)
	if !ok {
		return false
	}
	r.Items = items
	r.emit()
	return true
}

// Remove drops the item at index; a no-op at min_items.
func (r *Repeater) Remove(index int) bool {
	items, ok := RemoveItem(r.Items, index, r.Min)
	if !ok {
		return false
	}
	r.Items = items
	r.emit()
	return true
}

// Move reorders one item.
func (r *Repeater) Move(from, to int) bool {
	items, ok := MoveItem(r.Items, from, to)
	if !ok {
		return false
	}
	r.Items = items
	r.emit()
	return true
}

// Update sets one child value of one item.
func (r *Repeater) Update(index int, name string, value any) bool {
	items, ok := UpdateItem(r.Items, index, name, value)
	if !ok {
		return false
	}
	r.Items = items
	if r.OnChildChange != nil {
		r.OnChildChange(index, name, value)
		return true
	}
	r.emit()
	return true
}

// ItemID returns the generated id of the item at index, or "".
func (r *Repeater) ItemID(index int) string {
	if index < 0 || index >= len(r.Items) {
		return ""
	}
	s, _ := field.String(r.Items[index][IDKey])
	return s
}

// Children returns the visible child slots of the item at index.
func (r *Repeater) Children(index int) []Child {
	if index < 0 || index >= len(r.Items) {
		return nil
	}
	item := r.Items[index]
	out := make([]Child, 0, len(r.Def.Children))
	for _, c := range r.Def.Children {
		if c.Hidden {
			continue
		}
		key := c.Key()
		out = append(out, Child{
			Index: index,
			Def:   c,
			Value: item[key],
			Set:   func(v any) { r.Update(index, key, v) },
		})
	}
	return out
}

func (r *Repeater) emit() {
	if r.OnChange != nil {
		r.OnChange(ToValue(r.Items))
	}
}
