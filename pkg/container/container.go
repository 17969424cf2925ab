// Package container implements the value semantics of container fields.
//
// A repeater value is an ordered list of item records, each carrying a
// generated "id" plus one key per child field. A group value is a single
// record keyed by child field key. Every operation here is a pure function
// of its inputs: it returns a new list or record and never mutates the one
// it was given.
package container

import (
	"github.com/google/uuid"

	"github.com/dkoosis/fieldkit/pkg/field"
)

// IDKey is the key holding a repeater item's generated id.
const IDKey = "id"

// Config keys read from a container's effective config.
const (
	KeyMinItems = "min_items"
	KeyMaxItems = "max_items"
	KeyColumns  = "columns"
)

// NewID returns a fresh item id.
func NewID() string {
	return uuid.NewString()
}

// Items coerces a repeater value to its item records. Elements that are not
// records are dropped; the returned records are copies.
func Items(v any) []map[string]any {
	raw := field.List(v)
	out := make([]map[string]any, 0, len(raw))
	for _, e := range raw {
		if rec := field.Record(e); rec != nil {
			out = append(out, rec)
		}
	}
	return out
}

// Limits reads min_items and max_items. A max of zero or less means
// unbounded; a negative min is treated as zero.
func Limits(cfg map[string]any) (minItems, maxItems int) {
	minItems = field.ConfigInt(cfg, KeyMinItems, 0)
	maxItems = field.ConfigInt(cfg, KeyMaxItems, 0)
	if minItems < 0 {
		minItems = 0
	}
	return minItems, maxItems
}

// AddItem appends a new item holding only a generated id. It is a no-op
// returning false once len(items) >= maxItems (when maxItems > 0).
func AddItem(items []map[string]any, maxItems int, newID func() string) ([]map[string]any, bool) {
	if maxItems > 0 && len(items) >= maxItems {
		return items, false
	}
	if newID == nil {
		newID = NewID
	}
	out := make([]map[string]any, len(items), len(items)+1)
	copy(out, items)
	return append(out, map[string]any{IDKey: newID()}), true
}

// RemoveItem drops the item at index. It is a no-op returning false once
// len(items) <= minItems or when index is out of range.
func RemoveItem(items []map[string]any, index, minItems int) ([]map[string]any, bool) {
	if len(items) <= minItems || index < 0 || index >= len(items) {
		return items, false
	}
	out := make([]map[string]any, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...), true
}

// UpdateItem replaces one key of the item at index, preserving its
// sibling keys and every other item.
func UpdateItem(items []map[string]any, index int, name string, value any) ([]map[string]any, bool) {
	if index < 0 || index >= len(items) {
		return items, false
	}
	out := make([]map[string]any, len(items))
	copy(out, items)
	out[index] = UpdateChild(items[index], name, value)
	return out, true
}

// MoveItem moves the item at from to position to.
func MoveItem[T any](items []T, from, to int) ([]T, bool) {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) || from == to {
		return items, false
	}
	out := make([]T, 0, len(items))
	moved := items[from]
	for i, it := range items {
		if i == from {
			continue
		}
		if len(out) == to {
			out = append(out, moved)
		}
		out = append(out, it)
	}
	if len(out) == to {
		out = append(out, moved)
	}
	return out, true
}

// UpdateChild shallow-merges one child value into a group record. Sibling
// values already collected are never discarded.
func UpdateChild(record map[string]any, name string, value any) map[string]any {
	out := make(map[string]any, len(record)+1)
	for k, v := range record {
		out[k] = v
	}
	out[name] = value
	return out
}

// ToValue converts item records to the []any shape reported through
// OnChange.
func ToValue(items []map[string]any) []any {
	out := make([]any, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}
