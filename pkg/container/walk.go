package container

import (
	"fmt"

	"github.com/dkoosis/fieldkit/pkg/field"
)

// DefaultMaxDepth bounds container nesting. Schemas nested deeper are cut
// off at this depth instead of recursing further.
const DefaultMaxDepth = 8

// Visit is called for every field reached by Walk. Returning false skips
// the field's children.
type Visit func(path string, def field.Definition, value any) bool

// Walk applies a schema to a record value: it visits every definition with
// the value stored under its key, descending into groups (nested records)
// and repeaters (one pass per item). This is the one recursive traversal of
// container values; renderers and adapters share it rather than each
// walking nested schemas themselves. Depth beyond maxDepth is not visited;
// maxDepth <= 0 means DefaultMaxDepth.
func Walk(defs []field.Definition, record map[string]any, maxDepth int, fn Visit) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	walk(defs, record, "", 0, maxDepth, fn)
}

func walk(defs []field.Definition, record map[string]any, prefix string, depth, maxDepth int, fn Visit) {
	if depth > maxDepth {
		return
	}
	for _, def := range defs {
		key := def.Key()
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		value := record[key]
		if !fn(path, def, value) {
			continue
		}
		switch field.Classify(def.TypeKey()) {
		case field.CategoryGroup:
			walk(def.Children, field.Record(value), path, depth+1, maxDepth, fn)
		case field.CategoryRepeater:
			for i, item := range Items(value) {
				walk(def.Children, item, fmt.Sprintf("%s[%d]", path, i), depth+1, maxDepth, fn)
			}
		}
	}
}

// Validate walks a record and returns the first validation message of
// every leaf field, keyed by path.
func Validate(defs []field.Definition, record map[string]any, maxDepth int) map[string]string {
	problems := map[string]string{}
	Walk(defs, record, maxDepth, func(path string, def field.Definition, value any) bool {
		cat := field.Classify(def.TypeKey())
		if cat.Container() {
			if def.Validation.Required && field.IsEmpty(value) {
				problems[path] = def.DisplayLabel() + " is required"
			}
			return true
		}
		if msg := field.Validate(def, value); msg != "" {
			problems[path] = msg
		}
		return true
	})
	return problems
}

// Depth returns the container nesting depth of a schema: 0 for a list of
// leaves, 1 when one level of group or repeater is present, and so on.
func Depth(defs []field.Definition) int {
	deepest := 0
	for _, d := range defs {
		if !field.Classify(d.TypeKey()).Container() {
			continue
		}
		if n := 1 + Depth(d.Children); n > deepest {
			deepest = n
		}
	}
	return deepest
}
