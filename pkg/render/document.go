package render

import (
	"github.com/dkoosis/fieldkit/pkg/field"
	"github.com/dkoosis/fieldkit/pkg/fieldrender"
)

// BuildOptions controls how Build dispatches each field.
type BuildOptions struct {
	Mode    field.Mode
	Context field.Context
	// View is applied to every field as its view-level config.
	View map[string]any
	// Errors holds validation messages keyed by field key.
	Errors map[string]string
	// OnChange receives changes of top-level fields. Nil renders every
	// field without change handlers.
	OnChange func(key string, value any)
}

// Build dispatches every visible definition against record and collects
// the results in declaration order.
func Build(d fieldrender.Dispatcher, title string, defs []field.Definition, record map[string]any, opts BuildOptions) Document {
	doc := Document{Title: title, Mode: string(opts.Mode), Sections: make([]Section, 0, len(defs))}
	for _, def := range defs {
		if def.Hidden {
			continue
		}
		key := def.Key()
		var onChange func(any)
		if opts.OnChange != nil {
			onChange = func(v any) { opts.OnChange(key, v) }
		}
		n := d.Dispatch(fieldrender.Props{
			Field:      def,
			Value:      record[key],
			OnChange:   onChange,
			Mode:       opts.Mode,
			Context:    opts.Context,
			Required:   def.Validation.Required,
			ViewConfig: opts.View,
			Error:      opts.Errors[key],
		})
		doc.Sections = append(doc.Sections, Section{
			Key:      key,
			Label:    def.DisplayLabel(),
			Category: field.Classify(def.TypeKey()).String(),
			Node:     n,
		})
	}
	return doc
}
