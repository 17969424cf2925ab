// Package dispatch resolves field type ids to renderers and runs them.
//
// Resolution is a pure function of the type id: field.Classify maps the id
// to a closed category (exact sets, then the keyword heuristic) and For
// maps the category to its renderer. Ids that match neither tier get the
// fallback renderer. Resolve never returns nil.
package dispatch

import (
	"github.com/dkoosis/fieldkit/pkg/field"
	"github.com/dkoosis/fieldkit/pkg/fieldrender"
)

// Classify maps a type id to its category.
func Classify(typeID string) field.Category {
	return field.Classify(typeID)
}

// For returns the renderer of a category. Every category has exactly one;
// CategoryUnknown gets the fallback.
func For(c field.Category) fieldrender.Renderer {
	switch c {
	case field.CategoryAddress:
		return fieldrender.Address{}
	case field.CategoryRank:
		return fieldrender.Rank{}
	case field.CategoryLayout:
		return fieldrender.Layout{}
	case field.CategoryText:
		return fieldrender.Text{}
	case field.CategoryNumber:
		return fieldrender.Number{}
	case field.CategorySelect:
		return fieldrender.Select{}
	case field.CategoryDate:
		return fieldrender.Date{}
	case field.CategoryCheckbox:
		return fieldrender.Checkbox{}
	case field.CategoryFile:
		return fieldrender.File{}
	case field.CategoryLink:
		return fieldrender.Link{}
	case field.CategoryLookup, field.CategoryRollup, field.CategoryFormula:
		return fieldrender.Derived{Of: c}
	case field.CategoryRepeater:
		return fieldrender.Repeater{}
	case field.CategoryGroup:
		return fieldrender.Group{}
	case field.CategoryRecommendation:
		return fieldrender.Recommendation{}
	default:
		return fieldrender.Fallback{}
	}
}

// Resolve returns the renderer for a type id.
func Resolve(typeID string) fieldrender.Renderer {
	return For(Classify(typeID))
}

// IsFallback reports whether r is the generic fallback renderer.
func IsFallback(r fieldrender.Renderer) bool {
	return r.Category() == field.CategoryUnknown
}
