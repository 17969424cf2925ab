package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkoosis/fieldkit/pkg/field"
)

func TestResolve_KnownTypesNeverFallBack(t *testing.T) {
	for cat, ids := range field.KnownTypeIDs() {
		for _, id := range ids {
			r := Resolve(id)
			assert.False(t, IsFallback(r), "type %q resolved to fallback", id)
			assert.Equal(t, cat, r.Category(), "type %q", id)
		}
	}
}

func TestResolve_UnknownTypesFallBackDeterministically(t *testing.T) {
	for _, id := range []string{"unknown_custom_type", "", "   ", "zzz", "🙂", "widget"} {
		first := Resolve(id)
		assert.True(t, IsFallback(first), "type %q", id)
		for range 3 {
			assert.Equal(t, first, Resolve(id))
		}
	}
}

func TestResolve_PriorityOrder(t *testing.T) {
	tests := []struct {
		typeID string
		want   field.Category
	}{
		// Exact tier.
		{"address", field.CategoryAddress},
		{"ranking", field.CategoryRank},
		{"long_text", field.CategoryText},
		{"currency", field.CategoryNumber},
		{"created_time", field.CategoryDate},
		{"link_to_table", field.CategoryLookup},
		{"section", field.CategoryGroup},
		{"LONG_TEXT", field.CategoryText},
		{" date ", field.CategoryDate},
		// Heuristic tier; address and rank win over text and number.
		{"address_text", field.CategoryAddress},
		{"rank_number", field.CategoryRank},
		{"custom_text_v2", field.CategoryText},
		{"due_date_field", field.CategoryDate},
		{"colour_dropdown", field.CategorySelect},
		{"work_email_address", field.CategoryAddress},
		{"contact_email", field.CategoryLink},
		{"repeating_rows", field.CategoryRepeater},
		{"ai_recommendations_v2", field.CategoryRecommendation},
	}
	for _, tt := range tests {
		t.Run(tt.typeID, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.typeID))
			assert.Equal(t, tt.want, Resolve(tt.typeID).Category())
		})
	}
}

func TestFor_EveryCategoryHasRenderer(t *testing.T) {
	for _, c := range field.Categories {
		r := For(c)
		assert.NotNil(t, r)
		assert.Equal(t, c, r.Category())
	}
	assert.True(t, IsFallback(For(field.CategoryUnknown)))
	assert.True(t, IsFallback(For(field.Category(999))))
}
