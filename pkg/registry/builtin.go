package registry

import "github.com/dkoosis/fieldkit/pkg/field"

// BuiltinEntries is the field-type metadata shipped with fieldkit, used
// when no metadata service is configured.
func BuiltinEntries() []field.Entry {
	return []field.Entry{
		{ID: "text", Category: field.EntryPrimitive, Icon: "type", DefaultConfig: map[string]any{"placeholder": "Enter text"}},
		{ID: "long_text", Category: field.EntryPrimitive, Icon: "align-left", DefaultConfig: map[string]any{"multiline": true, "rows": 4}},
		{ID: "number", Category: field.EntryPrimitive, Icon: "hash", DefaultConfig: map[string]any{"precision": 0}},
		{ID: "currency", Category: field.EntryPrimitive, Icon: "dollar-sign", DefaultConfig: map[string]any{"precision": 2, "currency": "USD"}},
		{ID: "percent", Category: field.EntryPrimitive, Icon: "percent", DefaultConfig: map[string]any{"precision": 0}},
		{ID: "rating", Category: field.EntryPrimitive, Icon: "star", DefaultConfig: map[string]any{"max": 5}},
		{ID: "single_select", Category: field.EntryPrimitive, Icon: "chevron-down"},
		{ID: "multi_select", Category: field.EntryPrimitive, Icon: "list", DefaultConfig: map[string]any{"multiple": true}},
		{ID: "date", Category: field.EntryPrimitive, Icon: "calendar", DefaultConfig: map[string]any{"date_format": "2006-01-02"}},
		{ID: "datetime", Category: field.EntryPrimitive, Icon: "clock", DefaultConfig: map[string]any{"include_time": true}},
		{ID: "checkbox", Category: field.EntryPrimitive, Icon: "check-square"},
		{ID: "attachment", Category: field.EntryPrimitive, Icon: "paperclip", DefaultConfig: map[string]any{"multiple": true}},
		{ID: "url", Category: field.EntryPrimitive, Icon: "link"},
		{ID: "email", Category: field.EntryPrimitive, Icon: "mail"},
		{ID: "phone", Category: field.EntryPrimitive, Icon: "phone"},
		{ID: "address", Category: field.EntryPrimitive, Icon: "map-pin"},
		{ID: "rank", Category: field.EntryPrimitive, Icon: "bar-chart"},
		{ID: "lookup", Category: field.EntrySpecial, Icon: "search"},
		{ID: "link_to_table", Category: field.EntrySpecial, Icon: "git-branch"},
		{ID: "rollup", Category: field.EntrySpecial, Icon: "sigma", DefaultConfig: map[string]any{"function": "sum"}},
		{ID: "formula", Category: field.EntrySpecial, Icon: "function"},
		{ID: "created_time", Category: field.EntrySpecial, Icon: "clock"},
		{ID: "last_modified_time", Category: field.EntrySpecial, Icon: "clock"},
		{ID: "recommendation", Category: field.EntrySpecial, Icon: "thumbs-up"},
		{ID: "group", Category: field.EntryContainer, IsContainer: true, Icon: "folder", DefaultConfig: map[string]any{"columns": 1}},
		{ID: "repeater", Category: field.EntryContainer, IsContainer: true, Icon: "copy", DefaultConfig: map[string]any{"min_items": 0, "add_label": "Add item"}},
		{ID: "heading", Category: field.EntryLayout, Icon: "heading"},
		{ID: "divider", Category: field.EntryLayout, Icon: "minus"},
		{ID: "paragraph", Category: field.EntryLayout, Icon: "file-text"},
	}
}
