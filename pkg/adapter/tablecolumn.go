package adapter

import (
	"strings"

	"github.com/dkoosis/fieldkit/pkg/field"
)

// Column is a legacy table-column schema entry.
type Column struct {
	ID            string         `json:"id" yaml:"id"`
	Name          string         `json:"name" yaml:"name"`
	DisplayName   string         `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Description   string         `json:"description,omitempty" yaml:"description,omitempty"`
	ColumnType    string         `json:"column_type" yaml:"column_type"`
	Settings      map[string]any `json:"settings,omitempty" yaml:"settings,omitempty"`
	Position      int            `json:"position,omitempty" yaml:"position,omitempty"`
	Hidden        bool           `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Required      bool           `json:"required,omitempty" yaml:"required,omitempty"`
	LinkedTableID string         `json:"linked_table_id,omitempty" yaml:"linked_table_id,omitempty"`
}

// FallbackFieldType is the canonical type of any unmapped foreign type.
const FallbackFieldType = "text"

// columnTypes maps legacy column types to canonical field type ids.
var columnTypes = map[string]string{
	"text":      "text",
	"string":    "text",
	"varchar":   "text",
	"long_text": "long_text",
	"textarea":  "long_text",
	"rich_text": "rich_text",
	"markdown":  "rich_text",

	"number":         "number",
	"integer":        "number",
	"int":            "number",
	"float":          "number",
	"decimal":        "number",
	"currency":       "currency",
	"money":          "currency",
	"percent":        "percent",
	"percentage":     "percent",
	"rating":         "rating",
	"duration":       "duration",
	"autonumber":     "autonumber",
	"auto_increment": "autonumber",

	"select":        "single_select",
	"single_select": "single_select",
	"dropdown":      "single_select",
	"status":        "single_select",
	"enum":          "single_select",
	"multi_select":  "multi_select",
	"multiselect":   "multi_select",
	"tags":          "multi_select",

	"date":               "date",
	"datetime":           "datetime",
	"timestamp":          "datetime",
	"time":               "time",
	"created_at":         "created_time",
	"created_time":       "created_time",
	"updated_at":         "last_modified_time",
	"last_modified_time": "last_modified_time",

	"checkbox": "checkbox",
	"boolean":  "checkbox",
	"bool":     "checkbox",

	"attachment": "attachment",
	"file":       "attachment",
	"image":      "attachment",

	"url":   "url",
	"link":  "url",
	"email": "email",
	"phone": "phone",

	"address":  "address",
	"location": "address",

	"link_to_table": "link_to_table",
	"linked_record": "link_to_table",
	"foreign_key":   "link_to_table",
	"relation":      "link_to_table",
	"lookup":        "lookup",
	"user":          "user",
	"collaborator":  "user",
	"rollup":        "rollup",
	"count":         "rollup",
	"formula":       "formula",
	"computed":      "formula",
}

// ColumnTypes returns every mapped legacy column type.
func ColumnTypes() []string {
	out := make([]string, 0, len(columnTypes))
	for k := range columnTypes {
		out = append(out, k)
	}
	return out
}

// FieldTypeForColumn maps a legacy column type, falling back to text.
func FieldTypeForColumn(columnType string) string {
	if id, ok := columnTypes[strings.ToLower(strings.TrimSpace(columnType))]; ok {
		return id
	}
	return FallbackFieldType
}

// settingAliases maps column setting keys to canonical config keys. The
// first alias present wins.
var settingAliases = []struct {
	key     string
	aliases []string
}{
	{"options", []string{"options", "choices", "select_options"}},
	{"display_field", []string{"display_field", "display_fields", "primary_field"}},
	{"precision", []string{"precision", "decimals", "decimal_places"}},
	{"format", []string{"number_format", "format"}},
	{"currency", []string{"currency", "currency_code", "currency_symbol"}},
	{"function", []string{"rollup_function", "aggregation", "function"}},
	{"date_format", []string{"date_format"}},
	{"include_time", []string{"include_time", "show_time"}},
	{"max", []string{"max", "max_rating"}},
}

// TableColumnToField converts one column to a canonical definition. It is
// total: unknown column types become text and unrecognized settings are
// carried over unchanged.
func TableColumnToField(c Column) field.Definition {
	typeID := FieldTypeForColumn(c.ColumnType)
	cfg := make(map[string]any, len(c.Settings)+1)
	consumed := map[string]bool{}
	for _, s := range settingAliases {
		for _, alias := range s.aliases {
			v, ok := c.Settings[alias]
			if !ok {
				continue
			}
			consumed[alias] = true
			if _, set := cfg[s.key]; !set {
				cfg[s.key] = normalizeSetting(s.key, v)
			}
		}
	}
	for k, v := range c.Settings {
		if !consumed[k] {
			cfg[k] = v
		}
	}
	if strings.EqualFold(c.ColumnType, "count") {
		if _, ok := cfg["function"]; !ok {
			cfg["function"] = "count"
		}
	}

	linked := c.LinkedTableID
	if linked == "" {
		linked, _ = field.String(c.Settings["linked_table_id"])
	}
	name := c.Name
	if name == "" {
		name = c.ID
	}
	label := c.DisplayName
	if label == "" {
		label = field.Humanize(name)
	}
	return field.Definition{
		ID:            c.ID,
		Name:          name,
		Label:         label,
		Description:   c.Description,
		FieldTypeID:   typeID,
		Type:          c.ColumnType,
		Config:        cfg,
		Validation:    field.Validation{Required: c.Required},
		LinkedTableID: linked,
		Position:      c.Position,
		Hidden:        c.Hidden,
	}
}

// TableColumnsToFields converts a column list in order.
func TableColumnsToFields(cols []Column) []field.Definition {
	out := make([]field.Definition, len(cols))
	for i, c := range cols {
		out[i] = TableColumnToField(c)
	}
	return out
}

func normalizeSetting(key string, v any) any {
	switch key {
	case "display_field":
		// A display_fields list keeps its first entry.
		if list := field.Strings(v); len(list) > 0 {
			return list[0]
		}
	case "precision", "max":
		if f, ok := field.Float(v); ok {
			return int(f)
		}
	}
	return v
}
