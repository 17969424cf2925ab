package adapter

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dkoosis/fieldkit/pkg/container"
	"github.com/dkoosis/fieldkit/pkg/field"
)

// PortalField is a field of a portal (public form) schema. Group and
// repeater nodes carry their fields in Children.
type PortalField struct {
	ID          string         `json:"id" yaml:"id"`
	Label       string         `json:"label,omitempty" yaml:"label,omitempty"`
	Type        string         `json:"type" yaml:"type"`
	Required    bool           `json:"required,omitempty" yaml:"required,omitempty"`
	HelpText    string         `json:"help_text,omitempty" yaml:"help_text,omitempty"`
	Placeholder string         `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Options     []any          `json:"options,omitempty" yaml:"options,omitempty"`
	Children    []PortalField  `json:"children,omitempty" yaml:"children,omitempty"`
	Columns     int            `json:"columns,omitempty" yaml:"columns,omitempty"`
	MinItems    int            `json:"min_items,omitempty" yaml:"min_items,omitempty"`
	MaxItems    int            `json:"max_items,omitempty" yaml:"max_items,omitempty"`
	Hidden      bool           `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Settings    map[string]any `json:"settings,omitempty" yaml:"settings,omitempty"`
}

// DefaultGroupColumns is the grid width of a portal group without one.
const DefaultGroupColumns = 2

// portalTypes maps the portal vocabulary to canonical field type ids. The
// portal's "paragraph" is a long answer, not layout text.
var portalTypes = map[string]string{
	"short_answer":      "text",
	"short_text":        "text",
	"text":              "text",
	"long_answer":       "long_text",
	"paragraph":         "long_text",
	"email":             "email",
	"phone":             "phone",
	"website":           "url",
	"url":               "url",
	"number":            "number",
	"currency":          "currency",
	"rating":            "rating",
	"dropdown":          "single_select",
	"multiple_choice":   "radio",
	"checkboxes":        "checkbox_group",
	"yes_no":            "checkbox",
	"consent":           "checkbox",
	"date":              "date",
	"time":              "time",
	"datetime":          "datetime",
	"file_upload":       "attachment",
	"address":           "address",
	"ranking":           "rank",
	"section_header":    "heading",
	"heading":           "heading",
	"statement":         "static_text",
	"divider":           "divider",
	"page_break":        "page_break",
	"group":             "group",
	"repeater":          "repeater",
	"repeating_section": "repeater",
}

// PortalTypes returns every mapped portal type.
func PortalTypes() []string {
	out := make([]string, 0, len(portalTypes))
	for k := range portalTypes {
		out = append(out, k)
	}
	return out
}

// FieldTypeForPortal maps a portal type, falling back to text.
func FieldTypeForPortal(portalType string) string {
	if id, ok := portalTypes[strings.ToLower(strings.TrimSpace(portalType))]; ok {
		return id
	}
	return FallbackFieldType
}

// PortalFieldToDefinition converts a portal field and its children. The
// conversion is total. Children nested deeper than
// container.DefaultMaxDepth are dropped.
//
// The adapter only translates schema: group and repeater values are bound
// and mutated by the container package like any other container field.
func PortalFieldToDefinition(pf PortalField) field.Definition {
	return portalToDefinition(pf, 0, "")
}

// PortalFieldsToDefinitions converts a portal field list in order.
func PortalFieldsToDefinitions(fields []PortalField) []field.Definition {
	return portalList(fields, 0, "")
}

func portalList(fields []PortalField, depth int, parent string) []field.Definition {
	out := make([]field.Definition, len(fields))
	for i, pf := range fields {
		out[i] = portalToDefinition(pf, depth, parent)
		out[i].Position = i
	}
	return out
}

func portalToDefinition(pf PortalField, depth int, parent string) field.Definition {
	typeID := FieldTypeForPortal(pf.Type)
	cfg := make(map[string]any, len(pf.Settings)+4)
	for k, v := range pf.Settings {
		cfg[k] = v
	}
	if len(pf.Options) > 0 {
		cfg["options"] = pf.Options
	}
	if pf.Placeholder != "" {
		cfg["placeholder"] = pf.Placeholder
	}

	path := pf.ID
	if parent != "" {
		path = parent + "." + pf.ID
	}
	label := pf.Label
	if label == "" {
		label = field.Humanize(pf.ID)
	}
	def := field.Definition{
		ID:          pf.ID,
		Name:        pf.ID,
		Label:       label,
		Description: pf.HelpText,
		FieldTypeID: typeID,
		Type:        pf.Type,
		Config:      cfg,
		Validation:  field.Validation{Required: pf.Required},
		Hidden:      pf.Hidden,
	}

	switch field.Classify(typeID) {
	case field.CategoryGroup:
		columns := pf.Columns
		if columns <= 0 {
			columns = DefaultGroupColumns
		}
		cfg[container.KeyColumns] = columns
	case field.CategoryRepeater:
		if pf.MinItems > 0 {
			cfg[container.KeyMinItems] = pf.MinItems
		}
		if pf.MaxItems > 0 {
			cfg[container.KeyMaxItems] = pf.MaxItems
		}
	}

	if len(pf.Children) > 0 {
		if depth >= container.DefaultMaxDepth {
			logrus.WithFields(logrus.Fields{
				"component": "adapter",
				"field":     path,
				"dropped":   len(pf.Children),
			}).Warn("portal schema nested too deep, children dropped")
		} else {
			def.Children = portalList(pf.Children, depth+1, path)
		}
	}
	return def
}

// CheckPortalSubmission applies portal fields to a submitted record and
// returns the validation message of every failing field, keyed by path
// ("contacts[0].email").
func CheckPortalSubmission(fields []PortalField, record map[string]any) map[string]string {
	return container.Validate(PortalFieldsToDefinitions(fields), record, container.DefaultMaxDepth)
}
