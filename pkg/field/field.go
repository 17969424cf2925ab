// Package field defines the canonical data model for fieldkit: field
// definitions, registry entries, render modes and the value helpers every
// renderer uses. Definitions are pure data; renderers decide presentation.
package field

import "strings"

// Definition is the canonical, render-immutable description of one field.
type Definition struct {
	ID            string         `json:"id" yaml:"id"`
	Name          string         `json:"name,omitempty" yaml:"name,omitempty"`
	Label         string         `json:"label,omitempty" yaml:"label,omitempty"`
	Description   string         `json:"description,omitempty" yaml:"description,omitempty"`
	FieldTypeID   string         `json:"field_type_id,omitempty" yaml:"field_type_id,omitempty"`
	Type          string         `json:"type,omitempty" yaml:"type,omitempty"` // legacy type string
	Config        map[string]any `json:"config,omitempty" yaml:"config,omitempty"`
	Validation    Validation     `json:"validation,omitempty" yaml:"validation,omitempty"`
	LinkedTableID string         `json:"linked_table_id,omitempty" yaml:"linked_table_id,omitempty"`
	Position      int            `json:"position,omitempty" yaml:"position,omitempty"`
	Hidden        bool           `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Children      []Definition   `json:"children,omitempty" yaml:"children,omitempty"`
}

// Validation holds the declarative constraints attached to a field.
type Validation struct {
	Required  bool     `json:"required,omitempty" yaml:"required,omitempty"`
	Min       *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	MinLength int      `json:"min_length,omitempty" yaml:"min_length,omitempty"`
	MaxLength int      `json:"max_length,omitempty" yaml:"max_length,omitempty"`
	Pattern   string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// TypeKey returns the identifier used for dispatch: FieldTypeID when set,
// otherwise the legacy Type string.
func (d Definition) TypeKey() string {
	if d.FieldTypeID != "" {
		return d.FieldTypeID
	}
	return d.Type
}

// Key returns the key under which a parent record stores this field's value.
func (d Definition) Key() string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID
}

// DisplayLabel returns the label to show, falling back to the name or id.
func (d Definition) DisplayLabel() string {
	switch {
	case d.Label != "":
		return d.Label
	case d.Name != "":
		return d.Name
	default:
		return d.ID
	}
}

// Mode governs rendering fidelity and interactivity.
type Mode string

const (
	ModeDisplay Mode = "display"
	ModeCompact Mode = "compact"
	ModeEdit    Mode = "edit"
	ModeForm    Mode = "form"
	ModePreview Mode = "preview"
)

// Modes lists every render mode in a stable order.
var Modes = []Mode{ModeDisplay, ModeCompact, ModeEdit, ModeForm, ModePreview}

// ParseMode maps a mode name to a Mode. Unknown names yield ModeDisplay and false.
func ParseMode(s string) (Mode, bool) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, true
		}
	}
	return ModeDisplay, false
}

// Interactive reports whether the mode collects input.
func (m Mode) Interactive() bool {
	return m == ModeEdit || m == ModeForm
}

// Context identifies the hosting surface. It is informational and never
// changes which renderer is selected.
type Context string

const (
	ContextGrid    Context = "grid"
	ContextForm    Context = "form"
	ContextPortal  Context = "portal"
	ContextReview  Context = "review"
	ContextBuilder Context = "builder"
	ContextCard    Context = "card"
	ContextFilter  Context = "filter"
)

// EntryCategory is the registry's coarse classification of a field type.
type EntryCategory string

const (
	EntryPrimitive EntryCategory = "primitive"
	EntryContainer EntryCategory = "container"
	EntryLayout    EntryCategory = "layout"
	EntrySpecial   EntryCategory = "special"
)

// Entry is field-type metadata served by the external registry.
type Entry struct {
	ID            string         `json:"id" yaml:"id"`
	Category      EntryCategory  `json:"category" yaml:"category"`
	DefaultConfig map[string]any `json:"default_config,omitempty" yaml:"default_config,omitempty"`
	IsContainer   bool           `json:"is_container,omitempty" yaml:"is_container,omitempty"`
	Icon          string         `json:"icon,omitempty" yaml:"icon,omitempty"`
	Color         string         `json:"color,omitempty" yaml:"color,omitempty"`
}
