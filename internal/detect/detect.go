// Package detect sniffs a schema document to determine which field
// vocabulary it uses.
package detect

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/fieldkit/pkg/adapter"
	"github.com/dkoosis/fieldkit/pkg/field"
)

// Kind represents a recognized schema vocabulary.
type Kind int

const (
	Unknown      Kind = iota
	Canonical         // field definitions (field_type_id / type)
	TableColumns      // table columns (column_type / settings)
	Portal            // portal form fields (type / help_text)
)

// ErrUnrecognized is returned by Load when a document matches no vocabulary.
var ErrUnrecognized = errors.New("unrecognized schema document")

// probeLimit bounds how many entries are examined.
const probeLimit = 8

func (k Kind) String() string {
	switch k {
	case Canonical:
		return "canonical"
	case TableColumns:
		return "table-columns"
	case Portal:
		return "portal"
	default:
		return "unknown"
	}
}

// Sniff examines a JSON or YAML schema document. Documents are either a
// bare list of entries or an object holding the list under "fields" or
// "columns".
func Sniff(data []byte) Kind {
	// yaml.v3 parses JSON documents too.
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil || doc == nil {
		return Unknown
	}

	var entries []any
	switch v := doc.(type) {
	case []any:
		entries = v
	case map[string]any:
		if _, ok := v["columns"]; ok {
			return TableColumns
		}
		list, ok := v["fields"].([]any)
		if !ok {
			return Unknown
		}
		entries = list
	default:
		return Unknown
	}
	if len(entries) == 0 {
		return Unknown
	}

	portal := 0
	seen := 0
	for _, e := range entries[:min(len(entries), probeLimit)] {
		rec, ok := e.(map[string]any)
		if !ok {
			continue
		}
		seen++
		if _, ok := rec["field_type_id"]; ok {
			return Canonical
		}
		if _, ok := rec["column_type"]; ok {
			return TableColumns
		}
		if isPortalEntry(rec) {
			portal++
		}
	}
	switch {
	case seen == 0:
		return Unknown
	case portal > 0:
		return Portal
	default:
		return Canonical
	}
}

func isPortalEntry(rec map[string]any) bool {
	for _, k := range []string{"help_text", "placeholder", "min_items", "max_items"} {
		if _, ok := rec[k]; ok {
			return true
		}
	}
	t, _ := rec["type"].(string)
	if t == "" {
		return false
	}
	// Portal-only vocabulary: the portal adapter renames it.
	mapped := adapter.FieldTypeForPortal(t)
	return mapped != adapter.FallbackFieldType && mapped != strings.ToLower(t)
}

// Load sniffs data and decodes it with the matching adapter.
func Load(data []byte) ([]field.Definition, Kind, error) {
	kind := Sniff(data)
	format := adapter.SniffFormat(data)
	var (
		defs []field.Definition
		err  error
	)
	switch kind {
	case Canonical:
		defs, err = adapter.LoadDefinitions(data, format)
	case TableColumns:
		defs, err = adapter.LoadTableColumns(data, format)
	case Portal:
		defs, err = adapter.LoadPortalFields(data, format)
	default:
		return nil, Unknown, ErrUnrecognized
	}
	if err != nil {
		return nil, kind, fmt.Errorf("load %s schema: %w", kind, err)
	}
	return defs, kind, nil
}
