package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/dkoosis/fieldkit/pkg/field"
)

// ErrUnknownFormat is returned for documents that are neither JSON nor YAML.
var ErrUnknownFormat = errors.New("unknown schema format")

// Format is the encoding of a schema document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf infers the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// SniffFormat guesses the format from content: JSON documents open with
// '{' or '['; anything else is treated as YAML.
func SniffFormat(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}

func decode(data []byte, f Format, v any) error {
	switch f {
	case FormatJSON:
		return json.Unmarshal(data, v)
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	}
	return fmt.Errorf("format %q: %w", f, ErrUnknownFormat)
}

// decodeList accepts either a bare list or an object holding the list
// under key.
func decodeList[T any](data []byte, f Format, key string) ([]T, error) {
	var list []T
	listErr := decode(data, f, &list)
	if listErr == nil {
		return list, nil
	}
	if errors.Is(listErr, ErrUnknownFormat) {
		return nil, listErr
	}
	var env envelope[T]
	if err := decode(data, f, &env); err != nil {
		return nil, fmt.Errorf("decode %s %s: %w", f, key, listErr)
	}
	items := env.Fields
	if key == "columns" {
		items = env.Columns
	}
	if items == nil {
		return nil, fmt.Errorf("decode %s: no %q list in document", f, key)
	}
	return items, nil
}

// envelope is the object form of a schema document. Other keys are
// ignored.
type envelope[T any] struct {
	Columns []T `json:"columns" yaml:"columns"`
	Fields  []T `json:"fields" yaml:"fields"`
}

// LoadTableColumns decodes a column list (or {"columns": [...]}) and
// converts it to definitions.
func LoadTableColumns(data []byte, f Format) ([]field.Definition, error) {
	cols, err := decodeList[Column](data, f, "columns")
	if err != nil {
		return nil, err
	}
	return TableColumnsToFields(cols), nil
}

// LoadPortalFields decodes a portal field list (or {"fields": [...]}) and
// converts it to definitions.
func LoadPortalFields(data []byte, f Format) ([]field.Definition, error) {
	fields, err := decodeList[PortalField](data, f, "fields")
	if err != nil {
		return nil, err
	}
	return PortalFieldsToDefinitions(fields), nil
}

// LoadDefinitions decodes canonical definitions (or {"fields": [...]}).
func LoadDefinitions(data []byte, f Format) ([]field.Definition, error) {
	return decodeList[field.Definition](data, f, "fields")
}
