package adapter_test

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/fieldkit/pkg/adapter"
	"github.com/dkoosis/fieldkit/pkg/field"
)

func TestFormatOf(t *testing.T) {
	f, err := adapter.FormatOf("schema.YML")
	require.NoError(t, err)
	assert.Equal(t, adapter.FormatYAML, f)

	f, err = adapter.FormatOf("/tmp/cols.json")
	require.NoError(t, err)
	assert.Equal(t, adapter.FormatJSON, f)

	_, err = adapter.FormatOf("schema.toml")
	assert.True(t, errors.Is(err, adapter.ErrUnknownFormat))
}

func TestSniffFormat(t *testing.T) {
	assert.Equal(t, adapter.FormatJSON, adapter.SniffFormat([]byte("\n  [{}]")))
	assert.Equal(t, adapter.FormatJSON, adapter.SniffFormat([]byte(`{"fields": []}`)))
	assert.Equal(t, adapter.FormatYAML, adapter.SniffFormat([]byte("- id: a\n")))
	assert.Equal(t, adapter.FormatYAML, adapter.SniffFormat(nil))
}

func TestLoadTableColumns(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format adapter.Format
	}{
		{"json list", `[{"name":"title","column_type":"text"},{"name":"due","column_type":"date"}]`, adapter.FormatJSON},
		{"json envelope", `{"table":"tasks","columns":[{"name":"title","column_type":"text"},{"name":"due","column_type":"date"}]}`, adapter.FormatJSON},
		{"yaml envelope", "table: tasks\ncolumns:\n  - name: title\n    column_type: text\n  - name: due\n    column_type: date\n", adapter.FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defs, err := adapter.LoadTableColumns([]byte(tt.data), tt.format)
			require.NoError(t, err)
			require.Len(t, defs, 2)
			assert.Equal(t, "text", defs[0].FieldTypeID)
			assert.Equal(t, "date", defs[1].FieldTypeID)
		})
	}
}

func TestLoadPortalFields_YAML(t *testing.T) {
	data := `
fields:
  - id: topic
    type: dropdown
    options: [billing, support]
  - id: people
    type: repeater
    max_items: 2
    children:
      - id: name
        type: short_answer
`
	defs, err := adapter.LoadPortalFields([]byte(data), adapter.FormatYAML)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "single_select", defs[0].FieldTypeID)
	assert.Len(t, field.Options(defs[0].Config), 2)
	require.Len(t, defs[1].Children, 1)
	assert.Equal(t, 2, defs[1].Config["max_items"])
}

func TestLoadDefinitions(t *testing.T) {
	defs, err := adapter.LoadDefinitions([]byte(`{"fields":[{"name":"price","field_type_id":"currency","config":{"precision":0}}]}`), adapter.FormatJSON)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "currency", defs[0].TypeKey())
	assert.EqualValues(t, 0, defs[0].Config["precision"])
}

func TestLoad_Errors(t *testing.T) {
	_, err := adapter.LoadDefinitions([]byte(`{"nothing": true}`), adapter.FormatJSON)
	assert.Error(t, err)

	_, err = adapter.LoadTableColumns([]byte(`[{"name":`), adapter.FormatJSON)
	assert.Error(t, err)

	_, err = adapter.LoadPortalFields([]byte(`[]`), adapter.Format("toml"))
	assert.True(t, errors.Is(err, adapter.ErrUnknownFormat))
}

func TestValidate(t *testing.T) {
	minV, maxV := 10.0, 1.0
	defs := []field.Definition{
		{Name: "title", FieldTypeID: "text"},
		{Name: "title", FieldTypeID: "text"},
		{FieldTypeID: "number"},
		{Name: "status", FieldTypeID: "single_select"},
		{Name: "labels", FieldTypeID: "tags"},
		{Name: "score", FieldTypeID: "number", Validation: field.Validation{Min: &minV, Max: &maxV}},
		{Name: "notype"},
		{Name: "empty_group", FieldTypeID: "group"},
		{Name: "rows", FieldTypeID: "repeater", Config: map[string]any{"min_items": 3, "max_items": 1}, Children: []field.Definition{
			{Name: "a", FieldTypeID: "text"},
			{Name: "a", FieldTypeID: "text"},
		}},
	}
	err := adapter.Validate(defs)
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	msgs := make([]string, len(merr.Errors))
	for i, e := range merr.Errors {
		msgs[i] = e.Error()
	}
	assert.ElementsMatch(t, []string{
		`title: duplicate key "title"`,
		"#2: missing id or name",
		"status: select field has no options",
		"score: min 10 is greater than max 1",
		"notype: missing field type",
		"empty_group: group has no children",
		"rows: min_items 3 is greater than max_items 1",
		`rows.a: duplicate key "a"`,
	}, msgs)
}

func TestValidate_SoundSchema(t *testing.T) {
	defs := adapter.PortalFieldsToDefinitions(contactForm())
	assert.NoError(t, adapter.Validate(defs))
}
