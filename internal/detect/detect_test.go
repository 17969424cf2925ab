package detect

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSniff(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Kind
	}{
		{"canonical json", `[{"name":"title","field_type_id":"text"}]`, Canonical},
		{"canonical envelope", `{"fields":[{"name":"title","type":"text"}]}`, Canonical},
		{"table columns list", `[{"name":"due","column_type":"date"}]`, TableColumns},
		{"table columns envelope yaml", "table: tasks\ncolumns:\n  - name: due\n    column_type: date\n", TableColumns},
		{"portal vocabulary", "- id: topic\n  type: dropdown\n", Portal},
		{"portal help text", `{"fields":[{"id":"email","type":"email","help_text":"We reply here"}]}`, Portal},
		{"empty", "", Unknown},
		{"plain text", "this is not a schema", Unknown},
		{"invalid json", "{invalid", Unknown},
		{"empty list", "[]", Unknown},
		{"list of scalars", "[1, 2, 3]", Unknown},
		{"object without fields", `{"nothing": true}`, Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sniff([]byte(tt.input)), tt.want.String())
		})
	}
}

func TestLoad(t *testing.T) {
	defs, kind, err := Load([]byte("- id: topic\n  type: dropdown\n  options: [a, b]\n"))
	require.NoError(t, err)
	assert.Equal(t, Portal, kind)
	require.Len(t, defs, 1)
	assert.Equal(t, "single_select", defs[0].FieldTypeID)

	defs, kind, err = Load([]byte(`{"columns":[{"name":"done","column_type":"checkbox"}]}`))
	require.NoError(t, err)
	assert.Equal(t, TableColumns, kind)
	require.Len(t, defs, 1)
	assert.Equal(t, "checkbox", defs[0].FieldTypeID)

	_, kind, err = Load([]byte("just words"))
	assert.Equal(t, Unknown, kind)
	assert.True(t, errors.Is(err, ErrUnrecognized))
}
