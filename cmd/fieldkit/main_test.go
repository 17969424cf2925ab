package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contactSchema = `
fields:
  - name: name
    label: Name
    field_type_id: text
  - name: email
    label: Email
    field_type_id: email
    validation:
      required: true
  - name: age
    label: Age
    field_type_id: number
`

// isolate keeps user config files and FIELDKIT_* variables out of a test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", filepath.Join(dir, "home"))
	for _, k := range []string{"FIELDKIT_FORMAT", "FIELDKIT_THEME", "FIELDKIT_MODE", "FIELDKIT_REGISTRY", "FIELDKIT_DEBUG", "NO_COLOR"} {
		t.Setenv(k, "")
	}
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRender_LLMDisplay(t *testing.T) {
	dir := isolate(t)
	schema := writeFile(t, dir, "contact.yaml", contactSchema)
	record := writeFile(t, dir, "ada.json", `{"name":"Ada Lovelace","age":36}`)

	code, out, errOut := runCLI(t, "", "render", "--schema", schema, "--record", record, "--format", "llm", "--title", "Contact")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "SCOPE: Contact, display, 3 fields (1 empty, 0 errors, 0 warnings)")
	assert.Contains(t, out, "name [text] Ada Lovelace")
	assert.Contains(t, out, "age [number] 36")
	assert.NotContains(t, out, "\x1b[")
}

func TestRender_DefaultCommandReadsStdin(t *testing.T) {
	isolate(t)
	code, out, errOut := runCLI(t, `[{"name":"title","column_type":"text"}]`, "--format", "llm")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "title [text]")
}

func TestRender_FormReportsValidation(t *testing.T) {
	dir := isolate(t)
	schema := writeFile(t, dir, "contact.yaml", contactSchema)

	code, out, _ := runCLI(t, "", "render", "--schema", schema, "--mode", "form", "--format", "llm")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "ERR email: Email is required")
}

func TestRender_JSON(t *testing.T) {
	dir := isolate(t)
	schema := writeFile(t, dir, "contact.yaml", contactSchema)

	code, out, errOut := runCLI(t, "", "render", "--schema", schema, "--format", "json")
	require.Equal(t, 0, code, errOut)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Len(t, decoded["fields"], 3)
}

func TestRender_Errors(t *testing.T) {
	dir := isolate(t)

	code, _, errOut := runCLI(t, "", "render", "--format", "llm")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "no schema")

	code, _, errOut = runCLI(t, "not a schema", "render", "--format", "llm")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "unrecognized schema")

	schema := writeFile(t, dir, "contact.yaml", contactSchema)
	code, _, errOut = runCLI(t, "", "render", "--schema", schema, "--format", "xml")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, `invalid format "xml"`)

	code, _, _ = runCLI(t, "", "render", "--bogus")
	assert.Equal(t, 2, code)
}

func TestValidate(t *testing.T) {
	dir := isolate(t)
	schema := writeFile(t, dir, "contact.yaml", contactSchema)
	good := writeFile(t, dir, "good.json", `{"name":"Ada","email":"ada@example.test"}`)
	bad := writeFile(t, dir, "bad.json", `{"name":"Ada"}`)

	code, out, errOut := runCLI(t, "", "validate", "--schema", schema, "--record", good)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "ok: 3 fields (canonical)")

	code, out, _ = runCLI(t, "", "validate", "--schema", schema, "--record", bad)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "record: email: Email is required")

	broken := writeFile(t, dir, "broken.json", `[{"name":"a","field_type_id":"text"},{"name":"a","field_type_id":"text"}]`)
	code, out, _ = runCLI(t, "", "validate", "--schema", broken)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, `schema: a: duplicate key "a"`)
}

func TestRegistry(t *testing.T) {
	isolate(t)
	code, out, errOut := runCLI(t, "", "registry", "--format", "json")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, `"id": "text"`)

	code, out, _ = runCLI(t, "", "registry", "--format", "llm")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "field types")
}

func TestRegistry_FileSource(t *testing.T) {
	dir := isolate(t)
	reg := writeFile(t, dir, "types.yaml", "- id: widget\n  category: special\n")

	code, out, errOut := runCLI(t, "", "registry", "--format", "llm", "--registry", reg)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "widget")
	assert.Contains(t, out, "1 field types")
}

func TestVersionAndUnknownCommand(t *testing.T) {
	code, out, _ := runCLI(t, "", "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "fieldkit version")

	code, _, errOut := runCLI(t, "", "frobnicate")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, `unknown command "frobnicate"`)
}

func TestEdit_RequiresSchemaFile(t *testing.T) {
	isolate(t)
	code, _, errOut := runCLI(t, "", "edit")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "--schema is required")
}
