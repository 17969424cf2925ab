package render

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/fieldkit/pkg/dispatch"
	"github.com/dkoosis/fieldkit/pkg/field"
	"github.com/dkoosis/fieldkit/pkg/node"
)

func testEngine() *dispatch.Engine {
	logger, _ := logtest.NewNullLogger()
	return dispatch.New(dispatch.WithLogger(logrus.NewEntry(logger)))
}

func contactDefs() []field.Definition {
	return []field.Definition{
		{Name: "name", Label: "Name", FieldTypeID: "text"},
		{Name: "email", Label: "Email", FieldTypeID: "email", Validation: field.Validation{Required: true}},
		{Name: "status", Label: "Status", FieldTypeID: "single_select", Config: map[string]any{"options": []any{
			map[string]any{"value": "open", "label": "Open"},
			map[string]any{"value": "closed", "label": "Closed"},
		}}},
		{Name: "secret", Label: "Secret", FieldTypeID: "text", Hidden: true},
		{Name: "notes", Label: "Notes", FieldTypeID: "long_text"},
	}
}

func contactRecord() map[string]any {
	return map[string]any{"name": "Ada Lovelace", "status": "open", "secret": "s3cr3t"}
}

func TestBuild_SkipsHiddenAndKeepsOrder(t *testing.T) {
	doc := Build(testEngine(), "Contact", contactDefs(), contactRecord(), BuildOptions{Mode: field.ModeDisplay})

	keys := make([]string, len(doc.Sections))
	for i, s := range doc.Sections {
		keys[i] = s.Key
	}
	assert.Equal(t, []string{"name", "email", "status", "notes"}, keys)
	assert.Equal(t, "select", doc.Sections[2].Category)
	assert.Equal(t, "display", doc.Mode)
	for _, s := range doc.Sections {
		assert.False(t, node.Interactive(s.Node), s.Key)
	}
}

func TestBuild_OnChangeRoutesKey(t *testing.T) {
	var gotKey string
	var gotValue any
	doc := Build(testEngine(), "Contact", contactDefs(), contactRecord(), BuildOptions{
		Mode:     field.ModeEdit,
		OnChange: func(k string, v any) { gotKey, gotValue = k, v },
	})

	inputs := node.Find[*node.Input](doc.Sections[0].Node)
	require.NotEmpty(t, inputs)
	require.NotNil(t, inputs[0].Set)
	inputs[0].Set("Grace Hopper")
	assert.Equal(t, "name", gotKey)
	assert.Equal(t, "Grace Hopper", gotValue)
}

func TestTerminal_RenderDisplay(t *testing.T) {
	doc := Build(testEngine(), "Contact", contactDefs(), contactRecord(), BuildOptions{Mode: field.ModeDisplay})
	out := NewTerminal(MonoTheme(), 80).Render(doc)

	assert.True(t, strings.HasPrefix(out, "Contact\n"), out)
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "Open")
	assert.Contains(t, out, "Empty")
	assert.NotContains(t, out, "s3cr3t")
	assert.NotContains(t, out, "\x1b[")
}

func TestTerminal_RenderFormShowsRequiredAndError(t *testing.T) {
	doc := Build(testEngine(), "Contact", contactDefs(), contactRecord(), BuildOptions{
		Mode:   field.ModeForm,
		Errors: map[string]string{"email": "Email is required"},
	})
	out := NewTerminal(MonoTheme(), 80).Render(doc)

	assert.Contains(t, out, "Email *")
	assert.Contains(t, out, "x Email is required")
	assert.Contains(t, out, `[Ada Lovelace]`)
}

func TestTerminal_GridCellsShareRow(t *testing.T) {
	doc := Document{Sections: []Section{{
		Key:   "addr",
		Label: "Address",
		Node:  &node.Grid{Columns: 2, Cells: []node.Node{&node.Text{Text: "left"}, &node.Text{Text: "right"}}},
	}}}
	out := NewTerminal(MonoTheme(), 60).Render(doc)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "left")
	assert.Contains(t, lines[0], "right")
}

func TestTerminal_ItemActions(t *testing.T) {
	doc := Document{Sections: []Section{{
		Key:   "rows",
		Label: "Rows",
		Node: &node.Item{Index: 0, Body: &node.Text{Text: "first"}, Actions: []node.Node{
			&node.Action{Label: "Remove", Do: func() {}},
		}},
	}}}
	out := NewTerminal(MonoTheme(), 60).Render(doc)
	assert.Contains(t, out, "1. first")
	assert.Contains(t, out, "[Remove]")
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, "slate", ThemeByName("slate").Name)
	assert.Equal(t, "mono", ThemeByName("mono").Name)
	assert.Equal(t, "default", ThemeByName("nope").Name)
}

func TestLLM_ScopeAndIssuesFirst(t *testing.T) {
	doc := Document{
		Title: "Contact",
		Mode:  "form",
		Sections: []Section{
			{Key: "zeta", Category: "unknown", Node: &node.Warning{Message: "Unknown field type: zzz"}},
			{Key: "email", Category: "link", Node: &node.FormField{Label: "Email", Error: "Email is required", Body: &node.Empty{Label: "Empty"}}},
			{Key: "name", Category: "text", Node: &node.Text{Text: "Ada"}},
		},
	}
	out := NewLLM().Render(doc)

	assert.True(t, strings.HasPrefix(out, "SCOPE: Contact, form, 3 fields (1 empty, 1 errors, 1 warnings)\n"), out)
	errAt := strings.Index(out, "ERR email: Email is required")
	warnAt := strings.Index(out, "WARN zeta: Unknown field type: zzz")
	require.GreaterOrEqual(t, errAt, 0, out)
	require.GreaterOrEqual(t, warnAt, 0, out)
	assert.Less(t, errAt, warnAt)
	assert.Contains(t, out, "name [text] Ada\n")
}

func TestLLM_TruncatesDetailLines(t *testing.T) {
	lines := make([]node.Node, 6)
	for i := range lines {
		lines[i] = &node.Text{Text: "line"}
	}
	doc := Document{Sections: []Section{{Key: "notes", Category: "text", Node: node.Column(lines...)}}}
	out := NewLLM().Render(doc)

	assert.Contains(t, out, "... (2 more lines)")
	assert.Equal(t, 4, strings.Count(out, "line\n"))
}

func TestLLM_IsDeterministic(t *testing.T) {
	doc := Build(testEngine(), "Contact", contactDefs(), contactRecord(), BuildOptions{Mode: field.ModeDisplay})
	l := NewLLM()
	assert.Equal(t, l.Render(doc), l.Render(doc))
}

func TestJSON_Render(t *testing.T) {
	doc := Build(testEngine(), "Contact", contactDefs(), contactRecord(), BuildOptions{
		Mode:     field.ModeEdit,
		OnChange: func(string, any) {},
	})
	out := NewJSON().Render(doc)

	var decoded struct {
		Version string `json:"version"`
		Title   string `json:"title"`
		Fields  []struct {
			Key      string `json:"key"`
			Category string `json:"category"`
			Node     struct {
				Type        string          `json:"type"`
				Interactive bool            `json:"interactive"`
				Data        json.RawMessage `json:"data"`
			} `json:"node"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "1.0", decoded.Version)
	assert.Equal(t, "Contact", decoded.Title)
	require.Len(t, decoded.Fields, 4)
	assert.Equal(t, "name", decoded.Fields[0].Key)
	assert.Equal(t, string(node.KindInput), decoded.Fields[0].Node.Type)
	assert.True(t, decoded.Fields[0].Node.Interactive)
	assert.Contains(t, string(decoded.Fields[0].Node.Data), "Ada Lovelace")
}
