package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/fieldkit/pkg/dispatch"
	"github.com/dkoosis/fieldkit/pkg/field"
	"github.com/dkoosis/fieldkit/pkg/render"
)

func testEditModel(record map[string]any) editModel {
	logger, _ := logtest.NewNullLogger()
	engine := dispatch.New(dispatch.WithLogger(logrus.NewEntry(logger)))
	defs := []field.Definition{
		{Name: "name", Label: "Name", FieldTypeID: "text", Validation: field.Validation{Required: true}},
		{Name: "heading", FieldTypeID: "heading"},
		{Name: "age", Label: "Age", FieldTypeID: "number"},
		{Name: "done", Label: "Done", FieldTypeID: "checkbox"},
		{Name: "total", FieldTypeID: "formula"},
	}
	return newEditModel(engine, "Task", defs, record, render.MonoTheme(), 80, 8)
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func TestEditModel_SkipsLayoutAndDerived(t *testing.T) {
	m := testEditModel(map[string]any{})
	assert.Equal(t, []int{0, 2, 3}, m.editable)
	assert.Equal(t, "Name is required", m.errors["name"])
}

func TestEditModel_EnterCommitsThroughRenderer(t *testing.T) {
	m := testEditModel(map[string]any{"name": "Ada"})
	assert.Equal(t, "Ada", m.input.Value())

	next, _ := m.Update(key(tea.KeyTab))
	m = next.(editModel)
	assert.Equal(t, "age", m.current().Key())

	m.input.SetValue("1,234")
	next, _ = m.Update(key(tea.KeyEnter))
	m = next.(editModel)
	assert.Equal(t, 1234.0, m.record["age"])
	assert.Equal(t, "done", m.current().Key())
	assert.Empty(t, m.errors)
}

func TestEditModel_WrapsBackwards(t *testing.T) {
	m := testEditModel(map[string]any{})
	next, _ := m.Update(key(tea.KeyShiftTab))
	m = next.(editModel)
	assert.Equal(t, "done", m.current().Key())
}

func TestEditModel_SaveAndQuit(t *testing.T) {
	m := testEditModel(map[string]any{})
	m.input.SetValue("Grace")
	next, cmd := m.Update(key(tea.KeyCtrlS))
	m = next.(editModel)
	require.NotNil(t, cmd)
	assert.True(t, m.saved)
	assert.Equal(t, "Grace", m.record["name"])

	m = testEditModel(map[string]any{})
	next, cmd = m.Update(key(tea.KeyEsc))
	require.NotNil(t, cmd)
	assert.False(t, next.(editModel).saved)
}

func TestEditModel_View(t *testing.T) {
	m := testEditModel(map[string]any{"name": "Ada"})
	view := m.View()
	assert.Contains(t, view, "Name *")
	assert.Contains(t, view, "(1/3)")
	assert.Contains(t, view, "ctrl+s save")
}
