package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/goccy/go-json"

	"github.com/dkoosis/fieldkit/internal/config"
	"github.com/dkoosis/fieldkit/pkg/container"
	"github.com/dkoosis/fieldkit/pkg/dispatch"
	"github.com/dkoosis/fieldkit/pkg/field"
	"github.com/dkoosis/fieldkit/pkg/fieldrender"
	"github.com/dkoosis/fieldkit/pkg/node"
	"github.com/dkoosis/fieldkit/pkg/render"
)

// runEdit opens an interactive form over a record. On save the edited
// record is written to stdout as JSON; the form itself draws on stderr.
func runEdit(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var flags config.CliFlags
	fs := newFlagSet("edit", stderr, &flags)
	schemaPath := fs.String("schema", "", "Schema file (required)")
	recordPath := fs.String("record", "", "Record file to start from")
	title := fs.String("title", "", "Form title")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *schemaPath == "" || *schemaPath == "-" {
		fmt.Fprintln(stderr, "fieldkit edit: --schema is required (stdin is the keyboard)")
		return 2
	}
	a, code := newApp(ctx, fs, flags, stdout, stderr)
	if code >= 0 {
		return code
	}

	defs, _, err := readSchema(*schemaPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "fieldkit: %v\n", err)
		return 2
	}
	record, err := readRecord(*recordPath)
	if err != nil {
		fmt.Fprintf(stderr, "fieldkit: %v\n", err)
		return 2
	}

	m := newEditModel(a.engine, *title, defs, record, render.ThemeByName(a.cfg.Theme), a.cfg.Width, a.cfg.MaxDepth)
	if len(m.editable) == 0 {
		fmt.Fprintln(stderr, "fieldkit edit: schema has no editable fields")
		return 2
	}
	program := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(stdin), tea.WithOutput(stderr))
	final, err := program.Run()
	if err != nil {
		fmt.Fprintf(stderr, "fieldkit: %v\n", err)
		return 1
	}
	fm := final.(editModel)
	if !fm.saved {
		return 130
	}
	data, err := json.MarshalIndent(fm.record, "", "  ")
	if err != nil {
		fmt.Fprintf(stderr, "fieldkit: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, string(data))
	if len(fm.errors) > 0 {
		return 1
	}
	return 0
}

// editModel edits top-level leaf fields one at a time. Text typed into the
// input is handed to the field's own edit renderer, so each category's
// coercion applies.
type editModel struct {
	engine   *dispatch.Engine
	title    string
	defs     []field.Definition
	record   map[string]any
	editable []int
	cursor   int
	input    textinput.Model
	preview  viewport.Model
	theme    render.Theme
	width    int
	maxDepth int
	errors   map[string]string
	status   string
	saved    bool
}

func newEditModel(engine *dispatch.Engine, title string, defs []field.Definition, record map[string]any, theme render.Theme, width, maxDepth int) editModel {
	m := editModel{
		engine:   engine,
		title:    title,
		defs:     defs,
		record:   record,
		theme:    theme,
		width:    width,
		maxDepth: maxDepth,
		input:    textinput.New(),
		preview:  viewport.New(width, 20),
	}
	for i, d := range defs {
		if d.Hidden {
			continue
		}
		cat := field.Classify(d.TypeKey())
		if cat.Container() || cat.Derived() || cat == field.CategoryLayout {
			continue
		}
		m.editable = append(m.editable, i)
	}
	m.input.Prompt = "> "
	m.input.Focus()
	m.validate()
	m.load()
	return m
}

func (m editModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m editModel) current() field.Definition {
	return m.defs[m.editable[m.cursor]]
}

// load puts the current field's value into the input.
func (m *editModel) load() {
	if len(m.editable) == 0 {
		return
	}
	def := m.current()
	m.input.Placeholder = field.ConfigString(def.Config, "placeholder", def.DisplayLabel())
	m.input.SetValue(inputText(m.record[def.Key()]))
	m.input.CursorEnd()
	m.refresh()
}

func inputText(v any) string {
	if s, ok := field.String(v); ok {
		return s
	}
	return strings.Join(field.Strings(v), ", ")
}

// commit routes the typed text through the field's edit renderer.
func (m *editModel) commit() {
	def := m.current()
	key := def.Key()
	text := strings.TrimSpace(m.input.Value())
	changed := false
	root := m.engine.Dispatch(fieldrender.Props{
		Field:    def,
		Value:    m.record[key],
		Mode:     field.ModeEdit,
		OnChange: func(v any) { m.record[key] = v; changed = true },
	})
	var arg any = text
	if strings.Contains(text, ",") && field.Classify(def.TypeKey()) == field.CategorySelect {
		parts := strings.Split(text, ",")
		list := make([]any, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				list = append(list, p)
			}
		}
		arg = list
	}
	for _, in := range node.Find[*node.Input](root) {
		if in.Set != nil {
			in.Set(arg)
			break
		}
	}
	if !changed {
		for _, dz := range node.Find[*node.Dropzone](root) {
			if dz.Add != nil && text != "" {
				dz.Add(text)
				break
			}
		}
	}
	if changed {
		m.status = "set " + def.DisplayLabel()
	} else {
		m.status = def.DisplayLabel() + " was not changed"
	}
	m.validate()
}

func (m *editModel) validate() {
	m.errors = topLevelErrors(m.defs, container.Validate(m.defs, m.record, m.maxDepth))
}

func (m *editModel) refresh() {
	doc := render.Build(m.engine, m.title, m.defs, m.record, render.BuildOptions{
		Mode:   field.ModeDisplay,
		Errors: m.errors,
	})
	m.preview.SetContent(render.NewTerminal(m.theme, m.width).Render(doc))
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+s":
			m.commit()
			m.saved = true
			return m, tea.Quit
		case "enter":
			m.commit()
			m.next(1)
			return m, nil
		case "tab", "down":
			m.next(1)
			return m, nil
		case "shift+tab", "up":
			m.next(-1)
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.preview.Width = msg.Width
		m.preview.Height = max(msg.Height-6, 3)
		m.refresh()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *editModel) next(step int) {
	n := len(m.editable)
	m.cursor = ((m.cursor+step)%n + n) % n
	m.load()
}

func (m editModel) View() string {
	def := m.current()
	var sb strings.Builder
	sb.WriteString(m.preview.View())
	sb.WriteString("\n")
	label := m.theme.Bold.Render(def.DisplayLabel())
	if def.Validation.Required {
		label += m.theme.Error.Render(" " + m.theme.Icons.Required)
	}
	sb.WriteString(fmt.Sprintf("%s (%d/%d)\n", label, m.cursor+1, len(m.editable)))
	sb.WriteString(m.input.View() + "\n")
	if msg := m.errors[def.Key()]; msg != "" {
		sb.WriteString(m.theme.Error.Render(m.theme.Icons.Error+" "+msg) + "\n")
	}
	help := "enter set · tab next · shift+tab back · ctrl+s save · esc quit"
	if m.status != "" {
		help = m.status + " · " + help
	}
	sb.WriteString(m.theme.Muted.Render(help))
	return sb.String()
}
