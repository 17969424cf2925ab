package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/fieldkit/pkg/field"
	"github.com/dkoosis/fieldkit/pkg/node"
)

// maxLabelWidth caps the label column of display documents.
const maxLabelWidth = 24

// Terminal renders documents as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
	width int
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width}
}

// Render formats a document for terminal display. Display-like sections
// get a label column; form sections carry their own labels.
func (t *Terminal) Render(doc Document) string {
	var sb strings.Builder
	if doc.Title != "" {
		sb.WriteString(t.theme.Bold.Render(doc.Title))
		sb.WriteString("\n")
	}

	labelWidth := 0
	for _, s := range doc.Sections {
		labelWidth = max(labelWidth, runewidth.StringWidth(s.Label))
	}
	labelWidth = min(labelWidth, maxLabelWidth)
	bodyWidth := max(t.width-labelWidth-4, 20)

	for _, s := range doc.Sections {
		if labelled(s.Node) {
			for _, line := range t.lines(s.Node, t.width-2) {
				sb.WriteString("  " + line + "\n")
			}
			continue
		}
		label := runewidth.Truncate(s.Label, labelWidth, "…")
		lines := t.lines(s.Node, bodyWidth)
		for i, line := range lines {
			prefix := strings.Repeat(" ", labelWidth)
			if i == 0 {
				prefix = t.theme.Muted.Render(padRight(label, labelWidth))
			}
			sb.WriteString("  " + prefix + "  " + line + "\n")
		}
	}
	return sb.String()
}

// labelled reports whether n renders its own label.
func labelled(n node.Node) bool {
	switch n.(type) {
	case *node.FormField, *node.Heading, *node.Divider:
		return true
	}
	return false
}

func (t *Terminal) lines(n node.Node, width int) []string {
	switch v := n.(type) {
	case nil:
		return nil
	case *node.FormField:
		return t.formField(v, width)
	case *node.Stack:
		return t.stack(v, width)
	case *node.Grid:
		return t.grid(v, width)
	case *node.Item:
		return t.item(v, width)
	case *node.Divider:
		return []string{t.theme.Muted.Render(strings.Repeat("─", width))}
	case *node.Skeleton:
		lines := max(v.Lines, 1)
		out := make([]string, lines)
		for i := range out {
			out[i] = t.theme.Muted.Render(strings.Repeat("░", min(width, 24)))
		}
		return out
	}
	return []string{t.inline(n)}
}

func (t *Terminal) inline(n node.Node) string {
	th := t.theme
	switch v := n.(type) {
	case *node.Text:
		return th.tone(v.Tone).Render(v.Text)
	case *node.Empty:
		return th.Muted.Render(v.Label)
	case *node.Badge:
		return th.Badge.Render(v.Label)
	case *node.Count:
		return th.Muted.Render(fmt.Sprintf("%d %s", v.N, v.Noun))
	case *node.Link:
		if v.Href == v.Label || strings.TrimPrefix(v.Href, "https://") == v.Label {
			return th.Primary.Render(v.Label)
		}
		return th.Primary.Render(v.Label) + th.Muted.Render(" "+th.Icons.Link+" "+v.Href)
	case *node.ErrorChip:
		return th.Error.Render(th.Icons.Error + " " + v.Message)
	case *node.Warning:
		return th.Warning.Render(th.Icons.Warn + " " + v.Message)
	case *node.Heading:
		return th.Bold.Render(v.Text)
	case *node.Input:
		return t.input(v)
	case *node.Action:
		if v.Do == nil {
			return th.Muted.Render("[" + v.Label + "]")
		}
		return th.Primary.Render("[" + v.Label + "]")
	case *node.Dropzone:
		if v.Add == nil {
			return th.Muted.Render("[drop files]")
		}
		return th.Primary.Render("[drop files]")
	case node.Parent:
		return strings.Join(t.lines(n, t.width), " ")
	}
	return ""
}

func (t *Terminal) input(in *node.Input) string {
	value := valueText(in.Value)
	style := lipgloss.NewStyle()
	if in.Set == nil || in.Disabled {
		style = t.theme.Muted
	}
	if value == "" {
		value = t.theme.Muted.Render(in.Placeholder)
		if in.Placeholder == "" {
			value = t.theme.Muted.Render("____")
		}
	} else {
		value = style.Render(value)
	}
	return t.theme.Muted.Render("[") + value + t.theme.Muted.Render("]")
}

// valueText is the one-line text of an input value.
func valueText(v any) string {
	if s, ok := field.String(v); ok {
		return s
	}
	if list := field.Strings(v); len(list) > 0 {
		return strings.Join(list, ", ")
	}
	return ""
}

func (t *Terminal) formField(f *node.FormField, width int) []string {
	th := t.theme
	head := th.Bold.Render(f.Label)
	if f.Required {
		head += th.Error.Render(" " + th.Icons.Required)
	}
	out := []string{head}
	if f.Description != "" {
		out = append(out, th.Muted.Render(f.Description))
	}
	for _, line := range t.lines(f.Body, width-2) {
		out = append(out, "  "+line)
	}
	if f.Error != "" {
		out = append(out, "  "+th.Error.Render(th.Icons.Error+" "+f.Error))
	}
	if f.Hint != "" {
		out = append(out, "  "+th.Muted.Render(f.Hint))
	}
	return out
}

func (t *Terminal) stack(s *node.Stack, width int) []string {
	if s.Horizontal {
		parts := make([]string, 0, len(s.Items))
		for _, it := range s.Items {
			parts = append(parts, strings.Join(t.lines(it, width), " "))
		}
		return []string{strings.Join(parts, " ")}
	}
	var out []string
	for _, it := range s.Items {
		out = append(out, t.lines(it, width)...)
	}
	return out
}

func (t *Terminal) grid(g *node.Grid, width int) []string {
	cols := max(g.Columns, 1)
	cellWidth := max(width/cols-1, 8)
	var out []string
	for start := 0; start < len(g.Cells); start += cols {
		end := min(start+cols, len(g.Cells))
		cells := make([]string, 0, end-start)
		for _, c := range g.Cells[start:end] {
			body := strings.Join(t.lines(c, cellWidth), "\n")
			cells = append(cells, lipgloss.NewStyle().Width(cellWidth).MarginRight(1).Render(body))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		for _, line := range strings.Split(row, "\n") {
			out = append(out, strings.TrimRight(line, " "))
		}
	}
	return out
}

func (t *Terminal) item(it *node.Item, width int) []string {
	prefix := t.theme.Muted.Render(fmt.Sprintf("%d.", it.Index+1)) + " "
	body := t.lines(it.Body, width-4)
	if len(body) == 0 {
		body = []string{""}
	}
	actions := make([]string, 0, len(it.Actions))
	for _, a := range it.Actions {
		actions = append(actions, t.inline(a))
	}
	out := make([]string, 0, len(body)+1)
	for i, line := range body {
		if i == 0 {
			out = append(out, prefix+line)
			continue
		}
		out = append(out, "   "+line)
	}
	if len(actions) > 0 {
		out = append(out, "   "+strings.Join(actions, " "))
	}
	return out
}

func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
