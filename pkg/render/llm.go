package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dkoosis/fieldkit/pkg/node"
)

// maxDetailLines caps the continuation lines printed per field.
const maxDetailLines = 3

// LLM renders documents as terse plain text optimized for AI consumption.
// Zero ANSI codes, SCOPE line, problems first, deterministic order.
type LLM struct{}

// NewLLM creates an LLM renderer.
func NewLLM() *LLM {
	return &LLM{}
}

type llmIssue struct {
	level   string
	key     string
	message string
}

// Render formats a document for LLM consumption.
func (l *LLM) Render(doc Document) string {
	var sb strings.Builder

	var issues []llmIssue
	empty := 0
	for _, s := range doc.Sections {
		if len(node.Find[*node.Empty](s.Node)) > 0 {
			empty++
		}
		for _, f := range node.Find[*node.FormField](s.Node) {
			if f.Error != "" {
				issues = append(issues, llmIssue{"ERR", s.Key, f.Error})
			}
		}
		for _, e := range node.Find[*node.ErrorChip](s.Node) {
			issues = append(issues, llmIssue{"ERR", s.Key, e.Message})
		}
		for _, w := range node.Find[*node.Warning](s.Node) {
			issues = append(issues, llmIssue{"WARN", s.Key, w.Message})
		}
	}
	// ERR before WARN, then by key; stable keeps per-field order.
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].level != issues[j].level {
			return issues[i].level == "ERR"
		}
		return issues[i].key < issues[j].key
	})

	sb.WriteString("SCOPE: " + llmScope(doc, empty, issues) + "\n")

	if len(issues) > 0 {
		sb.WriteString("\n")
		for _, is := range issues {
			sb.WriteString(fmt.Sprintf("  %s %s: %s\n", is.level, is.key, is.message))
		}
	}

	if len(doc.Sections) > 0 {
		sb.WriteString("\n")
	}
	for _, s := range doc.Sections {
		lines := plainLines(s.Node)
		head := ""
		if len(lines) > 0 {
			head = lines[0]
		}
		sb.WriteString(fmt.Sprintf("%s [%s] %s\n", s.Key, s.Category, head))
		if len(lines) <= 1 {
			continue
		}
		rest := lines[1:]
		for _, line := range rest[:min(len(rest), maxDetailLines)] {
			sb.WriteString("    " + line + "\n")
		}
		if len(rest) > maxDetailLines {
			sb.WriteString(fmt.Sprintf("    ... (%d more lines)\n", len(rest)-maxDetailLines))
		}
	}
	return sb.String()
}

func llmScope(doc Document, empty int, issues []llmIssue) string {
	var errs, warns int
	for _, is := range issues {
		if is.level == "ERR" {
			errs++
		} else {
			warns++
		}
	}
	title := doc.Title
	if title == "" {
		title = "record"
	}
	parts := []string{title}
	if doc.Mode != "" {
		parts = append(parts, doc.Mode)
	}
	parts = append(parts, fmt.Sprintf("%d fields (%d empty, %d errors, %d warnings)", len(doc.Sections), empty, errs, warns))
	return strings.Join(parts, ", ")
}

// plainLines flattens a node tree to unstyled text lines.
func plainLines(n node.Node) []string {
	switch v := n.(type) {
	case nil:
		return nil
	case *node.FormField:
		// Label is already printed by the caller.
		return plainLines(v.Body)
	case *node.Stack:
		if v.Horizontal {
			parts := make([]string, 0, len(v.Items))
			for _, it := range v.Items {
				parts = append(parts, strings.Join(plainLines(it), " "))
			}
			return []string{strings.TrimSpace(strings.Join(parts, " "))}
		}
		var out []string
		for _, it := range v.Items {
			out = append(out, plainLines(it)...)
		}
		return out
	case *node.Grid:
		var out []string
		for _, c := range v.Cells {
			out = append(out, plainLines(c)...)
		}
		return out
	case *node.Item:
		line := fmt.Sprintf("%d. %s", v.Index+1, strings.Join(plainLines(v.Body), " "))
		return []string{strings.TrimSpace(line)}
	}
	return []string{plainInline(n)}
}

func plainInline(n node.Node) string {
	switch v := n.(type) {
	case *node.Text:
		return v.Text
	case *node.Empty:
		return "(" + strings.ToLower(v.Label) + ")"
	case *node.Badge:
		return "[" + v.Label + "]"
	case *node.Count:
		return fmt.Sprintf("%d %s", v.N, v.Noun)
	case *node.Link:
		if v.Href == v.Label {
			return v.Label
		}
		return v.Label + " <" + v.Href + ">"
	case *node.ErrorChip:
		return "ERR " + v.Message
	case *node.Warning:
		return "WARN " + v.Message
	case *node.Heading:
		return "# " + v.Text
	case *node.Divider:
		return "---"
	case *node.Skeleton:
		return "(loading)"
	case *node.Input:
		if s := valueText(v.Value); s != "" {
			return fmt.Sprintf("<%s %q>", v.Control, s)
		}
		return "<" + v.Control + ">"
	case *node.Action:
		return "(" + v.Label + ")"
	case *node.Dropzone:
		return "<file upload>"
	}
	return ""
}
