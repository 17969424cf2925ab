package render

import (
	"github.com/goccy/go-json"

	"github.com/dkoosis/fieldkit/pkg/node"
)

// JSON renders documents as structured JSON for automation.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

// jsonOutput is the top-level JSON structure.
type jsonOutput struct {
	Version string      `json:"version"`
	Title   string      `json:"title,omitempty"`
	Mode    string      `json:"mode,omitempty"`
	Fields  []jsonField `json:"fields"`
}

type jsonField struct {
	Key      string    `json:"key"`
	Label    string    `json:"label"`
	Category string    `json:"category"`
	Node     *jsonNode `json:"node"`
}

type jsonNode struct {
	Type        string      `json:"type"`
	Data        node.Node   `json:"data,omitempty"`
	Interactive bool        `json:"interactive,omitempty"`
	Children    []*jsonNode `json:"children,omitempty"`
}

// Render formats a document as JSON.
func (j *JSON) Render(doc Document) string {
	out := jsonOutput{
		Version: "1.0",
		Title:   doc.Title,
		Mode:    doc.Mode,
		Fields:  make([]jsonField, 0, len(doc.Sections)),
	}
	for _, s := range doc.Sections {
		out.Fields = append(out.Fields, jsonField{
			Key:      s.Key,
			Label:    s.Label,
			Category: s.Category,
			Node:     toJSONNode(s.Node),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}

func toJSONNode(n node.Node) *jsonNode {
	if n == nil {
		return nil
	}
	jn := &jsonNode{Type: string(n.Kind()), Data: n}
	switch v := n.(type) {
	case *node.Input:
		jn.Interactive = v.Set != nil
	case *node.Action:
		jn.Interactive = v.Do != nil
	case *node.Dropzone:
		jn.Interactive = v.Add != nil
	}
	if p, ok := n.(node.Parent); ok {
		for _, c := range p.Nodes() {
			jn.Children = append(jn.Children, toJSONNode(c))
		}
	}
	return jn
}
