package fieldrender

import (
	"path"
	"slices"

	"github.com/dkoosis/fieldkit/pkg/field"
	"github.com/dkoosis/fieldkit/pkg/node"
)

// File renders attachment lists. Upload storage belongs to the host: the
// drop zone hands back whatever file references the host produced.
type File struct{}

func (File) Category() field.Category { return field.CategoryFile }

type attachment struct {
	name string
	url  string
	raw  any
}

// attachments reads a list of URLs or {name|filename|title, url|href}
// records. A single reference counts as a one-element list.
func attachments(v any) []attachment {
	list := field.List(v)
	if list == nil && !field.IsEmpty(v) {
		list = []any{v}
	}
	out := make([]attachment, 0, len(list))
	for _, e := range list {
		var a attachment
		if rec := field.Record(e); rec != nil {
			a.url = field.FirstString(rec, "url", "href", "path")
			a.name = field.FirstString(rec, "name", "filename", "title")
		} else if s, ok := field.String(e); ok {
			a.url = s
		}
		if a.url == "" && a.name == "" {
			continue
		}
		if a.name == "" {
			a.name = path.Base(a.url)
		}
		a.raw = e
		out = append(out, a)
	}
	return out
}

func (File) Render(p Props) node.Node {
	files := attachments(p.Value)
	multiple := field.ConfigBool(p.Config, "multiple", !field.TypeIs(p.typeKey(), "file", "image", "document"))
	maxFiles := field.ConfigInt(p.Config, "max_files", 0)
	if !multiple {
		maxFiles = 1
	}

	raws := func() []any {
		out := make([]any, len(files))
		for i, f := range files {
			out[i] = f.raw
		}
		return out
	}
	link := func(a attachment, width int) node.Node {
		label := a.name
		if width > 0 {
			label = truncate(label, width)
		}
		if safeHref(a.url) == "" {
			return &node.Text{Text: label}
		}
		return &node.Link{Label: label, Href: a.url}
	}

	list := func(withRemove bool) node.Node {
		rows := make([]node.Node, 0, len(files))
		for i, a := range files {
			if !withRemove {
				rows = append(rows, link(a, 0))
				continue
			}
			idx := i
			rows = append(rows, &node.Item{
				Index: i,
				Body:  link(a, 0),
				Actions: []node.Node{action(p, "Remove", true, func() {
					p.OnChange(slices.Delete(raws(), idx, idx+1))
				})},
			})
		}
		return node.Column(rows...)
	}
	zone := func() node.Node {
		z := &node.Dropzone{
			Accept:   field.ConfigString(p.Config, "accept", ""),
			Multiple: multiple,
			Disabled: p.Disabled || (maxFiles > 0 && len(files) >= maxFiles),
		}
		if p.editable() && !z.Disabled {
			z.Add = func(raw any) {
				added := attachments(raw)
				if len(added) == 0 {
					return
				}
				next := raws()
				if !multiple {
					next = next[:0]
				}
				for _, a := range added {
					if maxFiles > 0 && len(next) >= maxFiles {
						break
					}
					next = append(next, a.raw)
				}
				p.OnChange(next)
			}
		}
		return z
	}

	return modes{
		display: func() node.Node {
			if len(files) == 0 {
				return emptyFor(p)
			}
			return list(false)
		},
		compact: func() node.Node {
			switch len(files) {
			case 0:
				return emptyFor(p)
			case 1:
				return link(files[0], compactWidth(p))
			}
			return &node.Count{N: len(files), Noun: "files"}
		},
		edit: func() node.Node {
			return node.Column(list(true), zone())
		},
	}.render(p, field.CategoryFile)
}
