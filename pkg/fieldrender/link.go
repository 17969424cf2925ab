package fieldrender

import (
	"net/url"
	"strings"

	"github.com/dkoosis/fieldkit/pkg/field"
	"github.com/dkoosis/fieldkit/pkg/node"
)

// Link renders URL, email and phone fields as clickable links.
type Link struct{}

func (Link) Category() field.Category { return field.CategoryLink }

type linkKind int

const (
	linkURL linkKind = iota
	linkEmail
	linkPhone
)

func linkKindOf(typeKey string) linkKind {
	switch {
	case field.TypeContains(typeKey, "email"):
		return linkEmail
	case field.TypeContains(typeKey, "phone"):
		return linkPhone
	default:
		return linkURL
	}
}

// href builds the link target. Values that cannot be made into a safe
// http(s), mailto or tel target return "".
func href(kind linkKind, s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	switch kind {
	case linkEmail:
		if !strings.Contains(s, "@") || strings.ContainsAny(s, " \t\n") {
			return ""
		}
		return "mailto:" + s
	case linkPhone:
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' || r == '+' {
				return r
			}
			return -1
		}, s)
		if digits == "" {
			return ""
		}
		return "tel:" + digits
	default:
		if !strings.Contains(s, "://") {
			s = "https://" + s
		}
		return safeHref(s)
	}
}

// safeHref returns s when it parses as an http(s) URL with a host.
func safeHref(s string) string {
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.String()
}

func (Link) Render(p Props) node.Node {
	s, _ := field.String(p.Value)
	s = strings.TrimSpace(s)
	kind := linkKindOf(p.typeKey())

	show := func(width int) node.Node {
		if s == "" {
			return emptyFor(p)
		}
		label := s
		if width > 0 {
			label = truncate(s, width)
		}
		target := href(kind, s)
		if target == "" {
			return &node.Text{Text: label}
		}
		return &node.Link{Label: label, Href: target}
	}

	return modes{
		display: func() node.Node { return show(0) },
		compact: func() node.Node { return show(compactWidth(p)) },
		edit: func() node.Node {
			control := map[linkKind]string{linkURL: "url", linkEmail: "email", linkPhone: "tel"}[kind]
			return &node.Input{
				Control:     control,
				Name:        p.Field.Key(),
				Value:       s,
				Placeholder: field.ConfigString(p.Config, "placeholder", ""),
				Disabled:    p.Disabled,
				Required:    p.Required,
				Set: setter(p, func(raw any) (any, bool) {
					v, ok := coerceString(raw)
					if !ok {
						return nil, false
					}
					return strings.TrimSpace(v.(string)), true
				}),
			}
		},
	}.render(p, field.CategoryLink)
}
