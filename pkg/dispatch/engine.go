package dispatch

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/dkoosis/fieldkit/pkg/field"
	"github.com/dkoosis/fieldkit/pkg/fieldrender"
	"github.com/dkoosis/fieldkit/pkg/merge"
	"github.com/dkoosis/fieldkit/pkg/node"
)

// DefaultMaxDepth bounds container nesting. A field nested deeper renders a
// warning instead of recursing.
const DefaultMaxDepth = 8

// EntrySource supplies registry defaults without blocking. *registry.Cache
// satisfies it.
type EntrySource interface {
	GetSync(typeID string) (field.Entry, bool)
}

// Engine composes the registry, the config merge and the resolver into the
// single entry point hosts call. It is the fieldrender.Dispatcher that
// container renderers re-enter once per child.
type Engine struct {
	entries  EntrySource
	maxDepth int
	log      *logrus.Entry
}

// Option configures an Engine.
type Option func(*Engine)

// WithEntries sets the registry consulted for default config.
func WithEntries(src EntrySource) Option {
	return func(e *Engine) { e.entries = src }
}

// WithMaxDepth overrides DefaultMaxDepth. Values below 1 are ignored.
func WithMaxDepth(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.maxDepth = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logrus.Entry) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// New creates an Engine. Without WithEntries, registry defaults are empty.
func New(opts ...Option) *Engine {
	e := &Engine{
		maxDepth: DefaultMaxDepth,
		log:      logrus.WithField("component", "dispatch"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MaxDepth returns the nesting cap in effect.
func (e *Engine) MaxDepth() int { return e.maxDepth }

// Config computes the effective config of def for one render pass:
// registry defaults, then the instance config, then view.
func (e *Engine) Config(def field.Definition, view map[string]any) map[string]any {
	var defaults map[string]any
	if e.entries != nil {
		if entry, ok := e.entries.GetSync(def.TypeKey()); ok {
			defaults = entry.DefaultConfig
		}
	}
	return merge.Configs(defaults, def.Config, view)
}

// Render resolves and renders one field. It never panics and never returns
// nil: a renderer panic becomes an error chip.
func (e *Engine) Render(p fieldrender.Props) (out node.Node) {
	if p.Dispatch == nil {
		p.Dispatch = e
	}
	if p.Depth > e.maxDepth {
		e.log.WithFields(logrus.Fields{
			"field": p.Field.Key(),
			"depth": p.Depth,
		}).Warn("container nesting too deep")
		return &node.Warning{Message: fmt.Sprintf("%s: nesting deeper than %d levels is not rendered", p.Field.DisplayLabel(), e.maxDepth)}
	}

	r := Resolve(p.Field.TypeKey())
	if IsFallback(r) {
		e.log.WithField("type", p.Field.TypeKey()).Debug("unknown field type, using fallback")
	}
	p.Config = e.Config(p.Field, p.ViewConfig)

	defer func() {
		if rec := recover(); rec != nil {
			e.log.WithFields(logrus.Fields{
				"field":    p.Field.Key(),
				"category": r.Category().String(),
				"panic":    rec,
			}).Warn("renderer panicked")
			out = &node.ErrorChip{Message: fmt.Sprintf("%s could not be rendered", p.Field.DisplayLabel())}
		}
	}()

	out = r.Render(p)
	if out == nil {
		out = &node.Empty{Label: "Empty"}
	}
	return out
}

// Dispatch implements fieldrender.Dispatcher.
func (e *Engine) Dispatch(p fieldrender.Props) node.Node {
	return e.Render(p)
}

var _ fieldrender.Dispatcher = (*Engine)(nil)
