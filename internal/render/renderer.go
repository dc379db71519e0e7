// Package render turns an invoice snapshot into a display-ready document
// tree using one of several interchangeable layouts.
package render

import (
	"github.com/rezonia/invoice-renderer/internal/format"
	"github.com/rezonia/invoice-renderer/internal/model"
)

// Renderer renders snapshots with a template registry and formatting options
type Renderer struct {
	registry *Registry
	opts     format.Options
}

// Option configures a Renderer
type Option func(*Renderer)

// WithOptions sets the formatting options
func WithOptions(opts format.Options) Option {
	return func(r *Renderer) {
		r.opts = opts
	}
}

// WithRegistry replaces the built-in templates
func WithRegistry(registry *Registry) Option {
	return func(r *Renderer) {
		r.registry = registry
	}
}

// NewRenderer creates a renderer with the built-in templates and default
// formatting options
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		registry: DefaultRegistry(),
		opts:     format.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registry returns the renderer's template registry
func (r *Renderer) Registry() *Registry {
	return r.registry
}

// Render lays out snap with the template registered under id
func (r *Renderer) Render(id TemplateID, snap *model.Snapshot) (*Document, error) {
	tmpl, err := r.registry.Get(id)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, model.NewValidationError("snapshot", nil, "required", "snapshot is required")
	}
	return r.render(tmpl, BuildView(snap, r.opts)), nil
}

// RenderAll renders snap with every registered template, in registration
// order. All documents share one view.
func (r *Renderer) RenderAll(snap *model.Snapshot) ([]*Document, error) {
	if snap == nil {
		return nil, model.NewValidationError("snapshot", nil, "required", "snapshot is required")
	}
	view := BuildView(snap, r.opts)
	templates := r.registry.Templates()
	docs := make([]*Document, 0, len(templates))
	for _, tmpl := range templates {
		docs = append(docs, r.render(tmpl, view))
	}
	return docs, nil
}

func (r *Renderer) render(tmpl Template, v *View) *Document {
	return &Document{
		Template: tmpl.ID(),
		Title:    v.Title,
		Styles:   tmpl.Styles(),
		Root:     tmpl.Render(v),
	}
}
