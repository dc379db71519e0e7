package render

import (
	"strings"

	"github.com/rezonia/invoice-renderer/internal/model"
)

// TemplateID identifies a layout variant
type TemplateID string

// Built-in template identifiers
const (
	TemplateClassic  TemplateID = "template-1"
	TemplateModern   TemplateID = "template-2"
	TemplateReceipto TemplateID = "template-3"
)

// DefaultTemplate is used when configuration names no template
const DefaultTemplate = TemplateClassic

// Template defines the interface for a layout variant
type Template interface {
	// ID returns the identifier callers select the template by
	ID() TemplateID

	// Name returns a short human readable name
	Name() string

	// Description summarizes the layout
	Description() string

	// Styles returns the stylesheet embedded in HTML output
	Styles() string

	// Render arranges the view into a document tree. It must not derive
	// any value that is not already on the view.
	Render(v *View) *Node
}

// Registry holds the available templates in registration order
type Registry struct {
	templates []Template
}

// NewRegistry creates a registry with the given templates
func NewRegistry(templates ...Template) *Registry {
	r := &Registry{
		templates: make([]Template, 0, len(templates)),
	}
	for _, t := range templates {
		r.Register(t)
	}
	return r
}

// DefaultRegistry returns a registry with every built-in template
func DefaultRegistry() *Registry {
	return NewRegistry(Classic{}, Modern{}, Receipto{})
}

// Register adds a template, replacing any template with the same id
func (r *Registry) Register(t Template) {
	for i, existing := range r.templates {
		if existing.ID() == t.ID() {
			r.templates[i] = t
			return
		}
	}
	r.templates = append(r.templates, t)
}

// Get returns the template registered under id
func (r *Registry) Get(id TemplateID) (Template, error) {
	for _, t := range r.templates {
		if t.ID() == id {
			return t, nil
		}
	}
	return nil, model.NewUnknownTemplateError(string(id), r.IDs())
}

// IDs returns the registered identifiers
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.templates))
	for _, t := range r.templates {
		ids = append(ids, string(t.ID()))
	}
	return ids
}

// Templates returns the registered templates
func (r *Registry) Templates() []Template {
	out := make([]Template, len(r.templates))
	copy(out, r.templates)
	return out
}

// ParseTemplateID normalizes a caller supplied identifier. It does not
// check registration; Registry.Get reports unknown ids.
func ParseTemplateID(s string) TemplateID {
	return TemplateID(strings.ToLower(strings.TrimSpace(s)))
}
