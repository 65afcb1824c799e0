// Package render turns an assembled InvoiceView into a document.
// Renderers are purely presentational: they format the figures the
// billing core computed and never re-derive totals.
package render

import (
	"context"

	"tradebill/internal/domain/billing"
)

// Format identifies a renderer output format.
type Format string

const (
	FormatHTML Format = "html"
	FormatXLSX Format = "xlsx"
)

// Renderer produces a document from an invoice view.
type Renderer interface {
	// Render consumes the view once and returns the document bytes
	// and their content type.
	Render(ctx context.Context, view *billing.InvoiceView) ([]byte, string, error)
}

// Registry maps formats to renderers.
type Registry struct {
	renderers map[Format]Renderer
}

// NewRegistry creates a registry with the given renderers.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[Format]Renderer)}
}

// Register adds a renderer for a format.
func (r *Registry) Register(f Format, renderer Renderer) {
	r.renderers[f] = renderer
}

// Get returns the renderer for a format, or false.
func (r *Registry) Get(f Format) (Renderer, bool) {
	renderer, ok := r.renderers[f]
	return renderer, ok
}
