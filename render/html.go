package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// HTML renders a page state as the search page
type HTML struct {
	tmpl *template.Template
}

// NewHTML creates a renderer for the embedded search page
func NewHTML() *HTML {
	return &HTML{tmpl: indexTemplate}
}

// Render writes the page for state; query is echoed back into the search box
func (h *HTML) Render(w io.Writer, state *State, query string) error {
	data := struct {
		State *State
		Query string
	}{State: state, Query: query}

	if err := h.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}
