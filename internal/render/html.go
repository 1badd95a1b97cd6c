package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// HTML renders views as the board page
type HTML struct {
	templates *template.Template
}

// NewHTML parses the embedded page templates
func NewHTML() (*HTML, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &HTML{templates: tmpl}, nil
}

// Render writes the full page for v
func (h *HTML) Render(w io.Writer, v View) error {
	return h.templates.ExecuteTemplate(w, "board", v)
}
