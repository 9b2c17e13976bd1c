package server

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
)

//go:embed templates
var templateFS embed.FS

// Renderer implements echo.Renderer over the embedded html/template set.
// Pages and fragments share one set and are addressed by file name.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html", "templates/fragments/*.html")),
	}
}

func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	tmpl := r.templates.Lookup(name)
	if tmpl == nil {
		return fmt.Errorf("template %s not found", name)
	}
	if err := tmpl.Execute(w, data); err != nil {
		log.Error("failed to execute template", "template", name, "error", err)
		return err
	}
	return nil
}
