package handlers

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
)

//go:embed templates
var templateFS embed.FS

// ParseTemplates parses every embedded view; views are addressed by their define name.
func ParseTemplates() (*template.Template, error) {
	return template.New("views").ParseFS(templateFS,
		"templates/*.tmpl",
		"templates/recipe/*.tmpl",
		"templates/recipe/ingredient/*.tmpl",
	)
}

func LoadTemplates(engine *gin.Engine) error {
	tmpl, err := ParseTemplates()
	if err != nil {
		return err
	}
	engine.SetHTMLTemplate(tmpl)
	return nil
}
