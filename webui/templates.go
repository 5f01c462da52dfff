package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/deepnoodle-ai/parley/log"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcMap = template.FuncMap{
	"formatTime": formatTimestamp,
}

func mustParse(name string) *template.Template {
	return template.Must(template.New(name).Funcs(funcMap).ParseFS(templateFS, "templates/"+name))
}

func render(w http.ResponseWriter, logger log.Logger, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		logger.Error("template render failed", "template", tmpl.Name(), "error", err)
	}
}
