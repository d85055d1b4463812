// Package web holds the server-rendered pages.
package web

import (
	"embed"
	"encoding/json"
	"html/template"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"pretty": func(v any) (string, error) {
			b, err := json.MarshalIndent(v, "", "  ")
			return string(b), err
		},
	}).ParseFS(templateFS, "templates/*.gohtml")
}
