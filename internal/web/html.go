package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/app.css
var appCSS []byte

//go:embed static/app.js
var appJS []byte

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))
