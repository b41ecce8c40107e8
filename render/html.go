package render

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.tmpl
var templates embed.FS

var invoiceTemplate = template.Must(template.ParseFS(templates, "templates/invoice.html.tmpl"))

// HTML writes the static print sheet.
func HTML(w io.Writer, s Sheet) error {
	return invoiceTemplate.Execute(w, s)
}
