// Package web holds the stub storefront's page templates. Every page is
// parsed together with layout.html and listing.html; the page file defines
// "content".
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var files embed.FS

// Templates returns the template files rooted at the templates directory.
func Templates() fs.FS {
	sub, err := fs.Sub(files, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Funcs are the helpers the templates call.
var Funcs = template.FuncMap{
	"dollars": func(cents int64) float64 { return float64(cents) / 100 },
}

// Parse parses page together with the shared layout files from fsys.
func Parse(fsys fs.FS, page string) (*template.Template, error) {
	return template.New("layout.html").Funcs(Funcs).ParseFS(fsys, "layout.html", "listing.html", page)
}
