// Package web embeds the site's HTML templates and static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every page template. Templates are addressed by file name, e.g. "ourwork.html".
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html"))
}

// Static returns the static asset tree served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Funcs are the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("02 Jan 2006")
		},
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"excerpt": func(s string, n int) string {
			r := []rune(strings.TrimSpace(s))
			if len(r) <= n {
				return string(r)
			}
			return strings.TrimSpace(string(r[:n])) + "..."
		},
	}
}
