// Package views holds the embedded HTML templates for the web front-end.
package views

import (
	"embed"
	"html/template"
	"time"

	"boardfront/app/apiclient"
	"boardfront/app/timefmt"
)

//go:embed templates
var files embed.FS

// Load parses every page template against the shared layout. Each page is
// its own template set so pages can define "content" independently.
func Load() map[string]*template.Template {
	funcs := template.FuncMap{
		"timestamp": func(t time.Time) string {
			return timefmt.Timestamp(time.Now(), t)
		},
		"errmsg": apiclient.Message,
	}
	parse := func(page string) *template.Template {
		return template.Must(template.New("layout").Funcs(funcs).ParseFS(files,
			"templates/layout.html",
			"templates/"+page,
		))
	}
	return map[string]*template.Template{
		"index":    parse("index.html"),
		"show":     parse("show.html"),
		"auth":     parse("auth.html"),
		"notfound": parse("notfound.html"),
	}
}
