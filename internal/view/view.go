// Package view renders the HTML pages from templates embedded in the
// binary.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

//go:embed templates
var templateFS embed.FS

const (
	layoutFile   = "templates/layouts/main.html"
	partialsGlob = "templates/partials/*.html"
)

// Page is the data every template receives.  Data holds the
// page-specific value.
type Page struct {
	Title    string
	Messages []string
	Data     any
}

// Renderer implements echo.Renderer.  Each page is parsed together with
// the shared layout and looked up by its path under templates/, e.g.
// "pages/show_venue.html".
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page template.
func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"datetime": FormatDatetime,
		"join":     strings.Join,
		"contains": slices.Contains[[]string, string],
		"genres":   func() []string { return GenreChoices },
		"states":   func() []string { return StateChoices },
		"slice3":   func(a, b, c string) [3]string { return [3]string{a, b, c} },
	}
	r := &Renderer{pages: make(map[string]*template.Template)}
	err := fs.WalkDir(templateFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".html" || !isPage(p) {
			return nil
		}
		t, err := template.New(path.Base(layoutFile)).Funcs(funcs).ParseFS(templateFS, layoutFile, partialsGlob, p)
		if err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
		r.pages[strings.TrimPrefix(p, "templates/")] = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func isPage(p string) bool {
	return !strings.HasPrefix(p, "templates/layouts/") && !strings.HasPrefix(p, "templates/partials/")
}

// Render executes the named page inside the layout.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return t.ExecuteTemplate(w, path.Base(layoutFile), data)
}

// Has reports whether a page template exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// Datetime layouts selectable from templates.
const (
	FullLayout   = "Monday January, 2, 2006 at 3:04PM"
	MediumLayout = "Mon 01, 02, 2006 3:04PM"
)

// FormatDatetime formats t in UTC with the "full" or "medium" (default)
// layout.
func FormatDatetime(t time.Time, format string) string {
	layout := MediumLayout
	if format == "full" {
		layout = FullLayout
	}
	return t.UTC().Format(layout)
}
