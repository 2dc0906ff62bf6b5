package controllers

import (
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/gin-gonic/gin/render"
	"github.com/pkg/errors"
	"github.com/princinho/estudiobackend/models"
)

// HTMLRenderer keeps one template set per page, each parsed over the
// shared layout.
type HTMLRenderer struct {
	Templates map[string]*template.Template
}

func (r *HTMLRenderer) Instance(name string, data any) render.Render {
	return render.HTML{
		Template: r.Templates[name],
		Data:     data,
	}
}

var TemplateFuncs = template.FuncMap{
	"price": func(p float64) string {
		return strings.Replace(fmt.Sprintf("%.2f €", p), ".", ",", 1)
	},
	"isVideo": func(k models.MediaKind) bool { return k == models.MediaVideo },
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"derefPrice": func(p *float64) float64 {
		if p == nil {
			return 0
		}
		return *p
	},
}

// LoadTemplates parses every templates/pages and templates/admin file of
// fsys together with templates/layout.html. Pages are named "pages/x.html"
// and "admin/x.html".
func LoadTemplates(fsys fs.FS) (*HTMLRenderer, error) {
	r := &HTMLRenderer{Templates: map[string]*template.Template{}}
	for _, dir := range []string{"pages", "admin"} {
		files, err := fs.Glob(fsys, "templates/"+dir+"/*.html")
		if err != nil {
			return nil, errors.Wrapf(err, "list %s templates", dir)
		}
		for _, f := range files {
			name := dir + "/" + path.Base(f)
			tmpl, err := template.New("layout.html").Funcs(TemplateFuncs).ParseFS(fsys, "templates/layout.html", f)
			if err != nil {
				return nil, errors.Wrapf(err, "parse %s", name)
			}
			r.Templates[name] = tmpl
		}
	}
	return r, nil
}
