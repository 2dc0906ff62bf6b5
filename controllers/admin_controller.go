package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/princinho/estudiobackend/admin"
	"github.com/princinho/estudiobackend/models"
)

func (a *App) renderAdmin(c *gin.Context, status int, name, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["Layout"] = Layout{Admin: true}
	c.HTML(status, name, data)
}

func (a *App) AdminDashboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		a.renderAdmin(c, http.StatusOK, "admin/dashboard.html", "Administración", gin.H{
			"Sections": a.Admin.Sections(),
			"Hero":     a.Admin.Hero.Assets(c.Request.Context()),
			"Slots":    models.HeroSlots,
		})
	}
}

// sectionData is the data of the section page; key selects the item shown
// in the edit form ("" for none). A failed read leaves the list empty and
// sets the banner.
func (a *App) sectionData(c *gin.Context, s admin.Section, key string, creating bool) (gin.H, error) {
	ctx := c.Request.Context()
	entries, err := s.Entries(ctx)
	data := gin.H{"Section": s, "Entries": entries}
	if err != nil {
		_ = c.Error(err)
		data["Error"] = msgReadFailed
	}
	if s.Slug() == "inicio" {
		data["Hero"] = a.Admin.Hero.Assets(ctx)
		data["Slots"] = models.HeroSlots
	}
	if creating {
		e, _ := s.Entry(ctx, "")
		data["Draft"] = e
		data["Creating"] = true
	} else if key != "" {
		if e, err := s.Entry(ctx, key); err == nil {
			data["Draft"] = e
		}
	}
	return data, err
}

func (a *App) section(c *gin.Context) (admin.Section, bool) {
	s, ok := a.Admin.Section(c.Param("section"))
	if !ok {
		a.renderAdmin(c, http.StatusNotFound, "admin/section.html", "No encontrado", gin.H{"Error": "Sección desconocida"})
	}
	return s, ok
}

func (a *App) AdminSection() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := a.section(c)
		if !ok {
			return
		}
		data, err := a.sectionData(c, s, c.Query("editar"), c.Query("nuevo") == "1")
		status := http.StatusOK
		if err != nil {
			status = statusFor(err)
		}
		a.renderAdmin(c, status, "admin/section.html", s.Title(), data)
	}
}

const (
	msgSaveFailed = "No se pudieron guardar los cambios."
	msgReadFailed = "No se pudo leer el contenido guardado. No se ha modificado nada."
)

// adminFailure re-renders the section with the failed draft still open
// and a blocking banner.
func (a *App) adminFailure(c *gin.Context, s admin.Section, key string, err error) {
	_ = c.Error(err)
	msg := msgSaveFailed
	var uerr *admin.UploadError
	var ferr *admin.FieldError
	switch {
	case errors.As(err, &uerr):
		msg = "Error al subir el archivo. Se mantiene la imagen anterior."
	case errors.As(err, &ferr):
		msg = "Valor no válido en el campo " + ferr.Field + "."
	case errors.Is(err, admin.ErrBusy):
		msg = "Hay otro guardado en curso. Inténtalo en unos segundos."
	case errors.Is(err, admin.ErrUnknownItem):
		msg = "El elemento ya no existe."
	}
	data, rerr := a.sectionData(c, s, key, key == "")
	if rerr == nil || msg != msgSaveFailed {
		data["Error"] = msg
	}
	a.renderAdmin(c, statusFor(err), "admin/section.html", s.Title(), data)
}

func submission(c *gin.Context, s admin.Section) admin.Submission {
	sub := admin.Submission{Values: map[string]string{}}
	for _, f := range s.Fields() {
		if v, ok := c.GetPostForm(f.Name); ok {
			sub.Values[f.Name] = v
		}
	}
	if fh, err := c.FormFile("file"); err == nil {
		sub.File = fh
	}
	return sub
}

func (a *App) AdminCreateItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := a.section(c)
		if !ok {
			return
		}
		if err := s.Submit(c.Request.Context(), "", submission(c, s)); err != nil {
			a.adminFailure(c, s, "", err)
			return
		}
		c.Redirect(http.StatusSeeOther, "/admin/"+s.Slug())
	}
}

func (a *App) AdminUpdateItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := a.section(c)
		if !ok {
			return
		}
		key := c.Param("key")
		if err := s.Submit(c.Request.Context(), key, submission(c, s)); err != nil {
			a.adminFailure(c, s, key, err)
			return
		}
		c.Redirect(http.StatusSeeOther, "/admin/"+s.Slug())
	}
}

func (a *App) AdminDeleteItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := a.section(c)
		if !ok {
			return
		}
		if err := s.Remove(c.Request.Context(), c.Param("key")); err != nil {
			a.adminFailure(c, s, "-", err)
			return
		}
		c.Redirect(http.StatusSeeOther, "/admin/"+s.Slug())
	}
}

// AdminHeroSlot replaces one homepage hero image.
func (a *App) AdminHeroSlot() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := a.section(c)
		if !ok {
			return
		}
		if s.Slug() != "inicio" {
			a.renderNotFound(c)
			return
		}
		fh, err := c.FormFile("file")
		if err != nil {
			a.adminFailure(c, s, "-", &admin.UploadError{Err: err})
			return
		}
		if err := a.Admin.Hero.SetSlot(c.Request.Context(), c.Param("slot"), fh); err != nil {
			a.adminFailure(c, s, "-", err)
			return
		}
		c.Redirect(http.StatusSeeOther, "/admin/inicio")
	}
}
