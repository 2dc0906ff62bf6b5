package admin

import (
	"context"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/princinho/estudiobackend/content"
	"github.com/princinho/estudiobackend/models"
	"github.com/princinho/estudiobackend/upload"
	"github.com/princinho/estudiobackend/utils"
)

type FieldKind string

const (
	TextField     FieldKind = "text"
	TextareaField FieldKind = "textarea"
	PriceField    FieldKind = "price"
)

type Field struct {
	Name  string
	Label string
	Kind  FieldKind
}

// FieldError reports a form value that could not be applied to the draft.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Err.Error() }
func (e *FieldError) Unwrap() error { return e.Err }

// UploadError wraps a failed media upload. The draft keeps its previous
// media when it is returned.
type UploadError struct{ Err error }

func (e *UploadError) Error() string { return "upload failed: " + e.Err.Error() }
func (e *UploadError) Unwrap() error { return e.Err }

// Entry is the display form of one list item.
type Entry struct {
	Key       string
	Values    map[string]string
	Media     string
	MediaType models.MediaKind
}

// Submission is one submitted edit form.
type Submission struct {
	Values map[string]string
	File   *multipart.FileHeader
}

type Uploader interface {
	StoreFile(ctx context.Context, fh *multipart.FileHeader, folder string, imageOnly bool) (upload.Result, error)
}

// Section is an editable list of the admin surface.
type Section interface {
	Slug() string
	Title() string
	Fields() []Field
	HasMedia() bool
	ImageOnly() bool
	Entries(ctx context.Context) ([]Entry, error)
	Entry(ctx context.Context, key string) (Entry, error)
	// Submit saves a form. An empty key creates a new item.
	Submit(ctx context.Context, key string, sub Submission) error
	Remove(ctx context.Context, key string) error
}

type field[T any] struct {
	Field
	get func(T) string
	set func(*T, string) error
}

type media[T any] struct {
	get func(T) (string, models.MediaKind)
	set func(*T, string, models.MediaKind)
}

type section[T any] struct {
	slug, title, folder string
	imageOnly           bool
	fields              []field[T]
	media               *media[T]

	idOf    func(T) string
	newItem func() T
	load    func(ctx context.Context) ([]T, error)
	persist PersistFunc[T]
	gate    *Gate
	up      Uploader
}

func (s *section[T]) Slug() string    { return s.slug }
func (s *section[T]) Title() string   { return s.title }
func (s *section[T]) HasMedia() bool  { return s.media != nil }
func (s *section[T]) ImageOnly() bool { return s.imageOnly }

func (s *section[T]) Fields() []Field {
	out := make([]Field, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Field
	}
	return out
}

func (s *section[T]) entry(it T) Entry {
	e := Entry{Key: s.idOf(it), Values: make(map[string]string, len(s.fields))}
	for _, f := range s.fields {
		e.Values[f.Name] = f.get(it)
	}
	if s.media != nil {
		e.Media, e.MediaType = s.media.get(it)
	}
	return e
}

func (s *section[T]) Entries(ctx context.Context) ([]Entry, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, len(items))
	for i, it := range items {
		out[i] = s.entry(it)
	}
	return out, nil
}

func (s *section[T]) Entry(ctx context.Context, key string) (Entry, error) {
	if key == "" {
		return s.entry(s.newItem()), nil
	}
	items, err := s.load(ctx)
	if err != nil {
		return Entry{}, err
	}
	for _, it := range items {
		if s.idOf(it) == key {
			return s.entry(it), nil
		}
	}
	return Entry{}, ErrUnknownItem
}

func (s *section[T]) editor(ctx context.Context) (*Editor[T], error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return NewEditor(items, s.idOf, s.newItem, s.persist, s.gate), nil
}

func (s *section[T]) Submit(ctx context.Context, key string, sub Submission) error {
	ed, err := s.editor(ctx)
	if err != nil {
		return err
	}
	if key == "" {
		err = ed.New()
	} else {
		err = ed.Select(key)
	}
	if err != nil {
		return err
	}

	err = ed.Edit(func(d *T) error {
		for _, f := range s.fields {
			v, ok := sub.Values[f.Name]
			if !ok {
				continue
			}
			if err := f.set(d, strings.TrimSpace(v)); err != nil {
				return &FieldError{Field: f.Name, Err: err}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if sub.File != nil && s.media != nil {
		res, err := s.up.StoreFile(ctx, sub.File, s.folder, s.imageOnly)
		if err != nil {
			return &UploadError{Err: err}
		}
		_ = ed.Edit(func(d *T) error {
			s.media.set(d, res.URL, res.MediaType)
			return nil
		})
	}
	return ed.Save(ctx)
}

func (s *section[T]) Remove(ctx context.Context, key string) error {
	ed, err := s.editor(ctx)
	if err != nil {
		return err
	}
	return ed.Delete(ctx, key)
}

// stored reads the document an edit starts from. Only a document that was
// never saved falls back to the default; any other read error stops the
// edit before anything is written.
func stored[D any](ctx context.Context, repo *content.Repository[D]) (D, error) {
	doc, err := repo.Fetch(ctx)
	if errors.Is(err, content.ErrNotFound) {
		return repo.Default(), nil
	}
	return doc, err
}

func setPrice(dst *float64, v string) error {
	p, err := utils.ParsePrice(v)
	if err != nil {
		return err
	}
	*dst = p
	return nil
}

func formatPrice(p float64) string { return strconv.FormatFloat(p, 'f', -1, 64) }

// Registry holds every admin section and the homepage hero editor.
type Registry struct {
	sections []Section
	bySlug   map[string]Section
	Hero     *HeroEditor
}

func (r *Registry) Sections() []Section { return r.sections }

func (r *Registry) Section(slug string) (Section, bool) {
	s, ok := r.bySlug[slug]
	return s, ok
}

func NewRegistry(c *content.Collections, up Uploader) *Registry {
	gates := map[string]*Gate{
		content.TypeProducts:      {},
		content.TypePortfolio:     {},
		content.TypeGraphicDesign: {},
		content.TypeLaser:         {},
		content.TypeHomepage:      {},
	}
	r := &Registry{bySlug: map[string]Section{}}
	for _, s := range []Section{
		productsSection(c.Products, gates[content.TypeProducts], up),
		portfolioSection(c.Portfolio, gates[content.TypePortfolio], up),
		servicesSection(c.GraphicDesign, gates[content.TypeGraphicDesign], up),
		laserProductsSection(c.Laser, gates[content.TypeLaser], up),
		laserMaterialsSection(c.Laser, gates[content.TypeLaser], up),
		homeProjectsSection(c.Homepage, gates[content.TypeHomepage], up),
	} {
		r.sections = append(r.sections, s)
		r.bySlug[s.Slug()] = s
	}
	r.Hero = &HeroEditor{repo: c.Homepage, gate: gates[content.TypeHomepage], up: up}
	return r
}

// HeroEditor updates one homepage hero slot at a time.
type HeroEditor struct {
	repo *content.Repository[models.HomepageDoc]
	gate *Gate
	up   Uploader
}

var ErrUnknownSlot = errors.New("unknown hero slot")

func (h *HeroEditor) Assets(ctx context.Context) models.HeroAssets {
	return h.repo.FetchOrDefault(ctx).HeroAssets
}

func (h *HeroEditor) SetSlot(ctx context.Context, slot string, fh *multipart.FileHeader) error {
	var empty models.HeroAssets
	if empty.Slot(slot) == nil {
		return ErrUnknownSlot
	}
	if !h.gate.acquire() {
		return ErrBusy
	}
	defer h.gate.release()

	doc, err := stored(ctx, h.repo)
	if err != nil {
		return err
	}
	res, err := h.up.StoreFile(ctx, fh, "homepage/hero", true)
	if err != nil {
		return &UploadError{Err: err}
	}
	*doc.HeroAssets.Slot(slot) = res.URL
	_, err = h.repo.Save(ctx, doc)
	return err
}
