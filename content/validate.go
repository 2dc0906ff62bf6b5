package content

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/princinho/estudiobackend/models"
)

// ValidationError is returned by Save for a document that cannot be stored.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return e.Field + ": " + e.Msg
}

func itoa(n int) string { return strconv.Itoa(n) }

// NewID issues a string item id such as "laser-3f9a0c1d".
func NewID(prefix string) string {
	return prefix + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// NextIntID returns max(ids)+1 (1 for an empty collection).
func NextIntID(ids []int) int {
	next := 1
	for _, id := range ids {
		if id >= next {
			next = id + 1
		}
	}
	return next
}

type item struct {
	id        string
	price     float64
	mediaType models.MediaKind
}

func checkItems(field string, items []item) error {
	seen := make(map[string]bool, len(items))
	for i, it := range items {
		where := fmt.Sprintf("%s[%d]", field, i)
		if seen[it.id] {
			return &ValidationError{Field: where, Msg: fmt.Sprintf("duplicate id %q", it.id)}
		}
		seen[it.id] = true
		if it.price < 0 {
			return &ValidationError{Field: where, Msg: "price must not be negative"}
		}
		if !it.mediaType.Valid() {
			return &ValidationError{Field: where, Msg: fmt.Sprintf("unknown mediaType %q", it.mediaType)}
		}
	}
	return nil
}

func prepareProducts(d *models.ProductsDoc) error {
	if d.Products == nil {
		d.Products = []models.Product{}
	}
	items := make([]item, len(d.Products))
	for i := range d.Products {
		p := &d.Products[i]
		if p.ID == "" {
			p.ID = NewID("product")
		}
		items[i] = item{p.ID, p.Price, p.MediaType}
	}
	return checkItems("products", items)
}

func preparePortfolio(d *models.PortfolioDoc) error {
	if d.Projects == nil {
		d.Projects = []models.PortfolioProject{}
	}
	ids := make([]int, len(d.Projects))
	for i, p := range d.Projects {
		ids[i] = p.ID
	}
	items := make([]item, len(d.Projects))
	for i := range d.Projects {
		p := &d.Projects[i]
		if p.ID <= 0 {
			p.ID = NextIntID(ids)
			ids = append(ids, p.ID)
		}
		items[i] = item{itoa(p.ID), p.Price, p.MediaType}
	}
	return checkItems("projects", items)
}

func prepareGraphicDesign(d *models.GraphicDesignDoc) error {
	if d.Services == nil {
		d.Services = []models.GraphicDesignService{}
	}
	items := make([]item, len(d.Services))
	for i := range d.Services {
		s := &d.Services[i]
		if s.ID == "" {
			s.ID = NewID("service")
		}
		items[i] = item{s.ID, s.Price, s.MediaType}
	}
	return checkItems("services", items)
}

func prepareLaser(d *models.LaserDoc) error {
	if d.Materials == nil {
		d.Materials = []models.LaserMaterial{}
	}
	if d.Products == nil {
		d.Products = []models.LaserProduct{}
	}
	materials := make([]item, len(d.Materials))
	for i := range d.Materials {
		m := &d.Materials[i]
		if m.ID == "" {
			m.ID = NewID("material")
		}
		materials[i] = item{id: m.ID}
	}
	if err := checkItems("materials", materials); err != nil {
		return err
	}
	products := make([]item, len(d.Products))
	for i := range d.Products {
		p := &d.Products[i]
		if p.ID == "" {
			p.ID = NewID("laser")
		}
		products[i] = item{p.ID, p.Price, p.MediaType}
	}
	return checkItems("products", products)
}

func prepareHomepage(d *models.HomepageDoc) error {
	if d.Projects == nil {
		d.Projects = []models.HomeProject{}
	}
	ids := make([]int, len(d.Projects))
	for i, p := range d.Projects {
		ids[i] = p.ID
	}
	items := make([]item, len(d.Projects))
	for i := range d.Projects {
		p := &d.Projects[i]
		if p.ID <= 0 {
			p.ID = NextIntID(ids)
			ids = append(ids, p.ID)
		}
		items[i] = item{id: itoa(p.ID)}
	}
	return checkItems("projects", items)
}
