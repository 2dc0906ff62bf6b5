package cart

import (
	"context"

	"github.com/princinho/estudiobackend/content"
)

// Catalog resolves an item id to its current name, price and image. Prices
// always come from the stored content, never from the request.
type Catalog struct {
	content *content.Collections
}

func NewCatalog(c *content.Collections) *Catalog { return &Catalog{content: c} }

func (c *Catalog) Lookup(ctx context.Context, id string) (Item, bool) {
	for _, p := range c.content.Products.FetchOrDefault(ctx).Products {
		if p.ID == id {
			return Item{ID: p.ID, Name: p.Name, Price: p.Price, Image: p.Image}, true
		}
	}
	for _, p := range c.content.Laser.FetchOrDefault(ctx).Products {
		if p.ID == id {
			return Item{ID: p.ID, Name: p.Name, Price: p.Price, Image: p.Image}, true
		}
	}
	for _, s := range c.content.GraphicDesign.FetchOrDefault(ctx).Services {
		if s.ID == id {
			return Item{ID: s.ID, Name: s.Title, Price: s.Price, Image: s.Image}, true
		}
	}
	return Item{}, false
}
