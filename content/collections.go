package content

import (
	"github.com/princinho/estudiobackend/models"
	"github.com/princinho/estudiobackend/storage"
)

const (
	TypeProducts      = "products"
	TypePortfolio     = "portfolio"
	TypeGraphicDesign = "graphic-design"
	TypeLaser         = "laser"
	TypeHomepage      = "homepage"
)

// Collections groups the repositories of every content type.
type Collections struct {
	Products      *Repository[models.ProductsDoc]
	Portfolio     *Repository[models.PortfolioDoc]
	GraphicDesign *Repository[models.GraphicDesignDoc]
	Laser         *Repository[models.LaserDoc]
	Homepage      *Repository[models.HomepageDoc]
}

func NewCollections(store storage.BlobStore) *Collections {
	return &Collections{
		Products: &Repository[models.ProductsDoc]{
			store: store, name: TypeProducts, failMessage: "Failed to save products",
			newDefault: DefaultProducts, prepare: prepareProducts, required: []string{"products"},
		},
		Portfolio: &Repository[models.PortfolioDoc]{
			store: store, name: TypePortfolio, failMessage: "Failed to save portfolio",
			newDefault: DefaultPortfolio, prepare: preparePortfolio, required: []string{"projects"},
		},
		GraphicDesign: &Repository[models.GraphicDesignDoc]{
			store: store, name: TypeGraphicDesign, failMessage: "Failed to save graphic design content",
			newDefault: DefaultGraphicDesign, prepare: prepareGraphicDesign, required: []string{"services"},
		},
		Laser: &Repository[models.LaserDoc]{
			store: store, name: TypeLaser, failMessage: "Failed to save laser content",
			newDefault: DefaultLaser, prepare: prepareLaser, required: []string{"materials", "products"},
		},
		Homepage: &Repository[models.HomepageDoc]{
			store: store, name: TypeHomepage, failMessage: "Failed to save homepage content",
			newDefault: DefaultHomepage, prepare: prepareHomepage, required: []string{"projects"},
		},
	}
}

// ByType resolves the URL segment of /api/content/:type.
func (c *Collections) ByType(name string) (Document, bool) {
	switch name {
	case TypeProducts:
		return c.Products, true
	case TypePortfolio:
		return c.Portfolio, true
	case TypeGraphicDesign:
		return c.GraphicDesign, true
	case TypeLaser:
		return c.Laser, true
	case TypeHomepage:
		return c.Homepage, true
	}
	return nil, false
}
