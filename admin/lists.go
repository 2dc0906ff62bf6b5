package admin

import (
	"context"
	"strconv"

	"github.com/princinho/estudiobackend/content"
	"github.com/princinho/estudiobackend/models"
)

func productsSection(repo *content.Repository[models.ProductsDoc], gate *Gate, up Uploader) Section {
	return &section[models.Product]{
		slug: "productos", title: "Productos de Tienda", folder: "products",
		fields: []field[models.Product]{
			{Field{"name", "Nombre", TextField}, func(p models.Product) string { return p.Name },
				func(p *models.Product, v string) error { p.Name = v; return nil }},
			{Field{"category", "Categoría", TextField}, func(p models.Product) string { return p.Category },
				func(p *models.Product, v string) error { p.Category = v; return nil }},
			{Field{"price", "Precio", PriceField}, func(p models.Product) string { return formatPrice(p.Price) },
				func(p *models.Product, v string) error { return setPrice(&p.Price, v) }},
			{Field{"description", "Descripción", TextareaField}, func(p models.Product) string { return p.Description },
				func(p *models.Product, v string) error { p.Description = v; return nil }},
		},
		media: &media[models.Product]{
			get: func(p models.Product) (string, models.MediaKind) { return p.Image, p.MediaType },
			set: func(p *models.Product, url string, k models.MediaKind) { p.Image, p.MediaType = url, k },
		},
		idOf: func(p models.Product) string { return p.ID },
		newItem: func() models.Product {
			return models.Product{Name: "Nuevo producto", Price: 50, Category: "Diseño", Description: "Describe el producto aqui."}
		},
		load: func(ctx context.Context) ([]models.Product, error) {
			doc, err := stored(ctx, repo)
			return doc.Products, err
		},
		persist: func(ctx context.Context, items []models.Product) ([]models.Product, error) {
			doc, err := stored(ctx, repo)
			if err != nil {
				return nil, err
			}
			doc.Products = items
			saved, err := repo.Save(ctx, doc)
			return saved.Products, err
		},
		gate: gate, up: up,
	}
}

func portfolioSection(repo *content.Repository[models.PortfolioDoc], gate *Gate, up Uploader) Section {
	return &section[models.PortfolioProject]{
		slug: "portafolio", title: "Portafolio", folder: "portfolio",
		fields: []field[models.PortfolioProject]{
			{Field{"title", "Título", TextField}, func(p models.PortfolioProject) string { return p.Title },
				func(p *models.PortfolioProject, v string) error { p.Title = v; return nil }},
			{Field{"category", "Categoría", TextField}, func(p models.PortfolioProject) string { return p.Category },
				func(p *models.PortfolioProject, v string) error { p.Category = v; return nil }},
			{Field{"price", "Precio", PriceField}, func(p models.PortfolioProject) string { return formatPrice(p.Price) },
				func(p *models.PortfolioProject, v string) error { return setPrice(&p.Price, v) }},
			{Field{"description", "Descripción", TextareaField}, func(p models.PortfolioProject) string { return p.Description },
				func(p *models.PortfolioProject, v string) error { p.Description = v; return nil }},
		},
		media: &media[models.PortfolioProject]{
			get: func(p models.PortfolioProject) (string, models.MediaKind) { return p.Image, p.MediaType },
			set: func(p *models.PortfolioProject, url string, k models.MediaKind) { p.Image, p.MediaType = url, k },
		},
		idOf: func(p models.PortfolioProject) string { return strconv.Itoa(p.ID) },
		newItem: func() models.PortfolioProject {
			return models.PortfolioProject{Title: "Nuevo proyecto", Category: "Diseño gráfico"}
		},
		load: func(ctx context.Context) ([]models.PortfolioProject, error) {
			doc, err := stored(ctx, repo)
			return doc.Projects, err
		},
		persist: func(ctx context.Context, items []models.PortfolioProject) ([]models.PortfolioProject, error) {
			doc, err := stored(ctx, repo)
			if err != nil {
				return nil, err
			}
			doc.Projects = items
			saved, err := repo.Save(ctx, doc)
			return saved.Projects, err
		},
		gate: gate, up: up,
	}
}

func servicesSection(repo *content.Repository[models.GraphicDesignDoc], gate *Gate, up Uploader) Section {
	return &section[models.GraphicDesignService]{
		slug: "diseno-grafico", title: "Servicios de Diseño Gráfico", folder: "graphic-design/services",
		fields: []field[models.GraphicDesignService]{
			{Field{"title", "Título", TextField}, func(s models.GraphicDesignService) string { return s.Title },
				func(s *models.GraphicDesignService, v string) error { s.Title = v; return nil }},
			{Field{"price", "Precio", PriceField}, func(s models.GraphicDesignService) string { return formatPrice(s.Price) },
				func(s *models.GraphicDesignService, v string) error { return setPrice(&s.Price, v) }},
			{Field{"description", "Descripción", TextareaField}, func(s models.GraphicDesignService) string { return s.Description },
				func(s *models.GraphicDesignService, v string) error { s.Description = v; return nil }},
		},
		media: &media[models.GraphicDesignService]{
			get: func(s models.GraphicDesignService) (string, models.MediaKind) { return s.Image, s.MediaType },
			set: func(s *models.GraphicDesignService, url string, k models.MediaKind) { s.Image, s.MediaType = url, k },
		},
		idOf: func(s models.GraphicDesignService) string { return s.ID },
		newItem: func() models.GraphicDesignService {
			return models.GraphicDesignService{Title: "Nuevo servicio", Description: "Describe el servicio aqui.", Price: 50}
		},
		load: func(ctx context.Context) ([]models.GraphicDesignService, error) {
			doc, err := stored(ctx, repo)
			return doc.Services, err
		},
		persist: func(ctx context.Context, items []models.GraphicDesignService) ([]models.GraphicDesignService, error) {
			doc, err := stored(ctx, repo)
			if err != nil {
				return nil, err
			}
			doc.Services = items
			saved, err := repo.Save(ctx, doc)
			return saved.Services, err
		},
		gate: gate, up: up,
	}
}

func laserProductsSection(repo *content.Repository[models.LaserDoc], gate *Gate, up Uploader) Section {
	return &section[models.LaserProduct]{
		slug: "grabado-laser", title: "Productos de Grabado Láser", folder: "laser/products",
		fields: []field[models.LaserProduct]{
			{Field{"name", "Nombre", TextField}, func(p models.LaserProduct) string { return p.Name },
				func(p *models.LaserProduct, v string) error { p.Name = v; return nil }},
			{Field{"price", "Precio", PriceField}, func(p models.LaserProduct) string { return formatPrice(p.Price) },
				func(p *models.LaserProduct, v string) error { return setPrice(&p.Price, v) }},
			{Field{"description", "Descripción", TextareaField}, func(p models.LaserProduct) string { return p.Description },
				func(p *models.LaserProduct, v string) error { p.Description = v; return nil }},
		},
		media: &media[models.LaserProduct]{
			get: func(p models.LaserProduct) (string, models.MediaKind) { return p.Image, p.MediaType },
			set: func(p *models.LaserProduct, url string, k models.MediaKind) { p.Image, p.MediaType = url, k },
		},
		idOf: func(p models.LaserProduct) string { return p.ID },
		newItem: func() models.LaserProduct {
			return models.LaserProduct{Name: "Nuevo producto", Price: 75, Description: "Describe el producto aqui."}
		},
		load: func(ctx context.Context) ([]models.LaserProduct, error) {
			doc, err := stored(ctx, repo)
			return doc.Products, err
		},
		persist: func(ctx context.Context, items []models.LaserProduct) ([]models.LaserProduct, error) {
			doc, err := stored(ctx, repo)
			if err != nil {
				return nil, err
			}
			doc.Products = items
			saved, err := repo.Save(ctx, doc)
			return saved.Products, err
		},
		gate: gate, up: up,
	}
}

// Materials only take images.
func laserMaterialsSection(repo *content.Repository[models.LaserDoc], gate *Gate, up Uploader) Section {
	return &section[models.LaserMaterial]{
		slug: "materiales-laser", title: "Materiales de Grabado", folder: "laser/materials", imageOnly: true,
		fields: []field[models.LaserMaterial]{
			{Field{"name", "Nombre", TextField}, func(m models.LaserMaterial) string { return m.Name },
				func(m *models.LaserMaterial, v string) error { m.Name = v; return nil }},
			{Field{"description", "Descripción", TextareaField}, func(m models.LaserMaterial) string { return m.Description },
				func(m *models.LaserMaterial, v string) error { m.Description = v; return nil }},
		},
		media: &media[models.LaserMaterial]{
			get: func(m models.LaserMaterial) (string, models.MediaKind) { return m.Image, models.MediaImage },
			set: func(m *models.LaserMaterial, url string, _ models.MediaKind) { m.Image = url },
		},
		idOf:    func(m models.LaserMaterial) string { return m.ID },
		newItem: func() models.LaserMaterial { return models.LaserMaterial{Name: "Nuevo material"} },
		load: func(ctx context.Context) ([]models.LaserMaterial, error) {
			doc, err := stored(ctx, repo)
			return doc.Materials, err
		},
		persist: func(ctx context.Context, items []models.LaserMaterial) ([]models.LaserMaterial, error) {
			doc, err := stored(ctx, repo)
			if err != nil {
				return nil, err
			}
			doc.Materials = items
			saved, err := repo.Save(ctx, doc)
			return saved.Materials, err
		},
		gate: gate, up: up,
	}
}

func homeProjectsSection(repo *content.Repository[models.HomepageDoc], gate *Gate, up Uploader) Section {
	return &section[models.HomeProject]{
		slug: "inicio", title: "Proyectos de Inicio", folder: "homepage/projects", imageOnly: true,
		fields: []field[models.HomeProject]{
			{Field{"title", "Título", TextField}, func(p models.HomeProject) string { return p.Title },
				func(p *models.HomeProject, v string) error { p.Title = v; return nil }},
		},
		media: &media[models.HomeProject]{
			get: func(p models.HomeProject) (string, models.MediaKind) { return p.Image, models.MediaImage },
			set: func(p *models.HomeProject, url string, _ models.MediaKind) { p.Image = url },
		},
		idOf:    func(p models.HomeProject) string { return strconv.Itoa(p.ID) },
		newItem: func() models.HomeProject { return models.HomeProject{Title: "Nuevo proyecto"} },
		load: func(ctx context.Context) ([]models.HomeProject, error) {
			doc, err := stored(ctx, repo)
			return doc.Projects, err
		},
		persist: func(ctx context.Context, items []models.HomeProject) ([]models.HomeProject, error) {
			doc, err := stored(ctx, repo)
			if err != nil {
				return nil, err
			}
			doc.Projects = items
			saved, err := repo.Save(ctx, doc)
			return saved.Projects, err
		},
		gate: gate, up: up,
	}
}
