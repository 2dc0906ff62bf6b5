package content

import "github.com/princinho/estudiobackend/models"

var productDescriptions = []string{
	"Diseño personalizado para redes.",
	"Propuesta creativa para tu marca.",
	"Diseño a medida para impresos.",
	"Composición visual para eventos.",
	"Piezas gráficas para promociones.",
	"Diseños exclusivos y adaptados.",
	"Material gráfico para campañas.",
	"Diseño profesional para negocios.",
	"Arte final para impresión.",
	"Diseño editorial y publicitario.",
	"Piezas gráficas con identidad.",
	"Soluciones gráficas creativas.",
}

func DefaultProducts() models.ProductsDoc {
	products := make([]models.Product, len(productDescriptions))
	for i, d := range productDescriptions {
		products[i] = models.Product{
			ID:          itoa(i + 1),
			Name:        "Diseño grafico",
			Price:       50,
			Category:    "Diseño",
			Description: d,
		}
	}
	return models.ProductsDoc{Products: products}
}

var portfolioCategories = []string{"Invitaciones", "Grabado", "Diseño gráfico"}

func DefaultPortfolio() models.PortfolioDoc {
	projects := make([]models.PortfolioProject, 16)
	for i := range projects {
		projects[i] = models.PortfolioProject{
			ID:          i + 1,
			Title:       "Diseño grafico",
			Category:    portfolioCategories[i%3],
			Description: "Proyecto personalizado con detalles a medida.",
			Price:       float64(50 + (i%4)*25),
		}
	}
	return models.PortfolioDoc{Projects: projects}
}

func DefaultGraphicDesign() models.GraphicDesignDoc {
	return models.GraphicDesignDoc{Services: []models.GraphicDesignService{
		{ID: "service-1", Title: "Diseño para redes sociales", Description: "Post y stories con identidad visual coherente.", Price: 45},
		{ID: "service-2", Title: "Roll-ups y banners", Description: "Diseño listo para impresión y ferias.", Price: 90},
		{ID: "service-3", Title: "Vallas publicitarias", Description: "Composición de alto impacto para exteriores.", Price: 150},
		{ID: "service-4", Title: "Pegatinas y material", Description: "Diseños versatiles para productos y marca.", Price: 60},
		{ID: "service-5", Title: "Tarjetas de visita", Description: "Tarjetas modernas con acabados profesionales.", Price: 40},
		{ID: "service-6", Title: "Imprenta adicional", Description: "Folletos, catalogos y menus personalizados.", Price: 70},
	}}
}

func DefaultLaser() models.LaserDoc {
	return models.LaserDoc{
		Materials: []models.LaserMaterial{
			{ID: "material-1", Name: "Madera", Description: "Grabado en madera natural para sensación cálida y natural"},
			{ID: "material-2", Name: "Acrílico", Description: "Grabado en acrílico transparente o de color para look moderno"},
			{ID: "material-3", Name: "Cuero", Description: "Grabado dedicado en cuero para añadido lujos"},
			{ID: "material-4", Name: "Metal", Description: "Grabado en varios metales para productos duraderos"},
		},
		Products: []models.LaserProduct{
			{ID: "laser-1", Name: "Diseño grafico", Price: 75, Description: "Grabado personalizado en madera."},
			{ID: "laser-2", Name: "Diseño grafico", Price: 75, Description: "Grabado en acrilico con acabado limpio."},
			{ID: "laser-3", Name: "Diseños grafico", Price: 75, Description: "Detalles precisos para regalos."},
			{ID: "laser-4", Name: "Diseño grafico", Price: 75, Description: "Grabado para piezas corporativas."},
			{ID: "laser-5", Name: "Diseño grafico", Price: 75, Description: "Personalizacion con texto y logo."},
			{ID: "laser-6", Name: "Diseño grafico", Price: 75, Description: "Ideal para eventos y souvenirs."},
			{ID: "laser-7", Name: "Diseño grafico", Price: 75, Description: "Acabado premium en metal."},
			{ID: "laser-8", Name: "Diseño grafico", Price: 75, Description: "Grabado fino en cuero."},
		},
	}
}

func DefaultHomepage() models.HomepageDoc {
	return models.HomepageDoc{Projects: []models.HomeProject{
		{ID: 1, Title: "Diseño grafico"},
		{ID: 2, Title: "Diseño grafico"},
		{ID: 3, Title: "Diseño grafico"},
		{ID: 4, Title: "Diseño grafico"},
	}}
}
