package models

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

func (k MediaKind) Valid() bool {
	return k == "" || k == MediaImage || k == MediaVideo
}

// Product is a storefront item shown on /tienda.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image,omitempty"`
	Description string    `json:"description,omitempty"`
	MediaType   MediaKind `json:"mediaType,omitempty"`
}

type PortfolioProject struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image,omitempty"`
	MediaType   MediaKind `json:"mediaType,omitempty"`
}

type GraphicDesignService struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image,omitempty"`
	MediaType   MediaKind `json:"mediaType,omitempty"`
}

type LaserMaterial struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

type LaserProduct struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	MediaType   MediaKind `json:"mediaType,omitempty"`
}

type HomeProject struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Image string `json:"image,omitempty"`
}

// HeroAssets holds the named media slots of the homepage hero.
type HeroAssets struct {
	Logo        string `json:"logo,omitempty"`
	LeftTop     string `json:"leftTop,omitempty"`
	LeftBottom  string `json:"leftBottom,omitempty"`
	RightTop    string `json:"rightTop,omitempty"`
	RightBottom string `json:"rightBottom,omitempty"`
}

var HeroSlots = []string{"logo", "leftTop", "leftBottom", "rightTop", "rightBottom"}

// Slot returns a pointer to the named slot or nil for an unknown name.
func (h *HeroAssets) Slot(name string) *string {
	switch name {
	case "logo":
		return &h.Logo
	case "leftTop":
		return &h.LeftTop
	case "leftBottom":
		return &h.LeftBottom
	case "rightTop":
		return &h.RightTop
	case "rightBottom":
		return &h.RightBottom
	}
	return nil
}

type ProductsDoc struct {
	Products []Product `json:"products"`
}

type PortfolioDoc struct {
	Projects []PortfolioProject `json:"projects"`
}

type GraphicDesignDoc struct {
	Services []GraphicDesignService `json:"services"`
}

type LaserDoc struct {
	Materials []LaserMaterial `json:"materials"`
	Products  []LaserProduct  `json:"products"`
}

type HomepageDoc struct {
	Projects   []HomeProject `json:"projects"`
	HeroAssets HeroAssets    `json:"heroAssets"`
}

// URL returns the media URL of the named slot, "" when unset or unknown.
func (h HeroAssets) URL(name string) string {
	if p := h.Slot(name); p != nil {
		return *p
	}
	return ""
}
