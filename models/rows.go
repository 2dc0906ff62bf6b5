package models

import "time"

// Row is implemented by every table-backed record. Columns and Values list
// the non-id columns in the same order and are the only source of column
// names used when building statements.
type Row interface {
	TableName() string
	RowID() string
	SetRowID(id string)
	Columns() []string
	Values() []any
}

// Photo is a single-image row (logo, foto_izq, sobre_nosotros).
type Photo struct {
	ID   string  `gorm:"column:id;primaryKey;type:text" json:"id"`
	Foto *string `gorm:"column:foto" json:"foto"`
}

func (p *Photo) RowID() string      { return p.ID }
func (p *Photo) SetRowID(id string) { p.ID = id }
func (p *Photo) Columns() []string  { return []string{"foto"} }
func (p *Photo) Values() []any      { return []any{p.Foto} }

type Logo struct{ Photo }

func (Logo) TableName() string { return "logo" }

type LeftPhoto struct{ Photo }

func (LeftPhoto) TableName() string { return "foto_izq" }

type AboutPhoto struct{ Photo }

func (AboutPhoto) TableName() string { return "sobre_nosotros" }

// NamedPhoto is an image with a name and a description.
type NamedPhoto struct {
	ID          string  `gorm:"column:id;primaryKey;type:text" json:"id"`
	Foto        *string `gorm:"column:foto" json:"foto"`
	Nombre      *string `gorm:"column:nombre" json:"nombre"`
	Descripcion *string `gorm:"column:descripcion" json:"descripcion"`
}

func (n *NamedPhoto) RowID() string      { return n.ID }
func (n *NamedPhoto) SetRowID(id string) { n.ID = id }
func (n *NamedPhoto) Columns() []string  { return []string{"foto", "nombre", "descripcion"} }
func (n *NamedPhoto) Values() []any      { return []any{n.Foto, n.Nombre, n.Descripcion} }

type EngravingMaterial struct{ NamedPhoto }

func (EngravingMaterial) TableName() string { return "materiales_grabado" }

type StudioService struct{ NamedPhoto }

func (StudioService) TableName() string { return "nuestros_servicios" }

type WorkExample struct {
	ID          string   `gorm:"column:id;primaryKey;type:text" json:"id"`
	Foto        *string  `gorm:"column:foto" json:"foto"`
	Nombre      *string  `gorm:"column:nombre" json:"nombre"`
	Descripcion *string  `gorm:"column:descripcion" json:"descripcion"`
	Precio      *float64 `gorm:"column:precio" json:"precio"`
}

func (WorkExample) TableName() string     { return "ejemplos_trabajos" }
func (w *WorkExample) RowID() string      { return w.ID }
func (w *WorkExample) SetRowID(id string) { w.ID = id }
func (w *WorkExample) Columns() []string {
	return []string{"foto", "nombre", "descripcion", "precio"}
}
func (w *WorkExample) Values() []any {
	return []any{w.Foto, w.Nombre, w.Descripcion, w.Precio}
}

type ContactMessage struct {
	ID             string    `gorm:"column:id;primaryKey;type:text" json:"id"`
	NombreCompleto *string   `gorm:"column:nombre_completo" json:"nombre_completo"`
	Email          *string   `gorm:"column:email" json:"email"`
	Telefono       *string   `gorm:"column:telefono" json:"telefono"`
	TipoConsulta   *string   `gorm:"column:tipo_consulta" json:"tipo_consulta"`
	Mensaje        *string   `gorm:"column:mensaje" json:"mensaje"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ContactMessage) TableName() string     { return "contacto" }
func (m *ContactMessage) RowID() string      { return m.ID }
func (m *ContactMessage) SetRowID(id string) { m.ID = id }
func (m *ContactMessage) Columns() []string {
	return []string{"nombre_completo", "email", "telefono", "tipo_consulta", "mensaje", "created_at"}
}
func (m *ContactMessage) Values() []any {
	return []any{m.NombreCompleto, m.Email, m.Telefono, m.TipoConsulta, m.Mensaje, m.CreatedAt}
}

// Tables is the AutoMigrate list.
var Tables = []any{
	&Logo{},
	&LeftPhoto{},
	&AboutPhoto{},
	&EngravingMaterial{},
	&StudioService{},
	&WorkExample{},
	&ContactMessage{},
}
