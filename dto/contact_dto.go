package dto

type CreateContactDTO struct {
	NombreCompleto string `json:"nombreCompleto" form:"nombreCompleto"`
	Email          string `json:"email"          form:"email" binding:"omitempty,email"`
	Telefono       string `json:"telefono"       form:"telefono"`
	TipoConsulta   string `json:"tipoConsulta"   form:"tipoConsulta"`
	Mensaje        string `json:"mensaje"        form:"mensaje" binding:"max=5000"`
}
