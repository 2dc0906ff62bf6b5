package dto

// CheckoutDTO is the checkout form. The card fields are only checked for
// presence; they are never stored or logged.
type CheckoutDTO struct {
	Nombre       string `json:"nombre"       form:"nombre"       binding:"required"`
	Apellido     string `json:"apellido"     form:"apellido"     binding:"required"`
	Email        string `json:"email"        form:"email"        binding:"required,email"`
	Telefono     string `json:"telefono"     form:"telefono"     binding:"required"`
	Direccion    string `json:"direccion"    form:"direccion"    binding:"required"`
	Ciudad       string `json:"ciudad"       form:"ciudad"       binding:"required"`
	Provincia    string `json:"provincia"    form:"provincia"    binding:"required"`
	CodigoPostal string `json:"codigoPostal" form:"codigoPostal" binding:"required"`
	Notas        string `json:"notas"        form:"notas"`

	NombreTarjeta    string `json:"nombreTarjeta"    form:"nombreTarjeta"    binding:"required"`
	NumeroTarjeta    string `json:"numeroTarjeta"    form:"numeroTarjeta"    binding:"required"`
	FechaVencimiento string `json:"fechaVencimiento" form:"fechaVencimiento" binding:"required"`
	CVV              string `json:"cvv"              form:"cvv"              binding:"required"`
}
