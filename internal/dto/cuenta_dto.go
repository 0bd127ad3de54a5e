package dto

// RegistrarCuentaRequest opens a new customer account.
type RegistrarCuentaRequest struct {
	NombreTitular string `json:"nombre_titular" validate:"required"`
}

// ActualizarCuentaRequest renames the account holder.
type ActualizarCuentaRequest struct {
	NombreTitular string `json:"nombre_titular" validate:"required"`
}

// AddServiciosRequest attaches one or more services to an account.
type AddServiciosRequest struct {
	Servicios []string `json:"servicios" validate:"required,min=1,dive,required"`
}

// ProductoLineaRequest is one product line of an attach request. Duplicate
// SKUs are allowed and forwarded as-is.
type ProductoLineaRequest struct {
	SKU      string `json:"sku" validate:"required"`
	Cantidad int    `json:"cantidad" validate:"required,gt=0"`
}

type AddProductosRequest struct {
	Productos []ProductoLineaRequest `json:"productos" validate:"required,min=1,dive"`
}

// EnviarReciboRequest mails the settled payment detail as a PDF receipt.
type EnviarReciboRequest struct {
	Email string `json:"email" validate:"required,email"`
}
