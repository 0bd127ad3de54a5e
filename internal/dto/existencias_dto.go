package dto

// AgregarStockRequest adds units to an existing product or ingredient
// inventory record. Only additions are allowed from the stock screen.
type AgregarStockRequest struct {
	Cantidad int `json:"cantidad" validate:"required,gt=0"`
}
