package dto

import "github.com/shopspring/decimal"

// TarifaRequest is one tariff line. The set-level rules (at most two lines,
// distinct billing units) are enforced by the forms group, not here.
type TarifaRequest struct {
	PrecioBase        decimal.Decimal `json:"precio_base" validate:"required,gt=0"`
	UnidadFacturacion string          `json:"unidad_facturacion" validate:"required,oneof=HORA FRACCION"`
}

type RegistrarServicioRequest struct {
	Nombre      string          `json:"nombre" validate:"required"`
	Descripcion string          `json:"descripcion"`
	Tarifas     []TarifaRequest `json:"tarifas" validate:"required,min=1"`
}

type ActualizarServicioRequest struct {
	Nombre      string          `json:"nombre" validate:"required"`
	Descripcion string          `json:"descripcion"`
	Tarifas     []TarifaRequest `json:"tarifas" validate:"required,min=1"`
}
