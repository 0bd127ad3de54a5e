package dto

import "github.com/shopspring/decimal"

type RegistrarIngredienteRequest struct {
	Nombre       string          `json:"nombre" validate:"required"`
	UnidadMedida string          `json:"unidad_medida" validate:"required,oneof=GRAMOS KILOGRAMOS LITROS MILILITROS UNIDAD OTRO"`
	Stock        decimal.Decimal `json:"stock" validate:"min=0"`
	StockMin     decimal.Decimal `json:"stock_min" validate:"min=0"`
}

type ActualizarIngredienteRequest struct {
	Nombre       *string          `json:"nombre,omitempty"`
	UnidadMedida *string          `json:"unidad_medida,omitempty"`
	StockMin     *decimal.Decimal `json:"stock_min,omitempty"`
}
