package dto

import "github.com/shopspring/decimal"

type RegistrarProductoRequest struct {
	Nombre      string          `json:"nombre" validate:"required"`
	Descripcion string          `json:"descripcion"`
	SKU         string          `json:"SKU" validate:"required"`
	Precio      decimal.Decimal `json:"precio" validate:"required,gt=0"`
	Stock       int             `json:"stock" validate:"min=0"`
}

// RecetaLineaRequest is one ingredient line of a prepared product's recipe.
type RecetaLineaRequest struct {
	Ingrediente string          `json:"ingrediente" validate:"required"`
	Cantidad    decimal.Decimal `json:"cantidad" validate:"required,gt=0"`
}

type RegistrarPreparadoRequest struct {
	Nombre      string               `json:"nombre" validate:"required"`
	Descripcion string               `json:"descripcion"`
	SKU         string               `json:"SKU" validate:"required"`
	Precio      decimal.Decimal      `json:"precio" validate:"required,gt=0"`
	Receta      []RecetaLineaRequest `json:"receta" validate:"required,min=1,dive"`
}

// ActualizarProductoRequest is a partial update; nil fields are left
// untouched on the remote record.
type ActualizarProductoRequest struct {
	Nombre      *string          `json:"nombre,omitempty"`
	Descripcion *string          `json:"descripcion,omitempty"`
	Precio      *decimal.Decimal `json:"precio,omitempty"`
	StockMin    *int             `json:"stock_min,omitempty"`
}

type CambiarEstadoRequest struct {
	Estado string `json:"estado" validate:"required,oneof=ACTIVO INACTIVO"`
}
