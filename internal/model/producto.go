package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventario is the stock block embedded in every simple Producto.
type Inventario struct {
	ID            string    `json:"id_producto_inventario"`
	Stock         int       `json:"stock"`
	StockMin      int       `json:"stock_min"`
	ModifiedInven time.Time `json:"modified_inven"`
}

// Producto is a directly stocked sale item.
type Producto struct {
	ID          string          `json:"id_producto"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	SKU         string          `json:"SKU"`
	Precio      decimal.Decimal `json:"precio"`
	CreateAt    time.Time       `json:"create_at"`
	ModifiedAt  time.Time       `json:"modified_at"`
	Estado      string          `json:"estado"`
	Inventario  Inventario      `json:"inventario"`
}

// RecetaLinea is one ingredient quantity in a prepared product's recipe.
type RecetaLinea struct {
	ID          string          `json:"id"`
	Cantidad    decimal.Decimal `json:"cantidad"`
	Ingrediente Ingrediente     `json:"ingrediente"`
}

// ProductoPreparado has no stock of its own — its availability and cost derive
// from ingredient stock, computed server-side.
type ProductoPreparado struct {
	ID          string          `json:"id_producto"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	SKU         string          `json:"SKU"`
	Precio      decimal.Decimal `json:"precio"`
	CreateAt    time.Time       `json:"create_at"`
	ModifiedAt  time.Time       `json:"modified_at"`
	Estado      string          `json:"estado"`
	Receta      []RecetaLinea   `json:"receta"`
}
