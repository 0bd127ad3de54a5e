package model

import "github.com/shopspring/decimal"

// Measurement units accepted for ingredient stock.
const (
	UnidadGramos     = "GRAMOS"
	UnidadKilogramos = "KILOGRAMOS"
	UnidadLitros     = "LITROS"
	UnidadMililitros = "MILILITROS"
	UnidadUnidad     = "UNIDAD"
	UnidadOtro       = "OTRO"
)

// UnidadesMedida lists every valid unidad_medida, in display order.
var UnidadesMedida = []string{
	UnidadGramos, UnidadKilogramos, UnidadLitros,
	UnidadMililitros, UnidadUnidad, UnidadOtro,
}

// Ingrediente stock is decimal: fractional amounts are normal for weight and
// volume units.
type Ingrediente struct {
	ID           string          `json:"id_ingrediente"`
	Nombre       string          `json:"nombre"`
	UnidadMedida string          `json:"unidad_medida"`
	Stock        decimal.Decimal `json:"stock"`
	StockMin     decimal.Decimal `json:"stock_min"`
	Estado       string          `json:"estado"`
}
