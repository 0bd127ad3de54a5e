package forms

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Named array-level failures. The names match what the UI switches on to show
// a specific message.
var (
	ErrMaxTwoTarifas              = errors.New("maxTwoTarifas")
	ErrDifferentUnidadFacturacion = errors.New("differentUnidadFacturacion")
)

// TarifaLinea is one tariff row in the service form.
type TarifaLinea struct {
	PrecioBase        decimal.Decimal `validate:"required,gt=0"`
	UnidadFacturacion string          `validate:"required,oneof=HORA FRACCION"`
}

// MaxTwoTarifas caps the tariff set at two lines.
func MaxTwoTarifas(lines []TarifaLinea) error {
	if len(lines) > 2 {
		return ErrMaxTwoTarifas
	}
	return nil
}

// DistinctUnidadFacturacion requires pairwise-distinct billing units within
// one service's tariff set.
func DistinctUnidadFacturacion(lines []TarifaLinea) error {
	seen := make(map[string]bool, len(lines))
	for _, l := range lines {
		if seen[l.UnidadFacturacion] {
			return ErrDifferentUnidadFacturacion
		}
		seen[l.UnidadFacturacion] = true
	}
	return nil
}

// NewTarifasGroup builds the tariff form with both array rules wired.
func NewTarifasGroup() *Group[TarifaLinea] {
	return NewGroup(MaxTwoTarifas, DistinctUnidadFacturacion)
}

// RecetaLinea is one ingredient row in the prepared-product form. Duplicate
// ingredients across lines are allowed; the server merges or rejects them.
type RecetaLinea struct {
	Cantidad      decimal.Decimal `validate:"required,gt=0"`
	IngredienteID string          `validate:"required"`
}

// NewRecetaGroup builds the recipe form. No count limit, no array rules.
func NewRecetaGroup() *Group[RecetaLinea] {
	return NewGroup[RecetaLinea]()
}

// StockDelta is the single-field stock-addition form. Additions are strictly
// positive: stock only moves up through this path.
type StockDelta struct {
	Cantidad int `validate:"required,gt=0"`
}

// ValidarStockDelta validates one stock addition outside a group (the form has
// exactly one line).
func ValidarStockDelta(d StockDelta) error {
	g := NewGroup[StockDelta]()
	g.Add(d)
	return g.Validate()
}
