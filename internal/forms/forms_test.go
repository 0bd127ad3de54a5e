package forms

import (
	"testing"

	"comanda/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tarifa(precio int64, unidad string) TarifaLinea {
	return TarifaLinea{PrecioBase: decimal.NewFromInt(precio), UnidadFacturacion: unidad}
}

func TestTarifasGroupValida(t *testing.T) {
	g := NewTarifasGroup()
	g.Add(tarifa(120, model.FacturacionHora))
	g.Add(tarifa(40, model.FacturacionFraccion))

	assert.NoError(t, g.Validate())
}

func TestTarifasGroupUnaSolaLinea(t *testing.T) {
	g := NewTarifasGroup()
	g.Add(tarifa(120, model.FacturacionHora))

	assert.NoError(t, g.Validate())
}

func TestTarifasGroupRechazaTresLineas(t *testing.T) {
	g := NewTarifasGroup()
	g.Add(tarifa(120, model.FacturacionHora))
	g.Add(tarifa(40, model.FacturacionFraccion))
	g.Add(tarifa(60, model.FacturacionHora))

	assert.ErrorIs(t, g.Validate(), ErrMaxTwoTarifas)
}

func TestTarifasGroupRechazaUnidadesRepetidas(t *testing.T) {
	g := NewTarifasGroup()
	g.Add(tarifa(120, model.FacturacionHora))
	g.Add(tarifa(90, model.FacturacionHora))

	assert.ErrorIs(t, g.Validate(), ErrDifferentUnidadFacturacion)
}

func TestTarifasGroupPrecioNoPositivo(t *testing.T) {
	g := NewTarifasGroup()
	g.Add(tarifa(0, model.FacturacionHora))

	var line *LineError
	require.ErrorAs(t, g.Validate(), &line)
	assert.Equal(t, 0, line.Index)
	assert.Equal(t, "PrecioBase", line.Field)
}

func TestTarifasGroupUnidadDesconocida(t *testing.T) {
	g := NewTarifasGroup()
	g.Add(tarifa(120, "DIA"))

	var line *LineError
	require.ErrorAs(t, g.Validate(), &line)
	assert.Equal(t, "UnidadFacturacion", line.Field)
}

func TestTarifasGroupLaPrimeraFallaGana(t *testing.T) {
	// A bad line and a broken array rule at once: the line error surfaces.
	g := NewTarifasGroup()
	g.Add(tarifa(120, model.FacturacionHora))
	g.Add(tarifa(-5, model.FacturacionHora))

	var line *LineError
	require.ErrorAs(t, g.Validate(), &line)
	assert.Equal(t, 1, line.Index)
}

func TestGroupRemoveYReset(t *testing.T) {
	g := NewTarifasGroup()
	g.Add(tarifa(120, model.FacturacionHora))
	g.Add(tarifa(40, model.FacturacionFraccion))

	require.NoError(t, g.Remove(0))
	require.Len(t, g.Lines(), 1)
	assert.Equal(t, model.FacturacionFraccion, g.Lines()[0].UnidadFacturacion)

	assert.Error(t, g.Remove(5))

	g.Reset()
	assert.Zero(t, g.Len())
}

func TestGroupLinesEsCopia(t *testing.T) {
	g := NewTarifasGroup()
	g.Add(tarifa(120, model.FacturacionHora))

	lines := g.Lines()
	lines[0].UnidadFacturacion = model.FacturacionFraccion

	assert.Equal(t, model.FacturacionHora, g.Lines()[0].UnidadFacturacion)
}

func TestRecetaGroupValida(t *testing.T) {
	g := NewRecetaGroup()
	g.Add(RecetaLinea{Cantidad: decimal.NewFromFloat(0.5), IngredienteID: "ing-1"})
	g.Add(RecetaLinea{Cantidad: decimal.NewFromInt(2), IngredienteID: "ing-2"})
	// Duplicate ingredients are allowed; the server decides.
	g.Add(RecetaLinea{Cantidad: decimal.NewFromInt(1), IngredienteID: "ing-1"})

	assert.NoError(t, g.Validate())
}

func TestRecetaGroupCantidadNoPositiva(t *testing.T) {
	g := NewRecetaGroup()
	g.Add(RecetaLinea{Cantidad: decimal.Zero, IngredienteID: "ing-1"})

	var line *LineError
	require.ErrorAs(t, g.Validate(), &line)
	assert.Equal(t, "Cantidad", line.Field)
}

func TestValidarStockDelta(t *testing.T) {
	assert.NoError(t, ValidarStockDelta(StockDelta{Cantidad: 5}))
	assert.Error(t, ValidarStockDelta(StockDelta{Cantidad: 0}))
	assert.Error(t, ValidarStockDelta(StockDelta{Cantidad: -3}))
}
