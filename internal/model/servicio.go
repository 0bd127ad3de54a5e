package model

import "github.com/shopspring/decimal"

// Billing units for service tariffs. A service carries at most two tariffs and
// their units must differ, so in practice one per unit.
const (
	FacturacionHora     = "HORA"
	FacturacionFraccion = "FRACCION"
)

// UnidadesFacturacion lists every valid unidad_facturacion.
var UnidadesFacturacion = []string{FacturacionHora, FacturacionFraccion}

// Tarifa is a priced billing unit for a service.
type Tarifa struct {
	ID                string          `json:"id_tarifa"`
	PrecioBase        decimal.Decimal `json:"precio_base"`
	UnidadFacturacion string          `json:"unidad_facturacion"`
}

// Servicio is a billable service with its tariff set.
type Servicio struct {
	ID          string   `json:"id_service"`
	Nombre      string   `json:"nombre"`
	Descripcion string   `json:"descripcion"`
	Tarifas     []Tarifa `json:"tarifas"`
}
