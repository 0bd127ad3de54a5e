package model

import "github.com/shopspring/decimal"

// Cargo is one server-computed charge line in a settlement breakdown.
type Cargo struct {
	Concepto string          `json:"concepto"`
	Cantidad int             `json:"cantidad"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// Desglose is the charge breakdown the remote API computes for one side of a
// settlement (products or services).
type Desglose struct {
	Items []Cargo         `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// DetallePago is the ephemeral merged receipt for one account settlement.
// It is never persisted: it exists only while the receipt view is open and is
// discarded when the view closes.
type DetallePago struct {
	Cuenta    string   `json:"cuenta"`
	Titular   string   `json:"titular"`
	Productos Desglose `json:"productos"`
	Servicios Desglose `json:"servicios"`
}

// Total is the combined outstanding charge across both breakdowns.
func (d DetallePago) Total() decimal.Decimal {
	return d.Productos.Total.Add(d.Servicios.Total)
}
