package model

import "time"

// Estado values shared by cuentas, productos e ingredientes. The remote API
// never hard-deletes: INACTIVO is the soft-delete marker.
const (
	EstadoActivo   = "ACTIVO"
	EstadoInactivo = "INACTIVO"
)

// Cuenta is a customer's open tab. Products and services are attached to it
// until settlement; the remote API owns the attached lines, the console only
// mirrors the list view.
type Cuenta struct {
	ID            string    `json:"id_cuenta"`
	Titular       string    `json:"titular"`
	Estado        string    `json:"estado"`
	FechaApertura time.Time `json:"fecha_apertura"`
}
