package api

import (
	"context"
	"net/http"

	"comanda/internal/model"

	"github.com/shopspring/decimal"
)

// ServiciosClient covers /servicios.
type ServiciosClient struct{ c *Client }

func NewServiciosClient(c *Client) *ServiciosClient { return &ServiciosClient{c: c} }

func (sc *ServiciosClient) Listar(ctx context.Context, tok string) ([]model.Servicio, error) {
	var servicios []model.Servicio
	if err := sc.c.do(ctx, tok, http.MethodGet, "/servicios", nil, &servicios); err != nil {
		return nil, err
	}
	return servicios, nil
}

// TarifaLinea is one tariff in a service payload.
type TarifaLinea struct {
	PrecioBase        decimal.Decimal `json:"precio_base"`
	UnidadFacturacion string          `json:"unidad_facturacion"`
}

// RegistrarServicio is the creation payload. The tariff-set invariants (max
// two, distinct billing units) are validated before this is built and
// re-validated server-side.
type RegistrarServicio struct {
	Nombre      string        `json:"nombre"`
	Descripcion string        `json:"descripcion"`
	Tarifas     []TarifaLinea `json:"tarifas"`
}

func (sc *ServiciosClient) Registrar(ctx context.Context, tok string, req RegistrarServicio) (*model.Servicio, error) {
	var servicio model.Servicio
	if err := sc.c.do(ctx, tok, http.MethodPost, "/servicios", req, &servicio); err != nil {
		return nil, err
	}
	return &servicio, nil
}

func (sc *ServiciosClient) Actualizar(ctx context.Context, tok, id string, req RegistrarServicio) error {
	return sc.c.do(ctx, tok, http.MethodPatch, "/servicios/"+id, req, nil)
}

func (sc *ServiciosClient) Eliminar(ctx context.Context, tok, id string) error {
	return sc.c.do(ctx, tok, http.MethodDelete, "/servicios/"+id, nil, nil)
}
