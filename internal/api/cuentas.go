package api

import (
	"context"
	"net/http"

	"comanda/internal/model"
)

// CuentasClient covers /cuentas: the tab list, profile mutations, the attach
// endpoints and the two settlement breakdown fetches.
type CuentasClient struct{ c *Client }

func NewCuentasClient(c *Client) *CuentasClient { return &CuentasClient{c: c} }

func (cc *CuentasClient) Listar(ctx context.Context, tok string) ([]model.Cuenta, error) {
	var cuentas []model.Cuenta
	if err := cc.c.do(ctx, tok, http.MethodGet, "/cuentas", nil, &cuentas); err != nil {
		return nil, err
	}
	return cuentas, nil
}

func (cc *CuentasClient) Registrar(ctx context.Context, tok, nombreTitular string) (*model.Cuenta, error) {
	body := map[string]string{"nombre_titular": nombreTitular}
	var cuenta model.Cuenta
	if err := cc.c.do(ctx, tok, http.MethodPost, "/cuentas", body, &cuenta); err != nil {
		return nil, err
	}
	return &cuenta, nil
}

// Actualizar renames the holder. Every other account field is immutable
// through this path.
func (cc *CuentasClient) Actualizar(ctx context.Context, tok, id, nombreTitular string) error {
	body := map[string]string{"nombre_titular": nombreTitular}
	return cc.c.do(ctx, tok, http.MethodPatch, "/cuentas/"+id, body, nil)
}

// Cancelar soft-deletes the tab.
func (cc *CuentasClient) Cancelar(ctx context.Context, tok, id string) error {
	return cc.c.do(ctx, tok, http.MethodDelete, "/cuentas/"+id, nil, nil)
}

// AddServicios attaches services by id. Lines are added, never removed, until
// settlement.
func (cc *CuentasClient) AddServicios(ctx context.Context, tok, id string, servicioIDs []string) error {
	body := map[string]interface{}{"cuenta": id, "servicios": servicioIDs}
	return cc.c.do(ctx, tok, http.MethodPost, "/cuentas/add/servicios", body, nil)
}

// ProductoLinea is one attach line; duplicates are forwarded verbatim — the
// server decides whether to merge them.
type ProductoLinea struct {
	SKU      string `json:"sku"`
	Cantidad int    `json:"cantidad"`
}

func (cc *CuentasClient) AddProductos(ctx context.Context, tok, id string, lineas []ProductoLinea) error {
	body := map[string]interface{}{"cuenta": id, "productos": lineas}
	return cc.c.do(ctx, tok, http.MethodPost, "/cuentas/add/productos", body, nil)
}

// PagarProductos fetches the server-computed product charge breakdown. This is
// settlement step 1.
func (cc *CuentasClient) PagarProductos(ctx context.Context, tok, id string) (*model.Desglose, error) {
	var d model.Desglose
	if err := cc.c.do(ctx, tok, http.MethodGet, "/cuentas/pagar/p/"+id, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// PagarServicios fetches the service charge breakdown. This is settlement
// step 2 and must only run after step 1 succeeded.
func (cc *CuentasClient) PagarServicios(ctx context.Context, tok, id string) (*model.Desglose, error) {
	var d model.Desglose
	if err := cc.c.do(ctx, tok, http.MethodGet, "/cuentas/pagar/s/"+id, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
