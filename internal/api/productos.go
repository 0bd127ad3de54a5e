package api

import (
	"context"
	"net/http"

	"comanda/internal/model"

	"github.com/shopspring/decimal"
)

// ProductosClient covers /productos and /productos/preparados.
type ProductosClient struct{ c *Client }

func NewProductosClient(c *Client) *ProductosClient { return &ProductosClient{c: c} }

func (pc *ProductosClient) Listar(ctx context.Context, tok string) ([]model.Producto, error) {
	var productos []model.Producto
	if err := pc.c.do(ctx, tok, http.MethodGet, "/productos", nil, &productos); err != nil {
		return nil, err
	}
	return productos, nil
}

func (pc *ProductosClient) ListarPreparados(ctx context.Context, tok string) ([]model.ProductoPreparado, error) {
	var preparados []model.ProductoPreparado
	if err := pc.c.do(ctx, tok, http.MethodGet, "/productos/preparados", nil, &preparados); err != nil {
		return nil, err
	}
	return preparados, nil
}

// RegistrarProducto is the creation payload for a simple product.
type RegistrarProducto struct {
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	SKU         string          `json:"SKU"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
}

func (pc *ProductosClient) Registrar(ctx context.Context, tok string, req RegistrarProducto) (*model.Producto, error) {
	var producto model.Producto
	if err := pc.c.do(ctx, tok, http.MethodPost, "/productos", req, &producto); err != nil {
		return nil, err
	}
	return &producto, nil
}

// RecetaLinea is one ingredient line in a prepared product's creation payload.
type RecetaLinea struct {
	Cantidad    decimal.Decimal `json:"cantidad"`
	Ingrediente string          `json:"ingrediente"`
}

// RegistrarPreparado is the creation payload for a recipe-based product.
type RegistrarPreparado struct {
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	SKU         string          `json:"SKU"`
	Precio      decimal.Decimal `json:"precio"`
	Receta      []RecetaLinea   `json:"receta"`
}

func (pc *ProductosClient) RegistrarPreparado(ctx context.Context, tok string, req RegistrarPreparado) (*model.ProductoPreparado, error) {
	var preparado model.ProductoPreparado
	if err := pc.c.do(ctx, tok, http.MethodPost, "/productos/preparados", req, &preparado); err != nil {
		return nil, err
	}
	return &preparado, nil
}

// Actualizar patches the given fields only. The same endpoint doubles as the
// stock-add and the activate/deactivate toggle, matching the backend contract.
func (pc *ProductosClient) Actualizar(ctx context.Context, tok, id string, campos map[string]interface{}) error {
	return pc.c.do(ctx, tok, http.MethodPatch, "/productos/"+id, campos, nil)
}

// AddStock increases product stock by delta. Stock only ever moves up through
// this path; sales decrement it server-side.
func (pc *ProductosClient) AddStock(ctx context.Context, tok, id string, delta int) error {
	return pc.Actualizar(ctx, tok, id, map[string]interface{}{"stock": delta})
}

// CambiarEstado toggles ACTIVO/INACTIVO.
func (pc *ProductosClient) CambiarEstado(ctx context.Context, tok, id, estado string) error {
	return pc.Actualizar(ctx, tok, id, map[string]interface{}{"estado": estado})
}

// Eliminar soft-deletes the product.
func (pc *ProductosClient) Eliminar(ctx context.Context, tok, id string) error {
	return pc.c.do(ctx, tok, http.MethodDelete, "/productos/"+id, nil, nil)
}
