package api

import (
	"context"
	"net/http"

	"comanda/internal/model"

	"github.com/shopspring/decimal"
)

// IngredientesClient covers /ingredientes.
type IngredientesClient struct{ c *Client }

func NewIngredientesClient(c *Client) *IngredientesClient { return &IngredientesClient{c: c} }

func (ic *IngredientesClient) Listar(ctx context.Context, tok string) ([]model.Ingrediente, error) {
	var ingredientes []model.Ingrediente
	if err := ic.c.do(ctx, tok, http.MethodGet, "/ingredientes", nil, &ingredientes); err != nil {
		return nil, err
	}
	return ingredientes, nil
}

// RegistrarIngrediente is the creation payload.
type RegistrarIngrediente struct {
	Nombre       string          `json:"nombre"`
	UnidadMedida string          `json:"unidad_medida"`
	Stock        decimal.Decimal `json:"stock"`
	StockMin     decimal.Decimal `json:"stock_min"`
}

func (ic *IngredientesClient) Registrar(ctx context.Context, tok string, req RegistrarIngrediente) (*model.Ingrediente, error) {
	var ingrediente model.Ingrediente
	if err := ic.c.do(ctx, tok, http.MethodPost, "/ingredientes", req, &ingrediente); err != nil {
		return nil, err
	}
	return &ingrediente, nil
}

func (ic *IngredientesClient) Actualizar(ctx context.Context, tok, id string, campos map[string]interface{}) error {
	return ic.c.do(ctx, tok, http.MethodPatch, "/ingredientes/"+id, campos, nil)
}

// AddStock increases ingredient stock. The backend distinguishes the additive
// patch by the agregar_stock field name.
func (ic *IngredientesClient) AddStock(ctx context.Context, tok, id string, delta decimal.Decimal) error {
	return ic.Actualizar(ctx, tok, id, map[string]interface{}{"agregar_stock": delta})
}

// CambiarEstado toggles ACTIVO/INACTIVO.
func (ic *IngredientesClient) CambiarEstado(ctx context.Context, tok, id, estado string) error {
	return ic.Actualizar(ctx, tok, id, map[string]interface{}{"estado": estado})
}

func (ic *IngredientesClient) Eliminar(ctx context.Context, tok, id string) error {
	return ic.c.do(ctx, tok, http.MethodDelete, "/ingredientes/"+id, nil, nil)
}
