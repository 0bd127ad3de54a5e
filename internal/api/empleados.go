package api

import (
	"context"
	"net/http"

	"comanda/internal/model"
)

// EmpleadosClient covers /usuarios plus staff registration, which the backend
// exposes through /auth/register.
type EmpleadosClient struct{ c *Client }

func NewEmpleadosClient(c *Client) *EmpleadosClient { return &EmpleadosClient{c: c} }

func (ec *EmpleadosClient) Listar(ctx context.Context, tok string) ([]model.Empleado, error) {
	var empleados []model.Empleado
	if err := ec.c.do(ctx, tok, http.MethodGet, "/usuarios", nil, &empleados); err != nil {
		return nil, err
	}
	return empleados, nil
}

// RegistrarEmpleado is the registration payload. Password is write-only: it
// is hashed and stored by the backend and never echoed back.
type RegistrarEmpleado struct {
	Nombres   string `json:"nombres"`
	Apellidos string `json:"apellidos"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	IDRol     int    `json:"id_rol"`
}

func (ec *EmpleadosClient) Registrar(ctx context.Context, tok string, req RegistrarEmpleado) (*model.Empleado, error) {
	var empleado model.Empleado
	if err := ec.c.do(ctx, tok, http.MethodPost, "/auth/register", req, &empleado); err != nil {
		return nil, err
	}
	return &empleado, nil
}

func (ec *EmpleadosClient) Actualizar(ctx context.Context, tok, id string, campos map[string]interface{}) error {
	return ec.c.do(ctx, tok, http.MethodPatch, "/usuarios/"+id, campos, nil)
}

func (ec *EmpleadosClient) Eliminar(ctx context.Context, tok, id string) error {
	return ec.c.do(ctx, tok, http.MethodDelete, "/usuarios/"+id, nil, nil)
}
