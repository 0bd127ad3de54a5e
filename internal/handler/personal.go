package handler

import (
	"net/http"

	"comanda/internal/api"
	"comanda/internal/dto"
	"comanda/internal/middleware"
	"comanda/internal/service"

	"github.com/gin-gonic/gin"
)

type PersonalHandler struct{ svc *service.EmpleadoService }

func NewPersonalHandler(svc *service.EmpleadoService) *PersonalHandler {
	return &PersonalHandler{svc: svc}
}

// Listar godoc
// @Summary Listar empleados
// @Tags personal
// @Produce json
// @Success 200 {array} model.Empleado
// @Router /v1/personal [get]
func (h *PersonalHandler) Listar(c *gin.Context) {
	tok := middleware.GetSession(c).Token
	empleados, err := h.svc.Listar(c.Request.Context(), tok)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, empleados)
}

// Registrar godoc
// @Summary Registrar un empleado
// @Tags personal
// @Accept json
// @Param body body dto.RegistrarEmpleadoRequest true "Empleado"
// @Success 201
// @Failure 422 {object} apierror.APIError
// @Router /v1/personal [post]
func (h *PersonalHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarEmpleadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tok := middleware.GetSession(c).Token
	err := h.svc.Registrar(c.Request.Context(), tok, api.RegistrarEmpleado{
		Nombres:   req.Nombres,
		Apellidos: req.Apellidos,
		Telefono:  req.Telefono,
		Email:     req.Email,
		Password:  req.Password,
		IDRol:     req.IDRol,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// Actualizar godoc
// @Summary Actualizar datos de un empleado
// @Tags personal
// @Accept json
// @Param id path string true "ID del empleado"
// @Param body body dto.ActualizarEmpleadoRequest true "Campos a modificar"
// @Success 204
// @Router /v1/personal/{id} [patch]
func (h *PersonalHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarEmpleadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	campos := make(map[string]interface{})
	if req.Nombres != nil {
		campos["nombres"] = *req.Nombres
	}
	if req.Apellidos != nil {
		campos["apellidos"] = *req.Apellidos
	}
	if req.Telefono != nil {
		campos["telefono"] = *req.Telefono
	}
	if req.Email != nil {
		campos["email"] = *req.Email
	}
	if req.IDRol != nil {
		campos["id_rol"] = *req.IDRol
	}
	tok := middleware.GetSession(c).Token
	if err := h.svc.Actualizar(c.Request.Context(), tok, c.Param("id"), campos); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Eliminar godoc
// @Summary Eliminar un empleado
// @Tags personal
// @Param id path string true "ID del empleado"
// @Success 204
// @Router /v1/personal/{id} [delete]
func (h *PersonalHandler) Eliminar(c *gin.Context) {
	tok := middleware.GetSession(c).Token
	if err := h.svc.Eliminar(c.Request.Context(), tok, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
