package handler

import (
	"net/http"

	"comanda/internal/api"
	"comanda/internal/dto"
	"comanda/internal/middleware"
	"comanda/internal/service"

	"github.com/gin-gonic/gin"
)

type IngredientesHandler struct{ svc *service.IngredienteService }

func NewIngredientesHandler(svc *service.IngredienteService) *IngredientesHandler {
	return &IngredientesHandler{svc: svc}
}

// Listar godoc
// @Summary Listar ingredientes
// @Tags ingredientes
// @Produce json
// @Success 200 {array} model.Ingrediente
// @Router /v1/ingredientes [get]
func (h *IngredientesHandler) Listar(c *gin.Context) {
	tok := middleware.GetSession(c).Token
	ingredientes, err := h.svc.Listar(c.Request.Context(), tok)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredientes)
}

// Registrar godoc
// @Summary Registrar un ingrediente
// @Tags ingredientes
// @Accept json
// @Param body body dto.RegistrarIngredienteRequest true "Ingrediente"
// @Success 201
// @Failure 422 {object} apierror.APIError
// @Router /v1/ingredientes [post]
func (h *IngredientesHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarIngredienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tok := middleware.GetSession(c).Token
	err := h.svc.Registrar(c.Request.Context(), tok, api.RegistrarIngrediente{
		Nombre:       req.Nombre,
		UnidadMedida: req.UnidadMedida,
		Stock:        req.Stock,
		StockMin:     req.StockMin,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// Actualizar godoc
// @Summary Actualizar campos de un ingrediente
// @Tags ingredientes
// @Accept json
// @Param id path string true "ID del ingrediente"
// @Param body body dto.ActualizarIngredienteRequest true "Campos a modificar"
// @Success 204
// @Router /v1/ingredientes/{id} [patch]
func (h *IngredientesHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarIngredienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	campos := make(map[string]interface{})
	if req.Nombre != nil {
		campos["nombre"] = *req.Nombre
	}
	if req.UnidadMedida != nil {
		campos["unidad_medida"] = *req.UnidadMedida
	}
	if req.StockMin != nil {
		campos["stock_min"] = *req.StockMin
	}
	tok := middleware.GetSession(c).Token
	if err := h.svc.Actualizar(c.Request.Context(), tok, c.Param("id"), campos); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CambiarEstado godoc
// @Summary Activar o desactivar un ingrediente
// @Tags ingredientes
// @Accept json
// @Param id path string true "ID del ingrediente"
// @Param body body dto.CambiarEstadoRequest true "Nuevo estado"
// @Success 204
// @Router /v1/ingredientes/{id}/estado [patch]
func (h *IngredientesHandler) CambiarEstado(c *gin.Context) {
	var req dto.CambiarEstadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tok := middleware.GetSession(c).Token
	if err := h.svc.CambiarEstado(c.Request.Context(), tok, c.Param("id"), req.Estado); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Eliminar godoc
// @Summary Eliminar un ingrediente
// @Tags ingredientes
// @Param id path string true "ID del ingrediente"
// @Success 204
// @Router /v1/ingredientes/{id} [delete]
func (h *IngredientesHandler) Eliminar(c *gin.Context) {
	tok := middleware.GetSession(c).Token
	if err := h.svc.Eliminar(c.Request.Context(), tok, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
