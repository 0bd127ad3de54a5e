package handler

import (
	"net/http"

	"comanda/internal/dto"
	"comanda/internal/forms"
	"comanda/internal/middleware"
	"comanda/internal/service"

	"github.com/gin-gonic/gin"
)

type ServiciosHandler struct{ svc *service.ServicioService }

func NewServiciosHandler(svc *service.ServicioService) *ServiciosHandler {
	return &ServiciosHandler{svc: svc}
}

func tarifasGroup(req []dto.TarifaRequest) *forms.Group[forms.TarifaLinea] {
	g := forms.NewTarifasGroup()
	for _, t := range req {
		g.Add(forms.TarifaLinea{PrecioBase: t.PrecioBase, UnidadFacturacion: t.UnidadFacturacion})
	}
	return g
}

// Listar godoc
// @Summary Listar servicios
// @Tags servicios
// @Produce json
// @Success 200 {array} model.Servicio
// @Router /v1/servicios [get]
func (h *ServiciosHandler) Listar(c *gin.Context) {
	tok := middleware.GetSession(c).Token
	servicios, err := h.svc.Listar(c.Request.Context(), tok)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, servicios)
}

// Registrar godoc
// @Summary Registrar un servicio con sus tarifas
// @Description Maximo dos tarifas y sus unidades de facturacion deben ser distintas.
// @Tags servicios
// @Accept json
// @Param body body dto.RegistrarServicioRequest true "Servicio"
// @Success 201
// @Failure 422 {object} apierror.APIError
// @Router /v1/servicios [post]
func (h *ServiciosHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarServicioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tok := middleware.GetSession(c).Token
	err := h.svc.Registrar(c.Request.Context(), tok, req.Nombre, req.Descripcion, tarifasGroup(req.Tarifas))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// Actualizar godoc
// @Summary Reemplazar los datos y tarifas de un servicio
// @Tags servicios
// @Accept json
// @Param id path string true "ID del servicio"
// @Param body body dto.ActualizarServicioRequest true "Servicio"
// @Success 204
// @Failure 422 {object} apierror.APIError
// @Router /v1/servicios/{id} [put]
func (h *ServiciosHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarServicioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tok := middleware.GetSession(c).Token
	err := h.svc.Actualizar(c.Request.Context(), tok, c.Param("id"), req.Nombre, req.Descripcion, tarifasGroup(req.Tarifas))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Eliminar godoc
// @Summary Eliminar un servicio
// @Tags servicios
// @Param id path string true "ID del servicio"
// @Success 204
// @Router /v1/servicios/{id} [delete]
func (h *ServiciosHandler) Eliminar(c *gin.Context) {
	tok := middleware.GetSession(c).Token
	if err := h.svc.Eliminar(c.Request.Context(), tok, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
