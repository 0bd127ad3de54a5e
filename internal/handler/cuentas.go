package handler

import (
	"net/http"
	"path/filepath"

	"comanda/internal/api"
	"comanda/internal/apierror"
	"comanda/internal/dto"
	"comanda/internal/middleware"
	"comanda/internal/service"

	"github.com/gin-gonic/gin"
)

type CuentasHandler struct {
	svc     *service.CuentaService
	recibos *service.ReciboService
}

func NewCuentasHandler(svc *service.CuentaService, recibos *service.ReciboService) *CuentasHandler {
	return &CuentasHandler{svc: svc, recibos: recibos}
}

// Listar godoc
// @Summary Listar cuentas activas
// @Tags cuentas
// @Produce json
// @Success 200 {array} model.Cuenta
// @Router /v1/cuentas [get]
func (h *CuentasHandler) Listar(c *gin.Context) {
	tok := middleware.GetSession(c).Token
	cuentas, err := h.svc.Listar(c.Request.Context(), tok)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cuentas)
}

// Registrar godoc
// @Summary Abrir una nueva cuenta
// @Tags cuentas
// @Accept json
// @Produce json
// @Param body body dto.RegistrarCuentaRequest true "Titular"
// @Success 201
// @Failure 422 {object} apierror.APIError
// @Router /v1/cuentas [post]
func (h *CuentasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarCuentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tok := middleware.GetSession(c).Token
	if err := h.svc.Registrar(c.Request.Context(), tok, req.NombreTitular); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// Actualizar godoc
// @Summary Renombrar el titular de una cuenta
// @Tags cuentas
// @Accept json
// @Param id path string true "ID de la cuenta"
// @Param body body dto.ActualizarCuentaRequest true "Nuevo titular"
// @Success 204
// @Router /v1/cuentas/{id} [patch]
func (h *CuentasHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarCuentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tok := middleware.GetSession(c).Token
	if err := h.svc.Actualizar(c.Request.Context(), tok, c.Param("id"), req.NombreTitular); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Cancelar godoc
// @Summary Cancelar una cuenta sin cobrarla
// @Tags cuentas
// @Param id path string true "ID de la cuenta"
// @Success 204
// @Router /v1/cuentas/{id} [delete]
func (h *CuentasHandler) Cancelar(c *gin.Context) {
	tok := middleware.GetSession(c).Token
	if err := h.svc.Cancelar(c.Request.Context(), tok, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddServicios godoc
// @Summary Agregar servicios a una cuenta
// @Tags cuentas
// @Accept json
// @Param id path string true "ID de la cuenta"
// @Param body body dto.AddServiciosRequest true "Servicios"
// @Success 204
// @Failure 422 {object} apierror.APIError
// @Router /v1/cuentas/{id}/servicios [post]
func (h *CuentasHandler) AddServicios(c *gin.Context) {
	var req dto.AddServiciosRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tok := middleware.GetSession(c).Token
	if err := h.svc.AddServicios(c.Request.Context(), tok, c.Param("id"), req.Servicios); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddProductos godoc
// @Summary Agregar productos a una cuenta
// @Description Las lineas duplicadas se reenvian tal cual; el backend decide si las consolida.
// @Tags cuentas
// @Accept json
// @Param id path string true "ID de la cuenta"
// @Param body body dto.AddProductosRequest true "Productos"
// @Success 204
// @Failure 422 {object} apierror.APIError
// @Router /v1/cuentas/{id}/productos [post]
func (h *CuentasHandler) AddProductos(c *gin.Context) {
	var req dto.AddProductosRequest
	if !bindAndValidate(c, &req) {
		return
	}
	lineas := make([]api.ProductoLinea, 0, len(req.Productos))
	for _, p := range req.Productos {
		lineas = append(lineas, api.ProductoLinea{SKU: p.SKU, Cantidad: p.Cantidad})
	}
	tok := middleware.GetSession(c).Token
	if err := h.svc.AddProductos(c.Request.Context(), tok, c.Param("id"), lineas); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Pagar godoc
// @Summary Liquidar una cuenta
// @Description Cobra productos y servicios en dos pasos secuenciales; el detalle se revela solo si ambos pasos tienen exito.
// @Tags cuentas
// @Produce json
// @Param id path string true "ID de la cuenta"
// @Success 200 {object} model.DetallePago
// @Failure 502 {object} apierror.APIError
// @Router /v1/cuentas/{id}/pagar [post]
func (h *CuentasHandler) Pagar(c *gin.Context) {
	tok := middleware.GetSession(c).Token
	detalle, err := h.svc.Pagar(c.Request.Context(), tok, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detalle)
}

// Detalle godoc
// @Summary Consultar el detalle de pago de una cuenta liquidada
// @Tags cuentas
// @Produce json
// @Param id path string true "ID de la cuenta"
// @Success 200 {object} model.DetallePago
// @Failure 404 {object} apierror.APIError
// @Router /v1/cuentas/{id}/detalle [get]
func (h *CuentasHandler) Detalle(c *gin.Context) {
	detalle, ok := h.svc.Detalle(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, apierror.New(service.ErrDetalleNoDisponible.Error()))
		return
	}
	c.JSON(http.StatusOK, detalle)
}

// CerrarDetalle godoc
// @Summary Cerrar el detalle de pago y refrescar el listado
// @Tags cuentas
// @Param id path string true "ID de la cuenta"
// @Success 204
// @Router /v1/cuentas/{id}/detalle [delete]
func (h *CuentasHandler) CerrarDetalle(c *gin.Context) {
	tok := middleware.GetSession(c).Token
	if err := h.svc.CerrarDetalle(c.Request.Context(), tok, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportarRecibo godoc
// @Summary Descargar el recibo PDF de una cuenta liquidada
// @Tags cuentas
// @Produce application/pdf
// @Param id path string true "ID de la cuenta"
// @Success 200 {file} binary
// @Failure 404 {object} apierror.APIError
// @Router /v1/cuentas/{id}/recibo [get]
func (h *CuentasHandler) ExportarRecibo(c *gin.Context) {
	detalle, ok := h.svc.Detalle(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, apierror.New(service.ErrDetalleNoDisponible.Error()))
		return
	}
	path, err := h.recibos.Exportar(detalle)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el recibo"))
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}

// EnviarRecibo godoc
// @Summary Enviar el recibo PDF por correo
// @Tags cuentas
// @Accept json
// @Param id path string true "ID de la cuenta"
// @Param body body dto.EnviarReciboRequest true "Destinatario"
// @Success 202
// @Failure 404 {object} apierror.APIError
// @Router /v1/cuentas/{id}/recibo/enviar [post]
func (h *CuentasHandler) EnviarRecibo(c *gin.Context) {
	var req dto.EnviarReciboRequest
	if !bindAndValidate(c, &req) {
		return
	}
	detalle, ok := h.svc.Detalle(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, apierror.New(service.ErrDetalleNoDisponible.Error()))
		return
	}
	if err := h.recibos.Enviar(c.Request.Context(), detalle, req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al enviar el recibo"))
		return
	}
	c.Status(http.StatusAccepted)
}
