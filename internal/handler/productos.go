package handler

import (
	"net/http"

	"comanda/internal/api"
	"comanda/internal/dto"
	"comanda/internal/forms"
	"comanda/internal/middleware"
	"comanda/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductosHandler struct{ svc *service.ProductoService }

func NewProductosHandler(svc *service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

// Listar godoc
// @Summary Listar productos
// @Tags productos
// @Produce json
// @Success 200 {array} model.Producto
// @Router /v1/productos [get]
func (h *ProductosHandler) Listar(c *gin.Context) {
	tok := middleware.GetSession(c).Token
	productos, err := h.svc.Listar(c.Request.Context(), tok)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productos)
}

// ListarPreparados godoc
// @Summary Listar productos preparados
// @Tags productos
// @Produce json
// @Success 200 {array} model.ProductoPreparado
// @Router /v1/productos/preparados [get]
func (h *ProductosHandler) ListarPreparados(c *gin.Context) {
	tok := middleware.GetSession(c).Token
	preparados, err := h.svc.ListarPreparados(c.Request.Context(), tok)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, preparados)
}

// Registrar godoc
// @Summary Registrar un producto simple
// @Tags productos
// @Accept json
// @Param body body dto.RegistrarProductoRequest true "Producto"
// @Success 201
// @Failure 422 {object} apierror.APIError
// @Router /v1/productos [post]
func (h *ProductosHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tok := middleware.GetSession(c).Token
	err := h.svc.Registrar(c.Request.Context(), tok, api.RegistrarProducto{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		SKU:         req.SKU,
		Precio:      req.Precio,
		Stock:       req.Stock,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// RegistrarPreparado godoc
// @Summary Registrar un producto preparado con receta
// @Tags productos
// @Accept json
// @Param body body dto.RegistrarPreparadoRequest true "Producto preparado"
// @Success 201
// @Failure 422 {object} apierror.APIError
// @Router /v1/productos/preparados [post]
func (h *ProductosHandler) RegistrarPreparado(c *gin.Context) {
	var req dto.RegistrarPreparadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	receta := forms.NewRecetaGroup()
	for _, l := range req.Receta {
		receta.Add(forms.RecetaLinea{Cantidad: l.Cantidad, IngredienteID: l.Ingrediente})
	}
	tok := middleware.GetSession(c).Token
	err := h.svc.RegistrarPreparado(c.Request.Context(), tok,
		req.Nombre, req.Descripcion, req.SKU, req.Precio, receta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// Actualizar godoc
// @Summary Actualizar campos de un producto
// @Tags productos
// @Accept json
// @Param id path string true "ID del producto"
// @Param body body dto.ActualizarProductoRequest true "Campos a modificar"
// @Success 204
// @Router /v1/productos/{id} [patch]
func (h *ProductosHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	campos := make(map[string]interface{})
	if req.Nombre != nil {
		campos["nombre"] = *req.Nombre
	}
	if req.Descripcion != nil {
		campos["descripcion"] = *req.Descripcion
	}
	if req.Precio != nil {
		campos["precio"] = *req.Precio
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
// @Summary Activar o desactivar un producto
// @Tags productos
// @Accept json
// @Param id path string true "ID del producto"
// @Param body body dto.CambiarEstadoRequest true "Nuevo estado"
// @Success 204
// @Router /v1/productos/{id}/estado [patch]
func (h *ProductosHandler) CambiarEstado(c *gin.Context) {
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
// @Summary Eliminar un producto
// @Tags productos
// @Param id path string true "ID del producto"
// @Success 204
// @Router /v1/productos/{id} [delete]
func (h *ProductosHandler) Eliminar(c *gin.Context) {
	tok := middleware.GetSession(c).Token
	if err := h.svc.Eliminar(c.Request.Context(), tok, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
