package handler

import (
	"net/http"

	"comanda/internal/dto"
	"comanda/internal/middleware"
	"comanda/internal/service"

	"github.com/gin-gonic/gin"
)

// ExistenciasHandler serves the stock screen: additions to product and
// ingredient inventories. Both roles may use it.
type ExistenciasHandler struct {
	productos    *service.ProductoService
	ingredientes *service.IngredienteService
}

func NewExistenciasHandler(p *service.ProductoService, i *service.IngredienteService) *ExistenciasHandler {
	return &ExistenciasHandler{productos: p, ingredientes: i}
}

// AddStockProducto godoc
// @Summary Agregar existencias a un producto
// @Tags existencias
// @Accept json
// @Param id path string true "ID del producto"
// @Param body body dto.AgregarStockRequest true "Cantidad a agregar"
// @Success 204
// @Failure 422 {object} apierror.APIError
// @Router /v1/existencias/productos/{id} [post]
func (h *ExistenciasHandler) AddStockProducto(c *gin.Context) {
	var req dto.AgregarStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tok := middleware.GetSession(c).Token
	if err := h.productos.AddStock(c.Request.Context(), tok, c.Param("id"), req.Cantidad); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddStockIngrediente godoc
// @Summary Agregar existencias a un ingrediente
// @Tags existencias
// @Accept json
// @Param id path string true "ID del ingrediente"
// @Param body body dto.AgregarStockRequest true "Cantidad a agregar"
// @Success 204
// @Failure 422 {object} apierror.APIError
// @Router /v1/existencias/ingredientes/{id} [post]
func (h *ExistenciasHandler) AddStockIngrediente(c *gin.Context) {
	var req dto.AgregarStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tok := middleware.GetSession(c).Token
	if err := h.ingredientes.AddStock(c.Request.Context(), tok, c.Param("id"), req.Cantidad); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
