package handler

import (
	"net/http"

	"comanda/internal/apierror"
	"comanda/internal/notify"

	"github.com/gin-gonic/gin"
)

type NotificacionesHandler struct{ center *notify.Center }

func NewNotificacionesHandler(center *notify.Center) *NotificacionesHandler {
	return &NotificacionesHandler{center: center}
}

// Listar godoc
// @Summary Listar notificaciones vigentes
// @Tags notificaciones
// @Produce json
// @Success 200 {array} notify.Notice
// @Router /v1/notificaciones [get]
func (h *NotificacionesHandler) Listar(c *gin.Context) {
	c.JSON(http.StatusOK, h.center.Active())
}

// Descartar godoc
// @Summary Descartar una notificacion antes de que expire
// @Tags notificaciones
// @Param id path string true "ID de la notificacion"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/notificaciones/{id} [delete]
func (h *NotificacionesHandler) Descartar(c *gin.Context) {
	if !h.center.Dismiss(c.Param("id")) {
		c.JSON(http.StatusNotFound, apierror.New("Notificacion no encontrada"))
		return
	}
	c.Status(http.StatusNoContent)
}
