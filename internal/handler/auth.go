package handler

import (
	"errors"
	"net/http"
	"time"

	"comanda/internal/apierror"
	"comanda/internal/dto"
	"comanda/internal/service"
	"comanda/internal/session"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc *service.AuthService }

func NewAuthHandler(svc *service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Login de usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	sess, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrCredenciales) {
			c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
			return
		}
		respondError(c, err)
		return
	}

	if err := session.Save(c, sess); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al iniciar la sesion"))
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{
		Email:     req.Email,
		Rol:       string(sess.Role),
		ExpiraUTC: sess.Expiry.UTC().Format(time.RFC3339),
	})
}

// Logout godoc
// @Summary Cerrar sesion
// @Tags auth
// @Success 204
// @Router /v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := session.Clear(c); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cerrar la sesion"))
		return
	}
	c.Status(http.StatusNoContent)
}
