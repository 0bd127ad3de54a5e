package middleware

import (
	"net/http"

	"comanda/internal/apierror"
	"comanda/internal/session"

	"github.com/gin-gonic/gin"
)

const sessionKey = "console_session"

// RequireSession blocks requests without a valid (non-expired) login and
// stashes the session context for handlers downstream.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := session.Load(c)
		if !ok || !sess.Valid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticacion requerida"))
			return
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// RequireRole rejects requests whose session role is not in the allowed set.
// Route → role-set pairs live in the router table.
func RequireRole(roles ...session.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if !sess.Authorized(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Permisos insuficientes"))
			return
		}
		c.Next()
	}
}

// GetSession retrieves the session stashed by RequireSession.
func GetSession(c *gin.Context) session.Session {
	sess, _ := c.MustGet(sessionKey).(session.Session)
	return sess
}
