package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"comanda/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// guardRouter mounts a login endpoint plus the role-gated route shapes the
// console uses: cuentas open to both roles, personal admin-only.
func guardRouter(sess session.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(session.Middleware("clave-de-prueba", time.Hour))

	r.POST("/login", func(c *gin.Context) {
		_ = session.Save(c, sess)
		c.Status(http.StatusNoContent)
	})
	r.POST("/logout", func(c *gin.Context) {
		_ = session.Clear(c)
		c.Status(http.StatusNoContent)
	})

	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	auth := r.Group("/", RequireSession())
	auth.GET("/cuentas", RequireRole(session.RoleAdministrador, session.RoleAyudante), ok)
	auth.GET("/personal", RequireRole(session.RoleAdministrador), ok)
	return r
}

func loginCookies(t *testing.T, r *gin.Engine) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
	return w.Result().Cookies()
}

func get(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

func sesion(rol session.Role) session.Session {
	return session.Session{Token: "tok", Role: rol, Expiry: time.Now().Add(time.Hour)}
}

func TestSinSesionRechaza(t *testing.T) {
	r := guardRouter(sesion(session.RoleAdministrador))

	w := get(r, "/cuentas", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Autenticacion requerida")
}

func TestAyudanteEntraACuentasNoAPersonal(t *testing.T) {
	r := guardRouter(sesion(session.RoleAyudante))
	cookies := loginCookies(t, r)

	assert.Equal(t, http.StatusOK, get(r, "/cuentas", cookies).Code)

	w := get(r, "/personal", cookies)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Permisos insuficientes")
}

func TestAdministradorEntraATodo(t *testing.T) {
	r := guardRouter(sesion(session.RoleAdministrador))
	cookies := loginCookies(t, r)

	assert.Equal(t, http.StatusOK, get(r, "/cuentas", cookies).Code)
	assert.Equal(t, http.StatusOK, get(r, "/personal", cookies).Code)
}

func TestSesionVencidaRechaza(t *testing.T) {
	vencida := session.Session{Token: "tok", Role: session.RoleAdministrador, Expiry: time.Now().Add(-time.Minute)}
	r := guardRouter(vencida)
	cookies := loginCookies(t, r)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/cuentas", cookies).Code)
}

func TestLogoutInvalidaLaCookie(t *testing.T) {
	r := guardRouter(sesion(session.RoleAdministrador))
	cookies := loginCookies(t, r)
	require.Equal(t, http.StatusOK, get(r, "/cuentas", cookies).Code)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/cuentas", w.Result().Cookies()).Code,
		"the cleared cookie must not open a session")
}
