package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"comanda/internal/api"
	"comanda/internal/notify"
	"comanda/internal/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthAPI struct {
	resp *api.LoginResponse
	err  error
}

func (s *stubAuthAPI) Login(_ context.Context, _, _ string) (*api.LoginResponse, error) {
	return s.resp, s.err
}

var _ authAPI = (*stubAuthAPI)(nil)

func firmarToken(t *testing.T, rol string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"rol": rol}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("clave-de-prueba"))
	require.NoError(t, err)
	return tok
}

func TestLoginDerivaRolYExpiracion(t *testing.T) {
	exp := time.Now().Add(45 * time.Minute).Truncate(time.Second)
	stub := &stubAuthAPI{resp: &api.LoginResponse{
		Email:       "ana@bar.mx",
		AccessToken: firmarToken(t, "Administrador", exp),
	}}
	svc := NewAuthService(stub, notify.NewCenter(3*time.Second), time.Hour)

	sess, err := svc.Login(context.Background(), "ana@bar.mx", "secreta123")

	require.NoError(t, err)
	assert.Equal(t, session.RoleAdministrador, sess.Role, "role claim is normalized to lower case")
	assert.WithinDuration(t, exp, sess.Expiry, time.Second)
	assert.True(t, sess.Valid())
}

func TestLoginRechazoRemotoEsCredencialesInvalidas(t *testing.T) {
	stub := &stubAuthAPI{err: &api.RemoteError{Status: http.StatusUnauthorized, Detail: "unauthorized"}}
	svc := NewAuthService(stub, notify.NewCenter(3*time.Second), time.Hour)

	_, err := svc.Login(context.Background(), "ana@bar.mx", "mala")

	assert.ErrorIs(t, err, ErrCredenciales,
		"unknown user and wrong password must be indistinguishable")
}

func TestLoginFalloDeTransporteNoEsCredenciales(t *testing.T) {
	stub := &stubAuthAPI{err: errors.New("connection refused")}
	svc := NewAuthService(stub, notify.NewCenter(3*time.Second), time.Hour)

	_, err := svc.Login(context.Background(), "ana@bar.mx", "secreta123")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCredenciales)
}

func TestLoginSinExpUsaTTLDeRespaldo(t *testing.T) {
	stub := &stubAuthAPI{resp: &api.LoginResponse{
		AccessToken: firmarToken(t, "ayudante", time.Time{}),
	}}
	svc := NewAuthService(stub, notify.NewCenter(3*time.Second), 2*time.Hour)

	sess, err := svc.Login(context.Background(), "luis@bar.mx", "secreta123")

	require.NoError(t, err)
	assert.Equal(t, session.RoleAyudante, sess.Role)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), sess.Expiry, time.Minute)
}
