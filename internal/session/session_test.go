package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func token(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("clave"))
	require.NoError(t, err)
	return tok
}

func TestFromTokenLeeRolYExp(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	s, err := FromToken(token(t, jwt.MapClaims{"rol": "ADMINISTRADOR", "exp": exp.Unix()}), time.Hour)

	require.NoError(t, err)
	assert.Equal(t, RoleAdministrador, s.Role)
	assert.WithinDuration(t, exp, s.Expiry, time.Second)
	assert.True(t, s.Valid())
}

func TestFromTokenSinExpUsaRespaldo(t *testing.T) {
	s, err := FromToken(token(t, jwt.MapClaims{"rol": "ayudante"}), 2*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, RoleAyudante, s.Role)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), s.Expiry, time.Minute)
}

func TestFromTokenMalFormado(t *testing.T) {
	_, err := FromToken("no-es-un-jwt", time.Hour)
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestValid(t *testing.T) {
	assert.False(t, Session{}.Valid(), "zero session is not logged in")
	assert.False(t, Session{Token: "t", Expiry: time.Now().Add(-time.Minute)}.Valid(),
		"expired session is invalid")
	assert.True(t, Session{Token: "t", Expiry: time.Now().Add(time.Minute)}.Valid())
}

func TestAuthorized(t *testing.T) {
	admin := Session{Token: "t", Role: RoleAdministrador, Expiry: time.Now().Add(time.Hour)}
	ayudante := Session{Token: "t", Role: RoleAyudante, Expiry: time.Now().Add(time.Hour)}
	vencida := Session{Token: "t", Role: RoleAdministrador, Expiry: time.Now().Add(-time.Hour)}

	assert.True(t, admin.Authorized(RoleAdministrador))
	assert.True(t, admin.Authorized(RoleAdministrador, RoleAyudante))
	assert.False(t, ayudante.Authorized(RoleAdministrador))
	assert.True(t, ayudante.Authorized(RoleAdministrador, RoleAyudante))
	assert.False(t, vencida.Authorized(RoleAdministrador), "an expired session is never authorized")
}
