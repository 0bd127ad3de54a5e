// Package session holds the per-browser session context: the backend bearer
// token and the role claim extracted from it at login. The session is an
// explicit value passed into services and the route guard — never ambient
// package state.
package session

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the employee role claim carried by the backend access token.
type Role string

const (
	RoleAdministrador Role = "administrador"
	RoleAyudante      Role = "ayudante"
)

// Session is the authenticated browser context. Zero value means "not logged
// in".
type Session struct {
	Token  string
	Role   Role
	Expiry time.Time
}

// ErrMalformedToken is returned when the backend token cannot be decoded at
// all. A missing role claim is tolerated (see FromToken).
var ErrMalformedToken = errors.New("session: token mal formado")

// tokenClaims are the claims the console reads out of the backend JWT.
type tokenClaims struct {
	Rol string `json:"rol"`
	jwt.RegisteredClaims
}

// FromToken builds a session from a backend access token. The console has no
// signing key — verification belongs to the backend on every forwarded call —
// so the claims are decoded without signature check, exactly as the browser
// would. fallbackTTL bounds the session when the token carries no exp claim.
func FromToken(token string, fallbackTTL time.Duration) (Session, error) {
	claims := &tokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return Session{}, ErrMalformedToken
	}

	expiry := time.Now().Add(fallbackTTL)
	if claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}

	return Session{
		Token:  token,
		Role:   Role(strings.ToLower(claims.Rol)),
		Expiry: expiry,
	}, nil
}

// Valid reports whether the session is usable: it has a token and has not
// expired.
func (s Session) Valid() bool {
	return s.Token != "" && time.Now().Before(s.Expiry)
}

// Authorized reports whether this session may enter a route gated to the
// given role set. An invalid session is never authorized.
func (s Session) Authorized(required ...Role) bool {
	if !s.Valid() {
		return false
	}
	for _, r := range required {
		if s.Role == r {
			return true
		}
	}
	return false
}
