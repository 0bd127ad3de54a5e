package session

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const (
	cookieName = "comanda_session"

	keyToken  = "token"
	keyRole   = "role"
	keyExpiry = "expiry"
)

// Middleware returns the cookie-backed session store middleware. maxAge caps
// the cookie lifetime; token expiry is enforced separately by Session.Valid.
func Middleware(secret string, maxAge time.Duration) gin.HandlerFunc {
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
	})
	return sessions.Sessions(cookieName, store)
}

// Save writes the session into the request's cookie. Init happens here on
// login; teardown is Clear on logout.
func Save(c *gin.Context, s Session) error {
	store := sessions.Default(c)
	store.Set(keyToken, s.Token)
	store.Set(keyRole, string(s.Role))
	store.Set(keyExpiry, s.Expiry.Unix())
	return store.Save()
}

// Load reads the session for this request. ok is false when no login has
// happened; the returned session may still be expired — callers check Valid.
func Load(c *gin.Context) (Session, bool) {
	store := sessions.Default(c)
	tok, _ := store.Get(keyToken).(string)
	if tok == "" {
		return Session{}, false
	}
	role, _ := store.Get(keyRole).(string)
	var expiry time.Time
	if unix, ok := store.Get(keyExpiry).(int64); ok {
		expiry = time.Unix(unix, 0)
	}
	return Session{Token: tok, Role: Role(role), Expiry: expiry}, true
}

// Clear wipes the session cookie: token and role both go.
func Clear(c *gin.Context) error {
	store := sessions.Default(c)
	store.Clear()
	store.Options(sessions.Options{Path: "/", MaxAge: -1})
	return store.Save()
}
