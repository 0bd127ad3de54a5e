package service

import (
	"context"
	"errors"
	"time"

	"comanda/internal/api"
	"comanda/internal/notify"
	"comanda/internal/session"
)

// ErrCredenciales is the undifferentiated login failure. The backend does not
// distinguish wrong-password from unknown-user and neither does the console.
var ErrCredenciales = errors.New("Credenciales invalidas")

type authAPI interface {
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
}

// AuthService exchanges credentials for a browser session.
type AuthService struct {
	api         authAPI
	notices     *notify.Center
	fallbackTTL time.Duration
}

func NewAuthService(auth authAPI, notices *notify.Center, fallbackTTL time.Duration) *AuthService {
	return &AuthService{api: auth, notices: notices, fallbackTTL: fallbackTTL}
}

// Login authenticates against the backend and derives the session context
// (token, role claim, expiry) from the returned access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (session.Session, error) {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		var remote *api.RemoteError
		if errors.As(err, &remote) {
			s.notices.Error(ErrCredenciales.Error())
			return session.Session{}, ErrCredenciales
		}
		s.notices.Error(api.Message(err))
		return session.Session{}, err
	}

	sess, err := session.FromToken(resp.AccessToken, s.fallbackTTL)
	if err != nil {
		s.notices.Error(api.Message(err))
		return session.Session{}, err
	}
	return sess, nil
}
