package api

import (
	"context"
	"net/http"
)

// LoginResponse mirrors the backend's /auth/login body. The role travels
// inside the signed access token, not as a separate field.
type LoginResponse struct {
	Email       string `json:"email"`
	ExpiresIn   string `json:"expiresIn"`
	AccessToken string `json:"accessToken"`
}

// AuthClient talks to /auth/login. Registration lives in EmpleadosClient
// because the console only registers staff through the personal screen.
type AuthClient struct{ c *Client }

func NewAuthClient(c *Client) *AuthClient { return &AuthClient{c: c} }

// Login exchanges credentials for a bearer token. The backend answers 401 for
// both unknown users and wrong passwords, so callers cannot (and must not)
// distinguish the two.
func (a *AuthClient) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp LoginResponse
	if err := a.c.do(ctx, "", http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
