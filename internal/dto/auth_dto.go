package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse describes the authenticated browser session. The bearer
// token itself stays server-side in the session cookie and is never echoed.
type SessionResponse struct {
	Email     string `json:"email"`
	Rol       string `json:"rol"`
	ExpiraUTC string `json:"expira_utc"`
}
