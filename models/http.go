package models

// CreatedResponse is returned by POST /api/vault.
type CreatedResponse struct {
	ID      string `json:"id"`
	Message string `json:"message,omitempty"`
}

// MessageResponse is returned by successful update and delete calls.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx JSON response. Message is one
// of a fixed set of generic texts; internal causes are only logged.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string `json:"token"`
}
