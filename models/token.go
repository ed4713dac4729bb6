package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token is an issued or verified session token. Only the compact form
// leaves the server; the parsed JWT and the owner id stay in process.
type Token struct {
	*jwt.Token `json:"-"`

	// SignedString is header.payload.signature as sent in the Authorization
	// header and the session cookie.
	SignedString string `json:"token"`

	// UserID is the "sub" claim. Every vault operation is scoped to it.
	UserID string `json:"-"`
}

func (t *Token) String() string {
	return t.SignedString
}
