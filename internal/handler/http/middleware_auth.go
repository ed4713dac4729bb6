package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// tokenCookieName is the cookie set on register and login and accepted by
// the auth middleware when no Authorization header is present.
const tokenCookieName = "token"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// The token is read from the "Authorization: Bearer" header first and from
// the token cookie second, then validated via AuthService.ParseToken. On
// success the user id from the "sub" claim is stored in the request context
// under [utils.UserIDCtxKey]; it is the only authorization input downstream.
//
// A missing, malformed, badly signed or expired token all produce the same
// 401 {"error":"unauthorized"}. The actual cause is only logged.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := tokenFromRequest(r)
		if err != nil {
			log.Debug().Err(err).Str("func", "*Handler.auth").Msg("request without usable token")
			writeStatus(w, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Str("func", "*Handler.auth").Msg("token rejected")
			writeStatus(w, http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// tokenFromRequest prefers the Authorization header. A present but
// malformed header is an error even if a cookie exists.
func tokenFromRequest(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		return utils.ParseBearerToken(header)
	}

	cookie, err := r.Cookie(tokenCookieName)
	if errors.Is(err, http.ErrNoCookie) || (err == nil && cookie.Value == "") {
		return "", ErrNoToken
	}
	if err != nil {
		return "", err
	}

	return cookie.Value, nil
}
