package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := decodeUser(w, r)
	if err != nil {
		writeError(w, r, err, "*Handler.register")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, err, "*Handler.register")
		return
	}

	logger.FromRequest(r).Info().Str("user_id", registeredUser.UserID).Msg("user registered")
	h.issueToken(w, r, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := decodeUser(w, r)
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", foundUser.UserID).Msg("user successfully logged in")
	h.issueToken(w, r, foundUser, http.StatusOK)
}

// issueToken answers with {"token": ...} and mirrors the token into the
// Authorization header and the token cookie.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err, "*Handler.issueToken")
		return
	}

	cookie := &http.Cookie{
		Name:     tokenCookieName,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
	}
	if token.Token != nil {
		if exp, err := token.Claims.GetExpirationTime(); err == nil && exp != nil {
			cookie.Expires = exp.Time
		}
	}
	http.SetCookie(w, cookie)

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString}, status)
}

func decodeUser(w http.ResponseWriter, r *http.Request) (models.User, error) {
	var user models.User
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&user); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return user, nil
}
