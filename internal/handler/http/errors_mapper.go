package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

var errorStatusMap = map[error]int{
	service.ErrUnauthenticated:  http.StatusUnauthorized,
	service.ErrWrongCredentials: http.StatusUnauthorized,
	service.ErrValidation:       http.StatusBadRequest,
	service.ErrIntegrity:        http.StatusInternalServerError,
	service.ErrEncryption:       http.StatusInternalServerError,
	service.ErrStoreUnavailable: http.StatusInternalServerError,
	ErrNoUserInContext:          http.StatusUnauthorized,
	ErrInvalidJSON:              http.StatusBadRequest,
	ErrInvalidQuery:             http.StatusBadRequest,

	store.ErrVaultItemNotFound:  http.StatusNotFound,
	store.ErrLoginAlreadyExists: http.StatusConflict,
}

// errorMessages holds the only texts a client ever sees for a failure.
var errorMessages = map[int]string{
	http.StatusBadRequest:      "invalid request",
	http.StatusUnauthorized:    "unauthorized",
	http.StatusNotFound:        "not found",
	http.StatusConflict:        "login already exists",
	http.StatusTooManyRequests: "too many requests",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err with the request logger and answers with the generic
// body for its status.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Debug()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	writeStatus(w, status)
}

func writeStatus(w http.ResponseWriter, status int) {
	msg, ok := errorMessages[status]
	if !ok {
		msg = "internal server error"
	}
	utils.WriteJSON(w, models.ErrorResponse{Error: msg}, status)
}
