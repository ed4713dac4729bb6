package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/models"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrValidation,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	message := errorMessage(resp.Body())
	if sentinel, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", sentinel, message)
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d: %s", ErrInternalServerError, resp.StatusCode(), message)
	}

	return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
}

// errorMessage prefers the "error" field of a JSON error body and falls back
// to the raw text.
func errorMessage(body []byte) string {
	var payload models.ErrorResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return "empty response"
	}
	return text
}
