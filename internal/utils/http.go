package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it with the given status code and an
// application/json content type. A marshal failure is answered with a bare
// 500 and returned to the caller; nothing else has been written by then.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("encode response body: %w", err)
	}

	return write(w, "application/json", statusCode, payload)
}

// WriteText writes s as a UTF-8 plain-text body.
func WriteText(w http.ResponseWriter, s string, statusCode int) (int, error) {
	return write(w, "text/plain; charset=utf-8", statusCode, []byte(s))
}

func write(w http.ResponseWriter, contentType string, statusCode int, body []byte) (int, error) {
	h := w.Header()
	h.Set("Content-Type", contentType)
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
