// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
)

const msgUnreachable = "The server is unavailable or the network is down."

// transportHints are substrings of dial and DNS errors that reach the UI
// flattened into text by the HTTP client.
var transportHints = []string{
	"connection refused",
	"dial tcp",
	"no such host",
	"network is unreachable",
	"i/o timeout",
}

func humanizeError(err error) string {
	var netErr net.Error
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrNoToken):
		return "Session expired. Run \"vaultctl login\" and try again."
	case errors.Is(err, adapter.ErrNotFound):
		return "The item no longer exists."
	case errors.Is(err, adapter.ErrTooManyRequests):
		return "Too many requests. Wait a moment and retry."
	case errors.Is(err, adapter.ErrInternalServerError):
		return "The server failed to handle the request."
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr):
		return msgUnreachable
	}

	text := strings.ToLower(err.Error())
	for _, hint := range transportHints {
		if strings.Contains(text, hint) {
			return msgUnreachable
		}
	}
	return err.Error()
}
