// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Reasons the authentication gate rejects a request. They are only logged;
// the client always receives the same generic 401 body.
var (
	// ErrNoToken is returned when neither the "Authorization" header nor the
	// token cookie carries a token.
	ErrNoToken = errors.New("no token in `Authorization` header or cookie")

	// ErrNoUserInContext means an authenticated route was reached without the
	// auth middleware having stored a user id.
	ErrNoUserInContext = errors.New("no user id in request context")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidQuery is returned when a query parameter cannot be parsed.
	ErrInvalidQuery = errors.New("invalid query parameter")
)
