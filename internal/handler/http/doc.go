// Package http implements the REST transport of the vault server.
//
// It wires chi routes for the vault, auth, generator and version endpoints
// and the middleware around them: trace ids, access logging, gzip, per-IP
// throttling of the auth endpoints and the bearer/cookie authentication gate.
// Service errors are translated to status codes in one place
// (statusFromError) and clients only ever receive a generic message.
package http
