// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the server and vaultctl.
//
// Long-lived components receive a *Logger at construction. Code running on
// behalf of a request takes the request-scoped logger from its context with
// FromContext or FromRequest, which carries the trace_id of that request.
//
// Vault field values, plaintext or ciphertext, and secrets must never be
// attached to log events.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TraceIDField is the event field that ties log lines to one request.
const TraceIDField = "trace_id"

type Logger struct {
	zerolog.Logger
}

// NewLogger writes JSON lines to stdout at debug level. Every entry carries
// the role, a timestamp and the calling function under "func".
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewFileLogger appends to path, creating parent directories with 0700 and
// the file with 0600. vaultctl uses it because its stdout belongs to the
// user. If the file cannot be opened the logger discards everything.
func NewFileLogger(role, path string) *Logger {
	return newLogger(openLogFile(path), role)
}

func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithTraceID derives a logger that stamps every event with traceID. The
// receiver is left unchanged.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str(TraceIDField, traceID).Logger()}
}

// FromRequest is FromContext for r.Context().
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx by zerolog's WithContext.
// Without one it falls back to zerolog's default context logger, so the
// result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{
		zerolog.New(w).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

func openLogFile(path string) io.Writer {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return io.Discard
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return io.Discard
	}
	return f
}
