package http

import (
	"net/http"

	"github.com/google/uuid"
)

const (
	traceIDHeader = "X-Trace-ID"

	// maxTraceIDLen caps client supplied trace ids before they reach logs.
	maxTraceIDLen = 128
)

// withTraceID attaches a request-scoped child logger carrying trace_id to the
// context and echoes the id in the response header. A client supplied
// X-Trace-ID is reused when it is short enough, otherwise a UUIDv7 is made.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLen {
			traceID = newTraceID()
		}

		r = r.WithContext(h.logger.WithTraceID(traceID).WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

func newTraceID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
