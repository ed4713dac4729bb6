package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = gzip.DefaultCompression

// compressibleTypes are the only bodies this API produces.
var compressibleTypes = []string{"application/json", "text/plain"}

var gzipReaders sync.Pool

// withGZip accepts gzip request bodies and compresses responses for clients
// that ask for it. The vaultctl adapter sends and accepts gzip.
func withGZip(next http.Handler) http.Handler {
	return middleware.Compress(compressionLevel, compressibleTypes...)(inflateRequest(next))
}

// inflateRequest replaces a gzip encoded body with its plain stream. A body
// that is not valid gzip is answered with 400 before next runs.
func inflateRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zr, _ := gzipReaders.Get().(*gzip.Reader)
		if zr == nil {
			zr = new(gzip.Reader)
		}
		if err := zr.Reset(r.Body); err != nil {
			gzipReaders.Put(zr)
			writeStatus(w, http.StatusBadRequest)
			return
		}
		defer gzipReaders.Put(zr)

		r.Body = inflatedBody{Reader: zr, raw: r.Body}
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}

type inflatedBody struct {
	io.Reader
	raw io.Closer
}

func (b inflatedBody) Close() error {
	return b.raw.Close()
}
