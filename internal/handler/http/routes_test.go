package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/passgen"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// ─────────────────────────────────────────────
// Route registration
// ─────────────────────────────────────────────

var protectedRoutes = []struct {
	method string
	path   string
}{
	{http.MethodGet, "/api/vault"},
	{http.MethodPost, "/api/vault"},
	{http.MethodPut, "/api/vault/" + testItemID},
	{http.MethodDelete, "/api/vault/" + testItemID},
}

func TestInit_ProtectedRoutesRequireAuth(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	router := h.Init()

	for _, tc := range protectedRoutes {
		for name, header := range map[string]string{"no token": "", "invalid token": "Bearer forged"} {
			t.Run(tc.method+" "+tc.path+" "+name, func(t *testing.T) {
				req := httptest.NewRequest(tc.method, tc.path, nil)
				if header != "" {
					req.Header.Set("Authorization", header)
				}
				rec := httptest.NewRecorder()
				router.ServeHTTP(rec, req)

				require.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
			})
		}
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", decodeError(t, rec))
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/version/"},
		{http.MethodPatch, "/api/vault"},
		{http.MethodGet, "/api/vault/" + testItemID},
		{http.MethodGet, "/api/auth/login"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(h, authed(httptest.NewRequest(tc.method, tc.path, nil)))

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/version/", nil))
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set(traceIDHeader, "abc-123")
	rec = serve(h, req)
	assert.Equal(t, "abc-123", rec.Header().Get(traceIDHeader))
}

func TestInit_RecoversFromPanic(t *testing.T) {
	vault := &mockVaultService{t: t, listFn: func(context.Context, string) ([]models.VaultItem, error) {
		panic("boom")
	}}
	h := newTestHandler(t, &service.Services{VaultService: vault})

	rec := serve(h, authed(httptest.NewRequest(http.MethodGet, "/api/vault", nil)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestInit_RequestTimeoutReachesService(t *testing.T) {
	vault := &mockVaultService{t: t, listFn: func(ctx context.Context, _ string) ([]models.VaultItem, error) {
		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
		return []models.VaultItem{}, nil
	}}
	svcs := &service.Services{VaultService: vault, AuthService: acceptingAuth(), AppInfoService: &mockAppInfoService{}}
	h := NewHandler(svcs, config.Server{RequestTimeout: time.Minute}, logger.Nop())

	rec := serve(h, authed(httptest.NewRequest(http.MethodGet, "/api/vault", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

// ─────────────────────────────────────────────
// GET /api/version/
// ─────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	h := newTestHandler(t, &service.Services{AppInfoService: &mockAppInfoService{version: "v1.2.3"}})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1.2.3", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

// ─────────────────────────────────────────────
// GET /api/generator/password
// ─────────────────────────────────────────────

func TestGeneratePassword_QueryParsing(t *testing.T) {
	tests := []struct {
		name  string
		query url.Values
		want  models.PasswordOptions
	}{
		{
			name:  "defaults",
			query: url.Values{},
			want:  passgen.DefaultOptions(),
		},
		{
			name:  "overrides",
			query: url.Values{"length": {"20"}, "symbols": {"false"}, "excludeSimilar": {"0"}},
			want: models.PasswordOptions{
				Length: 20, Uppercase: true, Lowercase: true, Digits: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &mockGeneratorService{generateFn: func(_ context.Context, opts models.PasswordOptions) (models.GeneratedPassword, error) {
				assert.Equal(t, tt.want, opts)
				return models.GeneratedPassword{Password: "Xy7#", Strength: 2, Label: "Fair"}, nil
			}}
			h := newTestHandler(t, &service.Services{GeneratorService: gen})

			rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/generator/password?"+tt.query.Encode(), nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"password":"Xy7#","strength":2,"label":"Fair"}`, rec.Body.String())
		})
	}
}

func TestGeneratePassword_BadRequests(t *testing.T) {
	gen := &mockGeneratorService{generateFn: func(context.Context, models.PasswordOptions) (models.GeneratedPassword, error) {
		return models.GeneratedPassword{}, fmt.Errorf("%w: %w", service.ErrValidation, passgen.ErrNoCharacterClass)
	}}
	h := newTestHandler(t, &service.Services{GeneratorService: gen})

	for _, q := range []string{"length=abc", "upper=maybe", "upper=false&lower=false&digits=false&symbols=false"} {
		t.Run(q, func(t *testing.T) {
			rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/generator/password?"+q, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

// ─────────────────────────────────────────────
// statusFromError
// ─────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrUnauthenticated, http.StatusUnauthorized},
		{service.ErrWrongCredentials, http.StatusUnauthorized},
		{fmt.Errorf("%w: title", service.ErrValidation), http.StatusBadRequest},
		{store.ErrVaultItemNotFound, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", store.ErrVaultItemNotFound), http.StatusNotFound},
		{store.ErrLoginAlreadyExists, http.StatusConflict},
		{fmt.Errorf("%w: tag mismatch", service.ErrIntegrity), http.StatusInternalServerError},
		{fmt.Errorf("%w: refused", service.ErrStoreUnavailable), http.StatusInternalServerError},
		{ErrInvalidJSON, http.StatusBadRequest},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
