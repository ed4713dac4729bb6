package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockVaultService implements service.VaultService. Each method field can be
// overridden per test case; an unset field fails the test when called.
type mockVaultService struct {
	t        *testing.T
	createFn func(ctx context.Context, ownerID string, fields models.VaultItemFields) (string, error)
	listFn   func(ctx context.Context, ownerID string) ([]models.VaultItem, error)
	updateFn func(ctx context.Context, ownerID, id string, fields models.VaultItemFields) error
	deleteFn func(ctx context.Context, ownerID, id string) error
}

func (m *mockVaultService) Create(ctx context.Context, ownerID string, fields models.VaultItemFields) (string, error) {
	if m.createFn == nil {
		m.t.Fatalf("unexpected VaultService.Create call")
	}
	return m.createFn(ctx, ownerID, fields)
}

func (m *mockVaultService) List(ctx context.Context, ownerID string) ([]models.VaultItem, error) {
	if m.listFn == nil {
		m.t.Fatalf("unexpected VaultService.List call")
	}
	return m.listFn(ctx, ownerID)
}

func (m *mockVaultService) Update(ctx context.Context, ownerID, id string, fields models.VaultItemFields) error {
	if m.updateFn == nil {
		m.t.Fatalf("unexpected VaultService.Update call")
	}
	return m.updateFn(ctx, ownerID, id, fields)
}

func (m *mockVaultService) Delete(ctx context.Context, ownerID, id string) error {
	if m.deleteFn == nil {
		m.t.Fatalf("unexpected VaultService.Delete call")
	}
	return m.deleteFn(ctx, ownerID, id)
}

// mockAuthService implements service.AuthService.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockGeneratorService struct {
	generateFn func(ctx context.Context, opts models.PasswordOptions) (models.GeneratedPassword, error)
}

func (m *mockGeneratorService) Generate(ctx context.Context, opts models.PasswordOptions) (models.GeneratedPassword, error) {
	return m.generateFn(ctx, opts)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testUserID  = "0190b6a4-0000-7000-8000-00000000a11c"
	testItemID  = "0190b6a4-0000-7000-8000-000000000001"
	validBearer = "Bearer good-token"
)

// acceptingAuth accepts "good-token" for testUserID and rejects the rest.
func acceptingAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString == "good-token" {
				return models.Token{SignedString: tokenString, UserID: testUserID}, nil
			}
			return models.Token{}, service.ErrUnauthenticated
		},
	}
}

func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = acceptingAuth()
	}
	if svcs.VaultService == nil {
		svcs.VaultService = &mockVaultService{t: t}
	}
	return NewHandler(svcs, config.Server{}, logger.Nop())
}

// serve routes req through the full router.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var payload string
	switch v := body.(type) {
	case nil:
	case string:
		payload = v
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		payload = string(b)
	}

	req := httptest.NewRequest(method, target, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func authed(req *http.Request) *http.Request {
	req.Header.Set("Authorization", validBearer)
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func newRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
