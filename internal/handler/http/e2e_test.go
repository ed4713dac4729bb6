package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

type vaultServer struct {
	t        *testing.T
	router   http.Handler
	storages *store.Storages
}

// newVaultServer wires real services on in-memory storages behind the full
// router.
func newVaultServer(t *testing.T) *vaultServer {
	t.Helper()

	storages := store.NewMemoryStorages()
	cipher, err := crypto.NewFieldCipher("e2e-cipher-secret-0123456789")
	require.NoError(t, err)

	app := config.App{TokenSignKey: "e2e-sign-key", TokenIssuer: "go-pass-vault", TokenDuration: time.Hour, Version: "e2e"}
	validator := validators.NewVaultValidator()
	hasher := crypto.NewPasswordHasher(crypto.ArgonParams{Memory: 1024, Time: 1, Parallelism: 1, SaltLen: 16, KeyLen: 32})
	appInfo, err := service.NewAppInfoService(app, logger.Nop())
	require.NoError(t, err)

	svcs := &service.Services{
		VaultService:     service.NewVaultService(storages.VaultItemRepository, cipher, validator, logger.Nop()),
		AuthService:      service.NewAuthService(storages.UserRepository, hasher, validator, app, logger.Nop()),
		GeneratorService: service.NewGeneratorService(logger.Nop()),
		AppInfoService:   appInfo,
	}

	h := NewHandler(svcs, config.Server{RequestTimeout: 10 * time.Second}, logger.Nop())
	return &vaultServer{t: t, router: h.Init(), storages: storages}
}

func (s *vaultServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	s.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *vaultServer) register(login string) (token, userID string) {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/auth/register", "", `{"login":"`+login+`","password":"pw-`+login+`"}`)
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &body))

	user, err := s.storages.UserRepository.FindUserByLogin(s.t.Context(), login)
	require.NoError(s.t, err)
	return body.Token, user.UserID
}

func (s *vaultServer) list(token string) []models.VaultItem {
	s.t.Helper()
	rec := s.do(http.MethodGet, "/api/vault", token, "")
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())

	var items []models.VaultItem
	require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &items))
	return items
}

func (s *vaultServer) create(token, body string) string {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/vault", token, body)
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(s.t, created.ID)
	return created.ID
}

// ─────────────────────────────────────────────
// Scenarios
// ─────────────────────────────────────────────

func TestE2E_VaultLifecycle(t *testing.T) {
	srv := newVaultServer(t)
	token, userID := srv.register("u")

	id := srv.create(token, `{"title":"Bank","username":"alice","password":"p@ss1"}`)

	items := srv.list(token)
	require.Len(t, items, 1)
	assert.Equal(t, id, items[0].ID)
	assert.Equal(t, "p@ss1", items[0].Password)
	assert.Equal(t, "", items[0].URL)
	assert.Equal(t, "", items[0].Notes)

	stored, err := srv.storages.VaultItemRepository.FindOneByOwner(t.Context(), id, userID)
	require.NoError(t, err)
	assert.NotEqual(t, "p@ss1", string(stored.Fields.Password))
	assert.NotContains(t, string(stored.Fields.Password), "p@ss1")

	rec := srv.do(http.MethodPut, "/api/vault/"+id, token, `{"title":"Bank2","username":"alice","password":"p@ss2"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	items = srv.list(token)
	require.Len(t, items, 1)
	assert.Equal(t, "Bank2", items[0].Title)
	assert.Equal(t, "p@ss2", items[0].Password)

	rec = srv.do(http.MethodDelete, "/api/vault/"+id, token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Empty(t, srv.list(token))

	rec = srv.do(http.MethodDelete, "/api/vault/"+id, token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestE2E_OwnershipIsolation(t *testing.T) {
	srv := newVaultServer(t)
	ownerToken, _ := srv.register("owner")
	otherToken, _ := srv.register("other")

	id := srv.create(ownerToken, `{"title":"Mail","username":"me","password":"secret"}`)

	assert.Empty(t, srv.list(otherToken))

	rec := srv.do(http.MethodPut, "/api/vault/"+id, otherToken, `{"title":"x","username":"y","password":"z"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(http.MethodPut, "/api/vault/"+id, otherToken, `{"title":""}`)
	assert.Equal(t, http.StatusNotFound, rec.Code, "invalid payload on a foreign item still looks missing")

	rec = srv.do(http.MethodDelete, "/api/vault/"+id, otherToken, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	items := srv.list(ownerToken)
	require.Len(t, items, 1)
	assert.Equal(t, "secret", items[0].Password)
}

func TestE2E_Validation(t *testing.T) {
	srv := newVaultServer(t)
	token, _ := srv.register("v")

	for _, body := range []string{
		`{"username":"u","password":"p"}`,
		`{"title":"t","password":"p"}`,
		`{"title":"t","username":"u"}`,
		`{"title":"t","username":"u","password":""}`,
	} {
		rec := srv.do(http.MethodPost, "/api/vault", token, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}

	id := srv.create(token, `{"title":"t","username":"u","password":"p"}`)
	rec := srv.do(http.MethodPut, "/api/vault/"+id, token, `{"title":"t","username":"","password":"p"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(http.MethodPut, "/api/vault/not-a-uuid", token, `{"title":"t","username":"u","password":"p"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestE2E_ListingIsNewestFirst(t *testing.T) {
	srv := newVaultServer(t)
	token, _ := srv.register("order")

	first := srv.create(token, `{"title":"1","username":"u","password":"p"}`)
	second := srv.create(token, `{"title":"2","username":"u","password":"p"}`)
	third := srv.create(token, `{"title":"3","username":"u","password":"p"}`)

	items := srv.list(token)
	require.Len(t, items, 3)
	assert.Equal(t, []string{third, second, first}, []string{items[0].ID, items[1].ID, items[2].ID})
}

func TestE2E_Unauthenticated(t *testing.T) {
	srv := newVaultServer(t)
	token, _ := srv.register("auth")
	id := srv.create(token, `{"title":"t","username":"u","password":"p"}`)

	for _, bad := range []string{"", "garbage", token + "x"} {
		for _, tc := range []struct{ method, path string }{
			{http.MethodGet, "/api/vault"},
			{http.MethodPost, "/api/vault"},
			{http.MethodPut, "/api/vault/" + id},
			{http.MethodDelete, "/api/vault/" + id},
		} {
			rec := srv.do(tc.method, tc.path, bad, `{"title":"t","username":"u","password":"p"}`)
			assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s with %q", tc.method, tc.path, bad)
		}
	}

	require.Len(t, srv.list(token), 1)
}

func TestE2E_LoginAndCookie(t *testing.T) {
	srv := newVaultServer(t)
	srv.register("cookie")

	rec := srv.do(http.MethodPost, "/api/auth/login", "", `{"login":"cookie","password":"pw-cookie"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == tokenCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/api/vault", nil)
	req.AddCookie(cookie)
	listRec := httptest.NewRecorder()
	srv.router.ServeHTTP(listRec, req)
	assert.Equal(t, http.StatusOK, listRec.Code)

	rec = srv.do(http.MethodPost, "/api/auth/login", "", `{"login":"cookie","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(http.MethodPost, "/api/auth/register", "", `{"login":"cookie","password":"again"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestE2E_ConcurrentUpdatesLastWriteWins(t *testing.T) {
	srv := newVaultServer(t)
	token, _ := srv.register("race")
	id := srv.create(token, `{"title":"t0","username":"u0","password":"p0"}`)

	payloads := map[string]models.VaultItemFields{}
	var wg sync.WaitGroup
	for _, n := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		fields := models.VaultItemFields{Title: "t-" + n, Username: "u-" + n, Password: "p-" + n, URL: "https://" + n, Notes: n}
		payloads[fields.Title] = fields
		body, err := json.Marshal(fields)
		require.NoError(t, err)

		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPut, "/api/vault/"+id, strings.NewReader(string(body)))
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			srv.router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code)
		}()
	}
	wg.Wait()

	items := srv.list(token)
	require.Len(t, items, 1)
	want, ok := payloads[items[0].Title]
	require.True(t, ok, "final title %q is not one of the payloads", items[0].Title)
	assert.Equal(t, want, items[0].VaultItemFields, "final record mixes payloads")
}
