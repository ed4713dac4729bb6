package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// The address may omit the scheme, in which case http:// is assumed.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (string, error) {
	return h.authenticate(ctx, "/api/auth/register", user)
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (string, error) {
	return h.authenticate(ctx, "/api/auth/login", user)
}

// authenticate posts credentials and stores the returned token. The body is
// preferred; the Authorization header is the fallback.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (string, error) {
	var auth models.AuthResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.User{Login: user.Login, Password: user.Password}).
		SetResult(&auth).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token := auth.Token
	if token == "" {
		token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return "", fmt.Errorf("%s parse bearer token: %w", path, err)
		}
	}

	h.SetToken(token)
	logger.FromContext(ctx).Debug().Str("func", "httpServerAdapter.authenticate").Str("path", path).Msg("session token stored")
	return token, nil
}

func (h *httpServerAdapter) ListItems(ctx context.Context) ([]models.VaultItem, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var items []models.VaultItem
	resp, err := req.SetResult(&items).Get("/api/vault")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if items == nil {
		items = []models.VaultItem{}
	}
	return items, nil
}

func (h *httpServerAdapter) CreateItem(ctx context.Context, fields models.VaultItemFields) (string, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return "", err
	}

	var created models.CreatedResponse
	resp, err := req.SetBody(fields).SetResult(&created).Post("/api/vault")
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return created.ID, nil
}

func (h *httpServerAdapter) UpdateItem(ctx context.Context, id string, fields models.VaultItemFields) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("id", id).
		SetBody(fields).
		Put("/api/vault/{id}")
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteItem(ctx context.Context, id string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.SetPathParam("id", id).Delete("/api/vault/{id}")
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GeneratePassword(ctx context.Context, opts models.PasswordOptions) (models.GeneratedPassword, error) {
	var generated models.GeneratedPassword
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"length":         strconv.Itoa(opts.Length),
			"upper":          strconv.FormatBool(opts.Uppercase),
			"lower":          strconv.FormatBool(opts.Lowercase),
			"digits":         strconv.FormatBool(opts.Digits),
			"symbols":        strconv.FormatBool(opts.Symbols),
			"excludeSimilar": strconv.FormatBool(opts.ExcludeSimilar),
		}).
		SetResult(&generated).
		Get("/api/generator/password")
	if err != nil {
		return models.GeneratedPassword{}, fmt.Errorf("generate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.GeneratedPassword{}, err
	}

	return generated, nil
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}
