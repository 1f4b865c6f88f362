package directus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"sitebridge/internal/config"
	"sitebridge/internal/logger"
	"sitebridge/internal/utils"
)

type restClient struct {
	client  *utils.HTTPClient
	logger  *logger.Logger
	baseURL string

	mu           sync.RWMutex
	token        string
	refreshToken string
	expiresAt    time.Time

	refreshMargin time.Duration
	autoRefresh   bool

	jobMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
	Mode         string `json:"mode"`
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// authResponse is the Directus auth envelope returned by /auth/login and
// /auth/refresh. Expires is the access token lifetime in milliseconds.
type authResponse struct {
	Data authData `json:"data"`
}

type authData struct {
	AccessToken  string `json:"access_token"`
	Expires      int64  `json:"expires"`
	RefreshToken string `json:"refresh_token"`
}

// NewClient constructs a REST/GraphQL implementation of [Client] bound to
// the backend at apiCfg.URL. It normalises and validates the base URL and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if apiCfg.URL is empty or cannot be parsed as a valid URL.
func NewClient(apiCfg config.API, clientCfg config.Client, log *logger.Logger) (Client, error) {
	baseURL, err := normalizeBaseURL(apiCfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend url: %w", err)
	}

	return &restClient{
		client:        utils.NewHTTPClient(baseURL, clientCfg.RequestTimeout),
		logger:        log,
		baseURL:       baseURL,
		refreshMargin: clientCfg.RefreshMargin,
		autoRefresh:   !clientCfg.DisableAutoRefresh,
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

// BaseURL implements [Client].
func (c *restClient) BaseURL() string {
	return c.baseURL
}

// Login implements [Client]. It POSTs the credentials to POST /auth/login;
// Directus expects the username in the "email" field. On success the token
// pair is stored, the expiry is computed from the millisecond "expires"
// field, and the background refresh job is started unless disabled.
func (c *restClient) Login(ctx context.Context, username, password string) error {
	var result authResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(loginRequest{Email: username, Password: password}).
		SetResult(&result).
		Post("/auth/login")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLogin, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%w: %v", ErrLogin, err)
	}

	c.storeTokens(result.Data)
	c.logger.Debug().Time("expires_at", c.TokenExpiresAt()).Msg("authenticated on backend")

	if c.autoRefresh {
		c.startRefreshJob()
	}
	return nil
}

// Refresh implements [Client]. It exchanges the held refresh token for a new
// token pair via POST /auth/refresh and swaps both tokens under lock.
func (c *restClient) Refresh(ctx context.Context) error {
	c.mu.RLock()
	refreshToken := c.refreshToken
	c.mu.RUnlock()

	if refreshToken == "" {
		return fmt.Errorf("%w: no refresh token held", ErrRefresh)
	}

	var result authResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(refreshRequest{RefreshToken: refreshToken, Mode: "json"}).
		SetResult(&result).
		Post("/auth/refresh")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRefresh, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%w: %v", ErrRefresh, err)
	}

	c.storeTokens(result.Data)
	c.logger.Debug().Time("expires_at", c.TokenExpiresAt()).Msg("access token refreshed")
	return nil
}

// Logout implements [Client]. It stops the refresh job, invalidates the
// session on the server via POST /auth/logout, and clears all token state.
// State is cleared even when the server call fails, so a client is always
// reusable for a fresh Login after Logout. When no refresh token is held
// (static token mode) the server call is skipped.
func (c *restClient) Logout(ctx context.Context) error {
	c.StopRefreshing()

	c.mu.RLock()
	refreshToken := c.refreshToken
	c.mu.RUnlock()

	defer c.clearTokens()

	if refreshToken == "" {
		return nil
	}

	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(logoutRequest{RefreshToken: refreshToken}).
		Post("/auth/logout")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLogout, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%w: %v", ErrLogout, err)
	}

	return nil
}

// Token implements [Client].
func (c *restClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken implements [Client]. It stores token (whitespace-trimmed) and
// recomputes the expiry from the token's JWT claims. Tokens that are not
// JWTs, such as Directus static tokens, get a zero expiry and never trigger
// a refresh.
func (c *restClient) SetToken(token string) {
	token = strings.TrimSpace(token)

	expiry, err := utils.TokenExpiry(token)
	if err != nil {
		expiry = time.Time{}
	}

	c.mu.Lock()
	c.token = token
	c.expiresAt = expiry
	c.mu.Unlock()
}

// TokenExpiresAt implements [Client].
func (c *restClient) TokenExpiresAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.expiresAt
}

// Query implements [Client]. It POSTs the query and variables to
// POST /graphql with the bearer header and decodes the standard GraphQL
// envelope. Backend-reported execution errors are joined into one message
// and returned wrapping ErrQuery; transport and HTTP status errors surface
// through their own sentinels.
func (c *restClient) Query(ctx context.Context, query string, variables map[string]any, out any) error {
	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(graphqlRequest{Query: query, Variables: variables}).
		Post("/graphql")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var envelope graphqlResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("decode graphql response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		return fmt.Errorf("%w: %s", ErrQuery, joinGraphQLErrors(envelope.Errors))
	}

	if out != nil && len(envelope.Data) > 0 {
		if err = json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("decode graphql data: %w", err)
		}
	}

	return nil
}

// Request implements [Client]. It executes an arbitrary authenticated REST
// call against the backend and decodes the JSON response body into out when
// out is non-nil.
func (c *restClient) Request(ctx context.Context, method, path string, body, out any) error {
	req := c.authedRequest(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if out != nil {
		if err = json.Unmarshal(resp.Body(), out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// Ping implements [Client]. It GETs the public GET /server/ping endpoint and
// errors unless the backend answers with "pong".
func (c *restClient) Ping(ctx context.Context) error {
	resp, err := c.client.R().SetContext(ctx).Get("/server/ping")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPing, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%w: %v", ErrPing, err)
	}

	if reply := strings.TrimSpace(string(resp.Body())); reply != "pong" {
		return fmt.Errorf("%w: unexpected reply %q", ErrPing, reply)
	}
	return nil
}

func (c *restClient) authedRequest(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// storeTokens saves a fresh token pair. The expiry comes from the
// millisecond Expires field; if the backend omits it, the access token's own
// exp claim is used, and failing that the token is treated as non-expiring.
func (c *restClient) storeTokens(data authData) {
	expiry := time.Time{}
	if data.Expires > 0 {
		expiry = time.Now().Add(time.Duration(data.Expires) * time.Millisecond)
	} else if exp, err := utils.TokenExpiry(data.AccessToken); err == nil {
		expiry = exp
	}

	c.mu.Lock()
	c.token = data.AccessToken
	c.refreshToken = data.RefreshToken
	c.expiresAt = expiry
	c.mu.Unlock()
}

func (c *restClient) clearTokens() {
	c.mu.Lock()
	c.token = ""
	c.refreshToken = ""
	c.expiresAt = time.Time{}
	c.mu.Unlock()
}
