// SPDX-License-Identifier: Apache-2.0

package directus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitebridge/internal/config"
	"sitebridge/internal/logger"
)

// newTestClient builds a restClient pointed at the test server, with the
// background refresh job disabled so tests control every request.
func newTestClient(t *testing.T, serverURL string) *restClient {
	t.Helper()

	apiCfg := config.API{URL: serverURL}
	clientCfg := config.Client{
		RequestTimeout:     5 * time.Second,
		RefreshMargin:      30 * time.Second,
		DisableAutoRefresh: true,
	}

	c, err := NewClient(apiCfg, clientCfg, logger.Nop())
	require.NoError(t, err)
	return c.(*restClient)
}

func writeAuthResponse(w http.ResponseWriter, access, refresh string, expiresMS int64) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"data": map[string]any{
			"access_token":  access,
			"expires":       expiresMS,
			"refresh_token": refresh,
		},
	})
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin", body["email"])
		assert.Equal(t, "password", body["password"])

		writeAuthResponse(w, "access-1", "refresh-1", 900000)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.Login(context.Background(), "admin", "password")

	require.NoError(t, err)
	assert.Equal(t, "access-1", c.Token())
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), c.TokenExpiresAt(), 5*time.Second)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"Invalid user credentials.","extensions":{"code":"INVALID_CREDENTIALS"}}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.Login(context.Background(), "admin", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLogin)
	assert.Contains(t, err.Error(), "Invalid user credentials.")
	assert.Empty(t, c.Token())
}

func TestLogin_BackendDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.Login(context.Background(), "admin", "password")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLogin)
}

// ── Refresh ──────────────────────────────────────────────────────────────────

func TestRefresh_RotatesTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			writeAuthResponse(w, "access-1", "refresh-1", 900000)
		case "/auth/refresh":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "refresh-1", body["refresh_token"])
			assert.Equal(t, "json", body["mode"])
			writeAuthResponse(w, "access-2", "refresh-2", 900000)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	require.NoError(t, c.Login(context.Background(), "admin", "password"))

	err := c.Refresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "access-2", c.Token())
}

func TestRefresh_WithoutRefreshToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.Refresh(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRefresh)
	assert.Contains(t, err.Error(), "no refresh token held")
}

func TestRefresh_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/login" {
			writeAuthResponse(w, "access-1", "refresh-1", 900000)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"Invalid token.","extensions":{"code":"INVALID_TOKEN"}}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	require.NoError(t, c.Login(context.Background(), "admin", "password"))

	err := c.Refresh(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRefresh)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestLogout_ClearsTokenState(t *testing.T) {
	var loggedOut atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			writeAuthResponse(w, "access-1", "refresh-1", 900000)
		case "/auth/logout":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "refresh-1", body["refresh_token"])
			loggedOut.Store(true)
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	require.NoError(t, c.Login(context.Background(), "admin", "password"))

	err := c.Logout(context.Background())

	require.NoError(t, err)
	assert.True(t, loggedOut.Load())
	assert.Empty(t, c.Token())
	assert.True(t, c.TokenExpiresAt().IsZero())
}

func TestLogout_StaticToken_SkipsServerCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected for static token logout")
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("static-token")

	err := c.Logout(context.Background())

	require.NoError(t, err)
	assert.Empty(t, c.Token())
}

func TestLogout_ServerError_StillClearsState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/login" {
			writeAuthResponse(w, "access-1", "refresh-1", 900000)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	require.NoError(t, c.Login(context.Background(), "admin", "password"))

	err := c.Logout(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLogout)
	assert.Empty(t, c.Token())
}

// ── Query ────────────────────────────────────────────────────────────────────

func TestQuery_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/graphql", r.URL.Path)
		assert.Equal(t, "Bearer sometoken", r.Header.Get("Authorization"))

		var body graphqlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "{ global { title } }", body.Query)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"global":{"title":"My Site"}}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("sometoken")

	var out struct {
		Global struct {
			Title string `json:"title"`
		} `json:"global"`
	}
	err := c.Query(context.Background(), "{ global { title } }", nil, &out)

	require.NoError(t, err)
	assert.Equal(t, "My Site", out.Global.Title)
}

func TestQuery_PassesVariables(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body graphqlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "home", body.Variables["slug"])

		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.Query(context.Background(), "query ($slug: String) { page(slug: $slug) }",
		map[string]any{"slug": "home"}, nil)

	require.NoError(t, err)
}

func TestQuery_ExecutionErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[{"message":"Cannot query field \"bogus\""},{"message":"Syntax error"}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.Query(context.Background(), "{ bogus }", nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuery)
	assert.Contains(t, err.Error(), `Cannot query field "bogus"; Syntax error`)
}

func TestQuery_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"Token expired.","extensions":{"code":"TOKEN_EXPIRED"}}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.Query(context.Background(), "{ global { title } }", nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "TOKEN_EXPIRED")
}

// ── Request ──────────────────────────────────────────────────────────────────

func TestRequest_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/server/info", r.URL.Path)
		assert.Equal(t, "Bearer sometoken", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"project":{"project_name":"sitebridge"}}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("sometoken")

	var out struct {
		Data struct {
			Project struct {
				ProjectName string `json:"project_name"`
			} `json:"project"`
		} `json:"data"`
	}
	err := c.Request(context.Background(), http.MethodGet, "/server/info", nil, &out)

	require.NoError(t, err)
	assert.Equal(t, "sitebridge", out.Data.Project.ProjectName)
}

func TestRequest_PostWithBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "draft", body["status"])

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.Request(context.Background(), http.MethodPost, "/items/pages",
		map[string]string{"status": "draft"}, nil)

	require.NoError(t, err)
}

func TestRequest_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors":[{"message":"Route not found.","extensions":{"code":"ROUTE_NOT_FOUND"}}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.Request(context.Background(), http.MethodGet, "/nope", nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Ping ─────────────────────────────────────────────────────────────────────

func TestPing_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/server/ping", r.URL.Path)
		_, _ = w.Write([]byte("pong"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.Ping(context.Background())

	require.NoError(t, err)
}

func TestPing_UnexpectedReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.Ping(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPing)
	assert.Contains(t, err.Error(), `unexpected reply "ok"`)
}

func TestPing_ServiceUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.Ping(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPing)
}

// ── SetToken ─────────────────────────────────────────────────────────────────

func TestSetToken_JWTDerivesExpiry(t *testing.T) {
	wantExpiry := time.Now().Add(20 * time.Minute).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": wantExpiry.Unix()})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	c := newTestClient(t, "http://localhost:8055")
	c.SetToken("  " + signed + "  ")

	assert.Equal(t, signed, c.Token())
	assert.True(t, c.TokenExpiresAt().Equal(wantExpiry))
}

func TestSetToken_OpaqueTokenNeverExpires(t *testing.T) {
	c := newTestClient(t, "http://localhost:8055")
	c.SetToken("directus-static-token")

	assert.Equal(t, "directus-static-token", c.Token())
	assert.True(t, c.TokenExpiresAt().IsZero())
}

// ── Auto-refresh job ─────────────────────────────────────────────────────────

func TestAutoRefresh_RefreshesBeforeExpiry(t *testing.T) {
	var refreshes atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			writeAuthResponse(w, "access-1", "refresh-1", 300)
		case "/auth/refresh":
			refreshes.Add(1)
			writeAuthResponse(w, "access-2", "refresh-2", 900000)
		}
	}))
	defer srv.Close()

	apiCfg := config.API{URL: srv.URL}
	clientCfg := config.Client{
		RequestTimeout: 5 * time.Second,
		RefreshMargin:  100 * time.Millisecond,
	}
	c, err := NewClient(apiCfg, clientCfg, logger.Nop())
	require.NoError(t, err)
	defer c.StopRefreshing()

	require.NoError(t, c.Login(context.Background(), "admin", "password"))

	require.Eventually(t, func() bool {
		return refreshes.Load() >= 1
	}, 3*time.Second, 10*time.Millisecond, "refresh job should fire before token expiry")
	assert.Equal(t, "access-2", c.Token())
}

func TestStopRefreshing_SafeWithoutJob(t *testing.T) {
	c := newTestClient(t, "http://localhost:8055")

	c.StopRefreshing()
	c.StopRefreshing()
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8055", "http://localhost:8055", false},
		{"https kept", "https://cms.example.com", "https://cms.example.com", false},
		{"no scheme", "localhost:8055", "http://localhost:8055", false},
		{"trailing slash", "http://localhost:8055/", "http://localhost:8055", false},
		{"surrounding space", " http://localhost:8055 ", "http://localhost:8055", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
