//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/batch-dashboard/internal/adapter/postgres"
	"github.com/heartmarshall/batch-dashboard/internal/adapter/postgres/batchrun"
	"github.com/heartmarshall/batch-dashboard/internal/adapter/postgres/batchsettings"
	"github.com/heartmarshall/batch-dashboard/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/batch-dashboard/internal/adapter/postgres/user"
	"github.com/heartmarshall/batch-dashboard/internal/adapter/queue"
	authpkg "github.com/heartmarshall/batch-dashboard/internal/auth"
	"github.com/heartmarshall/batch-dashboard/internal/config"
	"github.com/heartmarshall/batch-dashboard/internal/domain"
	authsvc "github.com/heartmarshall/batch-dashboard/internal/service/auth"
	batchsvc "github.com/heartmarshall/batch-dashboard/internal/service/batch"
	"github.com/heartmarshall/batch-dashboard/internal/transport/middleware"
	"github.com/heartmarshall/batch-dashboard/internal/transport/rest"
)

const testPassword = "password123"

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Users  *authsvc.Service
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	authCfg := config.AuthConfig{
		JWTSecret:        "test-secret-at-least-32-chars-long!!",
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   15 * time.Minute,
		PasswordHashCost: bcrypt.MinCost,
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	users := userrepo.New(pool)
	authService := authsvc.NewService(logger, users, jwtMgr, authCfg)

	batchService := batchsvc.NewService(logger,
		batchsettings.New(pool),
		batchrun.New(pool),
		postgres.NewTxManager(pool),
		queue.NewLogDispatcher(logger),
		config.BatchConfig{DefaultImportSetupID: 1, DefaultHourlyBatchCount: 60},
		config.CalendarConfig{
			AuthEndpoint: "https://accounts.example.com/o/oauth2/auth",
			ClientID:     "client-1",
			RedirectURI:  "https://dashboard.example.com/callback",
			Scope:        "calendar.readonly",
		},
	)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:         logger,
		Auth:           rest.NewAuthHandler(authService, logger),
		Batch:          rest.NewBatchHandler(batchService, logger),
		Health:         rest.NewHealthHandler("e2e", rest.Dependency{Name: "storage", Pinger: pool}),
		TokenValidator: authService,
		CORS:           config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,OPTIONS", AllowedHeaders: "Authorization,Content-Type"},
		LoginLimiter:   limiter,
		LoginPerMinute: 1000,
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Users:  authService,
	}
}

// createUser registers a fresh user with testPassword and returns its email.
func (ts *testServer) createUser(t *testing.T) string {
	t.Helper()
	email := "e2e-" + uuid.New().String()[:8] + "@example.com"
	_, err := ts.Users.Register(context.Background(), domain.LoginCredentials{Email: email, Password: testPassword})
	require.NoError(t, err)
	return email
}

// login returns an access token for email.
func (ts *testServer) login(t *testing.T, email string) string {
	t.Helper()
	status, body := ts.restRequest(t, http.MethodPost, "/auth/login", map[string]any{
		"email":    email,
		"password": testPassword,
	}, "")
	require.Equal(t, http.StatusOK, status, "login failed: %v", body)

	token, ok := body["token"].(string)
	require.True(t, ok, "expected token in login response")
	return token
}

// newUser is createUser followed by login.
func (ts *testServer) newUser(t *testing.T) (email, token string) {
	t.Helper()
	email = ts.createUser(t)
	return email, ts.login(t, email)
}

// restRequest sends a JSON request and decodes the JSON response.
func (ts *testServer) restRequest(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	return ts.do(t, method, path, rdr, token)
}

// sendRaw sends bodyStr as-is, allowing malformed payloads.
func (ts *testServer) sendRaw(t *testing.T, method, path, bodyStr, token string) (int, map[string]any) {
	t.Helper()
	return ts.do(t, method, path, strings.NewReader(bodyStr), token)
}

func (ts *testServer) do(t *testing.T, method, path string, body io.Reader, token string) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "response is not JSON: %s", raw)
	}
	return resp.StatusCode, out
}
