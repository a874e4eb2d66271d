package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAI-CHANDHAN/My-portfolio/config"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/auth"
	authdomain "github.com/SAI-CHANDHAN/My-portfolio/internal/auth/domain"
	authservice "github.com/SAI-CHANDHAN/My-portfolio/internal/auth/service"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/contact/notify"
)

type testEnv struct {
	router     *gin.Engine
	adminToken string
	userToken  string
}

func setupRouter(t *testing.T) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := NewMemoryStore()
	tokens := auth.NewTokenManager("test-secret", time.Hour, store.Users)
	svc := authservice.NewAuthService(store.Users, tokens)

	issue := func(email, role string) string {
		u, err := svc.CreateUser(context.Background(), email, "long-enough-pw", "", role)
		require.NoError(t, err)
		tok, _, err := tokens.Issue(u)
		require.NoError(t, err)
		return tok
	}

	r := BuildRouter(RouterDeps{
		ServiceName: "portfolio-api",
		Version:     "test",
		Environment: "test",
		ClientURL:   "http://localhost:3000",
		Logger:      zerolog.Nop(),
		Store:       store,
		Notifier:    notify.LogNotifier{},
		Verifier:    tokens,
		Tokens:      tokens,
		RateLimit:   config.RateLimitConfig{ContactPerMinute: 60, ContactBurst: 2, LoginPerMinute: 60},
	})

	return testEnv{
		router:     r,
		adminToken: issue("admin@example.com", authdomain.RoleAdmin),
		userToken:  issue("user@example.com", authdomain.RoleUser),
	}
}

func (e testEnv) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	env := setupRouter(t)

	routes := []struct{ method, path, body string }{
		{http.MethodGet, "/api/projects/admin/all", ""},
		{http.MethodPost, "/api/projects", `{"title":"x"}`},
		{http.MethodPut, "/api/projects/507f1f77bcf86cd799439011", `{}`},
		{http.MethodDelete, "/api/projects/507f1f77bcf86cd799439011", ""},
		{http.MethodGet, "/api/skills/admin/all", ""},
		{http.MethodPost, "/api/skills", `{}`},
		{http.MethodPost, "/api/skills/bulk", `[]`},
		{http.MethodPut, "/api/skills/507f1f77bcf86cd799439011", `{}`},
		{http.MethodDelete, "/api/skills/507f1f77bcf86cd799439011", ""},
		{http.MethodGet, "/api/contact", ""},
		{http.MethodPatch, "/api/contact/507f1f77bcf86cd799439011", `{"status":"read"}`},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			w := env.do(rt.method, rt.path, "", rt.body)
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			w = env.do(rt.method, rt.path, "garbage", rt.body)
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			w = env.do(rt.method, rt.path, env.userToken, rt.body)
			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.Contains(t, w.Body.String(), "admin role required")
		})
	}
}

func TestAdminTokenReachesHandlers(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodGet, "/api/projects/admin/all", env.adminToken, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = env.do(http.MethodDelete, "/api/skills/507f1f77bcf86cd799439011", env.adminToken, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthEndpoints(t *testing.T) {
	env := setupRouter(t)

	for _, path := range []string{"/health", "/healthz", "/api/health"} {
		w := env.do(http.MethodGet, path, "", "")
		require.Equal(t, http.StatusOK, w.Code, path)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body["status"])
		assert.NotEmpty(t, body["timestamp"])
	}
}

func TestRequestIDAndSecurityHeaders(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodGet, "/api/skills", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestMetricsExposed(t *testing.T) {
	env := setupRouter(t)

	env.do(http.MethodGet, "/api/projects", "", "")
	w := env.do(http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "portfolio_http_requests_total")
}

func TestContactSubmitIsRateLimited(t *testing.T) {
	env := setupRouter(t)
	body := `{"name":"Ann","email":"ann@example.com","subject":"Hi","message":"Hello"}`

	assert.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/api/contact", "", body).Code)
	assert.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/api/contact", "", body).Code)

	w := env.do(http.MethodPost, "/api/contact", "", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many messages")
}

func TestOpenStoreMemory(t *testing.T) {
	store, err := OpenStore(context.Background(), config.StoreConfig{Driver: config.StoreMemory})
	require.NoError(t, err)
	assert.Nil(t, store.Pinger)
	assert.NoError(t, store.Close(context.Background()))

	_, err = OpenStore(context.Background(), config.StoreConfig{Driver: "sqlite"})
	assert.Error(t, err)
}

func TestOpenNotifierWithoutRedis(t *testing.T) {
	n, closeFn, err := OpenNotifier(context.Background(), config.RedisConfig{})
	require.NoError(t, err)
	assert.IsType(t, notify.LogNotifier{}, n)
	assert.NoError(t, closeFn())
}

func TestNewVerifierRejectsEmptyKeyTokens(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	u, err := authservice.NewAuthService(store.Users, nil).CreateUser(ctx, "admin@example.com", "long-enough-pw", "", authdomain.RoleAdmin)
	require.NoError(t, err)

	verifier, tokens, err := NewVerifier(ctx, config.AuthConfig{Provider: config.AuthLocal, JWTExpiry: time.Hour}, store.Users)
	require.NoError(t, err)
	require.NotNil(t, tokens)

	forged, _, err := auth.NewTokenManager("", time.Hour, store.Users).Issue(u)
	require.NoError(t, err)
	_, err = verifier.Verify(ctx, forged)
	assert.Error(t, err)

	own, _, err := tokens.Issue(u)
	require.NoError(t, err)
	id, err := verifier.Verify(ctx, own)
	require.NoError(t, err)
	assert.Equal(t, authdomain.RoleAdmin, id.Role)
}
