package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAI-CHANDHAN/My-portfolio/config"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/auth"
	authservice "github.com/SAI-CHANDHAN/My-portfolio/internal/auth/service"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/bootstrap"
)

func startServer(t *testing.T) (url, token string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := bootstrap.NewMemoryStore()
	tokens := auth.NewTokenManager("cli-secret", time.Hour, store.Users)
	u, err := authservice.NewAuthService(store.Users, tokens).
		CreateAdmin(context.Background(), "admin@example.com", "long-enough-pw", "Admin")
	require.NoError(t, err)
	token, _, err = tokens.Issue(u)
	require.NoError(t, err)

	srv := httptest.NewServer(bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "portfolio-api",
		Version:     "test",
		Environment: "test",
		Logger:      zerolog.Nop(),
		Store:       store,
		Verifier:    tokens,
		Tokens:      tokens,
		RateLimit:   config.RateLimitConfig{ContactPerMinute: 10, ContactBurst: 10, LoginPerMinute: 10},
	}))
	t.Cleanup(srv.Close)
	return srv.URL, token
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&App{out: &out})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestHealthCommand(t *testing.T) {
	url, _ := startServer(t)

	out, err := run(t, "health", "--url", url)
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "healthy"`)
}

func TestSkillsImportAndList(t *testing.T) {
	url, token := startServer(t)

	path := filepath.Join(t.TempDir(), "skills.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name": "Go", "category": "Backend", "level": "expert"},
		{"name": "Vue", "category": "Frontend"}
	]`), 0o600))

	out, err := run(t, "skills", "import", path, "--url", url, "--token", token)
	require.NoError(t, err)
	assert.Contains(t, out, "2 skills created, 0 failed")

	out, err = run(t, "skills", "categories", "--url", url)
	require.NoError(t, err)
	assert.Contains(t, out, "Backend")
	assert.Contains(t, out, "Frontend")

	_, err = run(t, "skills", "import", path, "--url", url)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestProjectsAllNeedsToken(t *testing.T) {
	url, token := startServer(t)

	_, err := run(t, "projects", "all", "--url", url)
	require.Error(t, err)

	out, err := run(t, "projects", "all", "--url", url, "--token", token)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestReadSkillsRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o600))

	_, err := readSkills(path)
	assert.ErrorContains(t, err, "holds no skills")
}
