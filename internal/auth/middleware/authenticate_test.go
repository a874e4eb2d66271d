package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/auth"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/auth/domain"
)

type stubVerifier map[string]domain.Identity

func (s stubVerifier) Verify(_ context.Context, token string) (domain.Identity, error) {
	if id, ok := s[token]; ok {
		return id, nil
	}
	return domain.Identity{}, auth.ErrInvalidToken
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v := stubVerifier{
		"admin-token": {ID: "1", Email: "admin@example.com", Role: domain.RoleAdmin},
		"user-token":  {ID: "2", Email: "user@example.com", Role: domain.RoleUser},
	}
	r.GET("/admin", Authenticate(v), RequireRole(domain.RoleAdmin), func(c *gin.Context) {
		id, ok := auth.IdentityFrom(c.Request.Context())
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, id.Email)
	})
	r.GET("/role-only", RequireRole(domain.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func get(r *gin.Engine, path, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	r := newEngine()

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic admin-token", http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"invalid token", "Bearer forged", http.StatusUnauthorized},
		{"non-admin", "Bearer user-token", http.StatusForbidden},
		{"admin", "Bearer admin-token", http.StatusOK},
		{"scheme case", "bearer admin-token", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := get(r, "/admin", tc.header)
			assert.Equal(t, tc.status, w.Code, w.Body.String())
		})
	}

	w := get(r, "/admin", "Bearer admin-token")
	assert.Equal(t, "admin@example.com", w.Body.String())
}

func TestRequireRoleWithoutIdentity(t *testing.T) {
	w := get(newEngine(), "/role-only", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateFailsClosedOnVerifierError(t *testing.T) {
	r := gin.New()
	r.GET("/x", Authenticate(failingVerifier{}), func(c *gin.Context) { c.Status(http.StatusOK) })
	w := get(r, "/x", "Bearer anything")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

type failingVerifier struct{}

func (failingVerifier) Verify(context.Context, string) (domain.Identity, error) {
	return domain.Identity{}, errors.New("store unavailable")
}
