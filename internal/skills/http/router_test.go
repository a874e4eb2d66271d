package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/apperr"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/skills/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/skills/repository"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/skills/service"
)

func fakeAdmin(c *gin.Context) {
	if c.GetHeader("X-Admin") == "" {
		apperr.Respond(c, apperr.Forbidden("Access denied"))
		return
	}
	c.Next()
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(service.NewSkillService(repository.NewMemory())).Register(r.Group("/api/skills"), fakeAdmin)
	return r
}

func do(r *gin.Engine, method, target string, body any, admin bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if admin {
		req.Header.Set("X-Admin", "1")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type bulkBody struct {
	Message string                `json:"message"`
	Created []domain.Skill        `json:"created"`
	Failed  []service.BulkFailure `json:"failed"`
	Errors  []apperr.FieldError   `json:"errors"`
}

func TestBulkValidationFailsWholeBatch(t *testing.T) {
	r := newRouter(t)
	w := do(r, http.MethodPost, "/api/skills/bulk", []map[string]any{
		{"name": "Go", "category": "Backend"},
		{"name": "Rust", "category": "Backend"},
		{"name": "Zig", "category": "Backend"},
		{"name": "Odin"},
	}, true)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body bulkBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "[3].category", body.Errors[0].Field)

	w = do(r, http.MethodGet, "/api/skills/admin/all", nil, true)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestBulkPartialAndAllConflict(t *testing.T) {
	r := newRouter(t)
	batch := []map[string]any{
		{"name": "Go", "category": "Backend"},
		{"name": "go", "category": "backend"},
	}
	w := do(r, http.MethodPost, "/api/skills/bulk", batch, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var body bulkBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Created, 1)
	require.Len(t, body.Failed, 1)
	assert.Equal(t, 1, body.Failed[0].Index)

	w = do(r, http.MethodPost, "/api/skills/bulk", batch, true)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateGetAndVisibility(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodPost, "/api/skills", map[string]any{"name": "Go", "category": "Backend"}, false)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, http.MethodPost, "/api/skills", map[string]any{"name": "Go", "category": "Backend", "proficiency": 150}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/skills", map[string]any{"name": "Go", "category": "Backend", "isVisible": false}, true)
	require.Equal(t, http.StatusCreated, w.Code)
	var sk domain.Skill
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sk))
	assert.Equal(t, domain.DefaultColor, sk.Color)

	w = do(r, http.MethodGet, "/api/skills/"+sk.ID.Hex(), nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPut, "/api/skills/"+sk.ID.Hex(), map[string]any{"isVisible": true}, true)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/skills/"+sk.ID.Hex(), nil, false)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/skills/categories", nil, false)
	assert.JSONEq(t, `["Backend"]`, w.Body.String())

	w = do(r, http.MethodGet, "/api/skills?sort=bogus", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodDelete, "/api/skills/"+sk.ID.Hex(), nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateRejectsBlankNameOrCategory(t *testing.T) {
	r := newRouter(t)
	w := do(r, http.MethodPost, "/api/skills", map[string]any{"name": "Go", "category": "Backend"}, true)
	require.Equal(t, http.StatusCreated, w.Code)
	var sk domain.Skill
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sk))

	w = do(r, http.MethodPut, "/api/skills/"+sk.ID.Hex(), map[string]any{"name": "", "category": " "}, true)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	var body struct {
		Errors []apperr.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "name", body.Errors[0].Field)
	assert.Equal(t, "category", body.Errors[1].Field)

	w = do(r, http.MethodGet, "/api/skills/"+sk.ID.Hex(), nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sk))
	assert.Equal(t, "Go", sk.Name)
	assert.Equal(t, "Backend", sk.Category)
}
