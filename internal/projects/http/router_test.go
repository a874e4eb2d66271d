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
	"github.com/SAI-CHANDHAN/My-portfolio/internal/projects/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/projects/repository"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/projects/service"
)

// fakeAdmin lets requests through only when X-Admin is set.
func fakeAdmin(c *gin.Context) {
	if c.GetHeader("X-Admin") == "" {
		apperr.Respond(c, apperr.Unauthenticated("No token provided"))
		return
	}
	c.Next()
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(service.NewProjectService(repository.NewMemory())).Register(r.Group("/api/projects"), fakeAdmin)
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

func createProject(t *testing.T, r *gin.Engine, body map[string]any) domain.Project {
	t.Helper()
	w := do(r, http.MethodPost, "/api/projects", body, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var p domain.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	return p
}

func validBody(title string) map[string]any {
	return map[string]any{
		"title":            title,
		"shortDescription": "short",
		"description":      "long description",
		"technologies":     []string{"Go", "Gin"},
	}
}

func TestCreateRequiresAdmin(t *testing.T) {
	r := newRouter(t)
	w := do(r, http.MethodPost, "/api/projects", validBody("X"), false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateValidation(t *testing.T) {
	r := newRouter(t)
	w := do(r, http.MethodPost, "/api/projects", map[string]any{
		"title":    "",
		"priority": 101,
		"category": "games",
		"liveUrl":  "not a url",
	}, true)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Message string              `json:"message"`
		Errors  []apperr.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Validation failed", body.Message)

	fields := map[string]bool{}
	for _, e := range body.Errors {
		fields[e.Field] = true
	}
	for _, f := range []string{"title", "shortDescription", "description", "priority", "category", "liveUrl"} {
		assert.True(t, fields[f], "expected error for %s", f)
	}

	w = do(r, http.MethodGet, "/api/projects/admin/all", nil, true)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreateDuplicateTitle(t *testing.T) {
	r := newRouter(t)
	createProject(t, r, validBody("Same"))
	w := do(r, http.MethodPost, "/api/projects", validBody("Same"), true)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPublicReads(t *testing.T) {
	r := newRouter(t)
	pub := createProject(t, r, validBody("Public One"))
	draft := validBody("Draft One")
	draft["isPublished"] = false
	draft["featured"] = true
	hidden := createProject(t, r, draft)

	w := do(r, http.MethodGet, "/api/projects?page=1&limit=5", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Projects   []domain.Project `json:"projects"`
		Pagination struct {
			Page, Limit, Total, Pages int
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Projects, 1)
	assert.Equal(t, pub.ID, list.Projects[0].ID)
	assert.Equal(t, 1, list.Pagination.Total)
	assert.Equal(t, 5, list.Pagination.Limit)

	w = do(r, http.MethodGet, "/api/projects/featured", nil, false)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(r, http.MethodGet, "/api/projects/"+pub.Slug, nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(r, http.MethodGet, "/api/projects/"+pub.ID.Hex(), nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(r, http.MethodGet, "/api/projects/"+hidden.ID.Hex(), nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/api/projects/admin/all", nil, true)
	var all []domain.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 2)
}

func TestListRejectsUnknownCategory(t *testing.T) {
	r := newRouter(t)
	w := do(r, http.MethodGet, "/api/projects?category=games", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAndDelete(t *testing.T) {
	r := newRouter(t)
	p := createProject(t, r, validBody("Before"))

	w := do(r, http.MethodPut, "/api/projects/"+p.ID.Hex(), map[string]any{"title": "After", "priority": 3}, true)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var got domain.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "After", got.Title)
	assert.Equal(t, "after", got.Slug)
	assert.Equal(t, "short", got.ShortDescription)

	w = do(r, http.MethodPut, "/api/projects/not-hex", map[string]any{"title": "x"}, true)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodDelete, "/api/projects/"+p.ID.Hex(), nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Project deleted successfully"}`, w.Body.String())

	w = do(r, http.MethodDelete, "/api/projects/"+p.ID.Hex(), nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateRejectsBlankRequiredFields(t *testing.T) {
	r := newRouter(t)
	p := createProject(t, r, validBody("Keep"))

	w := do(r, http.MethodPut, "/api/projects/"+p.ID.Hex(), map[string]any{"title": "", "description": "  "}, true)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	var body struct {
		Errors []apperr.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "title", body.Errors[0].Field)
	assert.Equal(t, "description", body.Errors[1].Field)

	w = do(r, http.MethodGet, "/api/projects/"+p.ID.Hex(), nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	var got domain.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Keep", got.Title)
	assert.Equal(t, "keep", got.Slug)
	assert.Equal(t, "long description", got.Description)
}

func TestListWithHugePageIsEmpty(t *testing.T) {
	r := newRouter(t)
	createProject(t, r, validBody("Only"))

	w := do(r, http.MethodGet, "/api/projects?page=9223372036854775807&limit=10", nil, false)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body struct {
		Projects []domain.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Projects)
}
