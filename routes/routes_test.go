package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alerta-golpe/api-go/controllers"
	"github.com/alerta-golpe/api-go/repositories/memory"
	"github.com/alerta-golpe/api-go/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Pagination *struct {
		Total      int64 `json:"total"`
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		TotalPages int   `json:"totalPages"`
	} `json:"pagination"`
	Message string `json:"message"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

type harness struct {
	t       *testing.T
	store   *memory.Store
	storage *memory.ObjectStorage
	dbErr   error
	router  *gin.Engine
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.Out = io.Discard

	h := &harness{
		t:       t,
		store:   memory.NewStore(),
		storage: memory.NewObjectStorage("https://files.example.com"),
	}
	store := h.store
	domainCache := memory.NewDomainCache()

	deps := Dependencies{
		Auth:       services.NewAuthService(store.Users(), nil, "test-secret", time.Hour, bcrypt.MinCost),
		Users:      services.NewUserService(store.Users(), store.Scams(), store.Comments(), store.Likes(), bcrypt.MinCost),
		Comments:   services.NewCommentService(store.Comments()),
		Scams:      services.NewScamService(store.Scams(), store.Likes(), store.SavedScams(), store.Reports(), domainCache, log),
		Categories: services.NewCategoryService(store.Categories()),
		Domains:    services.NewDomainService(store.Scams(), domainCache, log),
		Uploads:    services.NewUploadService(h.storage),
		Admin:      services.NewAdminService(store.Users(), store.Scams(), store.Comments(), store.Reports()),
		HealthChecks: map[string]controllers.HealthCheck{
			"database": func(context.Context) error { return h.dbErr },
		},
		Log: log,
	}

	h.router = gin.New()
	SetupRoutes(h.router, deps)
	return h
}

func (h *harness) do(method, path string, body interface{}, token string) (*httptest.ResponseRecorder, envelope) {
	h.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(h.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func (h *harness) register(name string) (string, uint) {
	h.t.Helper()
	w, env := h.do(http.MethodPost, "/api/register", gin.H{
		"name":     name,
		"email":    name + "@example.com",
		"password": "senha123",
	}, "")
	require.Equal(h.t, http.StatusCreated, w.Code, w.Body.String())

	var auth struct {
		Token string `json:"token"`
		User  struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	require.NoError(h.t, json.Unmarshal(env.Data, &auth))
	return auth.Token, auth.User.ID
}

func (h *harness) createScam(token string, body gin.H) uint {
	h.t.Helper()
	payload := gin.H{
		"title":       "Loja falsa de eletrônicos",
		"description": "Site vende celulares com desconto e nunca entrega os produtos",
		"category":    "FAKE_STORE",
	}
	for k, v := range body {
		payload[k] = v
	}

	w, env := h.do(http.MethodPost, "/api/scams", payload, token)
	require.Equal(h.t, http.StatusCreated, w.Code, w.Body.String())

	var scam struct {
		ID uint `json:"id"`
	}
	require.NoError(h.t, json.Unmarshal(env.Data, &scam))
	return scam.ID
}

func TestHealth(t *testing.T) {
	h := newHarness(t)

	w, _ := h.do(http.MethodGet, "/api/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	h.dbErr = errors.New("connection refused")
	w, _ = h.do(http.MethodGet, "/api/health", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"down"`)
}

func TestRegisterLoginAndProfile(t *testing.T) {
	h := newHarness(t)
	token, id := h.register("ana")

	w, env := h.do(http.MethodGet, "/api/profile", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"email":"ana@example.com"`)
	assert.NotContains(t, string(env.Data), "password")

	w, env = h.do(http.MethodPost, "/api/register", gin.H{"name": "ana", "email": "ANA@example.com", "password": "outra123"}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONFLICT", env.Code)

	w, env = h.do(http.MethodPost, "/api/login", gin.H{"email": "ana@example.com", "password": "errada"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Code)

	w, _ = h.do(http.MethodPost, "/api/login", gin.H{"email": "ana@example.com", "password": "senha123"}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = h.do(http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	h := newHarness(t)

	w, env := h.do(http.MethodPost, "/api/comments", gin.H{"content": "oi", "scamId": 1}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)

	w, _ = h.do(http.MethodGet, "/api/profile", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGoogleLoginDisabled(t *testing.T) {
	h := newHarness(t)
	w, env := h.do(http.MethodPost, "/api/auth/google", gin.H{"code": "abc"}, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "SERVICE_UNAVAILABLE", env.Code)
}

func TestScamValidation(t *testing.T) {
	h := newHarness(t)
	token, _ := h.register("ana")

	w, env := h.do(http.MethodPost, "/api/scams", gin.H{
		"title":       "Golpe qualquer",
		"description": "Descrição longa o bastante para passar",
		"category":    "LOTTERY",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Code)

	w, _ = h.do(http.MethodGet, "/api/scams?category=nope", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = h.do(http.MethodGet, "/api/scams/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = h.do(http.MethodGet, "/api/scams/999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", env.Code)
}

func TestCommentOwnership(t *testing.T) {
	h := newHarness(t)
	ownerToken, _ := h.register("ana")
	otherToken, _ := h.register("bruno")
	adminToken, adminID := h.register("carla")
	h.store.SetAdmin(adminID, true)

	scamID := h.createScam(ownerToken, nil)

	w, env := h.do(http.MethodPost, "/api/comments", gin.H{"content": "Também caí nessa", "scamId": scamID}, ownerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var comment struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &comment))
	path := fmt.Sprintf("/api/comments/%d", comment.ID)

	w, env = h.do(http.MethodPatch, path, gin.H{"content": "editado por outro"}, otherToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", env.Code)

	w, env = h.do(http.MethodGet, path, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "Também caí nessa")

	w, _ = h.do(http.MethodDelete, path, nil, otherToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = h.do(http.MethodGet, path, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = h.do(http.MethodPatch, path, gin.H{"content": "editado pelo autor"}, ownerToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = h.do(http.MethodDelete, path, nil, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = h.do(http.MethodGet, path, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommentOnMissingScam(t *testing.T) {
	h := newHarness(t)
	token, _ := h.register("ana")

	w, env := h.do(http.MethodPost, "/api/comments", gin.H{"content": "oi", "scamId": 404}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "RELATED_NOT_FOUND", env.Code)
}

func TestScamLifecycle(t *testing.T) {
	h := newHarness(t)
	ownerToken, ownerID := h.register("ana")
	otherToken, _ := h.register("bruno")

	scamID := h.createScam(ownerToken, gin.H{"scammerWebsite": "https://www.loja-barata.com/oferta"})
	path := fmt.Sprintf("/api/scams/%d", scamID)

	w, _ := h.do(http.MethodPatch, path, gin.H{"title": "Título alterado indevidamente"}, otherToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env := h.do(http.MethodPost, path+"/resolve", gin.H{"note": "Site foi retirado do ar", "links": []string{"https://example.com/noticia"}}, ownerToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, string(env.Data), `"isResolved":true`)

	w, env = h.do(http.MethodPost, path+"/resolve", gin.H{"note": "Resolvido outra vez"}, ownerToken)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, env = h.do(http.MethodPost, path+"/like", nil, otherToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"liked":true,"likes":1}`, string(env.Data))

	w, env = h.do(http.MethodGet, fmt.Sprintf("/api/users/%d/stats", ownerID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalScams":1,"resolvedScams":1,"totalComments":0,"totalLikes":1}`, string(env.Data))

	w, _ = h.do(http.MethodPost, path+"/save", nil, otherToken)
	assert.Equal(t, http.StatusOK, w.Code)
	w, env = h.do(http.MethodGet, "/api/saved-scams", nil, otherToken)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, env.Pagination)
	assert.EqualValues(t, 1, env.Pagination.Total)

	w, _ = h.do(http.MethodDelete, path+"/save", nil, otherToken)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = h.do(http.MethodDelete, path+"/save", nil, otherToken)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = h.do(http.MethodGet, "/api/domains/check?domain=https://www.Loja-Barata.com/x", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"domain":"loja-barata.com"`)
	assert.Contains(t, string(env.Data), `"risk":"warning"`)

	w, _ = h.do(http.MethodDelete, path, nil, ownerToken)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = h.do(http.MethodGet, path, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDomainCheckRejectsInvalidInput(t *testing.T) {
	h := newHarness(t)

	w, _ := h.do(http.MethodGet, "/api/domains/check", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = h.do(http.MethodGet, "/api/domains/check?domain=not_a_domain", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserAccountRoutes(t *testing.T) {
	h := newHarness(t)
	token, id := h.register("ana")
	otherToken, _ := h.register("bruno")

	w, env := h.do(http.MethodPatch, "/api/users/profile", gin.H{"bio": "Vítima de golpe do PIX"}, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "Vítima de golpe do PIX")

	w, _ = h.do(http.MethodPatch, "/api/users/profile", gin.H{}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = h.do(http.MethodPatch, fmt.Sprintf("/api/users/%d", id), gin.H{"name": "Bruno Invasor"}, otherToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env = h.do(http.MethodPatch, "/api/users/password", gin.H{"currentPassword": "errada", "newPassword": "nova1234"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Code)

	w, _ = h.do(http.MethodPatch, "/api/users/password", gin.H{"currentPassword": "senha123", "newPassword": "nova1234"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = h.do(http.MethodPost, "/api/login", gin.H{"email": "ana@example.com", "password": "senha123"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = h.do(http.MethodPost, "/api/login", gin.H{"email": "ana@example.com", "password": "nova1234"}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = h.do(http.MethodGet, "/api/users?limit=1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = h.do(http.MethodDelete, "/api/users/profile", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = h.do(http.MethodGet, "/api/profile", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserListPagination(t *testing.T) {
	h := newHarness(t)
	h.register("ana")
	h.register("bruno")
	h.register("carla")

	w, env := h.do(http.MethodGet, "/api/users?page=2&limit=2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, env.Pagination)
	assert.EqualValues(t, 3, env.Pagination.Total)
	assert.Equal(t, 2, env.Pagination.Page)
	assert.Equal(t, 2, env.Pagination.TotalPages)

	var users []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &users))
	assert.Len(t, users, 1)
}

func TestAdminRoutes(t *testing.T) {
	h := newHarness(t)
	userToken, _ := h.register("ana")
	adminToken, adminID := h.register("carla")
	h.store.SetAdmin(adminID, true)

	scamID := h.createScam(userToken, nil)

	w, _ := h.do(http.MethodGet, "/api/admin/stats", nil, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env := h.do(http.MethodGet, "/api/admin/stats", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, string(env.Data), `"totalUsers":2`)
	assert.Contains(t, string(env.Data), `"pendingScams":1`)

	w, env = h.do(http.MethodGet, "/api/admin/recent-activity", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	var activity []struct {
		Type string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &activity))
	assert.Len(t, activity, 3)
	assert.Equal(t, "scam", activity[0].Type)

	w, _ = h.do(http.MethodPost, fmt.Sprintf("/api/scams/%d/report", scamID), gin.H{"reason": "Conteúdo falso"}, userToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, env = h.do(http.MethodGet, "/api/admin/reports", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	var reports []struct {
		ID       uint `json:"id"`
		Reporter struct {
			Email string `json:"email"`
		} `json:"reporter"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "ana@example.com", reports[0].Reporter.Email)

	w, _ = h.do(http.MethodPatch, fmt.Sprintf("/api/admin/reports/%d", reports[0].ID), gin.H{"status": "PENDING"}, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = h.do(http.MethodPatch, fmt.Sprintf("/api/admin/reports/%d", reports[0].ID), gin.H{"status": "REVIEWED"}, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = h.do(http.MethodPatch, fmt.Sprintf("/api/admin/scams/%d/status", scamID), gin.H{"status": "VERIFIED"}, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	w, env = h.do(http.MethodGet, fmt.Sprintf("/api/scams/%d", scamID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"status":"VERIFIED"`)
}

func TestCategories(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, services.NewCategoryService(h.store.Categories()).EnsureDefaults(context.Background()))

	w, env := h.do(http.MethodGet, "/api/categories", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var categories []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &categories))
	assert.Len(t, categories, 10)

	w, _ = h.do(http.MethodGet, "/api/categories/pix", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = h.do(http.MethodGet, "/api/categories/loteria", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEvidenceUploads(t *testing.T) {
	h := newHarness(t)
	token, id := h.register("ana")
	otherToken, _ := h.register("bruno")

	w, env := h.do(http.MethodPost, "/api/upload/evidence/presigned-url", gin.H{
		"fileName":    "print.png",
		"contentType": "image/png",
		"fileSize":    2048,
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var presigned struct {
		Key string `json:"key"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &presigned))
	assert.Contains(t, presigned.Key, fmt.Sprintf("evidence/%d/", id))

	w, _ = h.do(http.MethodPost, "/api/upload/evidence/presigned-url", gin.H{
		"fileName":    "video.mp4",
		"contentType": "video/mp4",
		"fileSize":    2048,
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = h.do(http.MethodDelete, "/api/upload/evidence/"+presigned.Key, nil, otherToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = h.do(http.MethodDelete, "/api/upload/evidence/"+presigned.Key, nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{presigned.Key}, h.storage.Deleted)
}
