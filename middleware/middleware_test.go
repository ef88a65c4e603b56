package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alerta-golpe/api-go/apperrors"
	"github.com/alerta-golpe/api-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type stubAuthenticator struct {
	sessions map[string]*utils.Session
	err      error
}

func (s *stubAuthenticator) Authenticate(_ context.Context, token string) (*utils.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	session, ok := s.sessions[token]
	if !ok {
		return nil, apperrors.Unauthorized("Token inválido")
	}
	return session, nil
}

func newRouter(auth Authenticator, admin bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/", AuthMiddleware(auth))
	if admin {
		group.Use(RequireAdmin())
	}
	group.GET("/protected", func(c *gin.Context) {
		c.JSON(200, gin.H{"user": utils.GetSession(c).UserID})
	})
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	r := newRouter(&stubAuthenticator{}, false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/protected", nil))

	require.Equal(t, 401, w.Code)
	body := decode(t, w)
	require.Equal(t, false, body["success"])
	require.Equal(t, "UNAUTHORIZED", body["code"])
}

func TestAuthMiddleware_BadFormat(t *testing.T) {
	r := newRouter(&stubAuthenticator{}, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	auth := &stubAuthenticator{sessions: map[string]*utils.Session{"good": {UserID: 9}}}
	r := newRouter(auth, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	require.Equal(t, float64(9), decode(t, w)["user"])
}

func TestAuthMiddleware_StoreDown(t *testing.T) {
	auth := &stubAuthenticator{err: apperrors.Internal("load session user", context.DeadlineExceeded)}
	r := newRouter(auth, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	r.ServeHTTP(w, req)

	require.Equal(t, 500, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	auth := &stubAuthenticator{sessions: map[string]*utils.Session{
		"user":  {UserID: 1},
		"admin": {UserID: 2, IsAdmin: true},
	}}
	r := newRouter(auth, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer user")
	r.ServeHTTP(w, req)
	require.Equal(t, 403, w.Code)
	require.Equal(t, "FORBIDDEN", decode(t, w)["code"])

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer admin")
	r.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS("https://alertagolpe.com.br"))
	r.GET("/x", func(c *gin.Context) { c.Status(200) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("OPTIONS", "/x", nil)
	req.Header.Set("Origin", "https://alertagolpe.com.br")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "https://alertagolpe.com.br", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("Origin", "https://evil.example")
	r.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)
	require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	log := logrus.New()
	log.Out = &buf
	log.Formatter = &logrus.JSONFormatter{}

	r := gin.New()
	r.Use(RequestLogger(log))
	r.GET("/api/scams", func(c *gin.Context) { c.Status(404) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/scams", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	r.ServeHTTP(w, req)

	require.Equal(t, "req-1", w.Header().Get(RequestIDHeader))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "req-1", entry["request_id"])
	require.Equal(t, float64(404), entry["status"])
	require.Equal(t, "warning", entry["level"])
}
