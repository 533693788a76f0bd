package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoquest/internal/session"
	"ecoquest/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAuth map[string]session.Session

func (s stubAuth) Authenticate(_ context.Context, token string) (session.Session, error) {
	if token == "revoked" {
		return session.Session{}, utils.ErrSessionRevoked
	}
	sess, ok := s[token]
	if !ok {
		return session.Session{}, utils.ErrUnauthorized
	}
	return sess, nil
}

func newRouter(auth Authenticator, roles ...string) *gin.Engine {
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/private", JWTAuthMiddleware(auth), RoleMiddleware(roles...), func(c *gin.Context) {
		s, _ := CurrentSession(c)
		c.String(http.StatusOK, s.AccountID)
	})
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var body utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestJWTAuthMiddleware(t *testing.T) {
	auth := stubAuth{
		"admin-token": {ID: "s1", AccountID: "admin-1", Role: "admin"},
		"super-token": {ID: "s2", AccountID: "super-1", Role: "super_admin"},
	}
	r := newRouter(auth, "admin", "super_admin")

	tests := []struct {
		name   string
		target string
		header string
		want   int
	}{
		{"bearer header", "/private", "Bearer admin-token", http.StatusOK},
		{"query token", "/private?access_token=super-token", "", http.StatusOK},
		{"missing token", "/private", "", http.StatusUnauthorized},
		{"unknown token", "/private", "Bearer nope", http.StatusUnauthorized},
		{"revoked token", "/private", "Bearer revoked", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRoleMiddleware_Forbidden(t *testing.T) {
	auth := stubAuth{"admin-token": {ID: "s1", AccountID: "admin-1", Role: "admin"}}
	r := newRouter(auth, "super_admin")

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	body := decode(t, w)
	assert.Equal(t, "error", body.Status)
	assert.NotEmpty(t, body.TraceID)
}

func TestTraceIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("trace_id")) })

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, incoming)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	_, err := uuid.Parse(w.Body.String())
	assert.NoError(t, err)
	assert.Equal(t, w.Body.String(), w.Header().Get(TraceIDHeader))
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://admin.ecoquest.id"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://admin.ecoquest.id")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://admin.ecoquest.id", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.POST("/auth/login", RateLimit(NewRateLimiter(2)), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, "other clients keep their own bucket")
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter(5)
	rl.Allow("idle")
	rl.Allow("busy")
	rl.visitors["idle"].lastSeen = time.Now().Add(-time.Hour)

	rl.Cleanup(time.Minute)

	assert.NotContains(t, rl.visitors, "idle")
	assert.Contains(t, rl.visitors, "busy")
}
