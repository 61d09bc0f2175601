package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/pos-terminal/internal/config"
	"github.com/sangkips/pos-terminal/internal/logger"
)

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/boom", func(c *gin.Context) { c.String(http.StatusServiceUnavailable, "down") })
	return r
}

func get(r *gin.Engine, path, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = ip + ":5555"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterPerClient(t *testing.T) {
	rl := NewClientRateLimiter(RateLimiterConfig{Requests: 2, Window: time.Hour})
	r := newRouter(rl.Middleware())

	assert.Equal(t, http.StatusOK, get(r, "/ping", "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, get(r, "/ping", "10.0.0.1").Code)

	w := get(r, "/ping", "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), `"success":false`)

	// other clients keep their own budget
	assert.Equal(t, http.StatusOK, get(r, "/ping", "10.0.0.2").Code)
	assert.Equal(t, 2, rl.Clients())
}

func TestRateLimiterDisabled(t *testing.T) {
	rl := NewClientRateLimiter(RateLimiterConfig{})
	r := newRouter(rl.Middleware())
	for i := 0; i < 50; i++ {
		require.Equal(t, http.StatusOK, get(r, "/ping", "10.0.0.1").Code)
	}
	assert.Zero(t, rl.Clients())
}

func TestRateLimiterDropsStaleClients(t *testing.T) {
	rl := NewClientRateLimiter(RateLimiterConfig{Requests: 5, Window: time.Minute, EntryTTL: time.Minute})
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.getLimiter("a")
	now = now.Add(2 * time.Minute)
	rl.getLimiter("b")
	assert.Equal(t, 1, rl.Clients())
}

func TestLoggerMiddlewareWritesStructuredLines(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("info", &buf)
	r := newRouter(LoggerMiddleware(log))

	w := get(r, "/ping?x=1", "10.0.0.9")
	require.Equal(t, http.StatusOK, w.Code)
	id := w.Header().Get("X-Request-ID")
	require.NotEmpty(t, id)

	out := buf.String()
	assert.Contains(t, out, `"request_id":"`+id+`"`)
	assert.Contains(t, out, `"path":"/ping?x=1"`)
	assert.Contains(t, out, `"status":200`)

	buf.Reset()
	get(r, "/boom", "10.0.0.9")
	assert.Contains(t, buf.String(), `"severity":"ERROR"`)
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	r := newRouter(CORSMiddleware(&config.CORSConfig{AllowedOrigins: []string{"http://localhost:8081"}}))

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:8081")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:8081", w.Header().Get("Access-Control-Allow-Origin"))
}
