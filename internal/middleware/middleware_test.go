package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/middleware"
	"taskboard/pkg/log"
)

func newEngine(mw middleware.Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(handlers...)
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestIDFromContext(c.Request.Context()))
	})
	return engine
}

func get(engine *gin.Engine, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	for k, v := range header {
		req.Header[http.CanonicalHeaderKey(k)] = v
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})
	engine := newEngine(mw, mw.RequestID())

	w := get(engine, nil)
	generated := w.Header().Get(middleware.HeaderRequestID)
	require.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String(), "id must reach the request context")

	w = get(engine, http.Header{middleware.HeaderRequestID: {"abc-123"}})
	assert.Equal(t, "abc-123", w.Header().Get(middleware.HeaderRequestID))
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestRateLimit(t *testing.T) {
	// 10/min gives a burst of one request.
	mw := middleware.New(log.NewNop(), middleware.Config{RateLimitPerMin: 10})
	engine := newEngine(mw, mw.RateLimit())

	assert.Equal(t, http.StatusOK, get(engine, nil).Code)

	w := get(engine, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Too many requests."}`, w.Body.String())

	other := get(engine, http.Header{"X-Forwarded-For": {"10.0.0.9"}})
	assert.Equal(t, http.StatusOK, other.Code, "limits are per client")
}

func TestRateLimitConcurrentFirstRequests(t *testing.T) {
	// 60/min gives a burst of six requests, refilling one per second.
	mw := middleware.New(log.NewNop(), middleware.Config{RateLimitPerMin: 60})
	engine := newEngine(mw, mw.RateLimit())

	var allowed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if get(engine, nil).Code == http.StatusOK {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	// one extra token may refill while the goroutines run
	assert.LessOrEqual(t, int(allowed.Load()), 7)
	assert.GreaterOrEqual(t, int(allowed.Load()), 6)
}

func TestRateLimitDisabled(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})
	engine := newEngine(mw, mw.RateLimit())

	for i := 0; i < 50; i++ {
		require.Equal(t, http.StatusOK, get(engine, nil).Code)
	}
}

func TestCORS(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{AllowedOrigins: []string{"http://localhost:5173"}})
	engine := newEngine(mw, mw.CORS())

	w := get(engine, http.Header{"Origin": {"http://localhost:5173"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	w = get(engine, http.Header{"Origin": {"http://evil.example"}})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAllowsAnyOrigin(t *testing.T) {
	assert.True(t, middleware.New(log.NewNop(), middleware.Config{}).AllowsAnyOrigin())
	assert.True(t, middleware.New(log.NewNop(), middleware.Config{AllowedOrigins: []string{"*"}}).AllowsAnyOrigin())
	assert.False(t, middleware.New(log.NewNop(), middleware.Config{AllowedOrigins: []string{"http://localhost:5173"}}).AllowsAnyOrigin())
}

func TestAccessLogPassesThrough(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})
	engine := newEngine(mw, mw.RequestID(), mw.AccessLog())

	assert.Equal(t, http.StatusOK, get(engine, nil).Code)
}
