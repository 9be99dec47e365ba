package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cityreport-be/utils"
)

type fakeCounter struct {
	mu      sync.Mutex
	counts  map[string]int64
	ttls    map[string]time.Duration
	failing bool
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: map[string]int64{}, ttls: map[string]time.Duration{}}
}

func (f *fakeCounter) Incr(_ context.Context, key string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return 0, errors.New("connection refused")
	}
	f.counts[key]++
	return f.counts[key], nil
}

func (f *fakeCounter) Decr(_ context.Context, key string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[key]--
	return f.counts[key], nil
}

func (f *fakeCounter) Expire(_ context.Context, key string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ttls[key] = ttl
	return nil
}

func (f *fakeCounter) TTL(_ context.Context, key string) (time.Duration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ttls[key], nil
}

func setup(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": c.GetString(ContextUserID)})
	})
	r.POST("/x", handlers...)
	return r
}

func do(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := setup(AuthMiddleware("secret", zerolog.Nop()))
	tok, err := utils.GenerateToken("secret", "user-1", time.Now())
	require.NoError(t, err)

	w := do(r, "Bearer "+tok)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")

	// bare tokens are accepted too
	assert.Equal(t, http.StatusOK, do(r, tok).Code)

	assert.Equal(t, http.StatusUnauthorized, do(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "Bearer nope").Code)
}

func TestAuthMiddlewareWithoutSecret(t *testing.T) {
	r := setup(AuthMiddleware("", zerolog.Nop()))
	assert.Equal(t, http.StatusInternalServerError, do(r, "Bearer x").Code)
}

func TestComplaintRateLimiter(t *testing.T) {
	counter := newFakeCounter()
	setUser := func(c *gin.Context) { c.Set(ContextUserID, "user-1") }
	r := setup(setUser, ComplaintRateLimiter(counter, 2, "limit", zerolog.Nop()))

	assert.Equal(t, http.StatusOK, do(r, "").Code)
	assert.Equal(t, http.StatusOK, do(r, "").Code)
	assert.Equal(t, 24*time.Hour, counter.ttls["limit:user-1"])

	w := do(r, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), `"retry_after":86400`)
}

func TestComplaintRateLimiterRefundsRejectedSubmissions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	counter := newFakeCounter()
	r := gin.New()
	r.POST("/x",
		func(c *gin.Context) { c.Set(ContextUserID, "user-1") },
		ComplaintRateLimiter(counter, 1, "limit", zerolog.Nop()),
		func(c *gin.Context) {
			if c.Query("bad") != "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid"})
				return
			}
			c.JSON(http.StatusCreated, gin.H{})
		})
	post := func(target string) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, target, nil))
		return w.Code
	}

	assert.Equal(t, http.StatusBadRequest, post("/x?bad=1"))
	assert.Equal(t, http.StatusBadRequest, post("/x?bad=1"))
	assert.Equal(t, int64(0), counter.counts["limit:user-1"])

	assert.Equal(t, http.StatusCreated, post("/x"))
	assert.Equal(t, http.StatusTooManyRequests, post("/x"))
}

func TestComplaintRateLimiterErrors(t *testing.T) {
	counter := newFakeCounter()
	r := setup(ComplaintRateLimiter(counter, 2, "limit", zerolog.Nop()))
	assert.Equal(t, http.StatusUnauthorized, do(r, "").Code)

	counter.failing = true
	r = setup(func(c *gin.Context) { c.Set(ContextUserID, "u") }, ComplaintRateLimiter(counter, 2, "limit", zerolog.Nop()))
	assert.Equal(t, http.StatusInternalServerError, do(r, "").Code)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	r := setup(m.Middleware())

	do(r, "")
	do(r, "")
	m.ComplaintCreated("road")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodPost, "/x", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.created.WithLabelValues("road")))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.ComplaintCreated("road") })
}

func TestRequestLogger(t *testing.T) {
	var buf strings.Builder
	r := setup(RequestLogger(zerolog.New(&buf)))
	do(r, "")
	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"path":"/x"`)
}
