package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kineticfolio/portfolio-backend/internal/metrics/domain"
)

type captureRecorder struct {
	mu     sync.Mutex
	visits []domain.Visit
}

func (r *captureRecorder) Record(_ context.Context, v domain.Visit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visits = append(r.visits, v)
	return nil
}

func (r *captureRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.visits)
}

func (r *captureRecorder) last() domain.Visit {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.visits[len(r.visits)-1]
}

func newTrackedRouter(recorder Recorder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(TrackingMiddleware(recorder, "pepper"))
	api.GET("/projects", func(c *gin.Context) { c.Status(http.StatusOK) })
	api.GET("/projects/stream", func(c *gin.Context) { c.Status(http.StatusOK) })
	api.GET("/admin/projects", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func get(router *gin.Engine, path string, headers map[string]string) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "203.0.113.9:4321"
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	router.ServeHTTP(httptest.NewRecorder(), req)
}

func TestHashIP(t *testing.T) {
	t.Run("stable for the same input", func(t *testing.T) {
		assert.Equal(t, HashIP("203.0.113.9", "salt"), HashIP("203.0.113.9", "salt"))
	})

	t.Run("salt changes the hash", func(t *testing.T) {
		assert.NotEqual(t, HashIP("203.0.113.9", "a"), HashIP("203.0.113.9", "b"))
	})

	t.Run("never echoes the raw address", func(t *testing.T) {
		h := HashIP("203.0.113.9", "salt")
		assert.NotContains(t, h, "203")
		assert.Len(t, h, 16)
	})
}

func TestTrackingMiddleware(t *testing.T) {
	t.Run("records public page views with a hashed ip", func(t *testing.T) {
		recorder := &captureRecorder{}
		router := newTrackedRouter(recorder)

		get(router, "/api/v1/projects", map[string]string{"User-Agent": "test-agent"})

		require.Eventually(t, func() bool { return recorder.count() == 1 }, time.Second, 5*time.Millisecond)
		visit := recorder.last()
		assert.Equal(t, "/api/v1/projects", visit.Path)
		assert.Equal(t, "test-agent", visit.UserAgent)
		assert.Equal(t, HashIP("203.0.113.9", "pepper"), visit.HashedIP)
		assert.NotContains(t, visit.HashedIP, "203.0.113.9")
	})

	t.Run("respects Do-Not-Track", func(t *testing.T) {
		recorder := &captureRecorder{}
		router := newTrackedRouter(recorder)

		get(router, "/api/v1/projects", map[string]string{"DNT": "1"})

		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, 0, recorder.count())
	})

	t.Run("skips admin and stream paths", func(t *testing.T) {
		recorder := &captureRecorder{}
		router := newTrackedRouter(recorder)

		get(router, "/api/v1/admin/projects", nil)
		get(router, "/api/v1/projects/stream", nil)

		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, 0, recorder.count())
	})
}

func TestSkippedPath(t *testing.T) {
	assert.True(t, skippedPath("/api/v1/admin/projects"))
	assert.True(t, skippedPath("/health"))
	assert.True(t, skippedPath("/api/v1/projects/stream"))
	assert.False(t, skippedPath("/api/v1/projects"))
	assert.False(t, skippedPath("/api/v1/profile"))
}
