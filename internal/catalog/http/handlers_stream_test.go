package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kineticfolio/portfolio-backend/internal/catalog/domain"
)

func TestStreamCatalog(t *testing.T) {
	t.Run("first event is the current snapshot", func(t *testing.T) {
		f := newCatalogFixture(t, &stubUploader{})

		_, err := f.repo.Create(context.Background(), domain.ProjectFields{Title: "streamed"})
		require.NoError(t, err)
		f.waitForList(t, 1)

		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, "/api/v1/projects/stream", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		f.router.ServeHTTP(rr, req)

		assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))
		body := rr.Body.String()
		assert.True(t, strings.HasPrefix(body, "event: snapshot\n"), "expected a snapshot event, got %q", body)
		assert.Contains(t, body, `"streamed"`)
		assert.True(t, rr.Flushed)
	})

	t.Run("mutations while connected produce further snapshot events", func(t *testing.T) {
		f := newCatalogFixture(t, &stubUploader{})

		ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
		defer cancel()

		go func() {
			time.Sleep(50 * time.Millisecond)
			_, _ = f.repo.Create(context.Background(), domain.ProjectFields{Title: "late arrival"})
		}()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, "/api/v1/projects/stream", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		f.router.ServeHTTP(rr, req)

		body := rr.Body.String()
		assert.GreaterOrEqual(t, strings.Count(body, "event: snapshot"), 2)
		assert.Contains(t, body, `"late arrival"`)
	})
}
