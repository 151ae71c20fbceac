// Package metrics records privacy-conscious visitor analytics: hashed IPs,
// Do-Not-Track respected, short retention.
package metrics

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kineticfolio/portfolio-backend/internal/metrics/domain"
)

// Recorder persists visits. Satisfied by repository.VisitorRepository.
type Recorder interface {
	Record(ctx context.Context, v domain.Visit) error
}

// HashIP salts and hashes an IP address so raw addresses never reach
// storage. The hash is truncated; consistency per IP is all the stats need.
func HashIP(ip, salt string) string {
	sum := sha256.Sum256([]byte(ip + salt))
	return hex.EncodeToString(sum[:])[:16]
}

// skippedPath reports paths that are never tracked: admin surface, health
// checks, and the SSE stream (a long-lived connection is not a page view).
func skippedPath(path string) bool {
	return strings.HasPrefix(path, "/api/v1/admin") ||
		strings.HasPrefix(path, "/health") ||
		strings.HasSuffix(path, "/stream")
}

// TrackingMiddleware records public page views in the background. Requests
// carrying DNT: 1 are not tracked.
func TrackingMiddleware(recorder Recorder, salt string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if recorder == nil || skippedPath(path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		visit := domain.Visit{
			HashedIP:  HashIP(c.ClientIP(), salt),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
			Timestamp: time.Now().UTC(),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := recorder.Record(ctx, visit); err != nil {
				log.Printf("[warn] operation=record_visit error=%v", err)
			}
		}()

		c.Next()
	}
}
