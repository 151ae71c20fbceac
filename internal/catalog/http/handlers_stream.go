package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kineticfolio/portfolio-backend/internal/catalog/domain"
)

// StreamCatalog pushes catalog snapshots to the client over Server-Sent
// Events. The first event carries the current contents; every remote change
// produces another full snapshot. The subscription is torn down when the
// client disconnects.
func (h *Handler) StreamCatalog(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // nginx: disable buffering

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	snapshots := make(chan domain.Snapshot, 1)
	subErrs := make(chan error, 1)
	unsubscribe := h.synchronizer.Subscribe(
		func(snap domain.Snapshot) {
			select {
			case snapshots <- snap:
			default:
				// Coalesce to the latest snapshot for a slow client.
				select {
				case <-snapshots:
				default:
				}
				select {
				case snapshots <- snap:
				default:
				}
			}
		},
		func(err error) {
			select {
			case subErrs <- err:
			default:
			}
		},
	)
	defer unsubscribe()

	ctx := c.Request.Context()

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Client disconnected.
			return

		case <-ticker.C:
			fmt.Fprint(c.Writer, ": keep-alive\n\n")
			flusher.Flush()

		case snap := <-snapshots:
			data, err := json.Marshal(gin.H{"projects": snap})
			if err != nil {
				continue
			}
			fmt.Fprintf(c.Writer, "event: snapshot\ndata: %s\n\n", string(data))
			flusher.Flush()

		case <-subErrs:
			data, _ := json.Marshal(gin.H{"error": "catalog subscription failed"})
			fmt.Fprintf(c.Writer, "event: error\ndata: %s\n\n", string(data))
			flusher.Flush()
			return
		}
	}
}
