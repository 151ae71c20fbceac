package metrics

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kineticfolio/portfolio-backend/internal/metrics/repository"
)

// Handler serves the admin stats endpoint.
type Handler struct {
	repo *repository.VisitorRepository
}

func NewHandler(repo *repository.VisitorRepository) *Handler {
	return &Handler{repo: repo}
}

// Stats returns aggregate visit counts.
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.repo.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// RegisterAdmin mounts the stats route.
func (h *Handler) RegisterAdmin(r gin.IRouter) {
	r.GET("/stats", h.Stats)
}
