package contact

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/kineticfolio/portfolio-backend/internal/contact/repository"
)

// Handler serves the public contact endpoint.
type Handler struct {
	store   repository.SubmissionStore
	phone   string
	limiter *ipLimiter
}

// NewHandler creates a contact handler. phone is the wa.me destination
// number. Each client IP gets a small burst then one submission per minute.
func NewHandler(store repository.SubmissionStore, phone string) *Handler {
	return &Handler{
		store:   store,
		phone:   phone,
		limiter: newIPLimiter(rate.Every(time.Minute), 3),
	}
}

// Submit saves the submission and returns the messaging deep link for the
// client to open. The record write happens first; a failed write returns an
// error and no link.
func (h *Handler) Submit(c *gin.Context) {
	if !h.limiter.allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many submissions, try again later"})
		return
	}

	var body struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and message are required"})
		return
	}

	id, err := h.store.Create(c.Request.Context(), body.Name, body.Email, body.Message)
	if err != nil {
		log.Printf("[error] operation=contact_submit error=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process your message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          id,
		"whatsappUrl": WhatsAppLink(h.phone, body.Name, body.Email, body.Message),
	})
}

// Register mounts the contact route.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/contact", h.Submit)
}
