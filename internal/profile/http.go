// Package profile serves the site-owner profile document.
package profile

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kineticfolio/portfolio-backend/internal/profile/domain"
	"github.com/kineticfolio/portfolio-backend/internal/profile/repository"
	"github.com/kineticfolio/portfolio-backend/internal/uploads"
)

// Handler serves the public profile read and the admin profile save.
type Handler struct {
	store    repository.ProfileStore
	uploader uploads.Uploader
}

func NewHandler(store repository.ProfileStore, uploader uploads.Uploader) *Handler {
	return &Handler{store: store, uploader: uploader}
}

// Get returns the profile. A never-saved profile comes back as empty
// defaults rather than an error, matching what the page renders.
func (h *Handler) Get(c *gin.Context) {
	p, err := h.store.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusOK, gin.H{"profile": domain.Profile{Skills: []string{}}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch profile data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": p})
}

// Save replaces the profile document. When a new image file accompanies the
// form it is uploaded first; an upload failure aborts the save and leaves
// the stored profile untouched.
func (h *Handler) Save(c *gin.Context) {
	current, err := h.store.Get(c.Request.Context())
	if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch profile data"})
		return
	}

	p := domain.Profile{
		Name:         c.DefaultPostForm("name", current.Name),
		Bio:          c.DefaultPostForm("bio", current.Bio),
		ProfileImage: current.ProfileImage,
		Skills:       current.Skills,
	}
	if skills, ok := c.GetPostForm("skills"); ok {
		p.Skills = parseSkills(skills)
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image file"})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image file"})
			return
		}

		uploaded, err := h.uploader.Upload(c.Request.Context(), uploads.File{
			Name:        fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Data:        data,
		})
		if err != nil {
			log.Printf("[error] operation=profile_image_upload error=%v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "image upload failed"})
			return
		}
		p.ProfileImage = uploaded
	}

	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	if err := h.store.Set(c.Request.Context(), p); err != nil {
		log.Printf("[error] operation=profile_save error=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": p})
}

// RegisterPublic mounts the read-only profile route.
func (h *Handler) RegisterPublic(r gin.IRouter) {
	r.GET("/profile", h.Get)
}

// RegisterAdmin mounts the profile save route.
func (h *Handler) RegisterAdmin(r gin.IRouter) {
	r.PUT("/profile", h.Save)
}

func parseSkills(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		skill := strings.TrimSpace(p)
		if skill == "" {
			continue
		}
		out = append(out, skill)
	}
	return out
}
