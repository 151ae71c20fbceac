package http

import (
	"time"

	"github.com/kineticfolio/portfolio-backend/internal/catalog/domain"
)

// ProjectView is a project as rendered to the admin dashboard, annotated
// with the transient display markers.
type ProjectView struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ImageURL        string    `json:"imageUrl"`
	Tags            []string  `json:"tags"`
	GithubURL       string    `json:"githubUrl,omitempty"`
	LiveURL         string    `json:"liveUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt,omitempty"`
	RecentlyUpdated bool      `json:"recentlyUpdated"`
	PendingDelete   bool      `json:"pendingDelete"`
}

func newProjectView(p domain.Project, recentlyUpdated, pendingDelete bool) ProjectView {
	return ProjectView{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		ImageURL:        p.ImageURL,
		Tags:            p.Tags,
		GithubURL:       p.GithubURL,
		LiveURL:         p.LiveURL,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
		RecentlyUpdated: recentlyUpdated,
		PendingDelete:   pendingDelete,
	}
}
