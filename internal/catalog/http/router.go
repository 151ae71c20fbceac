package http

import "github.com/gin-gonic/gin"

// RegisterPublic mounts the read-only catalog routes.
func (h *Handler) RegisterPublic(r gin.IRouter) {
	r.GET("/projects", h.ListPublicProjects)
	r.GET("/projects/stream", h.StreamCatalog)
}

// RegisterAdmin mounts the management routes. The group is expected to carry
// the auth middleware already.
func (h *Handler) RegisterAdmin(r gin.IRouter) {
	r.GET("/projects", h.ListAdminProjects)
	r.POST("/projects", h.CreateProject)
	r.PUT("/projects/:id", h.UpdateProject)
	r.POST("/projects/:id/delete", h.RequestDelete)
	r.POST("/projects/:id/delete/confirm", h.ConfirmDelete)
	r.DELETE("/projects/:id/delete", h.CancelDelete)
}
