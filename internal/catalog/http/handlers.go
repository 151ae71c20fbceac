package http

import (
	"context"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kineticfolio/portfolio-backend/internal/catalog/domain"
	"github.com/kineticfolio/portfolio-backend/internal/catalog/form"
	"github.com/kineticfolio/portfolio-backend/internal/catalog/presenter"
	"github.com/kineticfolio/portfolio-backend/internal/catalog/repository"
	catsync "github.com/kineticfolio/portfolio-backend/internal/catalog/sync"
	"github.com/kineticfolio/portfolio-backend/internal/uploads"
)

// Handler exposes the project catalog over HTTP: the public read-only list,
// the SSE snapshot stream, and the admin edit lifecycle.
type Handler struct {
	form         *form.Controller
	admin        *presenter.AdminPresenter
	public       *presenter.PublicPresenter
	synchronizer *catsync.Synchronizer
	highlights   *repository.HighlightRepository
}

// NewHandler creates a catalog handler. highlights may be nil when Redis is
// not configured; the admin list then renders without pulse markers.
func NewHandler(formController *form.Controller, admin *presenter.AdminPresenter, public *presenter.PublicPresenter, synchronizer *catsync.Synchronizer, highlights *repository.HighlightRepository) *Handler {
	return &Handler{
		form:         formController,
		admin:        admin,
		public:       public,
		synchronizer: synchronizer,
		highlights:   highlights,
	}
}

// ListPublicProjects returns the catalog newest first, substituting the fixed
// fallback set while the catalog is empty.
func (h *Handler) ListPublicProjects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"projects": h.public.Projects(),
		"fallback": h.public.Fallback(),
	})
}

// ListAdminProjects returns the materialized admin list annotated with
// recently-updated and pending-delete markers.
func (h *Handler) ListAdminProjects(c *gin.Context) {
	if h.admin.Loading() {
		c.JSON(http.StatusOK, gin.H{"projects": []ProjectView{}, "loading": true})
		return
	}
	if err := h.admin.Err(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to fetch projects"})
		return
	}

	projects := h.admin.Projects()
	marked := h.markedSet(c.Request.Context(), projects)
	pending := h.admin.PendingDelete()

	views := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, newProjectView(p, marked[p.ID], p.ID == pending))
	}
	c.JSON(http.StatusOK, gin.H{"projects": views})
}

func (h *Handler) markedSet(ctx context.Context, projects domain.Snapshot) map[string]bool {
	if h.highlights == nil || len(projects) == 0 {
		return nil
	}
	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	marked, err := h.highlights.MarkedSet(ctx, ids)
	if err != nil {
		log.Printf("[warn] operation=list_admin_projects error=%v", err)
		return nil
	}
	return marked
}

// CreateProject runs the create path of the form controller from a multipart
// submission: fields plus an image file.
func (h *Handler) CreateProject(c *gin.Context) {
	h.form.StartCreate()
	h.submitForm(c, http.StatusCreated)
}

// UpdateProject runs the edit path: the target record is loaded into the
// form, the submitted fields overwrite it, and save goes through the same
// validate/upload/write pipeline as create.
func (h *Handler) UpdateProject(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project id is required"})
		return
	}

	if _, err := h.admin.Edit(id); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load project"})
		return
	}
	h.submitForm(c, http.StatusOK)
}

func (h *Handler) submitForm(c *gin.Context, successStatus int) {
	for _, name := range []string{"title", "description", "githubUrl", "liveUrl", "tags"} {
		if value, ok := c.GetPostForm(name); ok {
			_ = h.form.SetField(name, value)
		}
	}

	fileHeader, err := c.FormFile("image")
	if err == nil {
		file, err := readUpload(fileHeader)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image file"})
			return
		}
		h.form.SelectImage(file)
	}

	result, err := h.form.Submit(c.Request.Context())
	if err != nil {
		writeSubmitError(c, err)
		return
	}
	c.JSON(successStatus, gin.H{"id": result.ID, "created": result.Created})
}

func writeSubmitError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	var uploadErr *domain.UploadError
	var storeErr *domain.StoreWriteError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
	case errors.As(err, &uploadErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "image upload failed"})
	case errors.As(err, &storeErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save project"})
	case errors.Is(err, form.ErrSubmitInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "a save is already in progress"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save project"})
	}
}

// RequestDelete arms the two-step delete confirmation for one record.
func (h *Handler) RequestDelete(c *gin.Context) {
	id := c.Param("id")
	if err := h.admin.RequestDelete(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"pendingDelete": id})
}

// ConfirmDelete executes a previously requested delete. The record leaves
// the list when the next snapshot arrives.
func (h *Handler) ConfirmDelete(c *gin.Context) {
	id := c.Param("id")
	if err := h.admin.ConfirmDelete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNoPendingDelete) {
			c.JSON(http.StatusConflict, gin.H{"error": "no delete confirmation pending for this project"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// CancelDelete clears the pending confirmation without touching the store.
func (h *Handler) CancelDelete(c *gin.Context) {
	h.admin.CancelDelete()
	c.JSON(http.StatusOK, gin.H{"pendingDelete": ""})
}

func readUpload(header *multipart.FileHeader) (uploads.File, error) {
	f, err := header.Open()
	if err != nil {
		return uploads.File{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return uploads.File{}, err
	}
	return uploads.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
