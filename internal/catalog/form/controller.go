// Package form owns the transient project edit-session state: field values,
// the selected image, validation, and the submit path that turns them into a
// normalized catalog record.
package form

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/kineticfolio/portfolio-backend/internal/catalog/domain"
	"github.com/kineticfolio/portfolio-backend/internal/catalog/repository"
	"github.com/kineticfolio/portfolio-backend/internal/uploads"
)

// Mode distinguishes whether submit creates a new record or updates the one
// being edited.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// ErrSubmitInFlight is returned when Submit is called while a previous submit
// has not finished. In-flight submits are not cancellable.
var ErrSubmitInFlight = errors.New("a submit is already in flight")

// Fields holds the raw edit-session input. Tags stays in its comma-separated
// editing form until submit normalizes it.
type Fields struct {
	Title       string
	Description string
	GithubURL   string
	LiveURL     string
	Tags        string
}

// Highlighter marks a record as recently updated for the cosmetic admin
// pulse. Implemented by repository.HighlightRepository.
type Highlighter interface {
	Mark(ctx context.Context, projectID string) error
}

// Result reports what a successful submit wrote.
type Result struct {
	ID      string
	Created bool
	Fields  domain.ProjectFields
}

// Controller is the project form controller. One edit target at a time;
// entering edit mode from any state discards unsaved create-mode input.
type Controller struct {
	store     repository.ProjectStore
	uploader  uploads.Uploader
	highlight Highlighter
	now       func() time.Time

	mu           sync.Mutex
	mode         Mode
	editID       string
	fields       Fields
	imageFile    *uploads.File
	imageURL     string
	submitting   bool
	successUntil time.Time
}

// NewController creates a form controller in create mode. highlight may be
// nil when the recently-updated pulse is not wired.
func NewController(store repository.ProjectStore, uploader uploads.Uploader, highlight Highlighter) *Controller {
	return &Controller{
		store:     store,
		uploader:  uploader,
		highlight: highlight,
		now:       time.Now,
		mode:      ModeCreate,
	}
}

// SetClock overrides the time source. Test use only.
func (c *Controller) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// StartCreate resets all fields to create-mode defaults.
func (c *Controller) StartCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

// StartEdit pre-populates the form from an existing record, denormalizing
// tags back into their comma-separated editing form. The record's current
// image URL counts as the present image until a new file is selected.
func (c *Controller) StartEdit(p domain.Project) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
	c.mode = ModeEdit
	c.editID = p.ID
	c.fields = Fields{
		Title:       p.Title,
		Description: p.Description,
		GithubURL:   p.GithubURL,
		LiveURL:     p.LiveURL,
		Tags:        domain.JoinTags(p.Tags),
	}
	c.imageURL = p.ImageURL
}

func (c *Controller) resetLocked() {
	c.mode = ModeCreate
	c.editID = ""
	c.fields = Fields{}
	c.imageFile = nil
	c.imageURL = ""
}

// SetField mutates a single field. Pure local mutation, no validation side
// effects.
func (c *Controller) SetField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch name {
	case "title":
		c.fields.Title = value
	case "description":
		c.fields.Description = value
	case "githubUrl":
		c.fields.GithubURL = value
	case "liveUrl":
		c.fields.LiveURL = value
	case "tags":
		c.fields.Tags = value
	default:
		return fmt.Errorf("unknown form field %q", name)
	}
	return nil
}

// SelectImage stores the chosen file. Nothing is uploaded until submit.
func (c *Controller) SelectImage(file uploads.File) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.imageFile = &file
}

// Mode reports the current form mode.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// EditingID returns the id of the record being edited, or "" in create mode.
func (c *Controller) EditingID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editID
}

// Fields returns a copy of the current field values.
func (c *Controller) Fields() Fields {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

// ImagePresent reports whether a newly selected file or a retained image URL
// satisfies the image requirement.
func (c *Controller) ImagePresent() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.imageFile != nil || c.imageURL != ""
}

// SuccessActive reports whether the transient post-save highlight is still
// live at the given instant. Cosmetic state only.
func (c *Controller) SuccessActive(at time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return at.Before(c.successUntil)
}

// Validate checks required fields in a fixed order and reports only the
// first violation. It never touches the network.
func (c *Controller) Validate() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validateLocked()
}

func (c *Controller) validateLocked() error {
	// Whitespace-only input counts as missing; the stored value keeps its
	// original spacing.
	if strings.TrimSpace(c.fields.Title) == "" {
		return &domain.ValidationError{Field: "title", Message: "Project title is required"}
	}
	if strings.TrimSpace(c.fields.Description) == "" {
		return &domain.ValidationError{Field: "description", Message: "Project description is required"}
	}
	if c.imageFile == nil && c.imageURL == "" {
		return &domain.ValidationError{Field: "image", Message: "Project image is required"}
	}
	return nil
}

// Submit runs the full save path: validate, upload the new image if one was
// selected, normalize tags, then write to the store. On success the form
// resets to create-mode defaults and the success marker is armed for three
// seconds. On any failure the entered values are retained so the save can be
// retried without re-entering data.
func (c *Controller) Submit(ctx context.Context) (Result, error) {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return Result{}, ErrSubmitInFlight
	}
	if err := c.validateLocked(); err != nil {
		c.mu.Unlock()
		return Result{}, err
	}
	c.submitting = true
	mode := c.mode
	editID := c.editID
	fields := c.fields
	imageFile := c.imageFile
	imageURL := c.imageURL
	c.mu.Unlock()

	result, err := c.submitUpstream(ctx, mode, editID, fields, imageFile, imageURL)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false
	if err != nil {
		// Entered values stay put for retry.
		return Result{}, err
	}
	c.resetLocked()
	c.successUntil = c.now().Add(repository.DefaultHighlightTTL)
	return result, nil
}

func (c *Controller) submitUpstream(ctx context.Context, mode Mode, editID string, fields Fields, imageFile *uploads.File, imageURL string) (Result, error) {
	if imageFile != nil {
		uploaded, err := c.uploader.Upload(ctx, *imageFile)
		if err != nil {
			return Result{}, &domain.UploadError{Err: err}
		}
		imageURL = uploaded
	}

	record := domain.ProjectFields{
		Title:       fields.Title,
		Description: fields.Description,
		ImageURL:    imageURL,
		Tags:        domain.ParseTags(fields.Tags),
		GithubURL:   fields.GithubURL,
		LiveURL:     fields.LiveURL,
	}

	if mode == ModeEdit {
		if err := c.store.Update(ctx, editID, record); err != nil {
			return Result{}, &domain.StoreWriteError{Op: "update", Err: err}
		}
		c.markUpdated(ctx, editID)
		return Result{ID: editID, Fields: record}, nil
	}

	id, err := c.store.Create(ctx, record)
	if err != nil {
		return Result{}, &domain.StoreWriteError{Op: "create", Err: err}
	}
	return Result{ID: id, Created: true, Fields: record}, nil
}

func (c *Controller) markUpdated(ctx context.Context, id string) {
	if c.highlight == nil {
		return
	}
	if err := c.highlight.Mark(ctx, id); err != nil {
		// The pulse is cosmetic; a failed marker never fails the save.
		log.Printf("[warn] operation=mark_updated project_id=%s error=%v", id, err)
	}
}
