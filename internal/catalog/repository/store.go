package repository

import (
	"context"

	"github.com/kineticfolio/portfolio-backend/internal/catalog/domain"
)

// ProjectStore provides persistence operations for the project catalog.
// Implementations are the single source of truth: every mutation goes through
// the store's atomic per-document operations, and every subscriber sees the
// result through Watch.
type ProjectStore interface {
	// Create inserts a new record. CreatedAt is assigned by the store and the
	// new record's id is returned.
	Create(ctx context.Context, fields domain.ProjectFields) (string, error)

	// Update replaces all writable fields of an existing record. UpdatedAt is
	// assigned by the store; id and createdAt are never touched.
	Update(ctx context.Context, id string, fields domain.ProjectFields) error

	// Delete removes a record. Returns domain.ErrProjectNotFound when the id
	// does not exist.
	Delete(ctx context.Context, id string) error

	// List returns the current catalog ordered by createdAt descending.
	List(ctx context.Context) ([]domain.Project, error)

	// Watch opens a live subscription ordered by createdAt descending. The
	// snapshot channel receives the current contents immediately and a full
	// replacement after every remote change. At most one error is delivered,
	// after which both channels are closed; no retry is attempted. Cancelling
	// ctx tears the subscription down.
	Watch(ctx context.Context) (<-chan domain.Snapshot, <-chan error)
}
