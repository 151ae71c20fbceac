// Package presenter materializes catalog snapshots for the admin management
// view and the public display.
package presenter

import (
	"context"
	"log"
	"sync"

	"github.com/kineticfolio/portfolio-backend/internal/catalog/domain"
	"github.com/kineticfolio/portfolio-backend/internal/catalog/form"
	"github.com/kineticfolio/portfolio-backend/internal/catalog/repository"
	catsync "github.com/kineticfolio/portfolio-backend/internal/catalog/sync"
)

// AdminPresenter renders the materialized list with edit and delete
// affordances. Deletion is a two-step confirm: a request arms a
// confirmation-pending state for exactly one record, and only a subsequent
// confirm touches the store.
type AdminPresenter struct {
	store        repository.ProjectStore
	form         *form.Controller
	synchronizer *catsync.Synchronizer

	mu            sync.Mutex
	projects      domain.Snapshot
	loaded        bool
	pendingDelete string
	subErr        error
	unsubscribe   catsync.Unsubscribe
}

// NewAdminPresenter creates an admin presenter. Attach must be called before
// the presenter reflects the store.
func NewAdminPresenter(store repository.ProjectStore, formController *form.Controller, synchronizer *catsync.Synchronizer) *AdminPresenter {
	return &AdminPresenter{
		store:        store,
		form:         formController,
		synchronizer: synchronizer,
	}
}

// Attach opens this view's own subscription. Every snapshot is authoritative
// and replaces the materialized list wholesale.
func (p *AdminPresenter) Attach() {
	p.unsubscribe = p.synchronizer.Subscribe(
		func(snap domain.Snapshot) {
			p.mu.Lock()
			p.projects = snap
			p.loaded = true
			p.mu.Unlock()
		},
		func(err error) {
			p.mu.Lock()
			p.subErr = err
			p.loaded = true // loading state clears even on failure
			p.mu.Unlock()
			log.Printf("[error] operation=admin_catalog_subscribe error=%v", err)
		},
	)
}

// Detach tears the subscription down. The presenter keeps its last list but
// stops reflecting the store.
func (p *AdminPresenter) Detach() {
	if p.unsubscribe != nil {
		p.unsubscribe()
	}
}

// Projects returns a copy of the materialized list, newest first.
func (p *AdminPresenter) Projects() domain.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(domain.Snapshot, len(p.projects))
	copy(out, p.projects)
	return out
}

// Loading reports whether the first snapshot (or the subscription error) has
// not arrived yet.
func (p *AdminPresenter) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.loaded
}

// Err returns the subscription error, if the live query failed.
func (p *AdminPresenter) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.subErr
}

// Edit hands the record to the form controller's edit path and returns it.
func (p *AdminPresenter) Edit(id string) (domain.Project, error) {
	p.mu.Lock()
	record, ok := p.findLocked(id)
	p.mu.Unlock()
	if !ok {
		return domain.Project{}, domain.ErrProjectNotFound
	}
	p.form.StartEdit(record)
	return record, nil
}

// RequestDelete arms the confirmation-pending state for one record. It never
// calls the store. Requesting deletion of a second record implicitly cancels
// the first's pending confirmation.
func (p *AdminPresenter) RequestDelete(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.findLocked(id); !ok {
		return domain.ErrProjectNotFound
	}
	p.pendingDelete = id
	return nil
}

// ConfirmDelete issues the delete for the record whose confirmation is
// pending. The record is not removed from the materialized list here; it
// disappears when the next authoritative snapshot arrives, so a failed
// delete never causes a flash. On failure the pending state clears and the
// record stays visible.
func (p *AdminPresenter) ConfirmDelete(ctx context.Context, id string) error {
	p.mu.Lock()
	if p.pendingDelete != id {
		p.mu.Unlock()
		return domain.ErrNoPendingDelete
	}
	p.pendingDelete = ""
	p.mu.Unlock()

	if err := p.store.Delete(ctx, id); err != nil {
		return &domain.StoreWriteError{Op: "delete", Err: err}
	}
	return nil
}

// CancelDelete clears the confirmation-pending state with no store
// interaction.
func (p *AdminPresenter) CancelDelete() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pendingDelete = ""
}

// PendingDelete returns the id awaiting confirmation, or "".
func (p *AdminPresenter) PendingDelete() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pendingDelete
}

func (p *AdminPresenter) findLocked(id string) (domain.Project, bool) {
	for _, record := range p.projects {
		if record.ID == id {
			return record, true
		}
	}
	return domain.Project{}, false
}
