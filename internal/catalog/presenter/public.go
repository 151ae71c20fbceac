package presenter

import (
	"log"
	"sync"

	"github.com/kineticfolio/portfolio-backend/internal/catalog/domain"
	catsync "github.com/kineticfolio/portfolio-backend/internal/catalog/sync"
)

// PublicPresenter renders the catalog read-only for the marketing page. An
// empty snapshot, including the window before the first snapshot resolves
// (the two are intentionally not distinguished), falls back to a fixed sample
// set so the page is never visually empty. The fallback is display-only and
// is never written back to the store.
type PublicPresenter struct {
	synchronizer *catsync.Synchronizer

	mu          sync.Mutex
	projects    domain.Snapshot
	subErr      error
	unsubscribe catsync.Unsubscribe
}

// NewPublicPresenter creates a public presenter over its own subscription.
func NewPublicPresenter(synchronizer *catsync.Synchronizer) *PublicPresenter {
	return &PublicPresenter{synchronizer: synchronizer}
}

// Attach opens the read-only subscription.
func (p *PublicPresenter) Attach() {
	p.unsubscribe = p.synchronizer.Subscribe(
		func(snap domain.Snapshot) {
			p.mu.Lock()
			p.projects = snap
			p.mu.Unlock()
		},
		func(err error) {
			p.mu.Lock()
			p.subErr = err
			p.mu.Unlock()
			log.Printf("[error] operation=public_catalog_subscribe error=%v", err)
		},
	)
}

// Detach tears the subscription down.
func (p *PublicPresenter) Detach() {
	if p.unsubscribe != nil {
		p.unsubscribe()
	}
}

// Projects returns the catalog newest first, or the fallback set when the
// catalog snapshot is empty.
func (p *PublicPresenter) Projects() []domain.Project {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.projects) == 0 {
		return domain.FallbackProjects()
	}
	out := make([]domain.Project, len(p.projects))
	copy(out, p.projects)
	return out
}

// Fallback reports whether the presenter is currently showing the sample set.
func (p *PublicPresenter) Fallback() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.projects) == 0
}
