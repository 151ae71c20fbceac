package repository

import (
	"context"
	"sync"

	"github.com/kineticfolio/portfolio-backend/internal/profile/domain"
)

// MemoryProfileRepository is the in-process ProfileStore used by tests.
type MemoryProfileRepository struct {
	mu      sync.Mutex
	profile domain.Profile
	saved   bool
}

func NewMemoryProfileRepository() *MemoryProfileRepository {
	return &MemoryProfileRepository{}
}

func (r *MemoryProfileRepository) Get(_ context.Context) (domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.saved {
		return domain.Profile{}, domain.ErrProfileNotFound
	}
	return r.profile, nil
}

func (r *MemoryProfileRepository) Set(_ context.Context, p domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = p
	r.saved = true
	return nil
}
