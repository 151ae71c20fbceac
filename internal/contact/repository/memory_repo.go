package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kineticfolio/portfolio-backend/internal/contact/domain"
)

// MemorySubmissionRepository is the in-process SubmissionStore used by tests.
type MemorySubmissionRepository struct {
	mu          sync.Mutex
	submissions map[string]domain.Submission
	now         func() time.Time
}

func NewMemorySubmissionRepository() *MemorySubmissionRepository {
	return &MemorySubmissionRepository{
		submissions: make(map[string]domain.Submission),
		now:         time.Now,
	}
}

// SetClock overrides the timestamp source. Test use only.
func (r *MemorySubmissionRepository) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

func (r *MemorySubmissionRepository) Create(_ context.Context, name, email, message string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New().String()
	r.submissions[id] = domain.Submission{
		ID:        id,
		Name:      name,
		Email:     email,
		Message:   message,
		Status:    domain.StatusNew,
		Timestamp: r.now(),
	}
	return id, nil
}

func (r *MemorySubmissionRepository) PurgeOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	purged := 0
	for id, s := range r.submissions {
		if s.Timestamp.Before(cutoff) {
			delete(r.submissions, id)
			purged++
		}
	}
	return purged, nil
}

// Len reports how many submissions are stored. Test use only.
func (r *MemorySubmissionRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.submissions)
}
