package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kineticfolio/portfolio-backend/internal/catalog/domain"
)

// MemoryProjectRepository is an in-process ProjectStore used by tests and
// local development. It keeps the store's contract: server-assigned ids and
// timestamps, createdAt-descending order with ties broken by insertion order,
// and watchers that receive full snapshots on every mutation.
type MemoryProjectRepository struct {
	mu       sync.Mutex
	records  map[string]*memoryRecord
	nextSeq  uint64
	watchers map[uint64]chan domain.Snapshot
	nextWID  uint64
	now      func() time.Time
}

type memoryRecord struct {
	project domain.Project
	seq     uint64
}

// NewMemoryProjectRepository creates an empty in-memory project store.
func NewMemoryProjectRepository() *MemoryProjectRepository {
	return &MemoryProjectRepository{
		records:  make(map[string]*memoryRecord),
		watchers: make(map[uint64]chan domain.Snapshot),
		now:      time.Now,
	}
}

// SetClock overrides the timestamp source. Test use only.
func (r *MemoryProjectRepository) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

func (r *MemoryProjectRepository) Create(_ context.Context, fields domain.ProjectFields) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New().String()
	r.nextSeq++
	r.records[id] = &memoryRecord{
		project: domain.Project{
			ID:          id,
			Title:       fields.Title,
			Description: fields.Description,
			ImageURL:    fields.ImageURL,
			Tags:        fields.Tags,
			GithubURL:   fields.GithubURL,
			LiveURL:     fields.LiveURL,
			CreatedAt:   r.now(),
		},
		seq: r.nextSeq,
	}
	r.broadcastLocked()
	return id, nil
}

func (r *MemoryProjectRepository) Update(_ context.Context, id string, fields domain.ProjectFields) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return domain.ErrProjectNotFound
	}
	rec.project.Title = fields.Title
	rec.project.Description = fields.Description
	rec.project.ImageURL = fields.ImageURL
	rec.project.Tags = fields.Tags
	rec.project.GithubURL = fields.GithubURL
	rec.project.LiveURL = fields.LiveURL
	rec.project.UpdatedAt = r.now()
	r.broadcastLocked()
	return nil
}

func (r *MemoryProjectRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.records, id)
	r.broadcastLocked()
	return nil
}

func (r *MemoryProjectRepository) List(_ context.Context) ([]domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked(), nil
}

// Watch registers a watcher that receives the current contents immediately
// and a full replacement snapshot after every mutation. When a watcher is
// slow, intermediate snapshots are coalesced to the latest one; a watcher
// never observes a snapshot older than one already delivered to it.
func (r *MemoryProjectRepository) Watch(ctx context.Context) (<-chan domain.Snapshot, <-chan error) {
	errs := make(chan error, 1)

	r.mu.Lock()
	r.nextWID++
	wid := r.nextWID
	ch := make(chan domain.Snapshot, 1)
	r.watchers[wid] = ch
	ch <- r.snapshotLocked()
	r.mu.Unlock()

	go func() {
		<-ctx.Done()
		r.mu.Lock()
		delete(r.watchers, wid)
		close(ch)
		close(errs)
		r.mu.Unlock()
	}()

	return ch, errs
}

func (r *MemoryProjectRepository) snapshotLocked() domain.Snapshot {
	type ordered struct {
		project domain.Project
		seq     uint64
	}
	tmp := make([]ordered, 0, len(r.records))
	for _, rec := range r.records {
		tmp = append(tmp, ordered{project: rec.project, seq: rec.seq})
	}
	sort.Slice(tmp, func(i, j int) bool {
		if !tmp[i].project.CreatedAt.Equal(tmp[j].project.CreatedAt) {
			return tmp[i].project.CreatedAt.After(tmp[j].project.CreatedAt)
		}
		// Equal timestamps: insertion order breaks the tie, newest first.
		return tmp[i].seq > tmp[j].seq
	})

	out := make(domain.Snapshot, len(tmp))
	for i, o := range tmp {
		out[i] = o.project
	}
	return out
}

func (r *MemoryProjectRepository) broadcastLocked() {
	snap := r.snapshotLocked()
	for _, ch := range r.watchers {
		select {
		case ch <- snap:
		default:
			// Drop the stale pending snapshot and replace it with the
			// latest; the watcher only ever moves forward.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}
