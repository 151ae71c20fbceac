// Package sync keeps local materialized project lists consistent with the
// remote catalog collection.
package sync

import (
	"context"
	stdsync "sync"

	"github.com/kineticfolio/portfolio-backend/internal/catalog/domain"
	"github.com/kineticfolio/portfolio-backend/internal/catalog/repository"
)

// Synchronizer bridges the store's live subscription to consumers. Each call
// site (public display, admin management) holds its own subscription; there
// is no shared cache layer between them; the store is the single source of
// truth and both reflect it independently.
type Synchronizer struct {
	store repository.ProjectStore
}

// NewSynchronizer creates a synchronizer over the given store.
func NewSynchronizer(store repository.ProjectStore) *Synchronizer {
	return &Synchronizer{store: store}
}

// Unsubscribe tears down a subscription. Failing to call it leaks the
// subscription for the lifetime of the owning view. Safe to call more than
// once.
type Unsubscribe func()

// Subscribe opens a live subscription ordered by creation time descending.
// onSnapshot is invoked once with the current contents as soon as they
// resolve and again after every remote change, always with a total
// replacement of the list. If the subscription cannot be established or
// errors out, onError is invoked exactly once with a SubscriptionError and
// delivery stops; retry, if any, is the caller's responsibility on remount.
// After Unsubscribe returns the callbacks become no-ops.
func (s *Synchronizer) Subscribe(onSnapshot func(domain.Snapshot), onError func(error)) Unsubscribe {
	ctx, cancel := context.WithCancel(context.Background())
	snapshots, errs := s.store.Watch(ctx)

	var mu stdsync.Mutex
	done := false

	go func() {
		for {
			select {
			case snap, ok := <-snapshots:
				if !ok {
					return
				}
				mu.Lock()
				if !done {
					onSnapshot(snap)
				}
				mu.Unlock()
			case err, ok := <-errs:
				if !ok {
					return
				}
				mu.Lock()
				if !done {
					done = true
					onError(&domain.SubscriptionError{Err: err})
				}
				mu.Unlock()
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	var once stdsync.Once
	return func() {
		once.Do(func() {
			mu.Lock()
			done = true
			mu.Unlock()
			cancel()
		})
	}
}
