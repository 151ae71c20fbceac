package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kineticfolio/portfolio-backend/internal/catalog/domain"
)

func TestMemoryRepoOrdering(t *testing.T) {
	repo := NewMemoryProjectRepository()
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := base
	repo.SetClock(func() time.Time { return clock })

	_, err := repo.Create(ctx, domain.ProjectFields{Title: "first"})
	require.NoError(t, err)

	clock = base.Add(time.Hour)
	_, err = repo.Create(ctx, domain.ProjectFields{Title: "second"})
	require.NoError(t, err)

	// Same timestamp as "second": insertion order breaks the tie.
	_, err = repo.Create(ctx, domain.ProjectFields{Title: "third"})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Title)
	assert.Equal(t, "second", list[1].Title)
	assert.Equal(t, "first", list[2].Title)
}

func TestMemoryRepoUpdatePreservesIdentity(t *testing.T) {
	repo := NewMemoryProjectRepository()
	ctx := context.Background()

	id, err := repo.Create(ctx, domain.ProjectFields{Title: "before", Tags: []string{"Go"}})
	require.NoError(t, err)

	err = repo.Update(ctx, id, domain.ProjectFields{Title: "after", Tags: []string{"Go", "Gin"}})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, "after", list[0].Title)
	assert.Equal(t, []string{"Go", "Gin"}, list[0].Tags)
	assert.False(t, list[0].CreatedAt.IsZero())
	assert.False(t, list[0].UpdatedAt.IsZero())
}

func TestMemoryRepoNotFound(t *testing.T) {
	repo := NewMemoryProjectRepository()
	ctx := context.Background()

	assert.ErrorIs(t, repo.Update(ctx, "missing", domain.ProjectFields{}), domain.ErrProjectNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "missing"), domain.ErrProjectNotFound)
}

func TestMemoryRepoWatch(t *testing.T) {
	t.Run("delivers the current contents immediately", func(t *testing.T) {
		repo := NewMemoryProjectRepository()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		_, err := repo.Create(context.Background(), domain.ProjectFields{Title: "seed"})
		require.NoError(t, err)

		snapshots, _ := repo.Watch(ctx)
		select {
		case snap := <-snapshots:
			require.Len(t, snap, 1)
			assert.Equal(t, "seed", snap[0].Title)
		case <-time.After(time.Second):
			t.Fatal("no initial snapshot delivered")
		}
	})

	t.Run("broadcasts a full replacement after every mutation", func(t *testing.T) {
		repo := NewMemoryProjectRepository()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		snapshots, _ := repo.Watch(ctx)
		<-snapshots // initial, empty

		id, err := repo.Create(context.Background(), domain.ProjectFields{Title: "one"})
		require.NoError(t, err)

		snap := <-snapshots
		require.Len(t, snap, 1)

		require.NoError(t, repo.Delete(context.Background(), id))
		snap = <-snapshots
		assert.Empty(t, snap)
	})

	t.Run("slow watcher only ever sees the latest snapshot", func(t *testing.T) {
		repo := NewMemoryProjectRepository()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		snapshots, _ := repo.Watch(ctx)
		<-snapshots // initial

		// Three mutations with nobody reading: intermediates coalesce.
		for _, title := range []string{"a", "b", "c"} {
			_, err := repo.Create(context.Background(), domain.ProjectFields{Title: title})
			require.NoError(t, err)
		}

		snap := <-snapshots
		assert.Len(t, snap, 3)
	})

	t.Run("cancelling the context closes the channels", func(t *testing.T) {
		repo := NewMemoryProjectRepository()
		ctx, cancel := context.WithCancel(context.Background())

		snapshots, errs := repo.Watch(ctx)
		<-snapshots
		cancel()

		require.Eventually(t, func() bool {
			select {
			case _, ok := <-snapshots:
				return !ok
			default:
				return false
			}
		}, time.Second, 5*time.Millisecond)

		_, ok := <-errs
		assert.False(t, ok)
	})
}
