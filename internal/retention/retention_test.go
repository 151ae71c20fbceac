package retention

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contactrepo "github.com/kineticfolio/portfolio-backend/internal/contact/repository"
)

func TestJobPurgesExpiredSubmissions(t *testing.T) {
	store := contactrepo.NewMemorySubmissionRepository()
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// Two old submissions and one fresh.
	clock := base.Add(-200 * 24 * time.Hour)
	store.SetClock(func() time.Time { return clock })
	_, err := store.Create(context.Background(), "old1", "a@b.c", "m")
	require.NoError(t, err)
	_, err = store.Create(context.Background(), "old2", "a@b.c", "m")
	require.NoError(t, err)

	clock = base.Add(-time.Hour)
	_, err = store.Create(context.Background(), "fresh", "a@b.c", "m")
	require.NoError(t, err)

	job := NewJob(store, nil, 0, 0)
	job.SetClock(func() time.Time { return base })

	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, 1, store.Len())
}

func TestJobKeepsRecentSubmissions(t *testing.T) {
	store := contactrepo.NewMemorySubmissionRepository()
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	clock := base.Add(-30 * 24 * time.Hour)
	store.SetClock(func() time.Time { return clock })
	_, err := store.Create(context.Background(), "kept", "a@b.c", "m")
	require.NoError(t, err)

	job := NewJob(store, nil, 0, 0)
	job.SetClock(func() time.Time { return base })

	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, 1, store.Len())
}

func TestJobCustomTTL(t *testing.T) {
	store := contactrepo.NewMemorySubmissionRepository()
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	clock := base.Add(-48 * time.Hour)
	store.SetClock(func() time.Time { return clock })
	_, err := store.Create(context.Background(), "two days old", "a@b.c", "m")
	require.NoError(t, err)

	job := NewJob(store, nil, 24*time.Hour, 0)
	job.SetClock(func() time.Time { return base })

	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, 0, store.Len())
}

func TestJobNilStores(t *testing.T) {
	job := NewJob(nil, nil, 0, 0)
	assert.NoError(t, job.Run(context.Background()))
}
