package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHighlightRepo(t *testing.T) (*HighlightRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewHighlightRepository(client, DefaultHighlightTTL), mr
}

func TestHighlightMarkAndExpiry(t *testing.T) {
	repo, mr := newTestHighlightRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Mark(ctx, "p1"))

	marked, err := repo.IsMarked(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, marked)

	// The marker clears itself after the TTL.
	mr.FastForward(DefaultHighlightTTL + time.Millisecond)

	marked, err = repo.IsMarked(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, marked)
}

func TestHighlightMarkedSet(t *testing.T) {
	repo, _ := newTestHighlightRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Mark(ctx, "p1"))
	require.NoError(t, repo.Mark(ctx, "p3"))

	marked, err := repo.MarkedSet(ctx, []string{"p1", "p2", "p3"})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"p1": true, "p2": false, "p3": true}, marked)
}

func TestHighlightMarkedSetEmpty(t *testing.T) {
	repo, _ := newTestHighlightRepo(t)

	marked, err := repo.MarkedSet(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, marked)
}
