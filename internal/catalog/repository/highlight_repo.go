package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const highlightKeyPrefix = "catalog:updated:" // catalog:updated:{project_id}

// DefaultHighlightTTL matches the transient "recently updated" pulse the
// admin UI shows after a successful edit.
const DefaultHighlightTTL = 3 * time.Second

// HighlightRepository stores the cosmetic "recently updated" markers in Redis.
// A marker is a key with a short TTL; expiry is the marker clearing itself.
// This is derived display state, never data state.
type HighlightRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewHighlightRepository creates a new HighlightRepository. A zero ttl falls
// back to DefaultHighlightTTL.
func NewHighlightRepository(client *redis.Client, ttl time.Duration) *HighlightRepository {
	if ttl <= 0 {
		ttl = DefaultHighlightTTL
	}
	return &HighlightRepository{client: client, ttl: ttl}
}

func (r *HighlightRepository) key(projectID string) string {
	return fmt.Sprintf("%s%s", highlightKeyPrefix, projectID)
}

// Mark flags a project as recently updated. The flag expires on its own.
func (r *HighlightRepository) Mark(ctx context.Context, projectID string) error {
	if err := r.client.Set(ctx, r.key(projectID), "1", r.ttl).Err(); err != nil {
		return fmt.Errorf("mark project %s: %w", projectID, err)
	}
	return nil
}

// IsMarked reports whether a project's highlight is still live.
func (r *HighlightRepository) IsMarked(ctx context.Context, projectID string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(projectID)).Result()
	if err != nil {
		return false, fmt.Errorf("check highlight for %s: %w", projectID, err)
	}
	return n > 0, nil
}

// MarkedSet checks highlights for a batch of project ids in one round trip.
func (r *HighlightRepository) MarkedSet(ctx context.Context, projectIDs []string) (map[string]bool, error) {
	out := make(map[string]bool, len(projectIDs))
	if len(projectIDs) == 0 {
		return out, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.IntCmd, len(projectIDs))
	for i, id := range projectIDs {
		cmds[i] = pipe.Exists(ctx, r.key(id))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("check highlights: %w", err)
	}
	for i, id := range projectIDs {
		out[id] = cmds[i].Val() > 0
	}
	return out, nil
}
