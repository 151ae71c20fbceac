package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kineticfolio/portfolio-backend/internal/metrics/domain"
)

// VisitorRepository persists page-view records in Postgres.
type VisitorRepository struct {
	pool *pgxpool.Pool
}

func NewVisitorRepository(pool *pgxpool.Pool) *VisitorRepository {
	return &VisitorRepository{pool: pool}
}

// EnsureSchema creates the visitors table if it does not exist yet.
func (r *VisitorRepository) EnsureSchema(ctx context.Context) error {
	const q = `
CREATE TABLE IF NOT EXISTS visitors (
	id         BIGSERIAL PRIMARY KEY,
	hashed_ip  TEXT        NOT NULL,
	user_agent TEXT        NOT NULL DEFAULT '',
	path       TEXT        NOT NULL,
	visited_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_visitors_visited_at ON visitors (visited_at);
`
	if _, err := r.pool.Exec(ctx, q); err != nil {
		return fmt.Errorf("ensure visitors schema: %w", err)
	}
	return nil
}

// Record inserts one visit.
func (r *VisitorRepository) Record(ctx context.Context, v domain.Visit) error {
	const q = `
INSERT INTO visitors (hashed_ip, user_agent, path, visited_at)
VALUES ($1, $2, $3, $4);
`
	if _, err := r.pool.Exec(ctx, q, v.HashedIP, v.UserAgent, v.Path, v.Timestamp); err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// Stats aggregates totals for the admin dashboard.
func (r *VisitorRepository) Stats(ctx context.Context) (domain.Stats, error) {
	const q = `
SELECT
	count(*),
	count(DISTINCT hashed_ip),
	count(*) FILTER (WHERE visited_at >= date_trunc('day', now())),
	count(*) FILTER (WHERE visited_at >= now() - interval '7 days')
FROM visitors;
`
	var s domain.Stats
	err := r.pool.QueryRow(ctx, q).Scan(&s.TotalVisits, &s.UniqueVisitors, &s.VisitsToday, &s.VisitsThisWeek)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("visitor stats: %w", err)
	}
	return s, nil
}

// PurgeOlderThan removes visit rows older than the cutoff and reports how
// many were deleted. Retention, not analytics.
func (r *VisitorRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	const q = `DELETE FROM visitors WHERE visited_at < $1;`
	tag, err := r.pool.Exec(ctx, q, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge visitors: %w", err)
	}
	return tag.RowsAffected(), nil
}
