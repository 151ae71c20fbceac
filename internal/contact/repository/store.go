package repository

import (
	"context"
	"time"
)

// SubmissionStore persists contact-form submissions.
type SubmissionStore interface {
	// Create writes a new submission with status "new" and a server-assigned
	// timestamp, returning its id.
	Create(ctx context.Context, name, email, message string) (string, error)

	// PurgeOlderThan deletes submissions whose timestamp is before the cutoff
	// and returns how many were removed. Used by the retention job.
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}
