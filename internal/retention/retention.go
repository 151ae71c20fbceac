// Package retention prunes aged records: visitor analytics and contact
// submissions both have a bounded lifetime.
package retention

import (
	"context"
	"fmt"
	"log"
	"time"

	contactrepo "github.com/kineticfolio/portfolio-backend/internal/contact/repository"
	metricsrepo "github.com/kineticfolio/portfolio-backend/internal/metrics/repository"
)

const (
	// DefaultVisitorTTL bounds how long hashed page-view rows are kept.
	DefaultVisitorTTL = 90 * 24 * time.Hour
	// DefaultContactTTL bounds how long contact submissions are kept.
	DefaultContactTTL = 180 * 24 * time.Hour
)

// Job deletes expired rows from every retention-bound store it was given.
// Stores may be nil when their backing service is not configured.
type Job struct {
	contacts   contactrepo.SubmissionStore
	visitors   *metricsrepo.VisitorRepository
	contactTTL time.Duration
	visitorTTL time.Duration
	now        func() time.Time
}

// NewJob wires a retention job. Zero TTLs fall back to the defaults.
func NewJob(contacts contactrepo.SubmissionStore, visitors *metricsrepo.VisitorRepository, contactTTL, visitorTTL time.Duration) *Job {
	if contactTTL <= 0 {
		contactTTL = DefaultContactTTL
	}
	if visitorTTL <= 0 {
		visitorTTL = DefaultVisitorTTL
	}
	return &Job{
		contacts:   contacts,
		visitors:   visitors,
		contactTTL: contactTTL,
		visitorTTL: visitorTTL,
		now:        time.Now,
	}
}

// SetClock overrides the time source. Test use only.
func (j *Job) SetClock(now func() time.Time) { j.now = now }

// Run purges every configured store once. A failure in one store does not
// stop the others; the first error is returned after all stores ran.
func (j *Job) Run(ctx context.Context) error {
	var firstErr error

	if j.contacts != nil {
		cutoff := j.now().Add(-j.contactTTL)
		n, err := j.contacts.PurgeOlderThan(ctx, cutoff)
		if err != nil {
			log.Printf("[error] operation=purge_contacts error=%v", err)
			firstErr = fmt.Errorf("purge contacts: %w", err)
		} else {
			log.Printf("[info] operation=purge_contacts purged=%d cutoff=%s", n, cutoff.Format(time.RFC3339))
		}
	}

	if j.visitors != nil {
		cutoff := j.now().Add(-j.visitorTTL)
		n, err := j.visitors.PurgeOlderThan(ctx, cutoff)
		if err != nil {
			log.Printf("[error] operation=purge_visitors error=%v", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("purge visitors: %w", err)
			}
		} else {
			log.Printf("[info] operation=purge_visitors purged=%d cutoff=%s", n, cutoff.Format(time.RFC3339))
		}
	}

	return firstErr
}
