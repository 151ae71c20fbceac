package main

import (
	"context"
	"log"
	"time"

	"github.com/kineticfolio/portfolio-backend/config"
	"github.com/kineticfolio/portfolio-backend/internal/bootstrap"
	contactrepo "github.com/kineticfolio/portfolio-backend/internal/contact/repository"
	metricsrepo "github.com/kineticfolio/portfolio-backend/internal/metrics/repository"
	"github.com/kineticfolio/portfolio-backend/internal/retention"
)

// RunPurge executes the retention purge once and exits. Meant for manual
// runs and external schedulers; the API binary runs the same job nightly.
func RunPurge() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	fsClient, err := bootstrap.OpenFirestore(ctx, &cfg.Firebase)
	if err != nil {
		log.Fatalf("firestore: %v", err)
	}
	defer fsClient.Close()

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatalf("db: %v", err)
	}

	var visitorRepo *metricsrepo.VisitorRepository
	if pool != nil {
		defer pool.Close()
		visitorRepo = metricsrepo.NewVisitorRepository(pool)
	}

	job := retention.NewJob(
		contactrepo.NewFirestoreSubmissionRepository(fsClient),
		visitorRepo,
		time.Duration(cfg.Retention.ContactDays)*24*time.Hour,
		time.Duration(cfg.Retention.VisitorDays)*24*time.Hour,
	)

	if err := job.Run(ctx); err != nil {
		log.Fatalf("purge: %v", err)
	}
}
