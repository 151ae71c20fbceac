package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/kineticfolio/portfolio-backend/internal/retention"
)

// Scheduler runs the retention job nightly.
type Scheduler struct {
	job  *retention.Job
	cron *cron.Cron
}

func NewScheduler(job *retention.Job) *Scheduler {
	return &Scheduler{job: job}
}

// Start registers the nightly task (12:00 AM) and starts the cron loop.
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 0 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := s.job.Run(ctx); err != nil {
			log.Printf("[error] operation=retention_nightly error=%v", err)
		}
	})
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Cron scheduler started (retention purge nightly at 12:00AM)")
	c.Start()
	s.cron = c
}

// Stop halts the cron loop.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
