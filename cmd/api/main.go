package main

import (
	"context"
	"log"
	"time"

	"github.com/kineticfolio/portfolio-backend/config"
	"github.com/kineticfolio/portfolio-backend/internal/auth"
	authmw "github.com/kineticfolio/portfolio-backend/internal/auth/middleware"
	"github.com/kineticfolio/portfolio-backend/internal/bootstrap"
	contactrepo "github.com/kineticfolio/portfolio-backend/internal/contact/repository"
	metricsrepo "github.com/kineticfolio/portfolio-backend/internal/metrics/repository"
	"github.com/kineticfolio/portfolio-backend/internal/retention"
	cronjob "github.com/kineticfolio/portfolio-backend/internal/retention/cron"
	"github.com/kineticfolio/portfolio-backend/internal/uploads"
)

const serviceName = "portfolio-backend"

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	fsClient, err := bootstrap.OpenFirestore(ctx, &cfg.Firebase)
	if err != nil {
		log.Fatalf("firestore: %v", err)
	}
	defer fsClient.Close()

	rdb, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if pool != nil {
		defer pool.Close()
	}

	var verifier authmw.TokenVerifier
	if cfg.Firebase.CredentialsPath != "" {
		authClient, err := auth.InitializeFirebase(&cfg.Firebase)
		if err != nil {
			log.Fatalf("firebase auth: %v", err)
		}
		verifier = authClient
	}

	var uploader uploads.Uploader
	switch cfg.Upload.Backend {
	case "s3":
		uploader, err = uploads.NewS3Uploader(ctx, cfg.Upload.S3Bucket, cfg.Upload.S3Region)
		if err != nil {
			log.Fatalf("s3: %v", err)
		}
	default:
		uploader = uploads.NewCloudinaryUploader("", cfg.Upload.CloudName, cfg.Upload.UploadPreset)
	}

	var visitorRepo *metricsrepo.VisitorRepository
	if pool != nil {
		visitorRepo = metricsrepo.NewVisitorRepository(pool)
		if err := visitorRepo.EnsureSchema(ctx); err != nil {
			log.Fatalf("db schema: %v", err)
		}
	}
	job := retention.NewJob(
		contactrepo.NewFirestoreSubmissionRepository(fsClient),
		visitorRepo,
		days(cfg.Retention.ContactDays),
		days(cfg.Retention.VisitorDays),
	)
	scheduler := cronjob.NewScheduler(job)
	scheduler.Start()
	defer scheduler.Stop()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:   serviceName,
		Version:       cfg.App.Version,
		AllowOrigins:  cfg.CORS.AllowOrigins,
		MetricsSalt:   cfg.App.MetricsSalt,
		WhatsAppPhone: cfg.Contact.WhatsAppPhone,
		Firestore:     fsClient,
		DB:            pool,
		Redis:         rdb,
		Uploader:      uploader,
		Verifier:      verifier,
	})

	addr := ":" + cfg.Server.Port
	log.Printf("[info] service=%s version=%s listening=%s", serviceName, cfg.App.Version, addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
