package bootstrap

import (
	"log"

	"cloud.google.com/go/firestore"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/kineticfolio/portfolio-backend/internal/api/http"
	apimw "github.com/kineticfolio/portfolio-backend/internal/api/http/middleware"
	authmw "github.com/kineticfolio/portfolio-backend/internal/auth/middleware"
	cataloghttp "github.com/kineticfolio/portfolio-backend/internal/catalog/http"
	"github.com/kineticfolio/portfolio-backend/internal/catalog/form"
	"github.com/kineticfolio/portfolio-backend/internal/catalog/presenter"
	catalogrepo "github.com/kineticfolio/portfolio-backend/internal/catalog/repository"
	catsync "github.com/kineticfolio/portfolio-backend/internal/catalog/sync"
	"github.com/kineticfolio/portfolio-backend/internal/contact"
	contactrepo "github.com/kineticfolio/portfolio-backend/internal/contact/repository"
	"github.com/kineticfolio/portfolio-backend/internal/metrics"
	metricsrepo "github.com/kineticfolio/portfolio-backend/internal/metrics/repository"
	"github.com/kineticfolio/portfolio-backend/internal/profile"
	profilerepo "github.com/kineticfolio/portfolio-backend/internal/profile/repository"
	"github.com/kineticfolio/portfolio-backend/internal/uploads"
)

type RouterDeps struct {
	ServiceName   string
	Version       string
	AllowOrigins  []string
	MetricsSalt   string
	WhatsAppPhone string

	Firestore *firestore.Client
	DB        *pgxpool.Pool
	Redis     *redis.Client
	Uploader  uploads.Uploader
	Verifier  authmw.TokenVerifier
}

// BuildRouter wires every feature handler onto a gin engine. The catalog
// presenters are attached here and stay subscribed for the life of the
// process.
func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(apimw.RequestIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  dep.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
		ExposeHeaders: []string{"X-Request-Id"},
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")

	var visitorRepo *metricsrepo.VisitorRepository
	if dep.DB != nil {
		visitorRepo = metricsrepo.NewVisitorRepository(dep.DB)
		api.Use(metrics.TrackingMiddleware(visitorRepo, dep.MetricsSalt))
	}

	var projectStore catalogrepo.ProjectStore
	if dep.Firestore != nil {
		projectStore = catalogrepo.NewFirestoreProjectRepository(dep.Firestore)
	} else {
		log.Println("[warn] no Firestore client, catalog runs on in-memory storage")
		projectStore = catalogrepo.NewMemoryProjectRepository()
	}

	var highlights *catalogrepo.HighlightRepository
	var highlighter form.Highlighter
	if dep.Redis != nil {
		highlights = catalogrepo.NewHighlightRepository(dep.Redis, catalogrepo.DefaultHighlightTTL)
		highlighter = highlights
	}

	formController := form.NewController(projectStore, dep.Uploader, highlighter)
	synchronizer := catsync.NewSynchronizer(projectStore)

	adminPresenter := presenter.NewAdminPresenter(projectStore, formController, synchronizer)
	adminPresenter.Attach()
	publicPresenter := presenter.NewPublicPresenter(synchronizer)
	publicPresenter.Attach()

	catalogHandler := cataloghttp.NewHandler(formController, adminPresenter, publicPresenter, synchronizer, highlights)
	catalogHandler.RegisterPublic(api)

	var profileStore profilerepo.ProfileStore
	if dep.Firestore != nil {
		profileStore = profilerepo.NewFirestoreProfileRepository(dep.Firestore)
	} else {
		profileStore = profilerepo.NewMemoryProfileRepository()
	}
	profileHandler := profile.NewHandler(profileStore, dep.Uploader)
	profileHandler.RegisterPublic(api)

	var submissionStore contactrepo.SubmissionStore
	if dep.Firestore != nil {
		submissionStore = contactrepo.NewFirestoreSubmissionRepository(dep.Firestore)
	} else {
		submissionStore = contactrepo.NewMemorySubmissionRepository()
	}
	contactHandler := contact.NewHandler(submissionStore, dep.WhatsAppPhone)
	contactHandler.Register(api)

	admin := api.Group("/admin")
	if dep.Verifier != nil {
		admin.Use(authmw.FirebaseAuthMiddleware(dep.Verifier))
	} else {
		log.Println("[warn] no auth verifier, admin routes are unprotected")
	}

	catalogHandler.RegisterAdmin(admin)
	profileHandler.RegisterAdmin(admin)

	if visitorRepo != nil {
		metricsHandler := metrics.NewHandler(visitorRepo)
		metricsHandler.RegisterAdmin(admin)
	}

	return r
}
