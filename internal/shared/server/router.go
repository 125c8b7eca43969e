package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"supervisor-backend/internal/analyses"
	"supervisor-backend/internal/dashboard"
	"supervisor-backend/internal/llm"
	"supervisor-backend/internal/llm/groq"
	"supervisor-backend/internal/reviews"
	"supervisor-backend/internal/seed"
	"supervisor-backend/internal/sessions"
	"supervisor-backend/internal/shared/config"
	"supervisor-backend/internal/shared/metrics"
	"supervisor-backend/internal/shared/server/middleware"
	"supervisor-backend/internal/shared/server/respond"
	"supervisor-backend/internal/shared/storage/db"
	"supervisor-backend/internal/supervisors"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var (
		supervisorRepo supervisors.Repo
		sessionRepo    sessions.Repo
		analysisRepo   analyses.Repo
		reviewRepo     reviews.Repo
	)
	if sqlDB != nil {
		supervisorRepo = &supervisors.PGRepo{DB: sqlDB}
		sessionRepo = &sessions.PGRepo{DB: sqlDB}
		analysisRepo = &analyses.PGRepo{DB: sqlDB}
		reviewRepo = &reviews.PGRepo{DB: sqlDB}
	} else {
		supervisorRepo = supervisors.NewMemoryRepo()
		sessionRepo = sessions.NewMemoryRepo()
		analysisRepo = analyses.NewMemoryRepo()
		reviewRepo = reviews.NewMemoryRepo()
		if err := seed.Apply(context.Background(), supervisorRepo, sessionRepo); err != nil {
			log.Printf("failed to seed in-memory repositories: %v", err)
		}
	}

	var llmClient llm.Client = llm.PlaceholderClient{}
	if cfg.GroqAPIKey != "" {
		client, err := groq.NewClient(cfg.GroqAPIKey, cfg.LLMModel)
		if err != nil {
			log.Printf("groq client unavailable: %v", err)
		} else {
			llmClient = client
		}
	}

	rubric, err := analyses.LoadRubric(cfg.RubricPath)
	if err != nil {
		log.Printf("failed to load rubric, using embedded default: %v", err)
		rubric, _ = analyses.LoadRubric("")
	}

	analysisSvc := &analyses.Service{
		Repo:          analysisRepo,
		Sessions:      sessionRepo,
		LLM:           llmClient,
		Rubric:        rubric,
		Model:         cfg.LLMModel,
		PromptVersion: cfg.PromptVersion,
	}
	reviewSvc := &reviews.Service{Repo: reviewRepo, Sessions: sessionRepo}
	dashboardSvc := &dashboard.Service{Sessions: sessionRepo, Analyses: analysisRepo, Reviews: reviewRepo}

	authHandler := supervisors.NewHandler(supervisorRepo, cfg.Env == "production")
	analysisHandler := analyses.NewHandler(analysisSvc)
	reviewHandler := reviews.NewHandler(reviewSvc)
	dashboardHandler := dashboard.NewHandler(dashboardSvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	authHandler.RegisterRoutes(api)
	dashboardHandler.RegisterRoutes(api)
	analysisHandler.RegisterRoutes(api)
	reviewHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
