package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/examadmin/config"
	"github.com/lshigami/examadmin/database"
	_ "github.com/lshigami/examadmin/docs"
	"github.com/lshigami/examadmin/internal/controller"
	adminctrl "github.com/lshigami/examadmin/internal/controller/admin"
	userctrl "github.com/lshigami/examadmin/internal/controller/user"
	"github.com/lshigami/examadmin/internal/logger"
	"github.com/lshigami/examadmin/internal/repository"
	"github.com/lshigami/examadmin/internal/scheduler"
	"github.com/lshigami/examadmin/internal/service"
	"github.com/lshigami/examadmin/internal/store/docstore"
	"github.com/lshigami/examadmin/internal/store/keytree"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title Exam Administration API
// @version 1.0
// @description Admin backend for exams: questions, schedules, results, candidates and announcements.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api
// @schemes http https
func main() {
	// Global zerolog logger, before anything else logs
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			docstore.New,         // Document store over the documents table
			keytree.New,          // Key-tree store over the keytree_nodes table
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewExamRepository,
			repository.NewQuestionRepository,
			repository.NewScheduleRepository,
			repository.NewCandidateRepository,
			repository.NewResultRepository,
			repository.NewNotificationRepository,
			repository.NewSyllabusRepository,
			repository.NewExamQARepository,
			repository.NewConcernRepository,
			repository.NewAdminRepository,
			repository.NewMaintenanceRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewQuestionService,
			service.NewScheduleService,
			service.NewExamService,
			service.NewResultService,
			service.NewNotificationService,
			service.NewSyllabusService,
			service.NewExamQAService,
			service.NewCandidateService,
			service.NewConcernService,
			service.NewAdminService,
			scheduler.NewResultsJob, // RESULTS_CRON driven aggregation
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewExamController,
			adminctrl.NewContentController,
			adminctrl.NewResultController,
			adminctrl.NewCandidateController,
			adminctrl.NewAuthController,
			userctrl.NewCandidatePortalController,
		),

		// Invokers - run in order once the graph is built
		fx.Invoke(MigrateStores),
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(scheduler.RegisterResultsJob),
	)

	// Start the application
	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	// Wait for a shutdown signal
	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Shutdown finished with errors")
	}
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)
	logger.SetLevel(cfg.LogLevel)

	r := gin.New()

	// Request logging goes through zerolog instead of gin's default writer
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return "" // already logged above
	}))
	r.Use(gin.Recovery())

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Admin UI is served from another origin
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"}, // filename of the xlsx export
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// Leaves headroom for the other form fields next to a 5MB image.
	r.MaxMultipartMemory = 8 << 20

	// Swagger UI
	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer mounts the API and manages the server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	examCtrl *adminctrl.ExamController,
	contentCtrl *adminctrl.ContentController,
	resultCtrl *adminctrl.ResultController,
	candidateCtrl *adminctrl.CandidateController,
	authCtrl *adminctrl.AuthController,
	portalCtrl *userctrl.CandidatePortalController,
) {
	// All routes live under /api
	controller.RegisterRoutes(router, controller.Controllers{
		Exam:      examCtrl,
		Content:   contentCtrl,
		Result:    resultCtrl,
		Candidate: candidateCtrl,
		Auth:      authCtrl,
		Portal:    portalCtrl,
	})

	// HTTP Server Setup and Lifecycle
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Exam admin server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			// Create a context with timeout for shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func MigrateStores(docs *docstore.Store, tree *keytree.Store) error {
	log.Info().Msg("Running store migrations...")
	if err := docs.AutoMigrate(); err != nil {
		log.Error().Err(err).Msg("Document store migration failed")
		return err
	}
	if err := tree.AutoMigrate(); err != nil {
		log.Error().Err(err).Msg("Key tree migration failed")
		return err
	}
	log.Info().Msg("Store migration completed successfully.")
	return nil
}
