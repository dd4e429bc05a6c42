package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talenthub/interview/internal/configs"
	"talenthub/interview/internal/handlers"
	"talenthub/interview/internal/metrics"
	"talenthub/interview/internal/middlewares"
	"talenthub/interview/internal/models"
	"talenthub/interview/internal/repositories"
	"talenthub/interview/internal/routers"
	"talenthub/interview/internal/seeds"
	"talenthub/interview/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := configs.Load()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.JobRequirement{},
		&models.Interview{},
		&models.InterviewQuestion{},
		&models.InterviewEvaluation{},
	); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	userRepo := &repositories.UserRepository{DB: db}
	if err := seeds.EnsureSuperAdmin(userRepo, cfg, logger); err != nil {
		logger.Fatal("failed to seed super admin", zap.Error(err))
	}

	events := services.NewEventPublisher(cfg.RedisAddr, logger)
	lifecycle := &services.LifecycleService{DB: db, Events: events}
	questions := &services.QuestionService{DB: db}
	evaluations := &services.EvaluationService{DB: db, Events: events}

	guard := &middlewares.Guard{Users: userRepo, JWTSecret: cfg.JWTSecret}

	authHandler := &handlers.AuthHandler{Repo: userRepo, JWTSecret: cfg.JWTSecret}
	userHandler := &handlers.UserHandler{Repo: userRepo}
	jobHandler := &handlers.JobHandler{Repo: &repositories.JobRepository{DB: db}}
	interviewHandler := &handlers.InterviewHandler{Lifecycle: lifecycle}
	questionHandler := &handlers.QuestionHandler{Questions: questions}
	evaluationHandler := &handlers.EvaluationHandler{Evaluations: evaluations}

	router := chi.NewRouter()
	router.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer, middleware.Timeout(60*time.Second))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))
	router.Use(metrics.Middleware("interview"))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("ok")) })
	router.Get("/readyz", func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("ready")) })
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	routers.AuthRoutes(router, authHandler)
	routers.UserRoutes(router, guard, userHandler)
	routers.JobRoutes(router, guard, jobHandler)
	routers.InterviewRoutes(router, guard, interviewHandler, questionHandler, evaluationHandler)

	addr := ":" + cfg.Port
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("interview service starting", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("interview service shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("interview service exited")
}
