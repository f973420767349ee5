package main

import (
	"alcyxob/coach-studio/internal/api"
	"alcyxob/coach-studio/internal/config"
	"alcyxob/coach-studio/internal/repository"
	"alcyxob/coach-studio/internal/repository/memory"
	"alcyxob/coach-studio/internal/repository/mongo"
	"alcyxob/coach-studio/internal/seed"
	"alcyxob/coach-studio/internal/service"
	"alcyxob/coach-studio/internal/storage"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// repositories is the storage the services run on, backed by MongoDB or by memory.
type repositories struct {
	users     repository.UserRepository
	sessions  repository.SessionRepository
	athletes  repository.AthleteRepository
	exercises repository.ExerciseRepository
	templates repository.TemplateRepository
	workouts  repository.CompletedWorkoutRepository
	plans     repository.PlannedWorkoutRepository
	convs     repository.ConversationRepository
	close     func()
}

// @title Coach Studio API
// @version 1.0
// @description API for coaches composing workouts, managing athletes and reviewing completed sessions.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	bootLogger, _ := zap.NewProduction()

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		bootLogger.Fatal("Could not load config", zap.Error(err))
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		bootLogger.Fatal("Could not build logger", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("Starting Coach Studio server...", zap.String("driver", cfg.Database.Driver))

	// --- Storage ---
	repos, err := openRepositories(cfg.Database, logger)
	if err != nil {
		logger.Fatal("Could not open database", zap.Error(err))
	}
	defer repos.close()

	if cfg.Seed.Enabled {
		if err := seedDemoData(repos, logger); err != nil {
			logger.Fatal("Could not seed demo data", zap.Error(err))
		}
	}

	fileStorage := storage.Disabled()
	if cfg.S3.Enabled() {
		fileStorage, err = storage.NewS3Storage(context.Background(), cfg.S3, logger)
		if err != nil {
			logger.Fatal("Failed to initialize S3 storage", zap.Error(err))
		}
	} else {
		logger.Info("No bucket configured, reviews will not link form videos")
	}

	// --- Initialize Services ---
	catalogService := service.NewCatalogService(repos.exercises, repos.templates)
	rosterService := service.NewRosterService(repos.athletes)
	builderService := service.NewBuilderService(catalogService, rosterService, cfg.Builder.IDSource, logger)
	// Signing out discards the session's draft.
	authService := service.NewAuthService(repos.users, repos.sessions, cfg.JWT.Secret, cfg.JWT.Expiration, logger, builderService)
	reviewService := service.NewReviewService(repos.workouts, fileStorage, cfg.S3.URLExpiry, logger)
	planService := service.NewPlanService(repos.plans)
	messageService := service.NewMessageService(repos.convs, logger)

	// --- Initialize Gin Engine ---
	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), api.RequestLogger(logger))

	api.SetupRoutes(router, api.Services{
		Auth:    authService,
		Catalog: catalogService,
		Roster:  rosterService,
		Builder: builderService,
		Review:  reviewService,
		Plans:   planService,
		Message: messageService,
	}, logger)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// --- Graceful Shutdown ---
	go func() {
		logger.Info("Server listening", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("ListenAndServe error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exiting.")
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}
	zcfg.Level = level
	return zcfg.Build()
}

func openRepositories(cfg config.DatabaseConfig, logger *zap.Logger) (*repositories, error) {
	if cfg.Driver == config.DriverMemory {
		logger.Warn("Using in-memory storage, data is lost on restart")
		store := memory.New()
		return &repositories{
			users:     store.Users(),
			sessions:  store.Sessions(),
			athletes:  store.Athletes(),
			exercises: store.Exercises(),
			templates: store.Templates(),
			workouts:  store.CompletedWorkouts(),
			plans:     store.PlannedWorkouts(),
			convs:     store.Conversations(),
			close:     func() {},
		}, nil
	}

	client, err := mongo.ConnectDB(cfg.URI)
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}
	db := client.Database(cfg.Name)
	logger.Info("Database connection established", zap.String("database", cfg.Name))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	mongo.EnsureIndexes(ctx, db, logger)

	return &repositories{
		users:     mongo.NewMongoUserRepository(db),
		sessions:  mongo.NewMongoSessionRepository(db),
		athletes:  mongo.NewMongoAthleteRepository(db),
		exercises: mongo.NewMongoExerciseRepository(db),
		templates: mongo.NewMongoTemplateRepository(db),
		workouts:  mongo.NewMongoCompletedWorkoutRepository(db),
		plans:     mongo.NewMongoPlannedWorkoutRepository(db),
		convs:     mongo.NewMongoConversationRepository(db),
		close: func() {
			logger.Info("Disconnecting MongoDB...")
			if err := mongo.DisconnectDB(client); err != nil {
				logger.Error("Failed to disconnect MongoDB", zap.Error(err))
			}
		},
	}, nil
}

func seedDemoData(repos *repositories, logger *zap.Logger) error {
	d, err := seed.Default()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return seed.Apply(ctx, d, seed.Repositories{
		Users:             repos.users,
		Athletes:          repos.athletes,
		Exercises:         repos.exercises,
		Templates:         repos.templates,
		CompletedWorkouts: repos.workouts,
		PlannedWorkouts:   repos.plans,
		Conversations:     repos.convs,
	}, logger)
}
