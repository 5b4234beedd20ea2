package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"care-connect.backend/internal/config"
	"care-connect.backend/internal/infrastructure/jobs"
	"care-connect.backend/internal/infrastructure/notifications"
	"care-connect.backend/internal/infrastructure/repositories"
	"care-connect.backend/internal/interfaces/http/handlers"
	"care-connect.backend/internal/interfaces/http/middleware"
	"care-connect.backend/internal/usecases"
	"care-connect.backend/pkg/jwt"
	"care-connect.backend/pkg/logger"
	"care-connect.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN: dsn,
		}), &gorm.Config{
			TranslateError: true,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("Connected to PostgreSQL via GORM")
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	caregiverRepo := repositories.NewCaregiverRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Outbound ports
	eventPublisher := notifications.NewRedisBookingEventPublisher()
	mailer := notifications.NewLogMailer()

	// Usecases
	matchingUsecase := usecases.NewMatchingUsecase(caregiverRepo, cfg.Matching.RadiusKm)
	bookingUsecase := usecases.NewBookingUsecase(bookingRepo, caregiverRepo, userRepo, uow, eventPublisher, mailer)
	reviewUsecase := usecases.NewReviewUsecase(reviewRepo, bookingRepo, bookingUsecase)
	verificationUsecase := usecases.NewVerificationUsecase(userRepo, caregiverRepo, uow, mailer)

	// Handlers
	matchHandler := handlers.NewMatchHandler(matchingUsecase)
	bookingHandler := handlers.NewBookingHandler(bookingUsecase)
	reviewHandler := handlers.NewReviewHandler(reviewUsecase)
	adminHandler := handlers.NewAdminHandler(verificationUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reconcileJob := jobs.NewVerificationReconcileJob(verificationUsecase, cfg.Jobs.ReconcileInterval)
	go reconcileJob.Start(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		matchHandler:   matchHandler,
		bookingHandler: bookingHandler,
		reviewHandler:  reviewHandler,
		adminHandler:   adminHandler,
		authMiddleware: authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		reconcileJob.Stop()
		cancel()
	}()

	log.Printf("Care-Connect Backend starting on port %s", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
