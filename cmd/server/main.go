package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/shareit-go/service-shareit/internal/application"
	"github.com/shareit-go/service-shareit/internal/auth"
	"github.com/shareit-go/service-shareit/internal/config"
	"github.com/shareit-go/service-shareit/internal/database"
	userDomain "github.com/shareit-go/service-shareit/internal/domain/user"
	"github.com/shareit-go/service-shareit/internal/events"
	"github.com/shareit-go/service-shareit/internal/handler"
	"github.com/shareit-go/service-shareit/internal/logger"
	"github.com/shareit-go/service-shareit/internal/metrics"
	"github.com/shareit-go/service-shareit/internal/middleware"
	"github.com/shareit-go/service-shareit/internal/repository"
	"go.uber.org/zap"
)

const serviceName = "service-shareit"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting "+serviceName,
		zap.String("port", cfg.Port),
		zap.String("env", cfg.AppEnv),
	)

	// Connect to database
	dbConfig := database.PostgresConfig{
		Host:     cfg.DBConfig.Host,
		Port:     cfg.DBConfig.Port,
		User:     cfg.DBConfig.User,
		Password: cfg.DBConfig.Password,
		DBName:   cfg.DBConfig.DBName,
		SSLMode:  cfg.DBConfig.SSLMode,
	}
	db, err := database.Connect(dbConfig, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}
	defer func() { _ = sqlDB.Close() }()

	// Run database migrations
	if cfg.DBConfig.AutoMigrate {
		if err := db.AutoMigrate(
			&repository.UserModel{},
			&repository.RequestModel{},
			&repository.ItemModel{},
			&repository.CommentModel{},
			&repository.BookingModel{},
		); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (auto-migrate)")
	} else if err := database.RunMigrations(dbConfig.DatabaseURL(), log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	var userRepo userDomain.UserRepository = repository.NewGormUserRepository(db)
	if cfg.RedisConfig.Addr != "" {
		redisClient := repository.NewRedisClient(cfg.RedisConfig.Addr, cfg.RedisConfig.Password, cfg.RedisConfig.DB)
		defer func() { _ = redisClient.Close() }()
		userRepo = repository.NewCachedUserRepository(userRepo, redisClient, cfg.RedisConfig.UserTTL, log)
		log.Info("user cache enabled", zap.String("addr", cfg.RedisConfig.Addr))
	}
	itemRepo := repository.NewGormItemRepository(db)
	commentRepo := repository.NewGormCommentRepository(db)
	requestRepo := repository.NewGormRequestRepository(db)
	bookingRepo := repository.NewGormBookingRepository(db)
	transactor := repository.NewGormTransactor(db)

	// Initialize Kafka producer
	var publisher application.EventPublisher = events.NopPublisher{}
	if len(cfg.KafkaConfig.Brokers) > 0 {
		producer := events.NewProducer(cfg.KafkaConfig.Brokers, log)
		defer func() { _ = producer.Close() }()
		publisher = producer
		log.Info("booking events enabled",
			zap.Strings("brokers", cfg.KafkaConfig.Brokers),
			zap.String("topic", cfg.KafkaConfig.Topic),
		)
	}

	// Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.Register(registry)

	// Initialize application services
	aggregator := application.NewItemBookingAggregator(bookingRepo, commentRepo)
	bookingService := application.NewBookingService(bookingRepo, itemRepo, userRepo, transactor, publisher, cfg.KafkaConfig.Topic, log)
	bookingQueries := application.NewBookingQueryService(bookingRepo, itemRepo, userRepo, log)
	itemService := application.NewItemService(itemRepo, commentRepo, bookingRepo, userRepo, requestRepo, aggregator, log)
	requestService := application.NewRequestService(requestRepo, itemRepo, userRepo, aggregator, log)
	userService := application.NewUserService(userRepo, log)

	// Initialize identity
	var (
		jwtManager  *auth.JWTManager
		authHandler *handler.AuthHandler
	)
	if cfg.JWTConfig.Secret != "" {
		jwtManager = auth.NewJWTManager(cfg.JWTConfig.Secret, 24*time.Hour)
		authHandler = handler.NewAuthHandler(jwtManager, userService)
	}
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	// Setup Gin router
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handler.NewRouter(log, handler.Handlers{
		Bookings: handler.NewBookingHandler(bookingService, bookingQueries),
		Items:    handler.NewItemHandler(itemService),
		Requests: handler.NewRequestHandler(requestService),
		Users:    handler.NewUserHandler(userService),
		Health:   handler.NewHealthHandler(sqlDB, serviceName, registry),
		Auth:     authHandler,
	}, middleware.IdentityMiddleware(jwtManager), limiter.Middleware())

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down " + serviceName + "...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info(serviceName + " stopped")
}
