package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agroflow-backend/config"
	_ "agroflow-backend/docs" // Important for Swagger
	v1 "agroflow-backend/internal/delivery/http/v1"
	"agroflow-backend/internal/domain"
	redisrepo "agroflow-backend/internal/repository/redis"
	"agroflow-backend/internal/repository/youtube"
	"agroflow-backend/internal/usecase"
	"agroflow-backend/pkg/email"
	"agroflow-backend/pkg/logger"
	"agroflow-backend/pkg/redis"
	"agroflow-backend/pkg/security"
	"agroflow-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

const serviceName = "agroflow-backend"

// @title           AgroFlow Backend API
// @version         1.0
// @description     Contact form delivery and media feeds for the AgroFlow site.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init(cfg.LogLevel, cfg.IsProduction())
	logger.Log.Info("Starting AgroFlow backend", "port", cfg.Port, "env", cfg.AppEnv)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	events := security.NewEventLogger(serviceName, cfg.AppEnv)
	defer func() { _ = events.Sync() }()

	// 3. Setup Redis (optional)
	var redisClient *goredis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redis.Connect(context.Background(), redis.Config{
			URL:      cfg.RedisURL,
			Password: cfg.RedisPassword,
		})
		if err != nil {
			logger.Log.Warn("Redis unavailable - using in-memory rate limiting and no video cache", "error", err)
		} else {
			defer redisClient.Close()
		}
	}

	// 4. Setup Email Service
	emailService := email.NewEmailService(cfg.SMTP)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact submissions will fail", "missing", email.MissingKeys(cfg.SMTP))
	}

	// 5. Setup Video Sources
	var searcher domain.VideoSearcher
	if cfg.YouTubeAPIKey != "" {
		searcher, err = youtube.NewSearcher(context.Background(), cfg.YouTubeAPIKey)
		if err != nil {
			logger.Log.Warn("YouTube search disabled", "error", err)
		}
	}
	var videoCache domain.VideoCache
	if redisClient != nil {
		videoCache = redisrepo.NewVideoCache(redisClient)
	}

	// 6. Setup UseCases
	validate, err := validation.New()
	if err != nil {
		logger.Log.Error("Failed to build validator", "error", err)
		os.Exit(1)
	}
	contactUC := usecase.NewContactUsecase(emailService, validate, events)
	newsUC := usecase.NewNewsUsecase()
	videoUC := usecase.NewVideoUsecase(searcher, videoCache, cfg.VideoCacheTTL())
	healthUC := usecase.NewHealthUsecase(redisClient)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		NewsUC:    newsUC,
		VideoUC:   videoUC,
		HealthUC:  healthUC,
		Redis:     redisClient,
		Events:    events,
		Config:    cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown. Submissions in flight finish their SMTP steps
	// within the shutdown window.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 3*cfg.SMTP.Timeout()+5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
