package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"scoutquest/internal/api"
	"scoutquest/internal/events"
	"scoutquest/internal/middleware"
	"scoutquest/internal/repository"
	"scoutquest/internal/service"
	"scoutquest/pkg/auth"
	"scoutquest/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	err = logger.Initialize(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zapLogger := logger.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, err := repository.New(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to initialize repository", zap.Error(err))
	}
	defer repo.Close()

	if cfg.Database.Migrate {
		if err = repository.Migrate(cfg.Database); err != nil {
			zapLogger.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	redisClient, err := auth.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	sessions := auth.NewManager(cfg.Session, auth.NewRedisStore(redisClient))

	hub := events.NewHub(32)
	defer hub.Close()
	publisher := events.Fanout{hub}

	if cfg.Telegram.Enabled() {
		notifier, err := service.NewTelegramNotifier(cfg.Telegram.Notifier())
		if err != nil {
			zapLogger.Error("Failed to initialize telegram notifier", zap.Error(err))
		} else {
			go notifier.Run(ctx)
			publisher = append(publisher, notifier)
		}
	}

	progression := service.LoadProgression(ctx, repo)

	scoutService := service.NewScoutService(repo, progression)
	svc := service.NewService(
		service.NewAuthService(repo, sessions),
		scoutService,
		service.NewAchievementService(repo, publisher),
		service.NewReviewService(repo, publisher),
		service.NewAdminService(repo),
	)
	authorization := middleware.NewAuthorization(scoutService)

	router := gin.New()
	router.Use(gin.Recovery())

	config := cors.DefaultConfig()
	if len(cfg.CORS.AllowOrigins) > 0 {
		config.AllowOrigins = cfg.CORS.AllowOrigins
		config.AllowCredentials = true
	} else {
		config.AllowAllOrigins = true
	}
	config.AllowMethods = []string{
		http.MethodHead,
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
	}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	config.MaxAge = 12 * time.Hour

	router.Use(cors.New(config))

	sessionMW := sessions.SessionMiddleware()

	a := router.Group("/api/v1")
	api.NewAuthRoutes(a, svc.AuthService, sessionMW)
	api.NewReferenceRoutes(a, svc.ScoutService)
	api.NewScoutRoutes(a, svc.ScoutService, sessionMW)
	api.NewAchievementRoutes(a, svc.AchievementService, sessionMW)
	api.NewAdminRoutes(a, svc.ReviewService, svc.AdminService, sessionMW, authorization.AdminOnly())
	api.NewEventRoutes(a, hub, scoutService, sessionMW)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Starting server", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLogger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Failed to shut down server", zap.Error(err))
	}
}
