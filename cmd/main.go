package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/shenikar/rescuenet_portal/internal/broadcast"
	"github.com/shenikar/rescuenet_portal/internal/config"
	"github.com/shenikar/rescuenet_portal/internal/gateway"
	v1 "github.com/shenikar/rescuenet_portal/internal/handler/http/v1"
	"github.com/shenikar/rescuenet_portal/internal/repository"
	"github.com/shenikar/rescuenet_portal/internal/service"
	"github.com/shenikar/rescuenet_portal/internal/session"
	"github.com/shenikar/rescuenet_portal/internal/staticdata"
	"github.com/shenikar/rescuenet_portal/pkg/gemini"
	"github.com/shenikar/rescuenet_portal/pkg/logger"
	redisclient "github.com/shenikar/rescuenet_portal/pkg/redis"

	_ "github.com/shenikar/rescuenet_portal/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 5 * time.Second

// @title RescueNet Portal API
// @version 1.0
// @description Disaster-response portal: hazard map, live alerts, incident reports, emergency services and volunteer desk.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatalf("Portal stopped with error: %v", err)
	}
	log.Info("Server gracefully stopped")
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	// Справочные данные
	store, err := loadStaticData(cfg.StaticDataPath)
	if err != nil {
		return err
	}

	// Клиент Gemini и AI-шлюз
	genaiClient, err := gemini.NewGeminiClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return err
	}
	intelligence := gateway.NewClient(
		gateway.NewGenAIGenerator(genaiClient, cfg.GeminiTimeout),
		log,
		gateway.Options{Model: cfg.GeminiModel, MapsModel: cfg.GeminiMapsModel},
	)

	// Инициализация репозиториев
	now := time.Now()
	incidentRepo := repository.NewIncidentRepository(store.SeedIncidents(now))
	activityLog := repository.NewActivityLog(repository.DefaultActivityCapacity, store.SeedActivity(now))

	g, ctx := errgroup.WithContext(ctx)

	// Рассылки: очередь в Redis и воркер вебхуков, либо только лог
	var publisher broadcast.Publisher
	if cfg.BroadcastEnabled() {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		publisher = broadcast.NewRedisPublisher(redisClient)
		worker := broadcast.NewWorker(redisClient, log, broadcast.WorkerConfig{
			URL:     cfg.BroadcastWebhookURL,
			Secret:  cfg.BroadcastWebhookSecret,
			Timeout: cfg.BroadcastWebhookTimeout,
		})
		g.Go(func() error { return worker.Run(ctx) })
	} else {
		log.Warn("REDIS_ADDR is not set, broadcasts will only be logged")
		publisher = broadcast.NewLogPublisher(log)
	}

	// Инициализация сервисов
	admin := service.NewAdminConsole(incidentRepo, publisher, log)

	newsLocation := cfg.NewsLocation
	if newsLocation == "" {
		newsLocation = store.DefaultNewsLocation()
	}
	news := service.NewNewsFeed(intelligence, log, newsLocation, cfg.NewsPollInterval)
	news.Start(ctx)
	defer news.Stop()

	registry := session.NewRegistry(session.Dependencies{
		Client:   intelligence,
		Store:    store,
		Activity: activityLog,
		Logger:   log,
	}, cfg.SessionTTL)
	g.Go(func() error { return registry.Run(ctx, cfg.SessionSweepInterval) })

	// Инициализация хэндлеров
	handler := v1.NewHandler(registry, news, admin, store, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	g.Go(func() error {
		log.Infof("HTTP server started on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Received shutdown signal, shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func loadStaticData(path string) (*staticdata.Store, error) {
	if path == "" {
		return staticdata.MustLoadEmbedded(), nil
	}
	store, err := staticdata.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load static data from %s: %w", path, err)
	}
	return store, nil
}
