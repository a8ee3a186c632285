package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/teamsync/brackets"
	"github.com/Dosada05/teamsync/config"
	"github.com/Dosada05/teamsync/db"
	"github.com/Dosada05/teamsync/handlers"
	"github.com/Dosada05/teamsync/overlay"
	"github.com/Dosada05/teamsync/repositories"
	api "github.com/Dosada05/teamsync/routes"
	"github.com/Dosada05/teamsync/scheduler"
	"github.com/Dosada05/teamsync/services"
	"github.com/Dosada05/teamsync/storage"
	"github.com/go-chi/chi/v5"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort), slog.String("sync_schedule", cfg.SyncSchedule))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Подключение к базе данных
	dbConn, err := db.Connect(ctx, cfg.DatabaseURL, db.DefaultPool, 5*time.Second)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	if cfg.DBAutoMigrate {
		if err := db.Migrate(ctx, dbConn); err != nil {
			return err
		}
		logger.Info("database schema applied")
	}

	// Подключение к live-хранилищу
	rdb, err := overlay.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			logger.Error("failed to close redis client", slog.Any("error", err))
		}
	}()
	logger.Info("redis connection established")

	// Экспорт расписаний в Cloudflare R2 (опционально)
	var uploader storage.FileUploader
	uploader, err = storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2UploaderConfig{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
		BucketName:      cfg.R2BucketName,
		PublicBaseURL:   cfg.R2PublicBaseURL,
	})
	switch {
	case errors.Is(err, storage.ErrStorageNotConfigured):
		uploader = nil
		logger.Info("R2 not configured, schedule export disabled")
	case err != nil:
		return fmt.Errorf("failed to initialize Cloudflare R2 uploader: %w", err)
	default:
		logger.Info("Cloudflare R2 uploader initialized")
	}

	// Инициализация WebSocket Hub
	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	wsHub := brackets.NewHub(logger)
	go wsHub.Run(hubCtx)

	// Инициализация репозиториев
	txManager := repositories.NewPostgresTxManager(dbConn)
	sessionRepo := repositories.NewPostgresSessionRepository(dbConn)
	participantRepo := repositories.NewPostgresSessionParticipantRepository(dbConn)
	gameRepo := repositories.NewPostgresGameRepository(dbConn)
	tournamentRepo := repositories.NewPostgresTournamentRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	fixtureRepo := repositories.NewPostgresFixtureRepository(dbConn)

	// Инициализация сервисов
	sessionService := services.NewSessionService(
		txManager,
		sessionRepo,
		participantRepo,
		gameRepo,
		overlay.NewRedisReader(rdb, logger),
		wsHub,
		logger,
		services.WithSyncConcurrency(cfg.SyncConcurrency),
	)
	scheduleService := services.NewScheduleService(
		txManager,
		tournamentRepo,
		teamRepo,
		fixtureRepo,
		brackets.NewGenerator(brackets.RoundRobinName),
		wsHub,
		uploader,
		logger,
	)

	// Планировщик синхронизации сессий
	syncScheduler, err := scheduler.NewScheduler(sessionService, scheduler.Config{
		Schedule: cfg.SyncSchedule,
		Window:   cfg.SyncWindow,
		Timeout:  30 * time.Minute,
	}, logger)
	if err != nil {
		return err
	}
	syncScheduler.Start()
	defer func() {
		if err := syncScheduler.Stop(); err != nil {
			logger.Error("failed to stop scheduler", slog.Any("error", err))
		}
	}()

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(router, api.Config{
		JWTSecret:      cfg.JWTSecretKey,
		CronSecret:     cfg.CronSecret,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RequestTimeout: 60 * time.Second,
	}, api.Handlers{
		Schedule:  handlers.NewScheduleHandler(scheduleService),
		Session:   handlers.NewSessionHandler(sessionService, cfg.SyncWindow),
		WebSocket: handlers.NewWebSocketHandler(wsHub, cfg.CORSAllowedOrigins, logger),
		Health: handlers.NewHealthHandler(map[string]handlers.HealthCheck{
			"postgres": dbConn.PingContext,
			"redis":    func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		}),
	})

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		logger.Info("server shutdown complete")
	}

	// websocket-клиенты закрываются вместе с hub
	stopHub()
	logger.Info("application exited")
	return nil
}
