package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/adilkhanov/hrdoc-backend/internal/config"
	"github.com/adilkhanov/hrdoc-backend/internal/db"
	httpHandlers "github.com/adilkhanov/hrdoc-backend/internal/http/handlers"
	httpRouter "github.com/adilkhanov/hrdoc-backend/internal/http/router"
	"github.com/adilkhanov/hrdoc-backend/internal/logger"
	"github.com/adilkhanov/hrdoc-backend/internal/repository"
	"github.com/adilkhanov/hrdoc-backend/internal/service"
	"github.com/adilkhanov/hrdoc-backend/internal/storage"
	"github.com/adilkhanov/hrdoc-backend/internal/ws"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	logLevel := "info"
	if cfg.Env == "development" {
		logLevel = "debug"
		logger.Init(logLevel)
		logger.SetTextFormatter()
	} else {
		logger.Init(logLevel)
	}

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("main: ошибка подключения к базе: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		log.Fatalf("main: ошибка миграций: %v", err)
	}

	// Вспомогательные сервисы.
	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.RefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	documentStorage, err := storage.NewDocumentStorage(cfg.DocumentStoragePath, cfg.MaxUploadSizeMB)
	if err != nil {
		log.Fatalf("main: не удалось подготовить файловое хранилище: %v", err)
	}

	// Репозитории.
	userRepo := repository.NewUserRepository(dbConn)
	documentRepo := repository.NewDocumentRepository(dbConn)
	contractRepo := repository.NewContractRepository(dbConn)
	templateRepo := repository.NewTemplateRepository(dbConn)

	// Вебсокеты.
	hub := ws.NewHub(ctx)
	go hub.Run()

	// Сервисы.
	authService := service.NewAuthService(userRepo, tokenManager)
	documentService := service.NewDocumentService(documentRepo, hub, documentStorage)
	previewService := service.NewPreviewService(templateRepo, contractRepo)

	// HTTP хэндлеры.
	authHandler := httpHandlers.NewAuthHandler(authService)
	documentHandler := httpHandlers.NewDocumentHandler(documentService, documentStorage)
	previewHandler := httpHandlers.NewPreviewHandler(documentService, previewService)
	wsHandler := httpHandlers.NewWSHandler(hub, tokenManager)
	healthHandler := httpHandlers.NewHealthHandler(dbConn)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, authHandler, documentHandler, previewHandler, wsHandler, healthHandler, tokenManager)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	}()

	log.Printf("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: ошибка закрытия базы: %v", err)
	}
}
