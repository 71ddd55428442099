package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	apiHttp "github.com/coopconnect/backend/internal/api/http"
	"github.com/coopconnect/backend/internal/config"
	"github.com/coopconnect/backend/internal/db"
	"github.com/coopconnect/backend/internal/repository"
	"github.com/coopconnect/backend/internal/server"
	"github.com/coopconnect/backend/internal/service"
	"github.com/coopconnect/backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	logger.Info("starting backend api", zap.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	if cfg.Database.AutoMigrate {
		if err := db.MigrateUp(cfg.Database); err != nil {
			logger.Error("migrations failed", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("migrations applied")
	}

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		logger.Error("mysql connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := dbMySQL.Close(); err != nil {
			logger.Error("error when closing", zap.Error(err))
		}
	}()
	logger.Info("mysql connection done")

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL)
	services := service.NewServices(service.Deps{
		Repos: repos,
	})
	handlers := apiHttp.NewHandlers(services, cfg, dbMySQL)

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init())
	go func() {
		if err := srv.Run(); err != nil {
			logger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	logger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	if err := srv.Stop(context.Background()); err != nil {
		logger.Error("failed to stop server", zap.Error(err))
	}

	logger.Info("app stopped")
}
