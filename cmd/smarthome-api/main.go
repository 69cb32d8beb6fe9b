package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"smarthome-api/internal/config"
	"smarthome-api/internal/database"
	httpapi "smarthome-api/internal/http"
	"smarthome-api/internal/logger"
	"smarthome-api/internal/repository"
	"smarthome-api/internal/service"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "smarthome-api")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	var db *sql.DB
	var repo repository.HomeRepository
	if cfg.DBEnabled {
		if d, err := database.Open(&cfg.Database); err == nil {
			db = d
			repo = repository.NewPostgresHomeRepository(db)
			log.Info("Postgres store enabled")
		} else {
			log.Warn("DB enabled but connection failed, falling back to in-memory store", zap.Error(err))
		}
	}
	if repo == nil {
		// In-memory fallback keeps the API usable for local dev; the
		// house row that schema.sql would seed comes from config.
		repo = repository.NewMemoryHomeRepository(cfg.House.Name)
		log.Info("using in-memory store", zap.String("house", cfg.House.Name))
	}

	handler := httpapi.NewHomeHandler(repo, log)
	router := httpapi.NewRouter(log)
	router.RegisterHomeRoutes(handler)

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
	case err := <-errCh:
		if err != nil {
			log.Error("HTTP server failed", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Stop(shutdownCtx)
	if db != nil {
		_ = db.Close()
	}
}
