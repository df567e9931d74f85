package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "medication-tracker/docs"
	pg "medication-tracker/internal/adapters/storage/postgres"
	"medication-tracker/internal/config"
	"medication-tracker/internal/platform/logger"
	"medication-tracker/internal/router"
)

// @title medication-tracker API
// @version 1.0
// @description Tracker personal de medicación: registro de medicamentos y tomas del día.
// @BasePath /
func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	// DSN vacío => store in-memory (modo dev, sin durabilidad entre corridas)
	var db *sql.DB
	if cfg.DBDSN != "" {
		opened, err := pg.Open(cfg.DBDSN)
		if err != nil {
			log.Error("error opening database", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		db = opened

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := pg.EnsureSchema(ctx, db); err != nil {
			cancel()
			log.Error("error ensuring schema", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		cancel()
	}

	r := router.NewRouter(router.Options{DB: db, Log: log})

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
