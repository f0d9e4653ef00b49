package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"avoska-api/internal/config"
	"avoska-api/internal/db"
	"avoska-api/internal/logger"
	"avoska-api/internal/router"
	"avoska-api/internal/session"
)

func main() {
	cfg := config.LoadConfig()

	log := logger.InitLogger()
	log.Info().Msg("Starting avoska-api")

	database := db.InitDB(cfg.DBUrl)
	defer database.Close()

	db.RunMigrations(database)

	if cfg.SeedDemoData {
		if err := db.SeedProducts(database); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed product catalog")
		}
	}

	sessions := session.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := sessions.Ping(pingCtx); err != nil {
		pingCancel()
		log.Fatal().Err(err).Msg("Session store is not responding")
	}
	pingCancel()

	handler := router.SetupRouter(database, sessions, cfg, log)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		log.Info().Msgf("Server listening on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info().Msg("Shutdown signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("Server stopped")
}
