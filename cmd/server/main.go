package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ternarybob/banner"

	"github.com/jengzang/food-itinerary-go/internal/api"
	"github.com/jengzang/food-itinerary-go/internal/config"
	"github.com/jengzang/food-itinerary-go/internal/database"
	"github.com/jengzang/food-itinerary-go/internal/service"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	banner.PrintSimple("Food Itinerary", version)

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		config.NewLogger(config.LoggingConfig{}).Fatal().Err(err).Msg("Failed to load config")
	}
	logger := config.NewLogger(cfg.Logging)

	if cfg.Places.APIKey == "" {
		logger.Warn().Msg("GOOGLE_MAPS_API_KEY is not set; place lookups and geocoding will fail")
	}

	// 初始化数据库
	db, err := database.Open(database.Config{Path: cfg.Database.Path}, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	app, err := api.NewApp(cfg, db, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize application")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := service.NewCacheScheduler(app.Places, logger)
	if err := scheduler.Start(cfg.Places.PurgeSchedule); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start cache purge scheduler")
	}
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           app.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.Server.Port).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
