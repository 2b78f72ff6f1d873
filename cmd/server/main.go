package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"transparencyhub/config"
	"transparencyhub/controllers"
	"transparencyhub/db"
	"transparencyhub/logger"
	"transparencyhub/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "./config/config.yml", "Path to config file")
	flag.Parse()

	// Load the configuration; a missing file falls back to defaults
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	logger.SetGlobalLogger(log)

	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// The product catalog is only served when a database is configured
	var products *controllers.ProductController
	if cfg.Database.URI != "" {
		if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
		}
		log.Info().Msg("Connected to MongoDB")

		store := db.NewProductStore(db.MongoDatabase)
		if cfg.Database.Seed {
			n, err := utils.SeedProductData(context.Background(), store)
			if err != nil {
				log.Error().Err(err).Msg("Failed to seed products")
			} else if n > 0 {
				log.Info().Int("count", n).Msg("Seeded sample products")
			}
		}
		products = controllers.NewProductController(store, log)
	} else {
		log.Info().Msg("No database configured, product catalog disabled")
	}

	router, err := setupRouter(cfg, log, products)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up router")
	}

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	if err := db.DisconnectMongoDB(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
	}
	log.Info().Msg("Server stopped")
}
