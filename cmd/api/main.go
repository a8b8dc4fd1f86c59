package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"board-banker-backend/internal/config"
	"board-banker-backend/internal/handlers"
	"board-banker-backend/internal/middleware"
	"board-banker-backend/internal/services"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	limiter, err := services.NewRateLimiter(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer limiter.Close()

	hub := handlers.NewHub()
	coordinator := services.NewCoordinator(hub)
	wsHandler := handlers.NewWebSocketHandler(coordinator, hub, limiter)
	healthHandler := handlers.NewHealthHandler(coordinator)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.ClientURL))

	router.GET("/", healthHandler.Status)
	router.GET("/health", healthHandler.Health)
	router.GET("/ws", wsHandler.HandleWebSocket)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
