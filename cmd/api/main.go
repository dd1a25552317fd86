package main

import (
	"log"
	"os"
	"strings"
	"time"

	"chat_messages_go_backend/cmd/api/config"
	"chat_messages_go_backend/internal/api"
	"chat_messages_go_backend/internal/database"
	"chat_messages_go_backend/internal/middleware"
	"chat_messages_go_backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.Init(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	chatStore := services.NewChatStoreDB(db)

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(gin.Recovery())

	// CORS middleware configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:  strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	api.SetupRoutes(r, chatStore)

	logger.Info().Str("port", cfg.Port).Msg("Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
