package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"impulsa/backend/internal/api/handler"
	"impulsa/backend/internal/config"
	"impulsa/backend/internal/connection"
	"impulsa/backend/internal/directory"
	"impulsa/backend/internal/localization"
	"impulsa/backend/internal/messaging"
	"impulsa/backend/internal/models"
	"impulsa/backend/internal/notification"
	"impulsa/backend/internal/storage"
)

func setupDependencies(cfg config.Config) (*gorm.DB, *redis.Client) {
	// TranslateError turns the active-pair unique violation into
	// gorm.ErrDuplicatedKey, which the connection store relies on.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Connection{},
		&models.Message{},
		&models.Entrepreneurship{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting Impulsa Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	db, rdb := setupDependencies(cfg)
	s := storage.NewStorageService(db, rdb)

	localizer, err := localization.NewLocalizer(cfg.LocalesPath, cfg.DefaultLanguage)
	if err != nil {
		log.Fatalf("Failed to load locales: %v", err)
	}

	connections := connection.NewService(s, s)
	msging := messaging.NewService(s, connections, s, s)
	notifications := notification.NewView(s)
	dir := directory.NewService(s)

	r := gin.Default()
	h := handler.NewHandler(connections, msging, notifications, dir, localizer)

	api := r.Group("/api/v1", handler.AuthRequired([]byte(cfg.JWTSecret)))
	{
		api.POST("/connections", h.RequestConnection)
		api.POST("/connections/:id/response", h.RespondToConnection)
		api.GET("/connections", h.ListConnections)
		api.GET("/connections/status/:userID", h.ConnectionStatus)

		api.POST("/messages", h.SendMessage)
		api.POST("/messages/:id/read", h.MarkMessageRead)
		api.GET("/channel", h.GetChannel)

		api.GET("/notifications/summary", h.NotificationSummary)

		api.GET("/entrepreneurships", h.ListEntrepreneurships)
		api.GET("/entrepreneurships/:id", h.GetEntrepreneurship)
		api.POST("/entrepreneurships", h.PublishEntrepreneurship)
	}

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
