package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"alertnet_backend/internal/auth"
	"alertnet_backend/internal/cache"
	"alertnet_backend/database"
	"alertnet_backend/internal/config"
	"alertnet_backend/internal/logger"
	"alertnet_backend/internal/models"
	"alertnet_backend/internal/repositories"
	"alertnet_backend/internal/routes"
	"alertnet_backend/internal/services"
	"alertnet_backend/internal/validator"
	"alertnet_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Run wires the application together and serves until the process dies.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)

	db, err := database.Connect(cfg.Database.DSN, cfg.Server.Env)
	if err != nil {
		logger.Fatal("database connection failed", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("migration failed", "error", err)
	}

	views := newViewTracker(cfg)
	container := services.NewServiceContainer(db, cfg, views)

	seedFirstAdmin(container.UserRepo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worker := workers.NewMaintenanceWorker(container.Devices, container.Notifications)
	go worker.Start(ctx)

	router := SetupRouter(cfg, container)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	if err := router.Run(addr); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}

func SetupRouter(cfg *config.Config, container *services.ServiceContainer) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	routes.SetupRoutes(router, container, validator.New())
	return router
}

func newViewTracker(cfg *config.Config) cache.ViewTracker {
	if cfg.Redis.Addr == "" {
		return cache.NoopViewTracker{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("redis unavailable, view counts will not be deduplicated", "error", err)
		return cache.NoopViewTracker{}
	}
	return cache.NewRedisViewTracker(client)
}

// seedFirstAdmin creates the bootstrap admin from ADMIN_EMAIL and
// ADMIN_PASSWORD when no account exists under that email yet.
func seedFirstAdmin(users repositories.UserRepository) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	if _, err := users.FindByEmail(email); err == nil {
		return
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		logger.Error("admin seed lookup failed", "error", err)
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		logger.Error("admin seed failed", "error", err)
		return
	}

	admin := &models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		IsSuperuser:  true,
		IsActive:     true,

		EmailNotifications:   true,
		PushNotifications:    true,
		NotificationRadiusKm: 5,
	}
	if err := users.Create(admin); err != nil {
		logger.Error("admin seed failed", "error", err)
		return
	}
	logger.Info("bootstrap admin created", "email", email)
}
