package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hostelops/backend/internal/api"
	"hostelops/backend/internal/config"
	"hostelops/backend/internal/logger"
	"hostelops/backend/internal/models"
	"hostelops/backend/internal/storage"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg *config.Config, log *logger.Logger) (*gorm.DB, *redis.Client) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect PostgreSQL", "error", err)
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal("failed to connect Redis", "error", err)
		}
	} else {
		log.Warn("REDIS_ADDR not set, submission throttle disabled")
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Complaint{},
		&models.Announcement{},
	)
	if err != nil {
		log.Fatal("failed to run migrations", "error", err)
	}

	log.Info("database connections established, migrations complete")
	return db, rdb
}

func main() {
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogFile)
	defer log.Sync()

	db, rdb := setupDependencies(cfg, log)
	store := storage.NewService(db, rdb)

	router := api.SetupRouter(cfg, log, store)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Info("HostelOps server listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("forced shutdown", "error", err)
	}

	log.Info("server stopped")
}
