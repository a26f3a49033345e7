package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/example/recarga/internal/cache"
	"github.com/example/recarga/internal/config"
	"github.com/example/recarga/internal/database"
	"github.com/example/recarga/internal/metrics"
	"github.com/example/recarga/internal/routes"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)
	m := metrics.Registry("recarga")

	redis := cache.New(cache.Config{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redis.Ping(ctx); err != nil {
		log.Printf("Redis unavailable, catalog cache disabled: %v", err)
		redis = nil
	}
	cancel()

	app := fiber.New(fiber.Config{
		AppName: "Recarga Backend",
	})

	app.Use(recover.New())
	app.Use(logger.New())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	routes.Register(app, db, cfg, redis, m)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
