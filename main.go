package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"finakihub_backend/internals/configs"
	database "finakihub_backend/internals/databases"
	helper "finakihub_backend/internals/helpers"
	middlewares "finakihub_backend/internals/middlewares"
	routes "finakihub_backend/internals/route"
	"finakihub_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	configs.InitLogger(cfg)

	// 🔌 store connect + schema
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	store, err := database.Open(ctx, cfg)
	if err != nil {
		cancel()
		log.Fatalf("database error: %v", err)
	}
	if err := seeds.EnsureSchema(ctx, store); err != nil {
		cancel()
		log.Fatalf("schema error: %v", err)
	}
	cancel()

	if err := seeds.RunAllSeeds(context.Background(), store, cfg.SeedUsersFile); err != nil {
		log.WithError(err).Warn("[SEED] failed")
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ErrorHandler:          helper.ErrorHandler,
	})

	middlewares.SetupMiddlewares(app, cfg.RequestTimeout)

	// ✅ Routes
	routes.SetupRoutes(app, store, middlewares.NewRateLimits(cfg))

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		log.Infof("✅ Listening on :%s (%s store)", cfg.Port, store.Driver)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + close store
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = app.ShutdownWithContext(shutdownCtx)

	if err := store.Close(shutdownCtx); err != nil {
		log.WithError(err).Warn("close store")
	}
}
