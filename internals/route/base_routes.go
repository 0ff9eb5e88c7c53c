package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	log "github.com/sirupsen/logrus"

	database "finakihub_backend/internals/databases"
	helper "finakihub_backend/internals/helpers"
	"finakihub_backend/internals/metrics"
)

func BaseRoutes(api fiber.Router, store *database.Store) {
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "FinakiHub API", "status": "running"})
	})

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":         "ok",
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})

	api.Get("/db-ping", func(c *fiber.Ctx) error {
		if err := store.Ping(c.UserContext()); err != nil {
			log.WithError(err).Error("[DB] ping failed")
			return helper.Error(c, fiber.StatusInternalServerError, "No se pudo conectar a la base de datos")
		}
		return c.JSON(fiber.Map{"db": "ok"})
	})

	api.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
}
