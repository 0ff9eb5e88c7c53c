package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"finakihub_backend/internals/metrics"
	"finakihub_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the app-wide chain. Order matters: recover wraps everything,
// the request context exists before logging and metrics read it.
func SetupMiddlewares(app *fiber.App, requestTimeout time.Duration) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New()) // 304 for the static catalogs
	app.Use(RequestContext(requestTimeout))
	app.Use(logger.LoggerMiddleware())
	app.Use(metrics.Middleware())
}
