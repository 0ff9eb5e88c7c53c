// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	database "finakihub_backend/internals/databases"
	rateLimiter "finakihub_backend/internals/middlewares"
	routeDetails "finakihub_backend/internals/route/details"
)

var startTime time.Time

// SetupRoutes mounts every endpoint under /api. Each feature builds its
// repositories from the shared store handle.
func SetupRoutes(app *fiber.App, store *database.Store, limits rateLimiter.RateLimits) {
	startTime = time.Now()

	api := app.Group("/api", rateLimiter.GlobalRateLimiter(limits.Global))

	log.Info("[INFO] Setting up BaseRoutes...")
	BaseRoutes(api, store)

	log.Info("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(api, store, limits)

	log.Info("[INFO] Setting up UserRoutes...")
	routeDetails.UserRoutes(api, store)

	log.Info("[INFO] Mounting Progress routes...")
	routeDetails.ProgressRoutes(api, store)

	log.Info("[INFO] Mounting Catalog routes...")
	routeDetails.CatalogRoutes(api, store)

	log.Info("[INFO] Mounting Game routes...")
	routeDetails.GameRoutes(api, store)
}
