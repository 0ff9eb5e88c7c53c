package route

import (
	"github.com/gofiber/fiber/v2"

	moduleController "finakihub_backend/internals/features/modules/controller"
)

func ModuleRoutes(router fiber.Router) {
	ctrl := moduleController.NewModuleController()

	modules := router.Group("/modules")
	// the alias must be registered before the :tier wildcard
	modules.Get("/primary", ctrl.GetPrimaryDeprecated)
	modules.Get("/:tier", ctrl.GetByTier)
}
