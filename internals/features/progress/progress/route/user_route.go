package routes

import (
	"github.com/gofiber/fiber/v2"

	progressController "finakihub_backend/internals/features/progress/progress/controller"
	progressService "finakihub_backend/internals/features/progress/progress/service"
)

func UserProgressRoutes(router fiber.Router, svc *progressService.ProgressService) {
	controller := progressController.NewUserProgressController(svc)
	progress := router.Group("/progress")

	progress.Post("/update", controller.Update)
	progress.Get("/:userId?", controller.GetByUserID)
}
