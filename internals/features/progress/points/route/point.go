package route

import (
	"github.com/gofiber/fiber/v2"

	pointController "finakihub_backend/internals/features/progress/points/controller"
	pointService "finakihub_backend/internals/features/progress/points/service"
)

func UserPointRoutes(router fiber.Router, svc *pointService.PointService) {
	ctrl := pointController.NewUserPointController(svc)

	router.Post("/xp/add", ctrl.AddXP)
	router.Post("/coins/add", ctrl.AddCoins)
	router.Post("/badges/unlock", ctrl.UnlockBadge)
}
