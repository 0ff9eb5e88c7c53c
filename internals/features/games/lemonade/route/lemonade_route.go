package route

import (
	"github.com/gofiber/fiber/v2"

	lemonadeController "finakihub_backend/internals/features/games/lemonade/controller"
	lemonadeService "finakihub_backend/internals/features/games/lemonade/service"
)

func LemonadeRoutes(router fiber.Router, svc *lemonadeService.LemonadeService) {
	ctrl := lemonadeController.NewLemonadeController(svc)

	game := router.Group("/game/lemonade")
	game.Post("/", ctrl.Save)
	game.Get("/:userId?", ctrl.Get)
}
