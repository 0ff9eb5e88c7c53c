package details

import (
	"github.com/gofiber/fiber/v2"

	database "finakihub_backend/internals/databases"
	lemonadeRepo "finakihub_backend/internals/features/games/lemonade/repository"
	lemonadeRoute "finakihub_backend/internals/features/games/lemonade/route"
	lemonadeService "finakihub_backend/internals/features/games/lemonade/service"
)

func GameRoutes(api fiber.Router, store *database.Store) {
	lemonadeRoute.LemonadeRoutes(api, lemonadeService.NewLemonadeService(lemonadeRepo.New(store)))
}
