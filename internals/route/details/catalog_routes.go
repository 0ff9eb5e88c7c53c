package details

import (
	"github.com/gofiber/fiber/v2"

	database "finakihub_backend/internals/databases"
	moduleRoute "finakihub_backend/internals/features/modules/route"
	shopRoute "finakihub_backend/internals/features/shop/route"
	shopService "finakihub_backend/internals/features/shop/service"
	userRepo "finakihub_backend/internals/features/users/user/repository"
)

func CatalogRoutes(api fiber.Router, store *database.Store) {
	moduleRoute.ModuleRoutes(api)
	shopRoute.ShopRoutes(api, shopService.NewShopService(userRepo.New(store)))
}
