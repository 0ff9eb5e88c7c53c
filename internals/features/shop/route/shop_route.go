package route

import (
	"github.com/gofiber/fiber/v2"

	shopController "finakihub_backend/internals/features/shop/controller"
	shopService "finakihub_backend/internals/features/shop/service"
)

func ShopRoutes(router fiber.Router, svc *shopService.ShopService) {
	ctrl := shopController.NewShopController(svc)

	shop := router.Group("/shop")
	shop.Get("/items", ctrl.ListItems)
	shop.Post("/purchase", ctrl.Purchase)
	shop.Post("/equip", ctrl.Equip)
}
