package controller

import (
	"github.com/gofiber/fiber/v2"

	"finakihub_backend/internals/features/shop/dto"
	"finakihub_backend/internals/features/shop/service"
	helper "finakihub_backend/internals/helpers"
)

type ShopController struct {
	Service *service.ShopService
}

func NewShopController(svc *service.ShopService) *ShopController {
	return &ShopController{Service: svc}
}

// GET /api/shop/items
func (sc *ShopController) ListItems(c *fiber.Ctx) error {
	return c.JSON(sc.Service.Items())
}

// POST /api/shop/purchase
func (sc *ShopController) Purchase(c *fiber.Ctx) error {
	var req dto.PurchaseRequest
	if err := helper.Bind(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	res, err := sc.Service.Purchase(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return c.JSON(res)
}

// POST /api/shop/equip
func (sc *ShopController) Equip(c *fiber.Ctx) error {
	var req dto.EquipRequest
	if err := helper.Bind(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	res, err := sc.Service.Equip(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return c.JSON(res)
}
