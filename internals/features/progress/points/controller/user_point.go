package controller

import (
	"github.com/gofiber/fiber/v2"

	"finakihub_backend/internals/features/progress/points/dto"
	"finakihub_backend/internals/features/progress/points/service"
	helper "finakihub_backend/internals/helpers"
)

type UserPointController struct {
	Service *service.PointService
}

func NewUserPointController(svc *service.PointService) *UserPointController {
	return &UserPointController{Service: svc}
}

// POST /api/xp/add
func (ctrl *UserPointController) AddXP(c *fiber.Ctx) error {
	var req dto.AddXPRequest
	if err := helper.Bind(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	res, err := ctrl.Service.AddXP(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return c.JSON(res)
}

// POST /api/coins/add
func (ctrl *UserPointController) AddCoins(c *fiber.Ctx) error {
	var req dto.CoinUpdateRequest
	if err := helper.Bind(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	res, err := ctrl.Service.AddCoins(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return c.JSON(res)
}

// POST /api/badges/unlock
func (ctrl *UserPointController) UnlockBadge(c *fiber.Ctx) error {
	var req dto.BadgeUnlockRequest
	if err := helper.Bind(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	res, err := ctrl.Service.UnlockBadge(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return c.JSON(res)
}
