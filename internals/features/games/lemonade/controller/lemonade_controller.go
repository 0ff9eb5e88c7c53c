package controller

import (
	"github.com/gofiber/fiber/v2"

	"finakihub_backend/internals/features/games/lemonade/dto"
	"finakihub_backend/internals/features/games/lemonade/service"
	helper "finakihub_backend/internals/helpers"
)

type LemonadeController struct {
	Service *service.LemonadeService
}

func NewLemonadeController(svc *service.LemonadeService) *LemonadeController {
	return &LemonadeController{Service: svc}
}

// POST /api/game/lemonade
func (lc *LemonadeController) Save(c *fiber.Ctx) error {
	var req dto.LemonadeSaveRequest
	if err := helper.Bind(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	res, err := lc.Service.Save(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return c.JSON(res)
}

// GET /api/game/lemonade/:userId responds with JSON null when no game was saved.
func (lc *LemonadeController) Get(c *fiber.Ctx) error {
	res, err := lc.Service.Get(c.UserContext(), c.Params("userId"))
	if err != nil {
		return helper.FromError(c, err)
	}
	if res == nil {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString("null")
	}
	return c.JSON(res)
}
