package controller

import (
	"github.com/gofiber/fiber/v2"

	"finakihub_backend/internals/features/progress/progress/dto"
	"finakihub_backend/internals/features/progress/progress/service"
	helper "finakihub_backend/internals/helpers"
)

type UserProgressController struct {
	Service *service.ProgressService
}

func NewUserProgressController(svc *service.ProgressService) *UserProgressController {
	return &UserProgressController{Service: svc}
}

// GET /api/progress/:userId
func (ctrl *UserProgressController) GetByUserID(c *fiber.Ctx) error {
	resp, err := ctrl.Service.Get(c.UserContext(), c.Params("userId"))
	if err != nil {
		return helper.FromError(c, err)
	}
	return c.JSON(resp)
}

// POST /api/progress/update
func (ctrl *UserProgressController) Update(c *fiber.Ctx) error {
	var req dto.ProgressUpdateRequest
	if err := helper.Bind(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	res, err := ctrl.Service.Update(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return c.JSON(res)
}
