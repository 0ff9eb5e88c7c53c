package controller

import (
	"github.com/gofiber/fiber/v2"

	"finakihub_backend/internals/features/users/user/dto"
	"finakihub_backend/internals/features/users/user/service"
	helper "finakihub_backend/internals/helpers"
)

type UserController struct {
	Service *service.UserService
}

func NewUserController(svc *service.UserService) *UserController {
	return &UserController{Service: svc}
}

// GET /api/user/:id
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	resp, err := uc.Service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.FromError(c, err)
	}
	return c.JSON(resp)
}

// PUT /api/user/avatar
func (uc *UserController) UpdateAvatar(c *fiber.Ctx) error {
	var req dto.AvatarUpdateRequest
	if err := helper.Bind(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	resp, err := uc.Service.UpdateAvatar(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return c.JSON(resp)
}

// PUT /api/user/level
func (uc *UserController) UpdateLevel(c *fiber.Ctx) error {
	var req dto.LevelUpdateRequest
	if err := helper.Bind(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	resp, err := uc.Service.UpdateLevel(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return c.JSON(resp)
}
