package controller

import (
	"github.com/gofiber/fiber/v2"

	"finakihub_backend/internals/features/users/auth/dto"
	"finakihub_backend/internals/features/users/auth/service"
	helper "finakihub_backend/internals/helpers"
)

type AuthController struct {
	Service *service.AuthService
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{Service: svc}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := helper.Bind(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	resp, err := ac.Service.Register(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return c.JSON(resp)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := helper.Bind(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	resp, err := ac.Service.Login(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return c.JSON(resp)
}
