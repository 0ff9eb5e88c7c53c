package route

import (
	"github.com/gofiber/fiber/v2"

	authController "finakihub_backend/internals/features/users/auth/controller"
	authService "finakihub_backend/internals/features/users/auth/service"
	rateLimiter "finakihub_backend/internals/middlewares"
)

func AuthRoutes(router fiber.Router, svc *authService.AuthService, limits rateLimiter.RateLimits) {
	ctrl := authController.NewAuthController(svc)

	auth := router.Group("/auth")
	auth.Post("/login", rateLimiter.LoginRateLimiter(limits.Login), ctrl.Login)
	auth.Post("/register", rateLimiter.RegisterRateLimiter(limits.Register), ctrl.Register)
}
