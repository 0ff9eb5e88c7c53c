package route

import (
	"github.com/gofiber/fiber/v2"

	userController "finakihub_backend/internals/features/users/user/controller"
	userService "finakihub_backend/internals/features/users/user/service"
)

func UserRoutes(router fiber.Router, svc *userService.UserService) {
	ctrl := userController.NewUserController(svc)

	user := router.Group("/user")
	user.Put("/avatar", ctrl.UpdateAvatar)
	user.Put("/level", ctrl.UpdateLevel)
	user.Get("/:id", ctrl.GetUser)
}
