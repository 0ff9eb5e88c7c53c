package details

import (
	"github.com/gofiber/fiber/v2"

	database "finakihub_backend/internals/databases"
	pointRoute "finakihub_backend/internals/features/progress/points/route"
	pointService "finakihub_backend/internals/features/progress/points/service"
	userRepo "finakihub_backend/internals/features/users/user/repository"
	userRoute "finakihub_backend/internals/features/users/user/route"
	userService "finakihub_backend/internals/features/users/user/service"
)

// UserRoutes mounts the profile endpoints and the reward mutations (xp, coins, badges).
func UserRoutes(api fiber.Router, store *database.Store) {
	users := userRepo.New(store)

	userRoute.UserRoutes(api, userService.NewUserService(users))
	pointRoute.UserPointRoutes(api, pointService.NewPointService(users))
}
