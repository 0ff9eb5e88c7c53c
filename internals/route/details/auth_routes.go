package details

import (
	"github.com/gofiber/fiber/v2"

	database "finakihub_backend/internals/databases"
	progressRepo "finakihub_backend/internals/features/progress/progress/repository"
	progressService "finakihub_backend/internals/features/progress/progress/service"
	authRoute "finakihub_backend/internals/features/users/auth/route"
	authService "finakihub_backend/internals/features/users/auth/service"
	userRepo "finakihub_backend/internals/features/users/user/repository"
	rateLimiter "finakihub_backend/internals/middlewares"
)

func AuthRoutes(api fiber.Router, store *database.Store, limits rateLimiter.RateLimits) {
	progress := progressService.NewProgressService(progressRepo.New(store))
	svc := authService.NewAuthService(userRepo.New(store), progress)

	authRoute.AuthRoutes(api, svc, limits)
}
