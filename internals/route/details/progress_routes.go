package details

import (
	"github.com/gofiber/fiber/v2"

	database "finakihub_backend/internals/databases"
	progressRepo "finakihub_backend/internals/features/progress/progress/repository"
	progressRoute "finakihub_backend/internals/features/progress/progress/route"
	progressService "finakihub_backend/internals/features/progress/progress/service"
)

func ProgressRoutes(api fiber.Router, store *database.Store) {
	svc := progressService.NewProgressService(progressRepo.New(store))
	progressRoute.UserProgressRoutes(api, svc)
}
