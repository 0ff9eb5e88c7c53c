package seeds

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	database "finakihub_backend/internals/databases"
	lemonadeRepo "finakihub_backend/internals/features/games/lemonade/repository"
	progressRepo "finakihub_backend/internals/features/progress/progress/repository"
	progressService "finakihub_backend/internals/features/progress/progress/service"
	authService "finakihub_backend/internals/features/users/auth/service"
	userRepo "finakihub_backend/internals/features/users/user/repository"
	users "finakihub_backend/internals/seeds/users/auth"
)

// EnsureSchema creates indexes (mongo) or migrates tables (sql) for every collection.
func EnsureSchema(ctx context.Context, store *database.Store) error {
	steps := []struct {
		name string
		fn   func(context.Context, *database.Store) error
	}{
		{database.UsersCollection, userRepo.EnsureSchema},
		{database.ProgressCollection, progressRepo.EnsureSchema},
		{database.LemonadeCollection, lemonadeRepo.EnsureSchema},
	}
	for _, s := range steps {
		if err := s.fn(ctx, store); err != nil {
			return fmt.Errorf("ensure schema %s: %w", s.name, err)
		}
	}
	log.Infof("[SCHEMA] ready (%s)", store.Driver)
	return nil
}

// RunAllSeeds loads demo users when usersFile is set; it is a no-op otherwise.
func RunAllSeeds(ctx context.Context, store *database.Store, usersFile string) error {
	if usersFile == "" {
		return nil
	}
	progress := progressService.NewProgressService(progressRepo.New(store))
	auth := authService.NewAuthService(userRepo.New(store), progress)

	//* User
	return users.SeedUsersFromJSON(ctx, auth, usersFile)
}
