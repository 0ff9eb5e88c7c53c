package auth

import (
	"context"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"

	authDTO "finakihub_backend/internals/features/users/auth/dto"
	authService "finakihub_backend/internals/features/users/auth/service"
	helper "finakihub_backend/internals/helpers"
	"finakihub_backend/internals/helpers/apperr"
)

type UserSeed struct {
	Username     string         `json:"username"`
	Age          int            `json:"age"`
	AvatarConfig map[string]any `json:"avatar_config"`
}

// SeedUsersFromJSON registers every user in the file through the normal registration
// path, so each also gets its progress record. Existing usernames are skipped.
func SeedUsersFromJSON(ctx context.Context, svc *authService.AuthService, filePath string) error {
	log.Infof("[SEED] reading %s", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var seeds []UserSeed
	if err := sonic.Unmarshal(file, &seeds); err != nil {
		return fmt.Errorf("decode seed file: %w", err)
	}

	created := 0
	for _, s := range seeds {
		req := authDTO.RegisterRequest{Username: s.Username, Age: s.Age, AvatarConfig: s.AvatarConfig}
		if err := helper.Validate.Struct(req); err != nil {
			log.WithError(err).Warnf("[SEED] invalid user %q skipped", s.Username)
			continue
		}
		if _, err := svc.Register(ctx, req); err != nil {
			if apperr.Is(err, apperr.Conflict) {
				log.Debugf("[SEED] user %q already exists, skipped", s.Username)
				continue
			}
			return fmt.Errorf("seed user %q: %w", s.Username, err)
		}
		created++
	}
	log.Infof("[SEED] %d of %d users created", created, len(seeds))
	return nil
}
