package service

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"finakihub_backend/internals/constants"
	database "finakihub_backend/internals/databases"
	"finakihub_backend/internals/features/users/auth/dto"
	userDTO "finakihub_backend/internals/features/users/user/dto"
	"finakihub_backend/internals/features/users/user/model"
	"finakihub_backend/internals/features/users/user/repository"
	userService "finakihub_backend/internals/features/users/user/service"
	"finakihub_backend/internals/helpers/apperr"
)

const MsgUserExists = "Usuario ya existe"

// ProgressInitializer creates the empty progress record of a new user.
type ProgressInitializer interface {
	CreateInitialUserProgress(ctx context.Context, userID string) error
}

type AuthService struct {
	users    repository.Repository
	progress ProgressInitializer
	now      func() time.Time
}

func NewAuthService(users repository.Repository, progress ProgressInitializer) *AuthService {
	return &AuthService{users: users, progress: progress, now: time.Now}
}

func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*userDTO.UserResponse, error) {
	log.WithField("username", req.Username).Info("[REGISTER] request")

	_, err := s.users.FindByUsername(ctx, req.Username)
	switch {
	case err == nil:
		return nil, apperr.Conflictf(MsgUserExists)
	case !errors.Is(err, database.ErrNotFound):
		return nil, apperr.InternalErr("Error al verificar el usuario", err)
	}

	avatar := req.AvatarConfig
	if avatar == nil {
		avatar = model.DefaultAvatarConfig()
	}
	u := &model.UserModel{
		Username:       req.Username,
		Age:            req.Age,
		AvatarConfig:   avatar,
		Badges:         []string{},
		PurchasedItems: []string{},
		EquippedItems:  map[string]string{},
		SelectedLevel:  constants.DefaultSelectedTier,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		// the unique index catches a concurrent registration of the same name
		if errors.Is(err, database.ErrDuplicate) {
			return nil, apperr.Conflictf(MsgUserExists)
		}
		return nil, apperr.InternalErr("Ocurrió un error interno durante el registro.", err)
	}
	log.WithField("user_id", u.ID).Infof("[REGISTER] user %q created", u.Username)

	if s.progress != nil {
		// the progress record is also created lazily on first read
		_ = s.progress.CreateInitialUserProgress(ctx, u.ID)
	}

	created, err := s.users.FindByID(ctx, u.ID)
	if err != nil {
		return nil, userService.MapStoreError(err, "Error al verificar la creación del usuario")
	}
	resp := userDTO.ToUserResponse(created)
	return &resp, nil
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*userDTO.UserResponse, error) {
	u, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, userService.MapStoreError(err, "Error al procesar datos del usuario.")
	}
	resp := userDTO.ToUserResponse(u)
	return &resp, nil
}
