package service

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"finakihub_backend/internals/constants"
	database "finakihub_backend/internals/databases"
	"finakihub_backend/internals/features/users/user/dto"
	"finakihub_backend/internals/features/users/user/repository"
	"finakihub_backend/internals/helpers/apperr"
)

const (
	MsgUserNotFound  = "Usuario no encontrado"
	MsgInvalidUserID = "ID de usuario inválido"
	MsgInvalidTier   = "Nivel no válido"
	msgReadUser      = "Error al procesar datos del usuario."
)

type UserService struct {
	repo repository.Repository
}

func NewUserService(repo repository.Repository) *UserService {
	return &UserService{repo: repo}
}

// CheckID rejects ids the store could never match, before any store call.
func (s *UserService) CheckID(id string) error {
	if !s.repo.ValidID(id) {
		return apperr.Invalid(MsgInvalidUserID)
	}
	return nil
}

func (s *UserService) Get(ctx context.Context, id string) (*dto.UserResponse, error) {
	if err := s.CheckID(id); err != nil {
		return nil, err
	}
	return s.load(ctx, id)
}

func (s *UserService) UpdateAvatar(ctx context.Context, req dto.AvatarUpdateRequest) (*dto.UserResponse, error) {
	if err := s.CheckID(req.UserID); err != nil {
		return nil, err
	}
	if err := s.repo.SetAvatar(ctx, req.UserID, req.AvatarConfig); err != nil {
		return nil, MapStoreError(err, "Error al actualizar el avatar")
	}
	return s.load(ctx, req.UserID)
}

func (s *UserService) UpdateLevel(ctx context.Context, req dto.LevelUpdateRequest) (*dto.UserResponse, error) {
	if !constants.IsValidTier(req.Level) {
		return nil, apperr.Invalid(MsgInvalidTier)
	}
	if err := s.CheckID(req.UserID); err != nil {
		return nil, err
	}
	if err := s.repo.SetSelectedLevel(ctx, req.UserID, req.Level); err != nil {
		return nil, MapStoreError(err, "Error al actualizar el nivel")
	}
	log.WithField("user_id", req.UserID).Infof("[USER] selected level -> %s", req.Level)
	return s.load(ctx, req.UserID)
}

func (s *UserService) load(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, MapStoreError(err, msgReadUser)
	}
	resp := dto.ToUserResponse(u)
	return &resp, nil
}

// MapStoreError turns repository errors into the user-facing kinds; anything unexpected is Internal.
func MapStoreError(err error, internalMsg string) error {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return apperr.NotFoundf(MsgUserNotFound)
	case errors.Is(err, context.DeadlineExceeded):
		return apperr.InternalErr("Tiempo de espera agotado", err)
	default:
		return apperr.InternalErr(internalMsg, err)
	}
}
