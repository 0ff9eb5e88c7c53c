package service

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"finakihub_backend/internals/features/games/lemonade/dto"
	"finakihub_backend/internals/features/games/lemonade/repository"
	"finakihub_backend/internals/helpers/apperr"
)

const MsgUserIDRequired = "ID de usuario requerido"

type LemonadeService struct {
	repo repository.Repository
}

func NewLemonadeService(repo repository.Repository) *LemonadeService {
	return &LemonadeService{repo: repo}
}

func (s *LemonadeService) Save(ctx context.Context, req dto.LemonadeSaveRequest) (*dto.LemonadeSaveResult, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return nil, apperr.Invalid(MsgUserIDRequired)
	}
	g := req.ToModel()
	if err := s.repo.Save(ctx, g); err != nil {
		return nil, apperr.InternalErr("Error al guardar el estado del juego.", err)
	}
	log.WithFields(log.Fields{"user_id": g.UserID, "day": g.CurrentDay, "completed": g.Completed}).
		Debug("[GAME] lemonade state saved")
	return &dto.LemonadeSaveResult{Success: true, Score: g.Score}, nil
}

// Get returns nil without error when nothing has been saved yet.
func (s *LemonadeService) Get(ctx context.Context, userID string) (*dto.LemonadeGameResponse, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, apperr.Invalid(MsgUserIDRequired)
	}
	g, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.InternalErr("Error al obtener el estado del juego.", err)
	}
	return dto.ToLemonadeGameResponse(g), nil
}
