package service

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"finakihub_backend/internals/features/progress/progress/dto"
	"finakihub_backend/internals/features/progress/progress/model"
	"finakihub_backend/internals/features/progress/progress/repository"
	"finakihub_backend/internals/helpers/apperr"
)

const (
	MsgUserIDRequired = "ID de usuario requerido"

	msgUpdated   = "Progreso actualizado"
	msgCreated   = "Progreso creado"
	msgUnchanged = "No hubo cambios"
)

type ProgressService struct {
	repo repository.Repository
}

func NewProgressService(repo repository.Repository) *ProgressService {
	return &ProgressService{repo: repo}
}

func (s *ProgressService) Get(ctx context.Context, userID string) (*dto.ProgressResponse, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, apperr.Invalid(MsgUserIDRequired)
	}
	p, created, err := s.repo.FindOrCreate(ctx, userID)
	if err != nil {
		return nil, apperr.InternalErr("Error al crear el progreso inicial", err)
	}
	if created {
		log.WithField("user_id", userID).Info("[PROGRESS] initial progress created on read")
	}
	resp := dto.ToProgressResponse(p)
	return &resp, nil
}

// CreateInitialUserProgress runs at registration so the first GET does not have to.
func (s *ProgressService) CreateInitialUserProgress(ctx context.Context, userID string) error {
	if _, _, err := s.repo.FindOrCreate(ctx, userID); err != nil {
		log.WithError(err).WithField("user_id", userID).Error("[ERROR] init progress failed")
		return err
	}
	log.WithField("user_id", userID).Info("[SUCCESS] progress initialized")
	return nil
}

func (s *ProgressService) Update(ctx context.Context, req dto.ProgressUpdateRequest) (*dto.ProgressUpdateResult, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return nil, apperr.Invalid(MsgUserIDRequired)
	}
	outcome, err := s.repo.Upsert(ctx, req.ToModel())
	if err != nil {
		return nil, apperr.InternalErr("Error al actualizar el progreso.", err)
	}

	res := &dto.ProgressUpdateResult{
		Success:  true,
		Modified: outcome == model.Modified,
		Created:  outcome == model.Created,
	}
	switch outcome {
	case model.Modified:
		res.Message = msgUpdated
	case model.Created:
		res.Message = msgCreated
	default:
		res.Message = msgUnchanged
	}
	return res, nil
}
