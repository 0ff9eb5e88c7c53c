package service

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"finakihub_backend/internals/features/progress/level_rank/levels"
	"finakihub_backend/internals/features/progress/points/dto"
	"finakihub_backend/internals/features/users/user/repository"
	userService "finakihub_backend/internals/features/users/user/service"
	"finakihub_backend/internals/helpers/apperr"
	"finakihub_backend/internals/metrics"
)

const (
	MsgXPNotPositive  = "La cantidad de XP debe ser positiva"
	MsgCoinsZero      = "La cantidad de monedas debe ser distinta de cero"
	MsgBadgeIDMissing = "ID de insignia requerido"
)

// PointService applies XP, coin and badge rewards. Each mutation is one atomic store call.
type PointService struct {
	users repository.Repository
}

func NewPointService(users repository.Repository) *PointService {
	return &PointService{users: users}
}

func (s *PointService) checkID(id string) error {
	if !s.users.ValidID(id) {
		return apperr.Invalid(userService.MsgInvalidUserID)
	}
	return nil
}

// AddXP increments XP and pays newLevel*10 coins when the increment crosses a level boundary.
// The bonus is a second increment, so total_coins may already include a concurrent request's bonus.
func (s *PointService) AddXP(ctx context.Context, req dto.AddXPRequest) (*dto.AddXPResult, error) {
	if err := s.checkID(req.UserID); err != nil {
		return nil, err
	}
	if req.XP <= 0 {
		return nil, apperr.Invalid(MsgXPNotPositive)
	}

	before, err := s.users.IncrementXP(ctx, req.UserID, req.XP)
	if err != nil {
		return nil, userService.MapStoreError(err, "Error al añadir XP")
	}

	newXP := before.XP + req.XP
	oldLevel := levels.FromXP(before.XP)
	newLevel := levels.FromXP(newXP)
	res := &dto.AddXPResult{
		Success:  true,
		NewXP:    newXP,
		NewLevel: newLevel,
		LevelUp:  newLevel > oldLevel,
	}

	if res.LevelUp {
		res.BonusCoins = levels.LevelUpBonus(newLevel)
		total, err := s.users.IncrementCoins(ctx, req.UserID, res.BonusCoins)
		if err != nil {
			// XP is already stored at this point, only the bonus is missing
			log.WithError(err).WithField("user_id", req.UserID).Error("[LEVEL-UP] bonus grant failed")
			return nil, userService.MapStoreError(err, "Error al otorgar la bonificación")
		}
		res.TotalCoins = total
		log.WithFields(log.Fields{
			"user_id": req.UserID,
			"level":   newLevel,
			"bonus":   res.BonusCoins,
		}).Infof("[LEVEL-UP] user reached level %d", newLevel)
	} else {
		res.TotalCoins = s.currentCoins(ctx, req.UserID, before.Coins)
	}

	metrics.RecordXP(req.XP, res.LevelUp)
	return res, nil
}

// currentCoins re-reads the balance; fallback is used if the read fails.
func (s *PointService) currentCoins(ctx context.Context, id string, fallback int64) int64 {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		log.WithError(err).WithField("user_id", id).Warn("[XP] coin re-read failed")
		return fallback
	}
	return u.Coins
}

// AddCoins applies a signed delta. Balances are not clamped at zero.
func (s *PointService) AddCoins(ctx context.Context, req dto.CoinUpdateRequest) (*dto.CoinUpdateResult, error) {
	if err := s.checkID(req.UserID); err != nil {
		return nil, err
	}
	if req.Coins == 0 {
		return nil, apperr.Invalid(MsgCoinsZero)
	}

	total, err := s.users.IncrementCoins(ctx, req.UserID, req.Coins)
	if err != nil {
		return nil, userService.MapStoreError(err, "Error al actualizar monedas")
	}
	if total < 0 {
		log.WithFields(log.Fields{"user_id": req.UserID, "balance": total}).Warn("[COINS] balance went negative")
	}
	return &dto.CoinUpdateResult{Success: true, NewTotal: total}, nil
}

func (s *PointService) UnlockBadge(ctx context.Context, req dto.BadgeUnlockRequest) (*dto.BadgeUnlockResult, error) {
	if err := s.checkID(req.UserID); err != nil {
		return nil, err
	}
	req.BadgeID = strings.TrimSpace(req.BadgeID)
	if req.BadgeID == "" {
		return nil, apperr.Invalid(MsgBadgeIDMissing)
	}

	added, err := s.users.AddBadge(ctx, req.UserID, req.BadgeID)
	if err != nil {
		return nil, userService.MapStoreError(err, "Error al desbloquear la insignia")
	}
	if added {
		log.WithFields(log.Fields{"user_id": req.UserID, "badge": req.BadgeID}).Info("[BADGE] unlocked")
	}
	return &dto.BadgeUnlockResult{Success: true, NewBadge: added}, nil
}
