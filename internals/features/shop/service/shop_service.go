package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	log "github.com/sirupsen/logrus"

	"finakihub_backend/internals/constants"
	database "finakihub_backend/internals/databases"
	"finakihub_backend/internals/features/shop/catalog"
	"finakihub_backend/internals/features/shop/dto"
	"finakihub_backend/internals/features/users/user/repository"
	userService "finakihub_backend/internals/features/users/user/service"
	"finakihub_backend/internals/helpers/apperr"
	"finakihub_backend/internals/metrics"
)

const (
	MsgItemIDMissing     = "ID de artículo requerido"
	MsgNegativePrice     = "El precio no puede ser negativo"
	MsgInsufficientFunds = "No tienes suficientes monedas"
	MsgAlreadyOwned      = "Ya compraste este artículo"
	MsgPurchaseFailed    = "No se pudo completar la compra"
	MsgNotOwned          = "No has comprado este artículo"
	msgInvalidCategory   = "Categoría inválida: %s"
)

type ShopService struct {
	users repository.Repository
}

func NewShopService(users repository.Repository) *ShopService {
	return &ShopService{users: users}
}

func (s *ShopService) Items() []catalog.ShopItem {
	return catalog.Items()
}

// Purchase charges and records the item in one conditional update. When that update
// matches nothing, a follow-up read picks the most specific reason; the read is not
// authoritative and may already be stale.
func (s *ShopService) Purchase(ctx context.Context, req dto.PurchaseRequest) (*dto.PurchaseResult, error) {
	if !s.users.ValidID(req.UserID) {
		return nil, apperr.Invalid(userService.MsgInvalidUserID)
	}
	// ids are stored trimmed so Equip's ownership check sees the same value
	req.ItemID = strings.TrimSpace(req.ItemID)
	if req.ItemID == "" {
		return nil, apperr.Invalid(MsgItemIDMissing)
	}
	if req.Price < 0 {
		return nil, apperr.Invalid(MsgNegativePrice)
	}
	if item, ok := catalog.FindItem(req.ItemID); ok && item.Price != req.Price {
		log.WithFields(log.Fields{"item": req.ItemID, "catalog_price": item.Price, "price": req.Price}).
			Debug("[SHOP] client price differs from catalog")
	}

	coins, matched, err := s.users.Purchase(ctx, req.UserID, req.ItemID, req.Price)
	if err != nil {
		metrics.RecordPurchase("error")
		return nil, apperr.InternalErr(MsgPurchaseFailed, err)
	}
	if matched {
		metrics.RecordPurchase("ok")
		log.WithFields(log.Fields{"user_id": req.UserID, "item": req.ItemID, "coins": coins}).Info("[SHOP] purchase")
		return &dto.PurchaseResult{Success: true, NewCoins: coins}, nil
	}

	reason, failure := s.diagnosePurchase(ctx, req)
	metrics.RecordPurchase(reason)
	return nil, failure
}

func (s *ShopService) diagnosePurchase(ctx context.Context, req dto.PurchaseRequest) (string, error) {
	u, err := s.users.FindByID(ctx, req.UserID)
	switch {
	case errors.Is(err, database.ErrNotFound):
		return "not_found", apperr.NotFoundf(userService.MsgUserNotFound)
	case err != nil:
		return "error", apperr.InternalErr("Error al consultar usuario para compra", err)
	case u.Coins < req.Price:
		return "insufficient_funds", apperr.Invalid(MsgInsufficientFunds)
	case slices.Contains(u.PurchasedItems, req.ItemID):
		return "already_owned", apperr.Conflictf(MsgAlreadyOwned)
	default:
		return "error", apperr.InternalErr(MsgPurchaseFailed, errors.New("conditional purchase matched nothing"))
	}
}

// Equip writes the item under both the canonical and the localized category key,
// or removes both keys when no item is given.
func (s *ShopService) Equip(ctx context.Context, req dto.EquipRequest) (*dto.EquipResult, error) {
	if !s.users.ValidID(req.UserID) {
		return nil, apperr.Invalid(userService.MsgInvalidUserID)
	}
	canonical, localized, ok := constants.CategoryKeys(req.Category)
	if !ok {
		log.WithField("category", req.Category).Warn("[SHOP] unknown category")
		return nil, apperr.Invalid(fmt.Sprintf(msgInvalidCategory, req.Category))
	}
	keys := []string{canonical, localized}

	req.ItemID = strings.TrimSpace(req.ItemID)
	if req.ItemID == "" {
		equipped, err := s.users.ClearEquipped(ctx, req.UserID, keys)
		if err != nil {
			return nil, userService.MapStoreError(err, "Error al quitar el artículo")
		}
		return &dto.EquipResult{Success: true, EquippedItems: equipped}, nil
	}

	owns, err := s.users.OwnsItem(ctx, req.UserID, req.ItemID)
	if err != nil {
		return nil, userService.MapStoreError(err, "Error al verificar el artículo")
	}
	if !owns {
		return nil, apperr.Invalid(MsgNotOwned)
	}
	equipped, err := s.users.SetEquipped(ctx, req.UserID, keys, req.ItemID)
	if err != nil {
		return nil, userService.MapStoreError(err, "Error al equipar el artículo")
	}
	return &dto.EquipResult{Success: true, EquippedItems: equipped}, nil
}
