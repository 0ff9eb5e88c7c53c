package dto

import (
	"finakihub_backend/internals/features/progress/level_rank/levels"
	"finakihub_backend/internals/features/users/user/model"
)

/* ====================== requests ====================== */

type AvatarUpdateRequest struct {
	UserID       string         `json:"user_id" validate:"required"`
	AvatarConfig map[string]any `json:"avatar_config" validate:"required"`
}

// Level is checked against the tier list by the service so the message matches the catalog's.
type LevelUpdateRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Level  string `json:"level" validate:"required"`
}

/* ====================== response ====================== */

type UserResponse struct {
	ID             string            `json:"id"`
	Username       string            `json:"username"`
	Age            int               `json:"age"`
	AvatarConfig   map[string]any    `json:"avatar_config"`
	Coins          int64             `json:"coins"`
	Level          int               `json:"level"`
	XP             int64             `json:"xp"`
	Badges         []string          `json:"badges"`
	PurchasedItems []string          `json:"purchased_items"`
	EquippedItems  map[string]string `json:"equipped_items"`
	SelectedLevel  string            `json:"selected_level"`
}

// ToUserResponse never trusts a stored level; it is always recomputed from XP.
func ToUserResponse(u *model.UserModel) UserResponse {
	resp := UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Age:            u.Age,
		AvatarConfig:   u.AvatarConfig,
		Coins:          u.Coins,
		Level:          levels.FromXP(u.XP),
		XP:             u.XP,
		Badges:         u.Badges,
		PurchasedItems: u.PurchasedItems,
		EquippedItems:  u.EquippedItems,
		SelectedLevel:  u.SelectedLevel,
	}
	if resp.AvatarConfig == nil {
		resp.AvatarConfig = map[string]any{}
	}
	if resp.Badges == nil {
		resp.Badges = []string{}
	}
	if resp.PurchasedItems == nil {
		resp.PurchasedItems = []string{}
	}
	if resp.EquippedItems == nil {
		resp.EquippedItems = map[string]string{}
	}
	return resp
}
