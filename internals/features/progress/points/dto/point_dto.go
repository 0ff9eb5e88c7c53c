package dto

// Amounts carry no validator tags: zero and sign rules have their own messages in the service.

type AddXPRequest struct {
	UserID string `json:"user_id" validate:"required"`
	XP     int64  `json:"xp"`
}

type AddXPResult struct {
	Success    bool  `json:"success"`
	NewXP      int64 `json:"new_xp"`
	NewLevel   int   `json:"new_level"`
	LevelUp    bool  `json:"level_up"`
	BonusCoins int64 `json:"bonus_coins"`
	TotalCoins int64 `json:"total_coins"`
}

type CoinUpdateRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Coins  int64  `json:"coins"`
}

type CoinUpdateResult struct {
	Success  bool  `json:"success"`
	NewTotal int64 `json:"new_total"`
}

type BadgeUnlockRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	BadgeID string `json:"badge_id"`
}

type BadgeUnlockResult struct {
	Success  bool `json:"success"`
	NewBadge bool `json:"new_badge"`
}
