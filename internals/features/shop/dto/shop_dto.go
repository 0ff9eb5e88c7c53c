package dto

type PurchaseRequest struct {
	UserID string `json:"user_id" validate:"required"`
	ItemID string `json:"item_id"`
	Price  int64  `json:"price"`
}

type PurchaseResult struct {
	Success  bool  `json:"success"`
	NewCoins int64 `json:"new_coins"`
}

// EquipRequest with an empty ItemID clears the slot.
type EquipRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Category string `json:"category"`
	ItemID   string `json:"item_id"`
}

type EquipResult struct {
	Success       bool              `json:"success"`
	EquippedItems map[string]string `json:"equipped_items"`
}
