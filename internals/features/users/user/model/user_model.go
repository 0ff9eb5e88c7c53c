package model

import "time"

// UserModel is the store-neutral shape of a user record.
// Level is not stored; it is derived from XP on every read (see levels.FromXP).
type UserModel struct {
	ID             string
	Username       string
	Age            int
	AvatarConfig   map[string]any
	Coins          int64
	XP             int64
	Badges         []string
	PurchasedItems []string
	EquippedItems  map[string]string
	SelectedLevel  string
	CreatedAt      time.Time
}

// XPSnapshot is the state of a user immediately before an XP increment.
type XPSnapshot struct {
	ID    string
	XP    int64
	Coins int64
}

func DefaultAvatarConfig() map[string]any {
	return map[string]any{"color": "blue", "style": "default"}
}
