// Package levels derives a user's level from accumulated XP.
package levels

// XPPerLevel is the XP needed to climb one level.
const XPPerLevel = 100

// BonusCoinsPerLevel is multiplied by the reached level on a level-up.
const BonusCoinsPerLevel = 10

// FromXP returns max(1, xp/100 + 1). Negative XP clamps to level 1.
func FromXP(xp int64) int {
	level := int(xp/XPPerLevel) + 1
	if level < 1 {
		return 1
	}
	return level
}

// LevelUpBonus is the coin bonus granted when a user reaches newLevel.
func LevelUpBonus(newLevel int) int64 {
	return int64(newLevel) * BonusCoinsPerLevel
}
