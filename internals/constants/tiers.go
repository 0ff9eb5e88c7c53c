package constants

// Tiers are the grade bands that gate module selection.
const (
	TierInicial    = "inicial"
	TierPrimaria   = "primaria"
	TierSecundaria = "secundaria"

	// DeprecatedTierPrimary is the old english alias of TierPrimaria, still served by /modules/primary.
	DeprecatedTierPrimary = "primary"

	DefaultSelectedTier = TierPrimaria
)

var Tiers = []string{TierInicial, TierPrimaria, TierSecundaria}

func IsValidTier(tier string) bool {
	switch tier {
	case TierInicial, TierPrimaria, TierSecundaria:
		return true
	}
	return false
}
